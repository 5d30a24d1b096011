package domain

// Business reference prefixes
const (
	BookingNumberPrefix = "BK-"
	InvoiceNumberPrefix = "INV-"
)

// InvoiceDueDays срок оплаты счёта: due date = issue date + 30 дней
const InvoiceDueDays = 30

// Validation constants
const (
	MaxNotesLength        = 500
	MaxBinNumberLength    = 32
	MaxCustomerNameLength = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// StatusFilterAll специальное значение фильтра статуса, совпадающее с любым статусом
const StatusFilterAll = "All"
