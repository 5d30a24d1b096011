package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the billing status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice represents a billing record generated alongside booking creation.
// CustomerName is copied from the booking, not referenced; later booking
// edits do not flow back into the invoice.
type Invoice struct {
	ID            int64
	InvoiceNumber string
	CustomerName  string
	IssueDate     time.Time
	DueDate       time.Time
	Amount        decimal.Decimal
	Status        InvoiceStatus
	Description   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the invoice is still awaiting payment activity
func (i *Invoice) IsPending() bool {
	return i.Status == InvoiceStatusDraft || i.Status == InvoiceStatusSent
}

// ValidInvoiceStatus reports whether s is one of the known invoice statuses
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// PendingInvoiceStatuses статусы, которые учитываются дашбордом как неоплаченные
var PendingInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusSent,
}

// InvoiceNumberFor derives the invoice number from a booking reference,
// e.g. "BK-4F2A91" -> "INV-4F2A91". The derived number is traceable back to
// the booking by eye but is not guaranteed unique against concurrent creates.
func InvoiceNumberFor(bookingNumber string) string {
	return InvoiceNumberPrefix + strings.TrimPrefix(bookingNumber, BookingNumberPrefix)
}
