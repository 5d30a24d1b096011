package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	createBooking "github.com/vkrnv/SBR-OperationsService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string          `json:"customer_name"`
	BinNumber    *string         `json:"bin_number,omitempty"`
	BinSize      string          `json:"bin_size"`
	StartDate    string          `json:"start_date"` // "2006-01-02"
	EndDate      string          `json:"end_date"`   // "2006-01-02"
	Location     string          `json:"location"`
	Contact      string          `json:"contact"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        *string         `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingNumber string  `json:"booking_number"`
	CustomerName  string  `json:"customer_name"`
	BinNumber     *string `json:"bin_number,omitempty"`
	BinSize       string  `json:"bin_size"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	Location      string  `json:"location"`
	Contact       string  `json:"contact"`
	TotalAmount   string  `json:"total_amount"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// InvoiceResponse HTTP response model
type InvoiceResponse struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	CustomerName  string `json:"customer_name"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	IssueDate     string `json:"issue_date"`
	DueDate       string `json:"due_date"`
	Description   string `json:"description"`
}

// CreateBookingResponse HTTP response model.
// Ошибки побочных эффектов не прерывают создание бронирования,
// а возвращаются клиенту отдельными полями.
type CreateBookingResponse struct {
	Booking         *BookingResponse `json:"booking"`
	Invoice         *InvoiceResponse `json:"invoice,omitempty"`
	BinCascadeError string           `json:"bin_cascade_error,omitempty"`
	InvoiceError    string           `json:"invoice_error,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель usecase
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName: r.CustomerName,
		BinNumber:    r.BinNumber,
		BinSize:      r.BinSize,
		StartDate:    start,
		EndDate:      end,
		Location:     r.Location,
		Contact:      r.Contact,
		TotalAmount:  r.TotalAmount,
		Notes:        r.Notes,
	}, nil
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		CustomerName:  b.CustomerName,
		BinNumber:     b.BinNumber,
		BinSize:       b.BinSize,
		StartDate:     b.StartDate.Format(domain.DateFormat),
		EndDate:       b.EndDate.Format(domain.DateFormat),
		Status:        string(b.Status),
		Location:      b.Location,
		Contact:       b.Contact,
		TotalAmount:   b.TotalAmount.String(),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromUseCaseResponse конвертирует результат usecase в DTO
func FromUseCaseResponse(res *createBooking.Response) *CreateBookingResponse {
	resp := &CreateBookingResponse{
		Booking: FromDomainBooking(res.Booking),
	}

	if res.Invoice != nil {
		resp.Invoice = &InvoiceResponse{
			ID:            res.Invoice.ID,
			InvoiceNumber: res.Invoice.InvoiceNumber,
			CustomerName:  res.Invoice.CustomerName,
			Amount:        res.Invoice.Amount.String(),
			Status:        string(res.Invoice.Status),
			IssueDate:     res.Invoice.IssueDate.Format(domain.DateFormat),
			DueDate:       res.Invoice.DueDate.Format(domain.DateFormat),
			Description:   res.Invoice.Description,
		}
	}

	if res.BinCascade.Failed() {
		resp.BinCascadeError = res.BinCascade.Err.Error()
	}
	if res.InvoiceIssue.Failed() {
		resp.InvoiceError = res.InvoiceIssue.Err.Error()
	}

	return resp
}
