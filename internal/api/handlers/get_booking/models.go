package get_booking

import (
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

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
