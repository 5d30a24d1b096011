package list_bookings

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

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBookings конвертирует domain модели в DTO
func FromDomainBookings(items []*domain.Booking) *ListBookingsResponse {
	resp := &ListBookingsResponse{Bookings: make([]BookingResponse, 0, len(items))}

	for _, b := range items {
		resp.Bookings = append(resp.Bookings, BookingResponse{
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
		})
	}

	return resp
}
