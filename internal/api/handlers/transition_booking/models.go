package transition_booking

import (
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	transitionBooking "github.com/vkrnv/SBR-OperationsService/internal/usecase/transition_booking"
)

// TransitionBookingRequest HTTP request model
type TransitionBookingRequest struct {
	Status string `json:"status"`
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

// TransitionBookingResponse HTTP response model.
// bin_cascade_error сообщает об отказе зеркалирования статуса бина,
// не отменяющем уже выполненную смену статуса бронирования.
type TransitionBookingResponse struct {
	Booking         *BookingResponse `json:"booking"`
	BinCascadeError string           `json:"bin_cascade_error,omitempty"`
}

// FromUseCaseResponse конвертирует результат usecase в DTO
func FromUseCaseResponse(res *transitionBooking.Response) *TransitionBookingResponse {
	b := res.Booking

	resp := &TransitionBookingResponse{
		Booking: &BookingResponse{
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
		},
	}

	if res.Cascade.Failed() {
		resp.BinCascadeError = res.Cascade.Err.Error()
	}

	return resp
}
