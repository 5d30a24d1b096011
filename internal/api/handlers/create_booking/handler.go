package create_booking

import (
	"errors"
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	createBooking "github.com/vkrnv/SBR-OperationsService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgBinNotFound        = "bin not found"
	msgBinAlreadyBooked   = "bin is already assigned to an active booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	res, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrBinNotFound):
			h.logger.Warn("POST /bookings - Bin not found: customer=%s", req.CustomerName)
			handlers.RespondNotFound(w, msgBinNotFound)

		case errors.Is(err, createBooking.ErrBinAlreadyBooked):
			h.logger.Warn("POST /bookings - Bin already booked: customer=%s", req.CustomerName)
			handlers.RespondConflict(w, msgBinAlreadyBooked)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer=%s, error=%v", req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_number=%s, customer=%s",
		res.Booking.BookingNumber, res.Booking.CustomerName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(res))
}
