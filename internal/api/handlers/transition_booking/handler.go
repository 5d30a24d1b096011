package transition_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	transitionBooking "github.com/vkrnv/SBR-OperationsService/internal/usecase/transition_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgInvalidStatus      = "invalid booking status"
	msgConcurrentUpdate   = "booking was modified concurrently, retry"
)

type Handler struct {
	useCase TransitionBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransitionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId}/status - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req TransitionBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	res, err := h.useCase.Execute(r.Context(), &transitionBooking.Request{
		BookingID: id,
		Target:    domain.BookingStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId}/status - Booking not found: id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, transitionBooking.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{bookingId}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, transitionBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{bookingId}/status - Invalid transition: id=%d, error=%v", id, err)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, transitionBooking.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /bookings/{bookingId}/status - Concurrent update: id=%d", id)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("PATCH /bookings/{bookingId}/status - Failed to transition booking: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId}/status - Booking transitioned: id=%d, status=%s",
		res.Booking.ID, res.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(res))
}
