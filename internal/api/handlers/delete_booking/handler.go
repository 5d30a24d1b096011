package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
	msgBinRelease       = "failed to release assigned bin, booking not deleted"
)

type Handler struct {
	ledger BookingLedger
	logger Logger
}

func NewHandler(ledger BookingLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{bookingId} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.ledger.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{bookingId} - Booking not found: id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrBinRelease):
			h.logger.Error("DELETE /bookings/{bookingId} - Failed to release bin: id=%d, error=%v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBinRelease)

		default:
			h.logger.Error("DELETE /bookings/{bookingId} - Failed to delete booking: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{bookingId} - Booking deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
