package list_bookings

import (
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/domain"
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

// Handle GET /api/v1/bookings?q=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	text := query.Get("q")
	statusFilter := query.Get("status")
	if statusFilter == "" {
		statusFilter = domain.StatusFilterAll
	}

	items, err := h.ledger.Search(r.Context(), text, statusFilter)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to search bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainBookings(items))
}
