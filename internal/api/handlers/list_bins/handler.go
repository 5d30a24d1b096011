package list_bins

import (
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

type Handler struct {
	registry BinRegistry
	logger   Logger
}

func NewHandler(registry BinRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle GET /api/v1/bins?status=&size=&q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter domain.BinFilter
	if v := query.Get("status"); v != "" && v != domain.StatusFilterAll {
		status := domain.BinStatus(v)
		filter.Status = &status
	}
	if v := query.Get("size"); v != "" {
		filter.Size = &v
	}
	if v := query.Get("q"); v != "" {
		filter.Text = &v
	}

	items, err := h.registry.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /bins - Failed to list bins: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainBins(items))
}
