package dashboard_stats

import (
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
)

type Handler struct {
	reports ReportsService
	logger  Logger
}

func NewHandler(reports ReportsService, logger Logger) *Handler {
	return &Handler{
		reports: reports,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.DashboardStats(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceStats(stats))
}
