package list_customers

import (
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
)

type Handler struct {
	directory CustomerDirectory
	logger    Logger
}

func NewHandler(directory CustomerDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/customers?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var text *string
	if v := r.URL.Query().Get("q"); v != "" {
		text = &v
	}

	items, err := h.directory.List(r.Context(), text)
	if err != nil {
		h.logger.Error("GET /customers - Failed to list customers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainCustomers(items))
}
