package list_invoices

import (
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
)

type Handler struct {
	issuer InvoiceIssuer
	logger Logger
}

func NewHandler(issuer InvoiceIssuer, logger Logger) *Handler {
	return &Handler{
		issuer: issuer,
		logger: logger,
	}
}

// Handle GET /api/v1/invoices?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var text *string
	if v := r.URL.Query().Get("q"); v != "" {
		text = &v
	}

	items, err := h.issuer.List(r.Context(), text)
	if err != nil {
		h.logger.Error("GET /invoices - Failed to list invoices: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainInvoices(items))
}
