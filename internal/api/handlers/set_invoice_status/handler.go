package set_invoice_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	"github.com/vkrnv/SBR-OperationsService/internal/service/invoices"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInvoiceID   = "invalid invoice id"
	msgInvoiceNotFound    = "invoice not found"
	msgInvalidStatus      = "invalid invoice status"
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

// Handle PATCH /api/v1/invoices/{invoiceId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["invoiceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /invoices/{invoiceId}/status - Invalid invoice id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	var req SetInvoiceStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /invoices/{invoiceId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.issuer.SetStatus(r.Context(), id, domain.InvoiceStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvoiceNotFound):
			h.logger.Warn("PATCH /invoices/{invoiceId}/status - Invoice not found: id=%d", id)
			handlers.RespondNotFound(w, msgInvoiceNotFound)

		case errors.Is(err, invoices.ErrInvalidStatus):
			h.logger.Warn("PATCH /invoices/{invoiceId}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /invoices/{invoiceId}/status - Failed to update invoice: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /invoices/{invoiceId}/status - Invoice status updated: id=%d, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
