package create_invoice

import (
	"errors"
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/service/invoices"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
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

// Handle POST /api/v1/invoices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invoices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /invoices - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	inv, err := h.issuer.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, invoices.ErrInvalidInput):
			h.logger.Warn("POST /invoices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /invoices - Failed to create invoice: customer=%s, error=%v", req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invoices - Invoice created: invoice_number=%s, id=%d", inv.InvoiceNumber, inv.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainInvoice(inv))
}
