package add_customer

import (
	"errors"
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/service/customers"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.directory.Create(r.Context(), req.ToDomainCustomer())
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("POST /customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /customers - Failed to create customer: company=%s, error=%v", req.CompanyName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Customer created: company=%s, id=%d", customer.CompanyName, customer.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainCustomer(customer))
}
