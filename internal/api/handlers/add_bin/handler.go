package add_bin

import (
	"errors"
	"net/http"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/service/bins"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidLastService = "invalid last_service date, expected YYYY-MM-DD"
	msgDuplicateBinNumber = "bin number already exists"
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

// Handle POST /api/v1/bins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddBinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bins - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLastService)
		return
	}

	bin, err := h.registry.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bins.ErrDuplicateBinNumber):
			h.logger.Warn("POST /bins - Duplicate bin number: %s", req.BinNumber)
			handlers.RespondConflict(w, msgDuplicateBinNumber)

		case errors.Is(err, bins.ErrInvalidInput):
			h.logger.Warn("POST /bins - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bins - Failed to create bin: bin_number=%s, error=%v", req.BinNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bins - Bin created successfully: bin_number=%s, id=%d", bin.BinNumber, bin.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainBin(bin))
}
