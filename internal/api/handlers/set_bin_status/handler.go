package set_bin_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vkrnv/SBR-OperationsService/internal/api/handlers"
	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	"github.com/vkrnv/SBR-OperationsService/internal/service/bins"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBinNotFound        = "bin not found"
	msgInvalidStatus      = "invalid bin status"
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

// Handle PATCH /api/v1/bins/{binNumber}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	binNumber := mux.Vars(r)["binNumber"]

	var req SetBinStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bins/{binNumber}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	bin, err := h.registry.SetStatus(r.Context(), binNumber, domain.BinStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, bins.ErrBinNotFound):
			h.logger.Warn("PATCH /bins/{binNumber}/status - Bin not found: %s", binNumber)
			handlers.RespondNotFound(w, msgBinNotFound)

		case errors.Is(err, bins.ErrInvalidStatus):
			h.logger.Warn("PATCH /bins/{binNumber}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /bins/{binNumber}/status - Failed to update bin: bin_number=%s, error=%v", binNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bins/{binNumber}/status - Bin status updated: bin_number=%s, status=%s", binNumber, bin.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBin(bin))
}
