package set_bin_status

import (
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// SetBinStatusRequest HTTP request model
type SetBinStatusRequest struct {
	Status string `json:"status"`
}

// BinResponse HTTP response model
type BinResponse struct {
	ID          int64   `json:"id"`
	BinNumber   string  `json:"bin_number"`
	Size        string  `json:"size"`
	Status      string  `json:"status"`
	Condition   string  `json:"condition"`
	Location    string  `json:"location"`
	LastService *string `json:"last_service,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// FromDomainBin конвертирует domain модель в DTO
func FromDomainBin(b *domain.Bin) *BinResponse {
	resp := &BinResponse{
		ID:        b.ID,
		BinNumber: b.BinNumber,
		Size:      b.Size,
		Status:    string(b.Status),
		Condition: string(b.Condition),
		Location:  b.Location,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}

	if b.LastService != nil {
		s := b.LastService.Format(domain.DateFormat)
		resp.LastService = &s
	}

	return resp
}
