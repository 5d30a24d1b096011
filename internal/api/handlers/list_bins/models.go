package list_bins

import (
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

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

// ListBinsResponse HTTP response model
type ListBinsResponse struct {
	Bins []BinResponse `json:"bins"`
}

// FromDomainBins конвертирует domain модели в DTO
func FromDomainBins(items []*domain.Bin) *ListBinsResponse {
	resp := &ListBinsResponse{Bins: make([]BinResponse, 0, len(items))}

	for _, b := range items {
		dto := BinResponse{
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
			dto.LastService = &s
		}
		resp.Bins = append(resp.Bins, dto)
	}

	return resp
}
