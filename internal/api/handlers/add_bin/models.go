package add_bin

import (
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	"github.com/vkrnv/SBR-OperationsService/internal/service/bins"
)

// AddBinRequest HTTP request model
type AddBinRequest struct {
	BinNumber   string  `json:"bin_number"`
	Size        string  `json:"size"`
	Condition   string  `json:"condition,omitempty"`
	Location    string  `json:"location,omitempty"`
	LastService *string `json:"last_service,omitempty"` // "2006-01-02"
	Notes       *string `json:"notes,omitempty"`
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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddBinRequest) ToServiceRequest() (*bins.CreateBinRequest, error) {
	req := &bins.CreateBinRequest{
		BinNumber: r.BinNumber,
		Size:      r.Size,
		Condition: domain.BinCondition(r.Condition),
		Location:  r.Location,
		Notes:     r.Notes,
	}

	if r.LastService != nil && *r.LastService != "" {
		t, err := time.Parse(domain.DateFormat, *r.LastService)
		if err != nil {
			return nil, err
		}
		req.LastService = &t
	}

	return req, nil
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
