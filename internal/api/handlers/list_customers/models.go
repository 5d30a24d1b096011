package list_customers

import (
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// CustomerResponse HTTP response model
type CustomerResponse struct {
	ID            int64  `json:"id"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zip_code,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ListCustomersResponse HTTP response model
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomers конвертирует domain модели в DTO
func FromDomainCustomers(items []*domain.Customer) *ListCustomersResponse {
	resp := &ListCustomersResponse{Customers: make([]CustomerResponse, 0, len(items))}

	for _, c := range items {
		resp.Customers = append(resp.Customers, CustomerResponse{
			ID:            c.ID,
			CompanyName:   c.CompanyName,
			ContactPerson: c.ContactPerson,
			Email:         c.Email,
			Phone:         c.Phone,
			Address:       c.Address,
			City:          c.City,
			State:         c.State,
			ZipCode:       c.ZipCode,
			CreatedAt:     c.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
