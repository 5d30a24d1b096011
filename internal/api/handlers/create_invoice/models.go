package create_invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	"github.com/vkrnv/SBR-OperationsService/internal/service/invoices"
)

// CreateInvoiceRequest HTTP request model
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	CustomerName  string          `json:"customer_name"`
	IssueDate     string          `json:"issue_date,omitempty"` // "2006-01-02"
	DueDate       string          `json:"due_date,omitempty"`   // "2006-01-02"
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// InvoiceResponse HTTP response model
type InvoiceResponse struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	CustomerName  string `json:"customer_name"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	IssueDate     string `json:"issue_date"`
	DueDate       string `json:"due_date"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateInvoiceRequest) ToServiceRequest() (*invoices.CreateInvoiceRequest, error) {
	req := &invoices.CreateInvoiceRequest{
		InvoiceNumber: r.InvoiceNumber,
		CustomerName:  r.CustomerName,
		Amount:        r.Amount,
		Status:        domain.InvoiceStatus(r.Status),
		Description:   r.Description,
	}

	if r.IssueDate != "" {
		t, err := time.Parse(domain.DateFormat, r.IssueDate)
		if err != nil {
			return nil, err
		}
		req.IssueDate = t
	}
	if r.DueDate != "" {
		t, err := time.Parse(domain.DateFormat, r.DueDate)
		if err != nil {
			return nil, err
		}
		req.DueDate = t
	}

	return req, nil
}

// FromDomainInvoice конвертирует domain модель в DTO
func FromDomainInvoice(inv *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		Amount:        inv.Amount.String(),
		Status:        string(inv.Status),
		IssueDate:     inv.IssueDate.Format(domain.DateFormat),
		DueDate:       inv.DueDate.Format(domain.DateFormat),
		Description:   inv.Description,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.Format(time.RFC3339),
	}
}
