package list_invoices

import (
	"time"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

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

// ListInvoicesResponse HTTP response model
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// FromDomainInvoices конвертирует domain модели в DTO
func FromDomainInvoices(items []*domain.Invoice) *ListInvoicesResponse {
	resp := &ListInvoicesResponse{Invoices: make([]InvoiceResponse, 0, len(items))}

	for _, inv := range items {
		resp.Invoices = append(resp.Invoices, InvoiceResponse{
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
		})
	}

	return resp
}
