package set_invoice_status

// SetInvoiceStatusRequest HTTP request model
type SetInvoiceStatusRequest struct {
	Status string `json:"status"`
}
