package create_invoice

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	"github.com/vkrnv/SBR-OperationsService/internal/service/invoices"
)

// InvoiceIssuer интерфейс эмитента счетов
type InvoiceIssuer interface {
	Create(ctx context.Context, req *invoices.CreateInvoiceRequest) (*domain.Invoice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
