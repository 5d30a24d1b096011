package list_invoices

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// InvoiceIssuer интерфейс эмитента счетов
type InvoiceIssuer interface {
	List(ctx context.Context, text *string) ([]*domain.Invoice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
