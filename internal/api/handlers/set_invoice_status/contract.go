package set_invoice_status

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// InvoiceIssuer интерфейс эмитента счетов
type InvoiceIssuer interface {
	SetStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
