package add_customer

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// CustomerDirectory интерфейс справочника клиентов
type CustomerDirectory interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
