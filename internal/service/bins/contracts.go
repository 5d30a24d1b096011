package bins

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BinRepository интерфейс репозитория бинов
type BinRepository interface {
	Create(ctx context.Context, b *domain.Bin) (*domain.Bin, error)
	GetByNumber(ctx context.Context, binNumber string) (*domain.Bin, error)
	UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error
	List(ctx context.Context, filter domain.BinFilter) ([]*domain.Bin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
