package set_bin_status

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BinRegistry интерфейс реестра бинов
type BinRegistry interface {
	SetStatus(ctx context.Context, binNumber string, status domain.BinStatus) (*domain.Bin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
