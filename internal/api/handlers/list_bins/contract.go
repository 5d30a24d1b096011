package list_bins

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BinRegistry интерфейс реестра бинов
type BinRegistry interface {
	List(ctx context.Context, filter domain.BinFilter) ([]*domain.Bin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
