package add_bin

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	"github.com/vkrnv/SBR-OperationsService/internal/service/bins"
)

// BinRegistry интерфейс реестра бинов
type BinRegistry interface {
	Create(ctx context.Context, req *bins.CreateBinRequest) (*domain.Bin, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
