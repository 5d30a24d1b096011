package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BinCounter агрегатные запросы по бинам
type BinCounter interface {
	CountByStatus(ctx context.Context) (map[domain.BinStatus]int, error)
}

// BookingCounter агрегатные запросы по бронированиям
type BookingCounter interface {
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
}

// InvoiceAggregator агрегатные запросы по счетам
type InvoiceAggregator interface {
	SumAmounts(ctx context.Context) (decimal.Decimal, error)
	CountPending(ctx context.Context) (int, error)
}

// CustomerCounter агрегатные запросы по клиентам
type CustomerCounter interface {
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
