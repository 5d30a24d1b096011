package get_booking

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BookingLedger интерфейс реестра бронирований
type BookingLedger interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
