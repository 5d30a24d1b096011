package list_bookings

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BookingLedger интерфейс реестра бронирований
type BookingLedger interface {
	Search(ctx context.Context, text, statusFilter string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
