package bookings

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Search(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// BinRegistry интерфейс реестра бинов для возврата бина в пул при удалении
type BinRegistry interface {
	UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
