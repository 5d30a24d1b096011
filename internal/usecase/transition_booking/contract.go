package transition_booking

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований.
// UpdateStatus - compare-and-swap: запись меняется только если её текущий
// статус равен прочитанному ранее, иначе конкурентная гонка становится
// видимой ошибкой, а не молчаливым last-write-wins.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (*domain.Booking, error)
}

// BinRegistry интерфейс реестра бинов для каскадной записи статуса
type BinRegistry interface {
	UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
