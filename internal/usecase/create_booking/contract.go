package create_booking

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	CountActiveByBinNumber(ctx context.Context, binNumber string) (int, error)
}

// BinRepository интерфейс репозитория бинов.
// GetByNumber используется для валидации ссылки на бин при записи -
// строка bin_number никогда не принимается на веру.
type BinRepository interface {
	GetByNumber(ctx context.Context, binNumber string) (*domain.Bin, error)
	UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error
}

// InvoiceIssuer интерфейс эмитента счетов.
// Вызывается ровно один раз на успешное создание бронирования;
// направление зависимости одностороннее, счет обратно не читается.
type InvoiceIssuer interface {
	IssueForBooking(ctx context.Context, booking *domain.Booking) (*domain.Invoice, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
