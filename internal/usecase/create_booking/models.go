package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName string          // Название клиента (обязательно)
	BinNumber    *string         // Номер назначаемого бина (опционально)
	BinSize      string          // Запрошенный размер бина
	StartDate    time.Time       // Дата доставки (обязательно)
	EndDate      time.Time       // Дата вывоза (обязательно)
	Location     string          // Адрес размещения
	Contact      string          // Контакт клиента
	TotalAmount  decimal.Decimal // Сумма для счета; usecase цену не считает
	Notes        *string         // Заметки (опционально)
}

// SideEffect результат каскадной записи, выполняемой после создания
// бронирования. Err заполняется при частичном отказе: бронирование
// создано, а побочная запись не прошла.
type SideEffect struct {
	Attempted bool
	Err       error
}

// Failed возвращает true, если побочная запись была предпринята и не прошла
func (e SideEffect) Failed() bool {
	return e.Attempted && e.Err != nil
}

// Response модель ответа: созданное бронирование плюс исходы двух
// побочных записей - каскада в реестр бинов и выпуска счета.
// Оба исхода видны вызывающему отдельно от основного результата.
type Response struct {
	Booking *domain.Booking
	Invoice *domain.Invoice

	BinCascade   SideEffect
	InvoiceIssue SideEffect
}
