package transition_booking

import "github.com/vkrnv/SBR-OperationsService/internal/domain"

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID int64
	Target    domain.BookingStatus
}

// CascadeResult исход каскадной записи в реестр бинов.
// Каскад может отказать после успешной смены статуса бронирования;
// такой частичный отказ виден вызывающему отдельно от основного результата,
// компенсация - оператор повторяет обновление бина вручную.
type CascadeResult struct {
	Attempted bool
	BinNumber string
	BinStatus domain.BinStatus
	Err       error
}

// Failed возвращает true, если каскад был предпринят и не прошел
func (c CascadeResult) Failed() bool {
	return c.Attempted && c.Err != nil
}

// Response модель ответа: бронирование после смены статуса и исход каскада
type Response struct {
	Booking *domain.Booking
	Cascade CascadeResult
}
