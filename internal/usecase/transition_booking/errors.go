package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrInvalidStatus возвращается, когда целевой статус не существует
	ErrInvalidStatus = errors.New("transition_booking: invalid booking status")

	// ErrInvalidTransition возвращается, когда переход недостижим из
	// текущего статуса по таблице переходов
	ErrInvalidTransition = errors.New("transition_booking: transition not permitted from current status")

	// ErrConcurrentUpdate возвращается, когда статус бронирования изменен
	// конкурентной операцией между чтением и записью
	ErrConcurrentUpdate = errors.New("transition_booking: booking was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_booking: internal error")
)
