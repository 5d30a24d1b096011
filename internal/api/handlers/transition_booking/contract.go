package transition_booking

import (
	"context"

	transitionBooking "github.com/vkrnv/SBR-OperationsService/internal/usecase/transition_booking"
)

// TransitionBookingUseCase интерфейс usecase смены статуса бронирования
type TransitionBookingUseCase interface {
	Execute(ctx context.Context, req *transitionBooking.Request) (*transitionBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
