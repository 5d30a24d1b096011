package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	bookingRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/booking"
)

// UseCase use case смены статуса бронирования.
//
// Проверяет достижимость целевого статуса по таблице переходов, меняет
// статус бронирования через compare-and-swap и зеркалит новый статус в
// реестр бинов. Пара записей (бронирование, бин) не атомарна: при отказе
// каскада статус бронирования уже зафиксирован, отказ возвращается в
// Response.Cascade.
type UseCase struct {
	bookingRepo BookingRepository
	binRegistry BinRegistry
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, binRegistry BinRegistry, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		binRegistry: binRegistry,
		logger:      logger,
	}
}

// Execute выполняет use case смены статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking id=%d -> status=%s", req.BookingID, req.Target)

	// 1. Целевой статус должен существовать
	if !domain.ValidBookingStatus(req.Target) {
		uc.logger.Warn("TransitionBooking: unknown target status=%s", req.Target)
		return nil, ErrInvalidStatus
	}

	// 2. Читаем текущее состояние
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("TransitionBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("TransitionBooking: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем достижимость перехода. Проверка локальная и выполняется
	// до любой записи.
	if !domain.CanTransitionTo(booking.Status, req.Target) {
		uc.logger.Warn("TransitionBooking: transition %s -> %s not permitted for booking id=%d",
			booking.Status, req.Target, req.BookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, req.Target)
	}

	// 4. Смена статуса через compare-and-swap по прочитанному статусу
	updated, err := uc.bookingRepo.UpdateStatus(ctx, req.BookingID, booking.Status, req.Target)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStatusConflict):
			uc.logger.Warn("TransitionBooking: concurrent update of booking id=%d", req.BookingID)
			return nil, ErrConcurrentUpdate
		default:
			uc.logger.Error("TransitionBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("TransitionBooking: booking id=%d is now %s", updated.ID, updated.Status)

	resp := &Response{Booking: updated}

	// 5. Каскад: зеркалим статус в реестр бинов. Физический статус бина -
	// производное отражение коммерческого статуса бронирования, поэтому
	// каждая смена с назначенным бином толкает запись в реестр. Отказ
	// каскада не откатывает уже зафиксированный статус бронирования.
	if updated.HasBin() {
		if binStatus, ok := domain.BinCascadeStatus(updated.Status); ok {
			resp.Cascade = CascadeResult{
				Attempted: true,
				BinNumber: *updated.BinNumber,
				BinStatus: binStatus,
			}
			if err := uc.binRegistry.UpdateStatus(ctx, *updated.BinNumber, binStatus); err != nil {
				uc.logger.Error("TransitionBooking: bin cascade failed for bin=%s -> %s: %v",
					*updated.BinNumber, binStatus, err)
				resp.Cascade.Err = err
			} else {
				uc.logger.Info("TransitionBooking: bin number=%s mirrored to %s", *updated.BinNumber, binStatus)
			}
		}
	}

	return resp, nil
}
