package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	binRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/bin"
	bookingRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/booking"
)

// Service сервис чтения и удаления бронирований.
// Создание и смена статуса вынесены в отдельные use cases, потому что
// тянут за собой каскадные записи в реестр бинов и выпуск счета.
type Service struct {
	bookingRepo BookingRepository
	binRegistry BinRegistry
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, binRegistry BinRegistry, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		binRegistry: binRegistry,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// Search ищет бронирования по тексту и статусу.
// Фильтр статуса "All" (или пустой) совпадает с любым статусом.
func (s *Service) Search(ctx context.Context, text string, statusFilter string) ([]*domain.Booking, error) {
	filter := domain.BookingFilter{}
	if text != "" {
		filter.Text = &text
	}
	if statusFilter != "" && statusFilter != domain.StatusFilterAll {
		status := domain.BookingStatus(statusFilter)
		if !domain.ValidBookingStatus(status) {
			s.logger.Warn("Search: invalid status filter=%s", statusFilter)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, statusFilter)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// Delete освобождает назначенный бин и безвозвратно удаляет бронирование.
// Если бин вернуть не удалось, бронирование остается на месте и оператор
// видит ошибку - лучше лишняя запись, чем бин, навсегда зависший в booked.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if booking.HasBin() {
		err := s.binRegistry.UpdateStatus(ctx, *booking.BinNumber, domain.BinStatusAvailable)
		switch {
		case err == nil:
			s.logger.Info("Delete: released bin number=%s to available", *booking.BinNumber)
		case errors.Is(err, binRepo.ErrBinNotFound):
			// Бин мог быть удален из инвентаря - удалению бронирования это не мешает
			s.logger.Warn("Delete: assigned bin number=%s no longer exists", *booking.BinNumber)
		default:
			s.logger.Error("Delete: failed to release bin number=%s: %v", *booking.BinNumber, err)
			return fmt.Errorf("%w: %v", ErrBinRelease, err)
		}
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
