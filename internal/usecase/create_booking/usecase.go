package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	binRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/bin"
)

// UseCase use case создания бронирования.
//
// Последовательность: валидация -> разрешение bin_number через реестр ->
// вставка бронирования (с проверкой занятости бина в сериализуемой
// транзакции) -> каскад статуса бина -> выпуск счета.
//
// Каскад и счет - записи в независимые хранилища после фиксации
// бронирования. Атомарности между ними нет намеренно: при частичном
// отказе бронирование остается, а исход каждой побочной записи
// возвращается вызывающему отдельно.
type UseCase struct {
	bookingRepo   BookingRepository
	binRepo       BinRepository
	invoiceIssuer InvoiceIssuer
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	binRepo BinRepository,
	invoiceIssuer InvoiceIssuer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		binRepo:       binRepo,
		invoiceIssuer: invoiceIssuer,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, bin=%v, dates=%s..%s",
		req.CustomerName, req.BinNumber,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем bin_number через реестр - строку на веру не принимаем
	var bin *domain.Bin
	if req.BinNumber != nil && *req.BinNumber != "" {
		found, err := uc.binRepo.GetByNumber(ctx, *req.BinNumber)
		if err != nil {
			if errors.Is(err, binRepo.ErrBinNotFound) {
				uc.logger.Warn("CreateBooking: bin number=%s not found", *req.BinNumber)
				return nil, ErrBinNotFound
			}
			uc.logger.Error("CreateBooking: failed to resolve bin number=%s: %v", *req.BinNumber, err)
			return nil, fmt.Errorf("%w: failed to resolve bin: %v", ErrInternal, err)
		}
		bin = found
	}

	binSize := req.BinSize
	if binSize == "" && bin != nil {
		binSize = bin.Size
	}

	booking := &domain.Booking{
		BookingNumber: newBookingNumber(),
		CustomerName:  req.CustomerName,
		BinSize:       binSize,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        domain.StatusPending,
		Location:      req.Location,
		Contact:       req.Contact,
		TotalAmount:   req.TotalAmount,
		Notes:         req.Notes,
	}
	if bin != nil {
		booking.BinNumber = &bin.BinNumber
	}

	// 3. Вставка бронирования. Если бин назначен, проверка занятости и
	// вставка идут в одной сериализуемой транзакции, чтобы два конкурентных
	// создания не удержали один бин.
	var created *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if bin != nil {
			active, err := uc.bookingRepo.CountActiveByBinNumber(txCtx, bin.BinNumber)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to count active bookings for bin=%s: %v", bin.BinNumber, err)
				return fmt.Errorf("%w: failed to count active bookings: %v", ErrInternal, err)
			}
			if active > 0 {
				uc.logger.Warn("CreateBooking: bin number=%s is held by %d active booking(s)", bin.BinNumber, active)
				return ErrBinAlreadyBooked
			}
		}

		b, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d number=%s", created.ID, created.BookingNumber)

	resp := &Response{Booking: created}

	// 4. Каскад в реестр бинов: назначенный бин становится booked.
	// Отказ каскада не откатывает бронирование - исход возвращается отдельно.
	if created.HasBin() {
		resp.BinCascade.Attempted = true
		if err := uc.binRepo.UpdateStatus(ctx, *created.BinNumber, domain.BinStatusBooked); err != nil {
			uc.logger.Error("CreateBooking: bin cascade failed for bin=%s: %v", *created.BinNumber, err)
			resp.BinCascade.Err = err
		} else {
			uc.logger.Info("CreateBooking: bin number=%s marked booked", *created.BinNumber)
		}
	}

	// 5. Выпуск draft-счета - ровно один раз на успешное создание
	resp.InvoiceIssue.Attempted = true
	inv, err := uc.invoiceIssuer.IssueForBooking(ctx, created)
	if err != nil {
		uc.logger.Error("CreateBooking: invoice issue failed for booking=%s: %v", created.BookingNumber, err)
		resp.InvoiceIssue.Err = err
	} else {
		resp.Invoice = inv
	}

	return resp, nil
}

// newBookingNumber генерирует человекочитаемый номер бронирования.
// Номер служит бизнес-ссылкой для счета (BK-XXXXXX -> INV-XXXXXX).
func newBookingNumber() string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return domain.BookingNumberPrefix + ref
}
