package invoices

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	invoiceRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/invoice"
)

// Service эмитент счетов. Счет выпускается один раз при создании бронирования
// и дальше живет своей жизнью: изменения бронирования в счет не попадают,
// а статус счета никогда не читается обратно логикой бронирований.
type Service struct {
	invoiceRepo  InvoiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр эмитента счетов
func NewService(invoiceRepo InvoiceRepository, logger Logger) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// IssueForBooking выпускает draft-счет по созданному бронированию.
// Номер счета выводится из номера бронирования (BK-XXXX -> INV-XXXX),
// due date = дата выпуска + 30 дней, сумма приходит из бронирования -
// сервис цен не считает.
func (s *Service) IssueForBooking(ctx context.Context, booking *domain.Booking) (*domain.Invoice, error) {
	if booking == nil {
		return nil, fmt.Errorf("%w: booking is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()

	description := fmt.Sprintf("Skip bin rental - %s. Delivery: %s, Pickup: %s",
		booking.BinSize,
		booking.StartDate.Format(domain.DateFormat),
		booking.EndDate.Format(domain.DateFormat),
	)

	inv := &domain.Invoice{
		InvoiceNumber: domain.InvoiceNumberFor(booking.BookingNumber),
		CustomerName:  booking.CustomerName,
		IssueDate:     now,
		DueDate:       now.AddDate(0, 0, domain.InvoiceDueDays),
		Amount:        booking.TotalAmount,
		Status:        domain.InvoiceStatusDraft,
		Description:   description,
	}

	created, err := s.invoiceRepo.Create(ctx, inv)
	if err != nil {
		s.logger.Error("IssueForBooking: repository error for booking=%s: %v", booking.BookingNumber, err)
		return nil, fmt.Errorf("%w: IssueForBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("IssueForBooking: issued invoice number=%s amount=%s for booking=%s",
		created.InvoiceNumber, created.Amount, booking.BookingNumber)
	return created, nil
}

// CreateInvoiceRequest запрос на ручное создание счета
type CreateInvoiceRequest struct {
	InvoiceNumber string // Опционально: если пусто, номер генерируется
	CustomerName  string
	IssueDate     time.Time // Опционально: если нулевая, берется текущая дата
	DueDate       time.Time // Опционально: если нулевая, issue date + 30 дней
	Amount        decimal.Decimal
	Status        domain.InvoiceStatus // Опционально: по умолчанию draft
	Description   string
}

// Create создает счет вручную (не привязанный к бронированию)
func (s *Service) Create(ctx context.Context, req *CreateInvoiceRequest) (*domain.Invoice, error) {
	if req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = domain.InvoiceStatusDraft
	}
	if !domain.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = s.timeProvider.Now()
	}

	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = issueDate.AddDate(0, 0, domain.InvoiceDueDays)
	}

	number := req.InvoiceNumber
	if number == "" {
		number = newInvoiceNumber()
	}

	inv := &domain.Invoice{
		InvoiceNumber: number,
		CustomerName:  req.CustomerName,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Amount:        req.Amount,
		Status:        status,
		Description:   req.Description,
	}

	created, err := s.invoiceRepo.Create(ctx, inv)
	if err != nil {
		s.logger.Error("Create: repository error for invoice number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created invoice number=%s amount=%s", created.InvoiceNumber, created.Amount)
	return created, nil
}

// SetStatus безусловно перезаписывает статус счета - тот же контракт
// "тупого" хранилища статуса, что и у реестра бинов
func (s *Service) SetStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	s.logger.Info("SetStatus: invoice id=%d -> status=%s", id, status)

	if !domain.ValidInvoiceStatus(status) {
		s.logger.Warn("SetStatus: invalid status=%s for invoice id=%d", status, id)
		return ErrInvalidStatus
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			s.logger.Warn("SetStatus: invoice id=%d not found", id)
			return ErrInvoiceNotFound
		}
		s.logger.Error("SetStatus: repository error for invoice id=%d: %v", id, err)
		return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// List получает счета с опциональным текстовым поиском
func (s *Service) List(ctx context.Context, text *string) ([]*domain.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx, text)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return invoices, nil
}

// newInvoiceNumber генерирует номер для счета, создаваемого вручную
func newInvoiceNumber() string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return domain.InvoiceNumberPrefix + ref
}
