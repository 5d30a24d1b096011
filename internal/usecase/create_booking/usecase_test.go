package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	binRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/bin"
	"github.com/vkrnv/SBR-OperationsService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	createFn func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	countFn  func(ctx context.Context, binNumber string) (int, error)

	createCalls int
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	return f.createFn(ctx, b)
}

func (f *fakeBookingRepo) CountActiveByBinNumber(ctx context.Context, binNumber string) (int, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx, binNumber)
}

type fakeBinRepo struct {
	getFn    func(ctx context.Context, binNumber string) (*domain.Bin, error)
	updateFn func(ctx context.Context, binNumber string, status domain.BinStatus) error

	updates []domain.BinStatus
}

func (f *fakeBinRepo) GetByNumber(ctx context.Context, binNumber string) (*domain.Bin, error) {
	return f.getFn(ctx, binNumber)
}

func (f *fakeBinRepo) UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error {
	f.updates = append(f.updates, status)
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, binNumber, status)
}

type fakeIssuer struct {
	issueFn func(ctx context.Context, booking *domain.Booking) (*domain.Invoice, error)

	issueCalls int
}

func (f *fakeIssuer) IssueForBooking(ctx context.Context, booking *domain.Booking) (*domain.Invoice, error) {
	f.issueCalls++
	if f.issueFn == nil {
		return &domain.Invoice{
			ID:            1,
			InvoiceNumber: domain.InvoiceNumberFor(booking.BookingNumber),
			CustomerName:  booking.CustomerName,
			Amount:        booking.TotalAmount,
			Status:        domain.InvoiceStatusDraft,
		}, nil
	}
	return f.issueFn(ctx, booking)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func passthroughCreate(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = 42
	return &created, nil
}

func validRequest() *Request {
	return &Request{
		CustomerName: "Acme Demolition",
		BinNumber:    ptr.Ptr("SB-001"),
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Location:     "12 Harbour St",
		Contact:      "0400 000 000",
		TotalAmount:  decimal.NewFromInt(350),
	}
}

func availableBin() *domain.Bin {
	return &domain.Bin{
		ID:        7,
		BinNumber: "SB-001",
		Size:      "6m3",
		Status:    domain.BinStatusAvailable,
	}
}

func TestExecute_ValidationFailure(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: passthroughCreate}
	bins := &fakeBinRepo{getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
		return availableBin(), nil
	}}
	issuer := &fakeIssuer{}

	uc := NewUseCase(bookings, bins, issuer, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.CustomerName = ""

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, bookings.createCalls)
	assert.Zero(t, issuer.issueCalls)
}

func TestExecute_EndDateBeforeStartDate(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: passthroughCreate}
	bins := &fakeBinRepo{getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
		return availableBin(), nil
	}}

	uc := NewUseCase(bookings, bins, &fakeIssuer{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownBin(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: passthroughCreate}
	bins := &fakeBinRepo{getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
		return nil, binRepo.ErrBinNotFound
	}}
	issuer := &fakeIssuer{}

	uc := NewUseCase(bookings, bins, issuer, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrBinNotFound)
	// Ни бронирования, ни счета после отказа ссылки на бин
	assert.Zero(t, bookings.createCalls)
	assert.Zero(t, issuer.issueCalls)
}

func TestExecute_BinHeldByActiveBooking(t *testing.T) {
	bookings := &fakeBookingRepo{
		createFn: passthroughCreate,
		countFn: func(ctx context.Context, binNumber string) (int, error) {
			return 1, nil
		},
	}
	bins := &fakeBinRepo{getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
		return availableBin(), nil
	}}
	issuer := &fakeIssuer{}

	uc := NewUseCase(bookings, bins, issuer, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrBinAlreadyBooked)
	assert.Zero(t, bookings.createCalls)
	assert.Zero(t, issuer.issueCalls)
	assert.Empty(t, bins.updates)
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: passthroughCreate}
	bins := &fakeBinRepo{getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
		return availableBin(), nil
	}}
	issuer := &fakeIssuer{}

	uc := NewUseCase(bookings, bins, issuer, fakeTxManager{}, nopLogger{})

	res, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, res.Booking)
	assert.Equal(t, domain.StatusPending, res.Booking.Status)
	assert.True(t, strings.HasPrefix(res.Booking.BookingNumber, domain.BookingNumberPrefix))
	require.NotNil(t, res.Booking.BinNumber)
	assert.Equal(t, "SB-001", *res.Booking.BinNumber)
	// Размер не передан в запросе и выводится из бина
	assert.Equal(t, "6m3", res.Booking.BinSize)

	// Каскад: бин помечен booked
	assert.True(t, res.BinCascade.Attempted)
	assert.NoError(t, res.BinCascade.Err)
	require.Len(t, bins.updates, 1)
	assert.Equal(t, domain.BinStatusBooked, bins.updates[0])

	// Счет выпущен ровно один раз и привязан к номеру бронирования
	assert.True(t, res.InvoiceIssue.Attempted)
	assert.NoError(t, res.InvoiceIssue.Err)
	assert.Equal(t, 1, issuer.issueCalls)
	require.NotNil(t, res.Invoice)
	assert.Equal(t, domain.InvoiceNumberFor(res.Booking.BookingNumber), res.Invoice.InvoiceNumber)
}

func TestExecute_WithoutBin(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: passthroughCreate}
	bins := &fakeBinRepo{getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
		t.Fatal("bin registry must not be queried without bin_number")
		return nil, nil
	}}
	issuer := &fakeIssuer{}

	uc := NewUseCase(bookings, bins, issuer, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.BinNumber = nil
	req.BinSize = "4m3"

	res, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, res.Booking.BinNumber)
	assert.Equal(t, "4m3", res.Booking.BinSize)

	// Каскада без бина нет, счет выпускается все равно
	assert.False(t, res.BinCascade.Attempted)
	assert.True(t, res.InvoiceIssue.Attempted)
	assert.Empty(t, bins.updates)
}

func TestExecute_CascadeFailureDoesNotFailBooking(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: passthroughCreate}
	cascadeErr := errors.New("registry unavailable")
	bins := &fakeBinRepo{
		getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
			return availableBin(), nil
		},
		updateFn: func(ctx context.Context, n string, s domain.BinStatus) error {
			return cascadeErr
		},
	}
	issuer := &fakeIssuer{}

	uc := NewUseCase(bookings, bins, issuer, fakeTxManager{}, nopLogger{})

	res, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, res.Booking)
	assert.True(t, res.BinCascade.Failed())
	assert.ErrorIs(t, res.BinCascade.Err, cascadeErr)
	// Счет выпускается независимо от исхода каскада
	assert.True(t, res.InvoiceIssue.Attempted)
	assert.NoError(t, res.InvoiceIssue.Err)
}

func TestExecute_InvoiceFailureDoesNotFailBooking(t *testing.T) {
	bookings := &fakeBookingRepo{createFn: passthroughCreate}
	bins := &fakeBinRepo{getFn: func(ctx context.Context, n string) (*domain.Bin, error) {
		return availableBin(), nil
	}}
	issueErr := errors.New("invoice store down")
	issuer := &fakeIssuer{issueFn: func(ctx context.Context, b *domain.Booking) (*domain.Invoice, error) {
		return nil, issueErr
	}}

	uc := NewUseCase(bookings, bins, issuer, fakeTxManager{}, nopLogger{})

	res, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, res.Booking)
	assert.Nil(t, res.Invoice)
	assert.True(t, res.InvoiceIssue.Failed())
	assert.ErrorIs(t, res.InvoiceIssue.Err, issueErr)
}
