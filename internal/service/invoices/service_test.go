package invoices

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeInvoiceRepo struct {
	createFn func(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	updateFn func(ctx context.Context, id int64, status domain.InvoiceStatus) error
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	if f.createFn == nil {
		created := *inv
		created.ID = 1
		return &created, nil
	}
	return f.createFn(ctx, inv)
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	return f.updateFn(ctx, id, status)
}

func (f *fakeInvoiceRepo) List(ctx context.Context, text *string) ([]*domain.Invoice, error) {
	return nil, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(repo InvoiceRepository, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: now}
	return svc
}

func TestIssueForBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeInvoiceRepo{}, now)

	booking := &domain.Booking{
		BookingNumber: "BK-A1B2C3",
		CustomerName:  "Acme Demolition",
		BinSize:       "6m3",
		StartDate:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalAmount:   decimal.NewFromInt(350),
	}

	inv, err := svc.IssueForBooking(context.Background(), booking)

	require.NoError(t, err)
	// Номер счета выводится из номера бронирования
	assert.Equal(t, "INV-A1B2C3", inv.InvoiceNumber)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, "Acme Demolition", inv.CustomerName)
	assert.True(t, inv.Amount.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, now, inv.IssueDate)
	assert.Equal(t, now.AddDate(0, 0, domain.InvoiceDueDays), inv.DueDate)
	assert.Equal(t, "Skip bin rental - 6m3. Delivery: 2026-03-05, Pickup: 2026-03-12", inv.Description)
}

func TestIssueForBooking_NilBooking(t *testing.T) {
	svc := newTestService(&fakeInvoiceRepo{}, time.Now())

	_, err := svc.IssueForBooking(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeInvoiceRepo{}, now)

	inv, err := svc.Create(context.Background(), &CreateInvoiceRequest{
		CustomerName: "Acme Demolition",
		Amount:       decimal.NewFromInt(120),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, domain.InvoiceNumberPrefix))
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, now, inv.IssueDate)
	assert.Equal(t, now.AddDate(0, 0, domain.InvoiceDueDays), inv.DueDate)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(&fakeInvoiceRepo{}, time.Now())

	_, err := svc.Create(context.Background(), &CreateInvoiceRequest{
		Amount: decimal.NewFromInt(120),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &CreateInvoiceRequest{
		CustomerName: "Acme Demolition",
		Amount:       decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &CreateInvoiceRequest{
		CustomerName: "Acme Demolition",
		Amount:       decimal.NewFromInt(120),
		Status:       "void",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeInvoiceRepo{updateFn: func(ctx context.Context, id int64, s domain.InvoiceStatus) error {
		t.Fatal("repository must not be touched for unknown status")
		return nil
	}}, time.Now())

	err := svc.SetStatus(context.Background(), 1, "void")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatus_Overwrites(t *testing.T) {
	var got domain.InvoiceStatus
	svc := newTestService(&fakeInvoiceRepo{updateFn: func(ctx context.Context, id int64, s domain.InvoiceStatus) error {
		got = s
		return nil
	}}, time.Now())

	// Статус перезаписывается безусловно, откат paid -> draft легален
	err := svc.SetStatus(context.Background(), 1, domain.InvoiceStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusDraft, got)
}
