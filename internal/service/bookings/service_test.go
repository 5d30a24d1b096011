package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	binRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/bin"
	bookingRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/booking"
	"github.com/vkrnv/SBR-OperationsService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	getFn    func(ctx context.Context, id int64) (*domain.Booking, error)
	searchFn func(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	deleteFn func(ctx context.Context, id int64) error

	deleteCalls int
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return f.getFn(ctx, id)
}

func (f *fakeBookingRepo) Search(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	return f.searchFn(ctx, filter)
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakeBinRegistry struct {
	updateFn func(ctx context.Context, binNumber string, status domain.BinStatus) error

	updates []string
}

func (f *fakeBinRegistry) UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error {
	f.updates = append(f.updates, binNumber)
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, binNumber, status)
}

func TestDelete_ReleasesAssignedBin(t *testing.T) {
	bookings := &fakeBookingRepo{getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return &domain.Booking{ID: id, BinNumber: ptr.Ptr("SB-001"), Status: domain.StatusConfirmed}, nil
	}}
	registry := &fakeBinRegistry{updateFn: func(ctx context.Context, n string, s domain.BinStatus) error {
		assert.Equal(t, domain.BinStatusAvailable, s)
		return nil
	}}

	svc := NewService(bookings, registry, nopLogger{})

	err := svc.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"SB-001"}, registry.updates)
	assert.Equal(t, 1, bookings.deleteCalls)
}

func TestDelete_MissingBinIsTolerated(t *testing.T) {
	bookings := &fakeBookingRepo{getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return &domain.Booking{ID: id, BinNumber: ptr.Ptr("SB-001")}, nil
	}}
	registry := &fakeBinRegistry{updateFn: func(ctx context.Context, n string, s domain.BinStatus) error {
		return binRepo.ErrBinNotFound
	}}

	svc := NewService(bookings, registry, nopLogger{})

	// Бин удален из инвентаря - бронирование все равно удаляется
	err := svc.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 1, bookings.deleteCalls)
}

func TestDelete_BinReleaseFailureKeepsBooking(t *testing.T) {
	bookings := &fakeBookingRepo{getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return &domain.Booking{ID: id, BinNumber: ptr.Ptr("SB-001")}, nil
	}}
	registry := &fakeBinRegistry{updateFn: func(ctx context.Context, n string, s domain.BinStatus) error {
		return errors.New("registry unavailable")
	}}

	svc := NewService(bookings, registry, nopLogger{})

	err := svc.Delete(context.Background(), 7)

	require.ErrorIs(t, err, ErrBinRelease)
	assert.Zero(t, bookings.deleteCalls)
}

func TestDelete_WithoutBin(t *testing.T) {
	bookings := &fakeBookingRepo{getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return &domain.Booking{ID: id}, nil
	}}
	registry := &fakeBinRegistry{}

	svc := NewService(bookings, registry, nopLogger{})

	err := svc.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.Empty(t, registry.updates)
	assert.Equal(t, 1, bookings.deleteCalls)
}

func TestDelete_NotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return nil, bookingRepo.ErrBookingNotFound
	}}

	svc := NewService(bookings, &fakeBinRegistry{}, nopLogger{})

	err := svc.Delete(context.Background(), 404)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSearch_StatusFilter(t *testing.T) {
	var captured domain.BookingFilter
	bookings := &fakeBookingRepo{searchFn: func(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
		captured = filter
		return nil, nil
	}}

	svc := NewService(bookings, &fakeBinRegistry{}, nopLogger{})

	_, err := svc.Search(context.Background(), "acme", "confirmed")
	require.NoError(t, err)
	require.NotNil(t, captured.Text)
	assert.Equal(t, "acme", *captured.Text)
	require.NotNil(t, captured.Status)
	assert.Equal(t, domain.StatusConfirmed, *captured.Status)

	// "All" снимает фильтр по статусу
	_, err = svc.Search(context.Background(), "", domain.StatusFilterAll)
	require.NoError(t, err)
	assert.Nil(t, captured.Status)
	assert.Nil(t, captured.Text)
}

func TestSearch_UnknownStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeBinRegistry{}, nopLogger{})

	_, err := svc.Search(context.Background(), "", "archived")
	require.ErrorIs(t, err, ErrInvalidInput)
}
