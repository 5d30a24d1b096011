package transition_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
	bookingRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/booking"
	"github.com/vkrnv/SBR-OperationsService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	getFn    func(ctx context.Context, id int64) (*domain.Booking, error)
	updateFn func(ctx context.Context, id int64, expected, next domain.BookingStatus) (*domain.Booking, error)

	updateCalls int
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return f.getFn(ctx, id)
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (*domain.Booking, error) {
	f.updateCalls++
	return f.updateFn(ctx, id, expected, next)
}

type fakeBinRegistry struct {
	updateFn func(ctx context.Context, binNumber string, status domain.BinStatus) error

	updates []domain.BinStatus
}

func (f *fakeBinRegistry) UpdateStatus(ctx context.Context, binNumber string, status domain.BinStatus) error {
	f.updates = append(f.updates, status)
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, binNumber, status)
}

func storedBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            7,
		BookingNumber: "BK-TEST01",
		CustomerName:  "Acme Demolition",
		BinNumber:     ptr.Ptr("SB-001"),
		Status:        status,
	}
}

func casUpdate(ctx context.Context, id int64, expected, next domain.BookingStatus) (*domain.Booking, error) {
	b := storedBooking(next)
	return b, nil
}

func TestExecute_UnknownStatus(t *testing.T) {
	bookings := &fakeBookingRepo{getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		t.Fatal("storage must not be touched for unknown status")
		return nil, nil
	}}

	uc := NewUseCase(bookings, &fakeBinRegistry{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: "archived"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return nil, bookingRepo.ErrBookingNotFound
	}}

	uc := NewUseCase(bookings, &fakeBinRegistry{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: domain.StatusConfirmed})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CollectedIsTerminal(t *testing.T) {
	bookings := &fakeBookingRepo{getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
		return storedBooking(domain.StatusCollected), nil
	}}
	registry := &fakeBinRegistry{}

	uc := NewUseCase(bookings, registry, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: domain.StatusCancelled})

	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, bookings.updateCalls)
	assert.Empty(t, registry.updates)
}

func TestExecute_PendingStraightToCollected(t *testing.T) {
	bookings := &fakeBookingRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return storedBooking(domain.StatusPending), nil
		},
		updateFn: casUpdate,
	}
	registry := &fakeBinRegistry{}

	uc := NewUseCase(bookings, registry, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: domain.StatusCollected})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCollected, res.Booking.Status)
	// Бин возвращается в пул
	require.Len(t, registry.updates, 1)
	assert.Equal(t, domain.BinStatusAvailable, registry.updates[0])
	assert.True(t, res.Cascade.Attempted)
	assert.NoError(t, res.Cascade.Err)
}

func TestExecute_ConfirmMirrorsBinToBooked(t *testing.T) {
	bookings := &fakeBookingRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return storedBooking(domain.StatusPending), nil
		},
		updateFn: casUpdate,
	}
	registry := &fakeBinRegistry{}

	uc := NewUseCase(bookings, registry, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: domain.StatusConfirmed})

	require.NoError(t, err)
	require.Len(t, registry.updates, 1)
	assert.Equal(t, domain.BinStatusBooked, registry.updates[0])
	assert.Equal(t, "SB-001", res.Cascade.BinNumber)
	assert.Equal(t, domain.BinStatusBooked, res.Cascade.BinStatus)
}

func TestExecute_DeliveredMirrorsBinToDelivered(t *testing.T) {
	bookings := &fakeBookingRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return storedBooking(domain.StatusConfirmed), nil
		},
		updateFn: casUpdate,
	}
	registry := &fakeBinRegistry{}

	uc := NewUseCase(bookings, registry, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: domain.StatusDelivered})

	require.NoError(t, err)
	require.Len(t, registry.updates, 1)
	assert.Equal(t, domain.BinStatusDelivered, registry.updates[0])
}

func TestExecute_NoCascadeWithoutBin(t *testing.T) {
	bookings := &fakeBookingRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			b := storedBooking(domain.StatusPending)
			b.BinNumber = nil
			return b, nil
		},
		updateFn: func(ctx context.Context, id int64, expected, next domain.BookingStatus) (*domain.Booking, error) {
			b := storedBooking(next)
			b.BinNumber = nil
			return b, nil
		},
	}
	registry := &fakeBinRegistry{}

	uc := NewUseCase(bookings, registry, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: domain.StatusConfirmed})

	require.NoError(t, err)
	assert.False(t, res.Cascade.Attempted)
	assert.Empty(t, registry.updates)
}

func TestExecute_ConcurrentUpdate(t *testing.T) {
	bookings := &fakeBookingRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return storedBooking(domain.StatusPending), nil
		},
		updateFn: func(ctx context.Context, id int64, expected, next domain.BookingStatus) (*domain.Booking, error) {
			return nil, bookingRepo.ErrStatusConflict
		},
	}
	registry := &fakeBinRegistry{}

	uc := NewUseCase(bookings, registry, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: domain.StatusConfirmed})

	require.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.Empty(t, registry.updates)
}

func TestExecute_CascadeFailureReported(t *testing.T) {
	bookings := &fakeBookingRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return storedBooking(domain.StatusDelivered), nil
		},
		updateFn: casUpdate,
	}
	cascadeErr := errors.New("registry unavailable")
	registry := &fakeBinRegistry{updateFn: func(ctx context.Context, n string, s domain.BinStatus) error {
		return cascadeErr
	}}

	uc := NewUseCase(bookings, registry, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{BookingID: 7, Target: domain.StatusCollected})

	// Статус бронирования уже зафиксирован, отказ каскада не становится ошибкой вызова
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCollected, res.Booking.Status)
	assert.True(t, res.Cascade.Failed())
	assert.ErrorIs(t, res.Cascade.Err, cascadeErr)
}
