package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBinCounter struct {
	counts map[domain.BinStatus]int
	err    error
}

func (f fakeBinCounter) CountByStatus(ctx context.Context) (map[domain.BinStatus]int, error) {
	return f.counts, f.err
}

type fakeBookingCounter struct {
	counts map[domain.BookingStatus]int
}

func (f fakeBookingCounter) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	return f.counts, nil
}

type fakeInvoiceAggregator struct {
	sum     decimal.Decimal
	pending int
}

func (f fakeInvoiceAggregator) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	return f.sum, nil
}

func (f fakeInvoiceAggregator) CountPending(ctx context.Context) (int, error) {
	return f.pending, nil
}

type fakeCustomerCounter struct {
	count int
}

func (f fakeCustomerCounter) Count(ctx context.Context) (int, error) {
	return f.count, nil
}

func TestDashboardStats(t *testing.T) {
	svc := NewService(
		fakeBinCounter{counts: map[domain.BinStatus]int{
			domain.BinStatusAvailable: 5,
			domain.BinStatusBooked:    2,
			domain.BinStatusDelivered: 1,
		}},
		fakeBookingCounter{counts: map[domain.BookingStatus]int{
			domain.StatusPending:   3,
			domain.StatusConfirmed: 2,
			domain.StatusCollected: 4,
		}},
		fakeInvoiceAggregator{sum: decimal.NewFromInt(1250), pending: 6},
		fakeCustomerCounter{count: 11},
		nopLogger{},
	)

	stats, err := svc.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8, stats.TotalBins)
	assert.Equal(t, 9, stats.TotalBookings)
	assert.Equal(t, 2, stats.BinsByStatus[domain.BinStatusBooked])
	assert.Equal(t, 3, stats.BookingsByStatus[domain.StatusPending])
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(1250)))
	assert.Equal(t, 6, stats.PendingInvoices)
	assert.Equal(t, 11, stats.TotalCustomers)
}

func TestDashboardStats_EmptyStores(t *testing.T) {
	svc := NewService(
		fakeBinCounter{counts: map[domain.BinStatus]int{}},
		fakeBookingCounter{counts: map[domain.BookingStatus]int{}},
		fakeInvoiceAggregator{sum: decimal.Zero},
		fakeCustomerCounter{},
		nopLogger{},
	)

	stats, err := svc.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.TotalBins)
	assert.Zero(t, stats.TotalBookings)
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestDashboardStats_StoreFailure(t *testing.T) {
	svc := NewService(
		fakeBinCounter{err: errors.New("connection refused")},
		fakeBookingCounter{},
		fakeInvoiceAggregator{},
		fakeCustomerCounter{},
		nopLogger{},
	)

	_, err := svc.DashboardStats(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}
