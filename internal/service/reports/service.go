package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vkrnv/SBR-OperationsService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("reports: internal error")

// DashboardStats агрегаты для дашборда. Пересчитываются при каждом вызове
// по текущему содержимому хранилищ - никакого кеширования и накопленного
// состояния между вызовами.
type DashboardStats struct {
	TotalBins        int
	BinsByStatus     map[domain.BinStatus]int
	TotalBookings    int
	BookingsByStatus map[domain.BookingStatus]int
	TotalRevenue     decimal.Decimal
	PendingInvoices  int
	TotalCustomers   int
}

// Service агрегатор по инвентарю, бронированиям, счетам и клиентам.
// Только чтение: ни одно из хранилищ отсюда не мутируется.
type Service struct {
	bins      BinCounter
	bookings  BookingCounter
	invoices  InvoiceAggregator
	customers CustomerCounter
	logger    Logger
}

// NewService создает новый экземпляр агрегатора
func NewService(
	bins BinCounter,
	bookings BookingCounter,
	invoices InvoiceAggregator,
	customers CustomerCounter,
	logger Logger,
) *Service {
	return &Service{
		bins:      bins,
		bookings:  bookings,
		invoices:  invoices,
		customers: customers,
		logger:    logger,
	}
}

// DashboardStats собирает агрегаты по всем четырем коллекциям
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	binCounts, err := s.bins.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: bin counts: %v", err)
		return nil, fmt.Errorf("%w: bin counts: %v", ErrInternal, err)
	}

	bookingCounts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: booking counts: %v", err)
		return nil, fmt.Errorf("%w: booking counts: %v", ErrInternal, err)
	}

	totalRevenue, err := s.invoices.SumAmounts(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: invoice totals: %v", err)
		return nil, fmt.Errorf("%w: invoice totals: %v", ErrInternal, err)
	}

	pendingInvoices, err := s.invoices.CountPending(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: pending invoices: %v", err)
		return nil, fmt.Errorf("%w: pending invoices: %v", ErrInternal, err)
	}

	totalCustomers, err := s.customers.Count(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: customer count: %v", err)
		return nil, fmt.Errorf("%w: customer count: %v", ErrInternal, err)
	}

	stats := &DashboardStats{
		BinsByStatus:     binCounts,
		BookingsByStatus: bookingCounts,
		TotalRevenue:     totalRevenue,
		PendingInvoices:  pendingInvoices,
		TotalCustomers:   totalCustomers,
	}
	for _, c := range binCounts {
		stats.TotalBins += c
	}
	for _, c := range bookingCounts {
		stats.TotalBookings += c
	}

	return stats, nil
}
