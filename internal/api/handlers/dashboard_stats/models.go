package dashboard_stats

import "github.com/vkrnv/SBR-OperationsService/internal/service/reports"

// DashboardStatsResponse HTTP response model
type DashboardStatsResponse struct {
	TotalBins        int            `json:"total_bins"`
	BinsByStatus     map[string]int `json:"bins_by_status"`
	TotalBookings    int            `json:"total_bookings"`
	BookingsByStatus map[string]int `json:"bookings_by_status"`
	TotalRevenue     string         `json:"total_revenue"`
	PendingInvoices  int            `json:"pending_invoices"`
	TotalCustomers   int            `json:"total_customers"`
}

// FromServiceStats конвертирует агрегаты сервиса в DTO
func FromServiceStats(stats *reports.DashboardStats) *DashboardStatsResponse {
	resp := &DashboardStatsResponse{
		TotalBins:        stats.TotalBins,
		BinsByStatus:     make(map[string]int, len(stats.BinsByStatus)),
		TotalBookings:    stats.TotalBookings,
		BookingsByStatus: make(map[string]int, len(stats.BookingsByStatus)),
		TotalRevenue:     stats.TotalRevenue.String(),
		PendingInvoices:  stats.PendingInvoices,
		TotalCustomers:   stats.TotalCustomers,
	}

	for status, count := range stats.BinsByStatus {
		resp.BinsByStatus[string(status)] = count
	}
	for status, count := range stats.BookingsByStatus {
		resp.BookingsByStatus[string(status)] = count
	}

	return resp
}
