package dashboard_stats

import (
	"context"

	"github.com/vkrnv/SBR-OperationsService/internal/service/reports"
)

// ReportsService интерфейс агрегатора отчетов
type ReportsService interface {
	DashboardStats(ctx context.Context) (*reports.DashboardStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
