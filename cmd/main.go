package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addBinHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/add_bin"
	addCustomerHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/add_customer"
	bookingWebhookHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/booking_webhook"
	createBookingHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/create_booking"
	createInvoiceHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/create_invoice"
	dashboardStatsHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/dashboard_stats"
	deleteBookingHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/get_booking"
	listBinsHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/list_bins"
	listBookingsHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/list_bookings"
	listCustomersHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/list_customers"
	listInvoicesHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/list_invoices"
	setBinStatusHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/set_bin_status"
	setInvoiceStatusHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/set_invoice_status"
	transitionBookingHandler "github.com/vkrnv/SBR-OperationsService/internal/api/handlers/transition_booking"
	"github.com/vkrnv/SBR-OperationsService/internal/api/middleware"
	"github.com/vkrnv/SBR-OperationsService/internal/config"
	binRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/bin"
	bookingRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/booking"
	customerRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/customer"
	invoiceRepo "github.com/vkrnv/SBR-OperationsService/internal/infra/storage/invoice"
	binsService "github.com/vkrnv/SBR-OperationsService/internal/service/bins"
	bookingsService "github.com/vkrnv/SBR-OperationsService/internal/service/bookings"
	customersService "github.com/vkrnv/SBR-OperationsService/internal/service/customers"
	invoicesService "github.com/vkrnv/SBR-OperationsService/internal/service/invoices"
	reportsService "github.com/vkrnv/SBR-OperationsService/internal/service/reports"
	createBookingUC "github.com/vkrnv/SBR-OperationsService/internal/usecase/create_booking"
	transitionBookingUC "github.com/vkrnv/SBR-OperationsService/internal/usecase/transition_booking"
	"github.com/vkrnv/SBR-OperationsService/pkg/dbmetrics"
	"github.com/vkrnv/SBR-OperationsService/pkg/logger"
	"github.com/vkrnv/SBR-OperationsService/pkg/metrics"
	"github.com/vkrnv/SBR-OperationsService/pkg/simpletxmanager"
	"github.com/vkrnv/SBR-OperationsService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SBR-OperationsService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		binRepository      *binRepo.Repository
		bookingRepository  *bookingRepo.Repository
		invoiceRepository  *invoiceRepo.Repository
		customerRepository *customerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		binRepository = binRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		invoiceRepository = invoiceRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		binRepository = binRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		invoiceRepository = invoiceRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	binSvc := binsService.NewService(binRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, binRepository, log)
	invoiceSvc := invoicesService.NewService(invoiceRepository, log)
	customerSvc := customersService.NewService(customerRepository, log)
	reportsSvc := reportsService.NewService(
		binRepository,
		bookingRepository,
		invoiceRepository,
		customerRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		binRepository,
		invoiceSvc,
		txMgr,
		log,
	)
	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		binRepository,
		log,
	)

	// Инициализируем handlers
	addBin := addBinHandler.NewHandler(binSvc, log)
	setBinStatus := setBinStatusHandler.NewHandler(binSvc, log)
	listBins := listBinsHandler.NewHandler(binSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(transitionBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createInvoice := createInvoiceHandler.NewHandler(invoiceSvc, log)
	setInvoiceStatus := setInvoiceStatusHandler.NewHandler(invoiceSvc, log)
	listInvoices := listInvoicesHandler.NewHandler(invoiceSvc, log)
	addCustomer := addCustomerHandler.NewHandler(customerSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customerSvc, log)
	dashboardStats := dashboardStatsHandler.NewHandler(reportsSvc, log)
	bookingWebhook := bookingWebhookHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бины ---
	api.HandleFunc("/bins", addBin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bins", listBins.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bins/{binNumber}/status", setBinStatus.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/status", transitionBooking.Handle).Methods(http.MethodPatch)

	// --- Счета ---
	api.HandleFunc("/invoices", createInvoice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/invoices", listInvoices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{invoiceId}/status", setInvoiceStatus.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	api.HandleFunc("/customers", addCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)

	// --- Дашборд ---
	api.HandleFunc("/dashboard/stats", dashboardStats.Handle).Methods(http.MethodGet)

	// --- Webhook внешней системы приема заказов ---
	api.HandleFunc("/webhook/bookings", bookingWebhook.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
