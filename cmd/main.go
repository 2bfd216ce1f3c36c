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
	"github.com/robfig/cron/v3"

	cancelBookingHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/get_booking"
	getBusinessBookingsHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/get_business_bookings"
	getCustomerBookingsHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/get_customer_bookings"
	getScheduleHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/get_schedule"
	rescheduleBookingHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/reschedule_booking"
	updateScheduleHandler "github.com/agendora/Agendora-BookingService/internal/api/handlers/update_schedule"
	"github.com/agendora/Agendora-BookingService/internal/api/middleware"
	"github.com/agendora/Agendora-BookingService/internal/config"
	bookingRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/schedule"
	agendaLegacyClient "github.com/agendora/Agendora-BookingService/internal/integrations/agendalegacy"
	catalogServiceClient "github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
	bookingsService "github.com/agendora/Agendora-BookingService/internal/service/bookings"
	scheduleService "github.com/agendora/Agendora-BookingService/internal/service/schedule"
	createBookingUC "github.com/agendora/Agendora-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/agendora/Agendora-BookingService/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/agendora/Agendora-BookingService/internal/usecase/reschedule_booking"
	"github.com/agendora/Agendora-BookingService/pkg/dbmetrics"
	"github.com/agendora/Agendora-BookingService/pkg/logger"
	"github.com/agendora/Agendora-BookingService/pkg/metrics"
	"github.com/agendora/Agendora-BookingService/pkg/simpletxmanager"
	"github.com/agendora/Agendora-BookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Agendora-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Integration clients
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	legacyClient := agendaLegacyClient.NewClient(
		cfg.LegacyAgenda.URL,
		time.Duration(cfg.LegacyAgenda.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, LegacyAgenda=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout, cfg.LegacyAgenda.URL, cfg.LegacyAgenda.Timeout)

	// Repositories and transaction manager, with or without DB metrics
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		scheduleRepository,
		catalogClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		catalogClient,
		txMgr,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalogClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalogClient,
		legacyClient,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		txMgr,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getBusinessBookings := getBusinessBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/businesses/{businessId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/businesses/{businessId}/bookings", getBusinessBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Background jobs
	scheduler := cron.New()
	if cfg.Jobs.CompletePastDueEnabled {
		_, err := scheduler.AddFunc(cfg.Jobs.CompletePastDueSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := bookingSvc.CompletePastDue(ctx); err != nil {
				log.Error("CompletePastDue job failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Failed to schedule CompletePastDue job: %v", err)
		}
		scheduler.Start()
		log.Info("CompletePastDue job scheduled: %s", cfg.Jobs.CompletePastDueSchedule)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Jobs.CompletePastDueEnabled {
		cronCtx := scheduler.Stop()
		<-cronCtx.Done()
		log.Info("Background jobs stopped")
	}

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
