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
	"github.com/redis/go-redis/v9"

	bookingSummaryHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/booking_summary"
	createBookingHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/create_booking"
	createCapsterHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/create_capster"
	createPaymentMethodHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/create_payment_method"
	createServiceHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/create_service"
	deleteBookingHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/delete_booking"
	deleteCapsterHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/delete_capster"
	exportReportHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/export_report"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/get_booked_slots"
	getBookingHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/get_booking"
	getCapsterHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/get_capster"
	getReportHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/get_report"
	getServiceHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/get_service"
	listAllCapstersHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/list_all_capsters"
	listBookingsHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/list_bookings"
	listCapstersHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/list_capsters"
	listPaymentMethodsHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/list_payment_methods"
	listServicesHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/list_services"
	updateBookingHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/update_booking"
	updateCapsterHandler "github.com/m04kA/SMC-CapsterBooking/internal/api/handlers/update_capster"
	"github.com/m04kA/SMC-CapsterBooking/internal/api/middleware"
	"github.com/m04kA/SMC-CapsterBooking/internal/config"
	slotsCache "github.com/m04kA/SMC-CapsterBooking/internal/infra/cache/slots"
	bookingRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/booking"
	capsterRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/capster"
	catalogRepo "github.com/m04kA/SMC-CapsterBooking/internal/infra/storage/catalog"
	bookingsService "github.com/m04kA/SMC-CapsterBooking/internal/service/bookings"
	capstersService "github.com/m04kA/SMC-CapsterBooking/internal/service/capsters"
	catalogService "github.com/m04kA/SMC-CapsterBooking/internal/service/catalog"
	bookingSummaryUC "github.com/m04kA/SMC-CapsterBooking/internal/usecase/booking_summary"
	createBookingUC "github.com/m04kA/SMC-CapsterBooking/internal/usecase/create_booking"
	exportReportUC "github.com/m04kA/SMC-CapsterBooking/internal/usecase/export_report"
	generateReportUC "github.com/m04kA/SMC-CapsterBooking/internal/usecase/generate_report"
	getAvailableSlotsUC "github.com/m04kA/SMC-CapsterBooking/internal/usecase/get_available_slots"
	getBookedSlotsUC "github.com/m04kA/SMC-CapsterBooking/internal/usecase/get_booked_slots"
	updateBookingUC "github.com/m04kA/SMC-CapsterBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CapsterBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapsterBooking/pkg/logger"
	"github.com/m04kA/SMC-CapsterBooking/pkg/metrics"
	"github.com/m04kA/SMC-CapsterBooking/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-CapsterBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все методы ничего не делают
	var (
		metricsCollector *metrics.Metrics
		dbObserver       dbmetrics.Observer
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbObserver = metricsCollector
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

	wrappedDB := dbmetrics.WrapWithDefault(db, dbObserver, stopMetricsCh)

	// Проверяем соединение
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = wrappedDB.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш занятых слотов (без redis работает как пустой кэш)
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()

		if err != nil {
			log.Warn("Redis is unreachable at %s, booked slots cache disabled: %v", cfg.Redis.Addr, err)
			_ = client.Close()
		} else {
			redisClient = client
			defer client.Close()
			log.Info("Connected to redis at %s (ttl=%s)", cfg.Redis.Addr, cfg.Booking.CacheTTL())
		}
	}
	cache := slotsCache.NewCache(redisClient, cfg.Booking.CacheTTL())

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	capsterRepository := capsterRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, cache, log)
	capsterSvc := capstersService.NewService(capsterRepository, cache, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		capsterRepository,
		catalogRepository,
		cache,
		metricsCollector,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		capsterRepository,
		catalogRepository,
		cache,
		txMgr,
		cfg.Booking.StrictTransitions,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, capsterRepository, log)
	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(bookingRepository, capsterRepository, cache, log)
	generateReportUseCase := generateReportUC.NewUseCase(bookingRepository, log)
	exportReportUseCase := exportReportUC.NewUseCase(
		generateReportUseCase,
		metricsCollector,
		cfg.Report.SheetName,
		cfg.Report.FileName,
		log,
	)
	bookingSummaryUseCase := bookingSummaryUC.NewUseCase(bookingRepository, capsterRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(getBookedSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReport := getReportHandler.NewHandler(generateReportUseCase, log)
	exportReport := exportReportHandler.NewHandler(exportReportUseCase, log)
	bookingSummary := bookingSummaryHandler.NewHandler(bookingSummaryUseCase, log)
	createCapster := createCapsterHandler.NewHandler(capsterSvc, log)
	getCapster := getCapsterHandler.NewHandler(capsterSvc, log)
	listCapsters := listCapstersHandler.NewHandler(capsterSvc, log)
	listAllCapsters := listAllCapstersHandler.NewHandler(capsterSvc, log)
	updateCapster := updateCapsterHandler.NewHandler(capsterSvc, log)
	deleteCapster := deleteCapsterHandler.NewHandler(capsterSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createPaymentMethod := createPaymentMethodHandler.NewHandler(catalogSvc, log)
	listPaymentMethods := listPaymentMethodsHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	var createBookingRoute http.Handler = http.HandlerFunc(createBooking.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		createBookingRoute = limiter.Middleware(createBookingRoute)
		log.Info("Rate limit on booking creation: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	api.Handle("/bookings", createBookingRoute).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/export", exportReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/time/{capsterId:[0-9]+}", getBookedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Отчеты и дашборд ---
	api.HandleFunc("/reports/bookings", getReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/booking-summary", bookingSummary.Handle).Methods(http.MethodGet)

	// --- Капстеры ---
	api.HandleFunc("/capsters", createCapster.Handle).Methods(http.MethodPost)
	api.HandleFunc("/capsters", listAllCapsters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/capsters/list", listCapsters.Handle).Methods(http.MethodPost)
	api.HandleFunc("/capsters/{capsterId:[0-9]+}", getCapster.Handle).Methods(http.MethodGet)
	api.HandleFunc("/capsters/{capsterId:[0-9]+}", updateCapster.Handle).Methods(http.MethodPut)
	api.HandleFunc("/capsters/{capsterId:[0-9]+}", deleteCapster.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/capsters/{capsterId:[0-9]+}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Справочники ---
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId:[0-9]+}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payment-methods", createPaymentMethod.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payment-methods", listPaymentMethods.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор статистики пула
	close(stopMetricsCh)

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
