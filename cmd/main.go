package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/JWL-RentalService/internal/api/handlers/cancel_reservation"
	createBookingHandler "github.com/m04kA/JWL-RentalService/internal/api/handlers/create_booking"
	createBulkBookingHandler "github.com/m04kA/JWL-RentalService/internal/api/handlers/create_bulk_booking"
	getCustomerReservationsHandler "github.com/m04kA/JWL-RentalService/internal/api/handlers/get_customer_reservations"
	getReservationHandler "github.com/m04kA/JWL-RentalService/internal/api/handlers/get_reservation"
	getUnavailableRangesHandler "github.com/m04kA/JWL-RentalService/internal/api/handlers/get_unavailable_ranges"
	"github.com/m04kA/JWL-RentalService/internal/api/middleware"
	"github.com/m04kA/JWL-RentalService/internal/config"
	itemRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/item"
	profileRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/profile"
	reservationRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/reservation"
	settingsRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/settings"
	identityService "github.com/m04kA/JWL-RentalService/internal/service/identity"
	reservationsService "github.com/m04kA/JWL-RentalService/internal/service/reservations"
	createBookingUC "github.com/m04kA/JWL-RentalService/internal/usecase/create_booking"
	createBulkBookingUC "github.com/m04kA/JWL-RentalService/internal/usecase/create_bulk_booking"
	getUnavailableRangesUC "github.com/m04kA/JWL-RentalService/internal/usecase/get_unavailable_ranges"
	"github.com/m04kA/JWL-RentalService/migrations"
	"github.com/m04kA/JWL-RentalService/pkg/dbmetrics"
	"github.com/m04kA/JWL-RentalService/pkg/logger"
	"github.com/m04kA/JWL-RentalService/pkg/metrics"
	"github.com/m04kA/JWL-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/JWL-RentalService/pkg/txmanager"
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

	log.Info("Starting JWL-RentalService...")
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

	// Применяем миграции, встроенные в бинарник
	if err := runMigrations(db, cfg.Database.DBName); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		profileRepository     *profileRepo.Repository
		itemRepository        *itemRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		itemRepository = itemRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		itemRepository = itemRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	identityResolver := identityService.NewResolver(profileRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, profileRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		itemRepository,
		settingsRepository,
		identityResolver,
		txMgr,
		log,
	)

	createBulkBookingUseCase := createBulkBookingUC.NewUseCase(
		reservationRepository,
		itemRepository,
		settingsRepository,
		identityResolver,
		txMgr,
		log,
	)

	getUnavailableRangesUseCase := getUnavailableRangesUC.NewUseCase(
		reservationRepository,
		itemRepository,
		settingsRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createBulkBooking := createBulkBookingHandler.NewHandler(createBulkBookingUseCase, log)
	getUnavailableRanges := getUnavailableRangesHandler.NewHandler(getUnavailableRangesUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	// Аутентификации нет: форма бронирования публичная, доступ ограничивает
	// пароль из настроек, который проверяется внутри use case
	api := r.PathPrefix("/api/v1").Subrouter()

	// Занятые окна изделия (подсказки календаря)
	api.HandleFunc("/items/{itemId}/unavailable-ranges",
		getUnavailableRanges.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Групповое бронирование нескольких изделий
	api.HandleFunc("/bookings/bulk", createBulkBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	api.HandleFunc("/customers/{email}/reservations", getCustomerReservations.Handle).Methods(http.MethodGet)

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

// runMigrations применяет встроенные SQL миграции к базе данных
func runMigrations(db *sql.DB, dbName string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, dbName, dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
