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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBlockHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_block"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	deleteBlockHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_block"
	deleteReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_availability"
	getCatalogHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_catalog"
	healthHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/health"
	listBlocksHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_blocks"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	blockRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/block"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memory"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	ledgerService "github.com/m04kA/SMC-ReservationService/internal/service/ledger"
	getAvailabilityUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-ReservationService/migrations"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := config.PathFromEnv()
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Справочник
	cat := catalog.Default()
	if cfg.Catalog.File != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			log.Fatal("Failed to load catalog: %v", err)
		}
		log.Info("Catalog loaded from %s", cfg.Catalog.File)
	}
	log.Info("Catalog: services=%d professionals=%d slots=%d",
		len(cat.Services()), len(cat.Professionals()), len(cat.Slots()))

	// Инициализируем хранилище ledger
	var (
		reservations ledgerService.ReservationRepository
		blocks       ledgerService.BlockRepository
		pinger       healthHandler.Pinger
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := openDatabase(cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Storage.AutoMigrate {
			if err := migrations.Up(db); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
			log.Info("Database migrations applied")
		}

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")

			reservations = reservationRepo.NewRepository(wrappedDB)
			blocks = blockRepo.NewRepository(wrappedDB)
		} else {
			reservations = reservationRepo.NewRepository(db)
			blocks = blockRepo.NewRepository(db)
		}
		pinger = db

	case config.StorageDriverMemory:
		store := memory.NewStore()
		reservations = store.Reservations()
		blocks = store.Blocks()
		log.Warn("Using in-memory storage: reservations are lost on restart")
	}

	// Инициализируем сервисы
	var conflicts ledgerService.ConflictObserver
	if metricsCollector != nil {
		conflicts = metricsCollector
	}
	ledgerSvc := ledgerService.NewService(reservations, blocks, cat, conflicts, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(ledgerSvc, cat, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(ledgerSvc, log)
	listReservations := listReservationsHandler.NewHandler(ledgerSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(ledgerSvc, log)
	createBlock := createBlockHandler.NewHandler(ledgerSvc, log)
	listBlocks := listBlocksHandler.NewHandler(ledgerSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(ledgerSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(cat)
	health := healthHandler.NewHandler(pinger, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// READ ROUTES
	// ============================================================

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	r.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	r.HandleFunc("/blocks", listBlocks.Handle).Methods(http.MethodGet)

	// ============================================================
	// MUTATING ROUTES (ограничение частоты по IP)
	// ============================================================

	mutating := r.NewRoute().Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy, log)
		mutating.Use(limiter.Middleware())
		log.Info("Rate limit enabled: rps=%.2f burst=%d trust_proxy=%t",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	mutating.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	mutating.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)
	mutating.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	mutating.HandleFunc("/blocks/{id}", deleteBlock.Handle).Methods(http.MethodDelete)

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
		log.Info("Starting server on %s (storage=%s)", addr, cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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

// openDatabase открывает пул соединений и проверяет доступность БД
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}
