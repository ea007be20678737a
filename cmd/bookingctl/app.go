package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ReservationService/internal/cache"
	"github.com/m04kA/SMC-ReservationService/internal/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/localstore"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/ledgerclient"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/internal/session"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

// Ledger операции ledger, которые использует клиент
// Реализуется ledgerclient.Client и ledger.Service
type Ledger interface {
	CreateReservation(ctx context.Context, dateKey domain.DateKey, slotID, professionalID string, adminID int64) (*domain.Reservation, error)
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
	CreateBlock(ctx context.Context, dateKey domain.DateKey, slotID *string, professionalID string, adminID int64) (*domain.Block, error)
	ListBlocks(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error)
	DeleteBlock(ctx context.Context, id int64) error
}

// Authenticator провайдер учетных записей
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*userservice.User, error)
}

// KV локальное хранилище состояния клиента
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type app struct {
	cfg       *config.Config
	log       *logger.Logger
	ledger    Ledger
	catalog   *catalog.Catalog
	sessions  *session.Store
	cache     *cache.Cache
	refresher *cache.Refresher
	clock     cache.TimeProvider
	users     Authenticator // nil - провайдер не настроен
	closers   []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, closers: []func() error{log.Close}}

	kv, closeKV, err := openLocalStore(cfg)
	if err != nil {
		a.close()
		return nil, err
	}
	if closeKV != nil {
		a.closers = append(a.closers, closeKV)
	}

	client := ledgerclient.NewClient(cfg.Client.BaseURL, time.Duration(cfg.Client.Timeout)*time.Second, log)

	cat, err := client.GetCatalog(ctx)
	if err != nil {
		log.Warn("bookingctl: catalog unavailable from %s, using built-in catalog: %v", cfg.Client.BaseURL, err)
		cat = catalog.Default()
	}

	a.wire(client, cat, kv)
	if cfg.Client.UsersURL != "" {
		a.users = userservice.NewClient(cfg.Client.UsersURL, time.Duration(cfg.Client.Timeout)*time.Second, log)
	}
	return a, nil
}

// wire собирает клиентские компоненты поверх ledger и локального хранилища
func (a *app) wire(ledger Ledger, cat *catalog.Catalog, kv KV) {
	a.ledger = ledger
	a.catalog = cat
	a.sessions = session.NewStore(kv, a.log)
	a.cache = cache.New(cache.NewKVStore(kv), cache.DefaultOverlayWindow, a.log)
	a.refresher = cache.NewRefresher(ledger, cat, a.cache, a.log)
	a.clock = &cache.RealTimeProvider{}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

// loadConfig читает конфигурацию; отсутствующий файл - значения по умолчанию
func loadConfig() (*config.Config, error) {
	path := config.PathFromEnv()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := config.Default()
		cfg.Logs.Level = "warn"
		return cfg, nil
	}
	return config.Load(path)
}

func openLocalStore(cfg *config.Config) (KV, func() error, error) {
	switch cfg.LocalStore.Driver {
	case config.LocalStoreDriverMemory:
		return localstore.NewMemory(), nil, nil
	case config.LocalStoreDriverFile:
		store, err := localstore.NewFile(cfg.LocalStore.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case config.LocalStoreDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return localstore.NewRedis(rdb, cfg.Redis.Prefix), rdb.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown localstore driver %q", cfg.LocalStore.Driver)
}
