package cache

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Store порт хранения множеств недоступных слотов по ключу
type Store interface {
	Get(ctx context.Context, key string) ([]string, error)
	Put(ctx context.Context, key string, ids []string) error
}

// KV долговременное хранилище "ключ - значение" (localstore)
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Ledger источник авторитетных бронирований и блокировок
type Ledger interface {
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	ListBlocks(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error)
}

// Catalog каноническая сетка слотов
type Catalog interface {
	Slots() []domain.CanonicalSlot
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
