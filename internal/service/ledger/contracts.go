package ledger

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, block *domain.Block) (*domain.Block, error)
	List(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error)
	Delete(ctx context.Context, id int64) error
}

// Catalog справочник для валидации входных данных
type Catalog interface {
	Slot(id string) (domain.CanonicalSlot, bool)
	Professional(id string) (domain.Professional, bool)
}

// ConflictObserver приемник метрики конфликтов уникальности
type ConflictObserver interface {
	ObserveLedgerConflict(entity string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
