package get_availability

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Ledger источник бронирований и блокировок
type Ledger interface {
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	ListBlocks(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error)
}

// Catalog справочник слотов и специалистов
type Catalog interface {
	Slots() []domain.CanonicalSlot
	Professional(id string) (domain.Professional, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
