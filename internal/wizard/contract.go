package wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Catalog справочник для разрешения выбранных идентификаторов
type Catalog interface {
	Service(id string) (domain.Service, bool)
	Professional(id string) (domain.Professional, bool)
	Slot(id string) (domain.CanonicalSlot, bool)
}

// Ledger авторитетный реестр (локальный сервис или HTTP-клиент)
type Ledger interface {
	CreateReservation(ctx context.Context, dateKey domain.DateKey, slotID, professionalID string, adminID int64) (*domain.Reservation, error)
}

// Availability источник представления доступности (cache.Refresher)
type Availability interface {
	Refresh(ctx context.Context, dateKey domain.DateKey, professionalID string) *domain.AvailabilityView
}

// Overlay оптимистичная отметка в локальном кеше (cache.Cache)
type Overlay interface {
	MarkReserved(ctx context.Context, dateKey domain.DateKey, professionalID, slotID string)
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
