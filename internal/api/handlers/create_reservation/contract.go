package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type LedgerService interface {
	CreateReservation(ctx context.Context, dateKey domain.DateKey, slotID, professionalID string, adminID int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
