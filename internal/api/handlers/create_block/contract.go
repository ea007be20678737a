package create_block

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type LedgerService interface {
	CreateBlock(ctx context.Context, dateKey domain.DateKey, slotID *string, professionalID string, adminID int64) (*domain.Block, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
