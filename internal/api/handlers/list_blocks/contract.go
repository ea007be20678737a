package list_blocks

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type LedgerService interface {
	ListBlocks(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
