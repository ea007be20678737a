package get_availability

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case получения доступности слотов
type UseCase struct {
	ledger  Ledger
	catalog Catalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledger Ledger, catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		ledger:  ledger,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s professional=%s", req.DateKey, req.ProfessionalID)

	// 1. Валидация входных данных
	dateKey, err := domain.ParseDateKey(req.DateKey)
	if err != nil {
		uc.logger.Warn("GetAvailability: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateKey, err)
	}
	if _, ok := uc.catalog.Professional(req.ProfessionalID); !ok {
		uc.logger.Warn("GetAvailability: professional=%s not found", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	// 2. Параллельно получаем бронирования и блокировки на дату
	var (
		reservations []*domain.Reservation
		blocks       []*domain.Block
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = uc.ledger.ListReservations(gctx, domain.ReservationFilter{
			DateKey:        &dateKey,
			ProfessionalID: &req.ProfessionalID,
		})
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = uc.ledger.ListBlocks(gctx, domain.BlockFilter{
			DateKey:        &dateKey,
			ProfessionalID: &req.ProfessionalID,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailability: failed to fetch ledger state: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch ledger state: %v", ErrUnavailable, err)
	}

	// 3. Вычисляем доступность
	target := availability.Target{DateKey: dateKey, ProfessionalID: req.ProfessionalID}
	view := availability.Resolve(target, uc.catalog.Slots(), reservations, blocks)

	return &Response{
		View:         view,
		DayBlocked:   domain.IsDayBlocked(blocks, dateKey, req.ProfessionalID),
		Reservations: reservations,
		Blocks:       blocks,
	}, nil
}
