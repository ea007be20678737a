package cache

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Refresher получает состояние ledger, вычисляет доступность и обновляет кеш
type Refresher struct {
	ledger  Ledger
	catalog Catalog
	cache   *Cache
	logger  Logger
}

func NewRefresher(ledger Ledger, catalog Catalog, cache *Cache, logger Logger) *Refresher {
	return &Refresher{
		ledger:  ledger,
		catalog: catalog,
		cache:   cache,
		logger:  logger,
	}
}

// Cache возвращает кеш, который обновляет Refresher
func (r *Refresher) Cache() *Cache {
	return r.cache
}

// Refresh возвращает доступность для (дата, специалист)
// Если ledger недоступен, представление строится из кеша и помечается Stale
func (r *Refresher) Refresh(ctx context.Context, dateKey domain.DateKey, professionalID string) *domain.AvailabilityView {
	target := availability.Target{DateKey: dateKey, ProfessionalID: professionalID}
	slots := r.catalog.Slots()

	var (
		reservations []*domain.Reservation
		blocks       []*domain.Block
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = r.ledger.ListReservations(gctx, domain.ReservationFilter{DateKey: &dateKey, ProfessionalID: &professionalID})
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = r.ledger.ListBlocks(gctx, domain.BlockFilter{DateKey: &dateKey, ProfessionalID: &professionalID})
		return err
	})

	if err := g.Wait(); err != nil {
		r.logger.Warn("Refresher: ledger unavailable for date=%s professional=%s, using cached state: %v", dateKey, professionalID, err)
		view := availability.FromUnavailable(target, slots, r.cache.Unavailable(ctx, dateKey, professionalID))
		view.Stale = true
		return view
	}

	resolved := availability.Resolve(target, slots, reservations, blocks)
	merged := r.cache.Refresh(ctx, dateKey, professionalID, resolved.UnavailableIDs())
	return availability.FromUnavailable(target, slots, merged)
}
