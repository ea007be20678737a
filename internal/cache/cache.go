// Package cache клиентский, согласованный в конечном счете кеш доступности.
// Никогда не используется для предотвращения конфликтов: это делает только ledger
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// DefaultOverlayWindow сколько оптимистичная отметка переживает обновления,
// которые ее не подтверждают
const DefaultOverlayWindow = 30 * time.Second

// Key ключ записи кеша: дата, разделенная по специалисту (2024-06-10#1)
func Key(dateKey domain.DateKey, professionalID string) string {
	return dateKey.String() + "#" + professionalID
}

// Cache множества недоступных слотов по (дата, специалист) с оптимистичным наложением
type Cache struct {
	store        Store
	window       time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu sync.Mutex
	// ключ -> slotId -> момент оптимистичной отметки
	overlays map[string]map[string]time.Time
}

// New создает кеш; window <= 0 - окно по умолчанию
func New(store Store, window time.Duration, logger Logger) *Cache {
	if window <= 0 {
		window = DefaultOverlayWindow
	}
	return &Cache{
		store:        store,
		window:       window,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		overlays:     make(map[string]map[string]time.Time),
	}
}

// Unavailable читает сохраненное множество; отсутствие или повреждение - пустое множество
func (c *Cache) Unavailable(ctx context.Context, dateKey domain.DateKey, professionalID string) []string {
	key := Key(dateKey, professionalID)

	ids, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrMalformedLocalState) {
			c.logger.Warn("Cache: malformed entry for key=%s treated as empty: %v", key, err)
		} else {
			c.logger.Warn("Cache: failed to read key=%s: %v", key, err)
		}
		return nil
	}
	return ids
}

// Refresh заменяет запись свежим авторитетным множеством, добавляя живые оптимистичные отметки
// Отметка снимается, если обновление ее содержит (подтверждена)
// или если обновление после окна ее не содержит (опровергнута)
// Отметка, отсутствующая в обновлении внутри окна, остается в ожидании
func (c *Cache) Refresh(ctx context.Context, dateKey domain.DateKey, professionalID string, fetched []string) []string {
	key := Key(dateKey, professionalID)
	now := c.timeProvider.Now()

	merged := append([]string{}, fetched...)
	present := make(map[string]struct{}, len(fetched))
	for _, id := range fetched {
		present[id] = struct{}{}
	}

	c.mu.Lock()
	for slotID, markedAt := range c.overlays[key] {
		if _, ok := present[slotID]; ok {
			delete(c.overlays[key], slotID)
			continue
		}
		if now.Sub(markedAt) > c.window {
			c.logger.Warn("Cache: optimistic slot=%s for key=%s contradicted by ledger", slotID, key)
			delete(c.overlays[key], slotID)
			continue
		}
		merged = append(merged, slotID)
	}
	if len(c.overlays[key]) == 0 {
		delete(c.overlays, key)
	}
	c.mu.Unlock()

	if err := c.store.Put(ctx, key, merged); err != nil {
		c.logger.Warn("Cache: failed to store key=%s: %v", key, err)
	}
	return merged
}

// MarkReserved применяет оптимистичную отметку сразу после успешного бронирования
func (c *Cache) MarkReserved(ctx context.Context, dateKey domain.DateKey, professionalID, slotID string) {
	key := Key(dateKey, professionalID)

	c.mu.Lock()
	if c.overlays[key] == nil {
		c.overlays[key] = make(map[string]time.Time)
	}
	c.overlays[key][slotID] = c.timeProvider.Now()
	c.mu.Unlock()

	ids := c.Unavailable(ctx, dateKey, professionalID)
	for _, id := range ids {
		if id == slotID {
			return
		}
	}
	if err := c.store.Put(ctx, key, append(ids, slotID)); err != nil {
		c.logger.Warn("Cache: failed to store optimistic slot=%s for key=%s: %v", slotID, key, err)
	}
}

// Pending возвращает оптимистичные отметки, еще не подтвержденные и не опровергнутые
func (c *Cache) Pending(dateKey domain.DateKey, professionalID string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	overlay := c.overlays[Key(dateKey, professionalID)]
	ids := make([]string, 0, len(overlay))
	for id := range overlay {
		ids = append(ids, id)
	}
	return ids
}
