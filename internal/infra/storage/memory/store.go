// Package memory хранилище бронирований и блокировок в памяти процесса.
// Используется при storage.driver = "memory" и в тестах сервисов.
// Повторно использует ошибки postgres-репозиториев, чтобы сервис
// обрабатывал оба драйвера одинаково
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/block"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

// Store общее хранилище; проверка уникальности и вставка выполняются под одним мьютексом
type Store struct {
	mu sync.Mutex

	reservations []*domain.Reservation
	blocks       []*domain.Block

	nextReservationID int64
	nextBlockID       int64

	now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Reservations возвращает репозиторий бронирований поверх хранилища
func (s *Store) Reservations() *ReservationRepository {
	return &ReservationRepository{store: s}
}

// Blocks возвращает репозиторий блокировок поверх хранилища
func (s *Store) Blocks() *BlockRepository {
	return &BlockRepository{store: s}
}

// ReservationRepository in-memory реализация репозитория бронирований
type ReservationRepository struct {
	store *Store
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reservations {
		if existing.DateKey == res.DateKey && existing.SlotID == res.SlotID && existing.ProfessionalID == res.ProfessionalID {
			return nil, reservation.ErrAlreadyExists
		}
	}

	s.nextReservationID++
	created := *res
	created.ID = s.nextReservationID
	created.CreatedAt = s.now().UTC()
	s.reservations = append(s.reservations, &created)

	out := created
	return &out, nil
}

func (r *ReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Reservation, 0)
	for _, res := range s.reservations {
		if filter.Matches(res) {
			cp := *res
			out = append(out, &cp)
		}
	}
	sortByDateAndID(out, func(r *domain.Reservation) (domain.DateKey, int64) { return r.DateKey, r.ID })
	return out, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, res := range s.reservations {
		if res.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return nil
		}
	}
	return reservation.ErrReservationNotFound
}

// BlockRepository in-memory реализация репозитория блокировок
type BlockRepository struct {
	store *Store
}

func (r *BlockRepository) Create(ctx context.Context, b *domain.Block) (*domain.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.blocks {
		if existing.DateKey == b.DateKey && existing.ProfessionalID == b.ProfessionalID && sameSlot(existing.SlotID, b.SlotID) {
			return nil, block.ErrAlreadyExists
		}
	}

	s.nextBlockID++
	created := *b
	created.ID = s.nextBlockID
	created.CreatedAt = s.now().UTC()
	if b.SlotID != nil {
		slotID := *b.SlotID
		created.SlotID = &slotID
	}
	s.blocks = append(s.blocks, &created)

	return copyBlock(&created), nil
}

func (r *BlockRepository) List(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Block, 0)
	for _, b := range s.blocks {
		if filter.Matches(b) {
			out = append(out, copyBlock(b))
		}
	}
	sortByDateAndID(out, func(b *domain.Block) (domain.DateKey, int64) { return b.DateKey, b.ID })
	return out, nil
}

func (r *BlockRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.blocks {
		if b.ID == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return nil
		}
	}
	return block.ErrBlockNotFound
}

func sameSlot(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyBlock(b *domain.Block) *domain.Block {
	cp := *b
	if b.SlotID != nil {
		slotID := *b.SlotID
		cp.SlotID = &slotID
	}
	return &cp
}
