package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	blockRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/block"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

// Service авторитетный реестр бронирований и блокировок
// Единственная точка изменения этих множеств; уникальность гарантирует хранилище
type Service struct {
	reservations ReservationRepository
	blocks       BlockRepository
	catalog      Catalog
	conflicts    ConflictObserver
	logger       Logger
}

// NewService создает новый экземпляр сервиса ledger
// conflicts может быть nil
func NewService(
	reservations ReservationRepository,
	blocks BlockRepository,
	catalog Catalog,
	conflicts ConflictObserver,
	logger Logger,
) *Service {
	return &Service{
		reservations: reservations,
		blocks:       blocks,
		catalog:      catalog,
		conflicts:    conflicts,
		logger:       logger,
	}
}

// CreateReservation бронирует слот специалиста на дату
// Возвращает ErrConflict, если кортеж (дата, слот, специалист) уже занят
func (s *Service) CreateReservation(ctx context.Context, dateKey domain.DateKey, slotID, professionalID string, adminID int64) (*domain.Reservation, error) {
	s.logger.Info("CreateReservation: date=%s slot=%s professional=%s admin=%d", dateKey, slotID, professionalID, adminID)

	if err := s.validateTarget(dateKey, professionalID, adminID); err != nil {
		s.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}
	slot, ok := s.catalog.Slot(slotID)
	if !ok {
		s.logger.Warn("CreateReservation: unknown slot=%s", slotID)
		return nil, fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, slotID)
	}
	if !slot.BaseAvailable {
		s.logger.Warn("CreateReservation: slot=%s is retired", slotID)
		return nil, fmt.Errorf("%w: slot %q is not bookable", ErrInvalidInput, slotID)
	}

	created, err := s.reservations.Create(ctx, &domain.Reservation{
		DateKey:        dateKey,
		SlotID:         slotID,
		ProfessionalID: professionalID,
		AdminID:        adminID,
	})
	if err != nil {
		if errors.Is(err, reservationRepo.ErrAlreadyExists) {
			s.observeConflict(domain.EntityReservation)
			s.logger.Warn("CreateReservation: slot already reserved date=%s slot=%s professional=%s", dateKey, slotID, professionalID)
			return nil, ErrConflict
		}
		s.logger.Error("CreateReservation: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateReservation - repository error: %v", ErrUnavailable, err)
	}

	s.logger.Info("CreateReservation: created reservation id=%d", created.ID)
	return created, nil
}

// ListReservations возвращает бронирования по фильтру
func (s *Service) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	list, err := s.reservations.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrUnavailable, err)
	}
	return list, nil
}

// DeleteReservation удаляет бронирование
func (s *Service) DeleteReservation(ctx context.Context, id int64) error {
	s.logger.Info("DeleteReservation: id=%d", id)

	if err := s.reservations.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("DeleteReservation: reservation id=%d not found", id)
			return ErrNotFound
		}
		s.logger.Error("DeleteReservation: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteReservation - repository error: %v", ErrUnavailable, err)
	}
	return nil
}

// CreateBlock блокирует день (slotID == nil) или отдельный слот специалиста
// ErrConflict только для идентичной блокировки; поштучная блокировка
// при существующей блокировке дня допустима
func (s *Service) CreateBlock(ctx context.Context, dateKey domain.DateKey, slotID *string, professionalID string, adminID int64) (*domain.Block, error) {
	slotLog := "all"
	if slotID != nil {
		slotLog = *slotID
	}
	s.logger.Info("CreateBlock: date=%s slot=%s professional=%s admin=%d", dateKey, slotLog, professionalID, adminID)

	if err := s.validateTarget(dateKey, professionalID, adminID); err != nil {
		s.logger.Warn("CreateBlock: %v", err)
		return nil, err
	}
	if slotID != nil {
		if _, ok := s.catalog.Slot(*slotID); !ok {
			s.logger.Warn("CreateBlock: unknown slot=%s", *slotID)
			return nil, fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, *slotID)
		}
	}

	created, err := s.blocks.Create(ctx, &domain.Block{
		DateKey:        dateKey,
		ProfessionalID: professionalID,
		AdminID:        adminID,
		SlotID:         slotID,
	})
	if err != nil {
		if errors.Is(err, blockRepo.ErrAlreadyExists) {
			s.observeConflict(domain.EntityBlock)
			s.logger.Warn("CreateBlock: identical block exists date=%s slot=%s professional=%s", dateKey, slotLog, professionalID)
			return nil, ErrConflict
		}
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrUnavailable, err)
	}

	s.logger.Info("CreateBlock: created block id=%d", created.ID)
	return created, nil
}

// ListBlocks возвращает блокировки по фильтру
func (s *Service) ListBlocks(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error) {
	list, err := s.blocks.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrUnavailable, err)
	}
	return list, nil
}

// DeleteBlock удаляет блокировку
func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlock: id=%d", id)

	if err := s.blocks.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", id)
			return ErrNotFound
		}
		s.logger.Error("DeleteBlock: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *Service) validateTarget(dateKey domain.DateKey, professionalID string, adminID int64) error {
	if _, err := domain.ParseDateKey(string(dateKey)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok := s.catalog.Professional(professionalID); !ok {
		return fmt.Errorf("%w: unknown professional %q", ErrInvalidInput, professionalID)
	}
	if adminID <= 0 {
		return fmt.Errorf("%w: admin id must be positive", ErrInvalidInput)
	}
	return nil
}

func (s *Service) observeConflict(entity string) {
	if s.conflicts != nil {
		s.conflicts.ObserveLedgerConflict(entity)
	}
}
