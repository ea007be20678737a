// Package session хранит профиль текущего администратора без учетных данных
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/infra/localstore"
)

// EntryKey запись localstore с профилем администратора
const EntryKey = "auth_user"

// Identity профиль администратора; пароль и прочие секреты сюда не попадают
type Identity struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	ProfessionalID string `json:"professionalId"`
}

// Store читает и пишет профиль администратора
type Store struct {
	kv     KV
	logger Logger
}

func NewStore(kv KV, logger Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// Save сохраняет профиль (login)
func (s *Store) Save(ctx context.Context, identity Identity) error {
	if identity.ID <= 0 || identity.Username == "" {
		return fmt.Errorf("%w: id and username are required", ErrInvalidIdentity)
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("%w: Save - encode: %v", ErrStore, err)
	}
	if err := s.kv.Set(ctx, EntryKey, data); err != nil {
		return fmt.Errorf("%w: Save - set: %v", ErrStore, err)
	}

	s.logger.Info("Session: admin id=%d username=%s logged in", identity.ID, identity.Username)
	return nil
}

// Load возвращает сохраненный профиль или nil
// Отсутствующая или поврежденная запись означает, что администратор не вошел
func (s *Store) Load(ctx context.Context) *Identity {
	data, err := s.kv.Get(ctx, EntryKey)
	if errors.Is(err, localstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Warn("Session: failed to read identity: %v", err)
		return nil
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		s.logger.Warn("Session: %v", fmt.Errorf("%w: %v", ErrMalformedLocalState, err))
		return nil
	}
	if identity.ID <= 0 {
		s.logger.Warn("Session: %v: missing admin id", ErrMalformedLocalState)
		return nil
	}
	return &identity
}

// Clear удаляет профиль (logout)
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, EntryKey); err != nil {
		return fmt.Errorf("%w: Clear - delete: %v", ErrStore, err)
	}
	s.logger.Info("Session: logged out")
	return nil
}
