package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ReservationService/internal/infra/localstore"
)

// EntryKey запись localstore, в которой хранится весь кеш доступности
const EntryKey = "availability_cache"

// KVStore хранит все множества в одной JSON-записи {ключ: [slotId, ...]}
type KVStore struct {
	kv KV
	mu sync.Mutex
}

func NewKVStore(kv KV) *KVStore {
	return &KVStore{kv: kv}
}

// Get возвращает множество для ключа; отсутствующая запись - пустое множество
func (s *KVStore) Get(ctx context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return entries[key], nil
}

// Put заменяет множество для ключа
// Нечитаемая запись перезаписывается с нуля
func (s *KVStore) Put(ctx context.Context, key string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if errors.Is(err, ErrMalformedLocalState) {
		entries = map[string][]string{}
	} else if err != nil {
		return err
	}

	entries[key] = append([]string{}, ids...)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStore, err)
	}
	if err := s.kv.Set(ctx, EntryKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (s *KVStore) load(ctx context.Context) (map[string][]string, error) {
	data, err := s.kv.Get(ctx, EntryKey)
	if errors.Is(err, localstore.ErrNotFound) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	entries := map[string][]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLocalState, err)
	}
	// "null" декодируется без ошибки в nil-карту
	if entries == nil {
		return map[string][]string{}, nil
	}
	return entries, nil
}
