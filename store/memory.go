package store

import (
	"context"
	"sync"

	"copsis/domain"
)

// MemoryRepository keeps serialized snapshots in a process-local key-value map.
type MemoryRepository struct {
	mu   sync.RWMutex
	key  string
	data map[string][]byte
}

// compile-time assertion that MemoryRepository implements domain.InventoryRepository
var _ domain.InventoryRepository = (*MemoryRepository)(nil)

// NewMemoryRepository constructs an empty MemoryRepository storing under key.
func NewMemoryRepository(key string) *MemoryRepository {
	if key == "" {
		key = DefaultKey
	}
	return &MemoryRepository{
		key:  key,
		data: make(map[string][]byte),
	}
}

func (r *MemoryRepository) Load(ctx context.Context) ([]domain.InventoryItem, bool, error) {
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.data[r.key]
	if !ok {
		return nil, false, nil
	}
	items, err := decodeItems(raw)
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (r *MemoryRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	raw, err := encodeItems(items)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[r.key] = raw
	return nil
}
