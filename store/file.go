package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"copsis/domain"
)

// FileRepository keeps snapshots in a JSON object file, one entry per key.
// Entries under other keys are preserved on save.
type FileRepository struct {
	mu   sync.Mutex
	path string
	key  string
}

// compile-time assertion
var _ domain.InventoryRepository = (*FileRepository)(nil)

// NewFileRepository constructs a FileRepository at the given path. The file is
// created on first save.
func NewFileRepository(path, key string) *FileRepository {
	if key == "" {
		key = DefaultKey
	}
	return &FileRepository{path: path, key: key}
}

func (r *FileRepository) Load(ctx context.Context) ([]domain.InventoryItem, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.readFile()
	if err != nil {
		return nil, false, err
	}
	raw, ok := entries[r.key]
	if !ok {
		return nil, false, nil
	}
	items, err := decodeItems(raw)
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (r *FileRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := encodeItems(items)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.readFile()
	if err != nil {
		return err
	}
	entries[r.key] = raw
	return r.writeFile(entries)
}

func (r *FileRepository) readFile() (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			// no file yet; that's fine
			return entries, nil
		}
		return nil, err
	}
	if len(b) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *FileRepository) writeFile(entries map[string]json.RawMessage) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	// map keys are marshalled sorted, so the file is deterministic
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
