package store

import (
	"copsis/domain"
	"fmt"
)

// NewRepository constructs a domain.InventoryRepository by kind: "memory", "file" or "sqlite".
// For file and sqlite stores, provide the path; for memory, path is ignored.
func NewRepository(kind, path, key string) (domain.InventoryRepository, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryRepository(key), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file store")
		}
		return NewFileRepository(path, key), nil
	case "sqlite":
		if path == "" {
			return nil, fmt.Errorf("database path required for sqlite store")
		}
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return NewSQLRepository(db, key)
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
