package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"copsis/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one key-value row.
type kvEntry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:128"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLRepository keeps snapshots in a kv_entries table through GORM.
type SQLRepository struct {
	db  *gorm.DB
	key string
}

// compile-time assertion
var _ domain.InventoryRepository = (*SQLRepository)(nil)

// NewSQLRepository migrates the kv_entries table on db and returns a repository storing under key.
func NewSQLRepository(db *gorm.DB, key string) (*SQLRepository, error) {
	if key == "" {
		key = DefaultKey
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("automigrate kv_entries: %w", err)
	}
	return &SQLRepository{db: db, key: key}, nil
}

// OpenSQLite opens (creating if needed) a SQLite database at path.
// A DSN starting with "file:" is passed to the driver unchanged.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path required")
	}
	if !isSQLiteURI(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	logLevel := logger.Silent
	if os.Getenv("COPSIS_DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}

func (r *SQLRepository) Load(ctx context.Context) ([]domain.InventoryItem, bool, error) {
	var e kvEntry
	err := r.db.WithContext(ctx).Where("entry_key = ?", r.key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	items, err := decodeItems([]byte(e.Value))
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (r *SQLRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	raw, err := encodeItems(items)
	if err != nil {
		return err
	}
	e := kvEntry{Key: r.key, Value: string(raw), UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func isSQLiteURI(path string) bool {
	return strings.HasPrefix(path, "file:") || path == ":memory:"
}
