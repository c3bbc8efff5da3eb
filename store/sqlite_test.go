package store

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func TestSQLRepository_LoadSave(t *testing.T) {
	r, err := NewSQLRepository(setupTestDB(t), "")
	if err != nil {
		t.Fatalf("NewSQLRepository failed: %v", err)
	}
	ctx := context.Background()

	_, ok, err := r.Load(ctx)
	if err != nil || ok {
		t.Fatalf("expected no snapshot, got ok=%v err=%v", ok, err)
	}

	if err := r.Save(ctx, sampleItems()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	items := sampleItems()[:1]
	items[0].Stock = 1499
	if err := r.Save(ctx, items); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, ok, err := r.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Stock != 1499 {
		t.Fatalf("expected overwritten snapshot, got %+v", got)
	}

	var rows int64
	r.db.Model(&kvEntry{}).Count(&rows)
	if rows != 1 {
		t.Fatalf("expected a single kv row, got %d", rows)
	}
}

func TestSQLRepository_KeysAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	a, err := NewSQLRepository(db, "store_a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSQLRepository(db, "store_b")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	_ = a.Save(ctx, sampleItems())

	if _, ok, _ := b.Load(ctx); ok {
		t.Fatal("store_b should have no snapshot")
	}
}

func TestNewRepositoryFactory(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		kind, path string
		wantErr    bool
	}{
		{"memory", "", false},
		{"mem", "", false},
		{"file", filepath.Join(dir, "inv.json"), false},
		{"file", "", true},
		{"sqlite", filepath.Join(dir, "db", "copsis.db"), false},
		{"sqlite", "", true},
		{"redis", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.kind+"/"+tc.path, func(t *testing.T) {
			r, err := NewRepository(tc.kind, tc.path, "")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for kind %q path %q", tc.kind, tc.path)
				}
				return
			}
			if err != nil || r == nil {
				t.Fatalf("NewRepository(%q) failed: %v", tc.kind, err)
			}
			if err := r.Save(context.Background(), sampleItems()); err != nil {
				t.Fatalf("save through %s repository failed: %v", tc.kind, err)
			}
		})
	}
}
