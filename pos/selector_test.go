package pos

import (
	"testing"
	"time"

	"copsis/catalog"
	"copsis/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 1, 15, 10, 45, 0, 0, time.UTC)

func batch(id, expiry string, stock int) domain.Batch {
	return domain.Batch{ID: id, BatchNumber: "BN-" + id, ExpiryDate: domain.MustParseDate(expiry), Stock: stock}
}

func TestSearch(t *testing.T) {
	products := catalog.Sample().Products()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive", "lonart", []string{"p5"}},
		{"substring in several names", "500mg", []string{"p2", "p6"}},
		{"syrup", "SYRUP", []string{"p4", "p10"}},
		{"no match", "insulin", nil},
		{"empty query", "", nil},
		{"blank query", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range Search(tt.query, products) {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		batches []domain.Batch
		want    string
		ok      bool
	}{
		{"earliest expiry wins", []domain.Batch{batch("b2", "2027-01-10", 50), batch("b1", "2026-05-20", 15)}, "b1", true},
		{"tie keeps first in original order", []domain.Batch{batch("x", "2026-01-01", 1), batch("y", "2026-01-01", 1)}, "x", true},
		{"expired earliest means no recommendation", []domain.Batch{batch("old", "2023-12-01", 5), batch("new", "2025-06-15", 100)}, "", false},
		{"exhausted earliest is still recommended", []domain.Batch{batch("e", "2025-02-01", 0), batch("f", "2026-02-01", 4)}, "e", true},
		{"expiring today is recommended", []domain.Batch{batch("t", "2025-01-15", 2)}, "t", true},
		{"no batches", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Recommend(domain.Product{ID: "p", Name: "P", Batches: tt.batches}, testNow)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptions(t *testing.T) {
	p := domain.Product{ID: "p", Name: "P", Batches: []domain.Batch{
		batch("old", "2023-12-01", 5),
		batch("empty", "2026-01-01", 0),
		batch("good", "2026-06-01", 10),
	}}

	opts := Options(p, testNow)
	require.Len(t, opts, 3)

	assert.True(t, opts[0].Expired)
	assert.False(t, opts[0].Selectable)
	assert.False(t, opts[0].Recommended)

	assert.True(t, opts[1].Exhausted)
	assert.False(t, opts[1].Selectable)

	assert.True(t, opts[2].Selectable)
	assert.False(t, opts[2].Recommended, "no fallback recommendation past an expired batch")
	assert.Equal(t, "good", opts[2].ID)
}

func TestIsSelectable(t *testing.T) {
	assert.True(t, IsSelectable(batch("a", "2026-01-01", 1), testNow))
	assert.False(t, IsSelectable(batch("b", "2025-01-14", 1), testNow))
	assert.False(t, IsSelectable(batch("c", "2026-01-01", 0), testNow))
}
