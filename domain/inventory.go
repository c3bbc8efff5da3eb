package domain

import (
	"context"
	"strings"
)

// InventoryItem is a stock-keeping record managed from the inventory screen.
type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Rank     string `json:"rank"` // ABC-XYZ class
}

// LowStockThreshold is the stock level under which an item is flagged low.
const LowStockThreshold = 100

// Stock status labels.
const (
	StatusOutOfStock = "Out of Stock"
	StatusLowStock   = "Low Stock"
	StatusInStock    = "In Stock"
)

// StockStatus classifies a stock level.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Ranks are the ABC-XYZ classes: value A/B/C crossed with demand X/Y/Z.
var Ranks = []string{"AX", "AY", "AZ", "BX", "BY", "BZ", "CX", "CY", "CZ"}

// DefaultRank is applied to new items without a rank.
const DefaultRank = "AX"

// ValidRank reports whether r is one of Ranks.
func ValidRank(r string) bool {
	for _, v := range Ranks {
		if v == r {
			return true
		}
	}
	return false
}

// ValidateItem checks the fields an inventory item must satisfy before it is stored.
func ValidateItem(it InventoryItem) error {
	if strings.TrimSpace(it.Name) == "" {
		return NewInvalidItemError("name", "cannot be empty", it.Name)
	}
	if it.Stock < 0 {
		return NewInvalidItemError("stock", "must be non-negative", it.Stock)
	}
	if !ValidRank(it.Rank) {
		return NewInvalidItemError("rank", "must be one of AX..CZ", it.Rank)
	}
	return nil
}

// ListFilter allows filtering and sorting results from List
type ListFilter struct {
	Search   string // matches name or category
	Category string
	Status   string
	SortBy   string // "name", "stock", "category"
	Order    string // "asc" or "desc"
}

// InventoryRepository persists the inventory as one snapshot. Load reports
// whether a snapshot exists; Save replaces it wholesale.
type InventoryRepository interface {
	Load(ctx context.Context) ([]InventoryItem, bool, error)
	Save(ctx context.Context, items []InventoryItem) error
}
