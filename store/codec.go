// Package store provides snapshot repositories for the inventory.
package store

import (
	"encoding/json"
	"fmt"

	"copsis/domain"
)

// DefaultKey is the key the inventory snapshot is stored under.
const DefaultKey = "copsis_inventory"

func encodeItems(items []domain.InventoryItem) ([]byte, error) {
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return json.Marshal(items)
}

func decodeItems(b []byte) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode inventory snapshot: %w", err)
	}
	return items, nil
}
