// Package domain defines core business types and interfaces.
package domain

import "time"

// Product is a sellable catalog entry with its stock batches.
type Product struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   int64   `json:"price"`
	Batches []Batch `json:"batches"`
}

// Batch is a dated sub-lot of a product.
type Batch struct {
	ID          string `json:"id"`
	BatchNumber string `json:"batchNumber"`
	ExpiryDate  Date   `json:"expiryDate"`
	Stock       int    `json:"stock"`
}

// IsExpired reports whether the batch expired strictly before the date of now.
func (b Batch) IsExpired(now time.Time) bool {
	return b.ExpiryDate.Before(DateOf(now))
}

// IsExhausted reports whether the batch has no remaining stock.
func (b Batch) IsExhausted() bool {
	return b.Stock <= 0
}

// IsSelectable reports whether the batch may be sold at now.
func (b Batch) IsSelectable(now time.Time) bool {
	return !b.IsExpired(now) && !b.IsExhausted()
}

// ValidateProduct checks a catalog product and its batches.
func ValidateProduct(p Product) error {
	if p.ID == "" {
		return NewInvalidProductError(p.ID, "id", "cannot be empty", p.ID)
	}
	if p.Name == "" {
		return NewInvalidProductError(p.ID, "name", "cannot be empty", p.Name)
	}
	if p.Price < 0 {
		return NewInvalidProductError(p.ID, "price", "must be non-negative", p.Price)
	}
	seen := make(map[string]struct{}, len(p.Batches))
	for _, b := range p.Batches {
		if b.ID == "" {
			return NewInvalidProductError(p.ID, "batch.id", "cannot be empty", b.ID)
		}
		if _, dup := seen[b.ID]; dup {
			return NewInvalidProductError(p.ID, "batch.id", "duplicate within product", b.ID)
		}
		seen[b.ID] = struct{}{}
		if b.Stock < 0 {
			return NewInvalidProductError(p.ID, "batch.stock", "must be non-negative", b.Stock)
		}
		if b.ExpiryDate.IsZero() {
			return NewInvalidProductError(p.ID, "batch.expiryDate", "required", b.ID)
		}
	}
	return nil
}
