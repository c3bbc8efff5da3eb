// Package pos implements the point-of-sale engine: batch selection under a
// first-expiry-first-out policy, the cart, and checkout.
package pos

import (
	"strings"
	"time"

	"copsis/domain"
)

// Search returns the products whose name contains query, ignoring case.
// A blank query matches nothing so the result list collapses when the search is cleared.
func Search(query string, products []domain.Product) []domain.Product {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Recommend picks the batch with the earliest expiry, keeping the first one on
// ties. If that batch has already expired nothing is recommended; the policy
// does not fall back to the next batch.
func Recommend(p domain.Product, now time.Time) (string, bool) {
	if len(p.Batches) == 0 {
		return "", false
	}
	earliest := p.Batches[0]
	for _, b := range p.Batches[1:] {
		if b.ExpiryDate.Before(earliest.ExpiryDate) {
			earliest = b
		}
	}
	if earliest.IsExpired(now) {
		return "", false
	}
	return earliest.ID, true
}

// IsSelectable reports whether b can be added to a cart at now.
func IsSelectable(b domain.Batch, now time.Time) bool {
	return b.IsSelectable(now)
}

// BatchOption is a batch annotated for display in search results.
type BatchOption struct {
	domain.Batch
	Recommended bool
	Expired     bool
	Exhausted   bool
	Selectable  bool
}

// Options annotates every batch of p in its original order.
func Options(p domain.Product, now time.Time) []BatchOption {
	rec, hasRec := Recommend(p, now)
	out := make([]BatchOption, 0, len(p.Batches))
	for _, b := range p.Batches {
		out = append(out, BatchOption{
			Batch:       b,
			Recommended: hasRec && b.ID == rec,
			Expired:     b.IsExpired(now),
			Exhausted:   b.IsExhausted(),
			Selectable:  b.IsSelectable(now),
		})
	}
	return out
}

func blockReason(b domain.Batch, now time.Time) (domain.BlockReason, bool) {
	if b.IsExpired(now) {
		return domain.BlockExpired, true
	}
	if b.IsExhausted() {
		return domain.BlockExhausted, true
	}
	return "", false
}
