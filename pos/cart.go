package pos

import (
	"time"

	"copsis/domain"
	"copsis/util"
)

// Cart is the ordered set of lines of the sale in progress plus a manual discount.
// It is not safe for concurrent use; Session serializes access.
type Cart struct {
	lines    []domain.CartLine
	discount int64
	newID    func() string
}

// CartOption configures a Cart.
type CartOption func(*Cart)

// WithLineIDs overrides the generator used for cart line ids.
func WithLineIDs(gen func() string) CartOption {
	return func(c *Cart) { c.newID = gen }
}

// NewCart returns an empty cart.
func NewCart(opts ...CartOption) *Cart {
	c := &Cart{newID: util.GenerateUUID}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddBatch puts one unit of b into the cart. Adding a batch already present
// increments that line (batch ids are scoped to their product), and fails without effect if the increment would exceed
// the stock ceiling captured when the line was created.
func (c *Cart) AddBatch(p domain.Product, b domain.Batch, now time.Time) (domain.CartLine, error) {
	if reason, blocked := blockReason(b, now); blocked {
		return domain.CartLine{}, domain.NewBlockedBatchError(p, b, reason)
	}

	for i := range c.lines {
		line := &c.lines[i]
		if line.ProductID != p.ID || line.BatchID != b.ID {
			continue
		}
		if line.Quantity+1 > line.MaxStock {
			return domain.CartLine{}, domain.NewStockLimitError(b.ID, b.BatchNumber, line.MaxStock)
		}
		line.Quantity++
		return *line, nil
	}

	line := domain.CartLine{
		CartID:      c.newID(),
		ProductID:   p.ID,
		ProductName: p.Name,
		BatchID:     b.ID,
		BatchNumber: b.BatchNumber,
		ExpiryDate:  b.ExpiryDate,
		Price:       p.Price,
		Quantity:    1,
		MaxStock:    b.Stock,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// RemoveLine deletes the line with cartID if present.
func (c *Cart) RemoveLine(cartID string) {
	for i := range c.lines {
		if c.lines[i].CartID == cartID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets a line's quantity, clamped to [1, MaxStock]. It reports
// false if no line has cartID.
func (c *Cart) SetQuantity(cartID string, qty int) (domain.CartLine, bool) {
	for i := range c.lines {
		line := &c.lines[i]
		if line.CartID != cartID {
			continue
		}
		line.Quantity = clamp(qty, 1, line.MaxStock)
		return *line, true
	}
	return domain.CartLine{}, false
}

// SetDiscount stores amount, floored at zero, and returns the stored value.
func (c *Cart) SetDiscount(amount int64) int64 {
	if amount < 0 {
		amount = 0
	}
	c.discount = amount
	return c.discount
}

// Discount returns the current discount.
func (c *Cart) Discount() int64 { return c.discount }

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	return append([]domain.CartLine(nil), c.lines...)
}

// Len returns the number of lines.
func (c *Cart) Len() int { return len(c.lines) }

// Clear empties the cart and resets the discount.
func (c *Cart) Clear() {
	c.lines = nil
	c.discount = 0
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
