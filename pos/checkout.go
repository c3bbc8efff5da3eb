package pos

import (
	"time"

	"copsis/domain"
	"copsis/util"
)

// HistoryLimit is how many recent sales a Register keeps.
const HistoryLimit = 5

// ComputeTotals derives subtotal and total from the cart. The total never goes
// below zero, whatever the discount.
func ComputeTotals(c *Cart) domain.Totals {
	var subtotal int64
	for _, l := range c.lines {
		subtotal += l.LineTotal()
	}
	total := subtotal - c.discount
	if total < 0 {
		total = 0
	}
	return domain.Totals{Subtotal: subtotal, Discount: c.discount, Total: total}
}

// Register turns carts into sale records and keeps the most recent ones.
type Register struct {
	history []domain.SaleRecord
	limit   int
	now     func() time.Time
	newID   func() string
}

// RegisterOption configures a Register.
type RegisterOption func(*Register)

// WithClock sets the time source used to stamp sales.
func WithClock(now func() time.Time) RegisterOption {
	return func(r *Register) { r.now = now }
}

// WithTransactionIDs overrides the sale id generator.
func WithTransactionIDs(gen func() string) RegisterOption {
	return func(r *Register) { r.newID = gen }
}

// WithHistory seeds the recent-sales list, most recent first.
func WithHistory(records []domain.SaleRecord) RegisterOption {
	return func(r *Register) { r.history = append([]domain.SaleRecord(nil), records...) }
}

// NewRegister returns a register with an empty history.
func NewRegister(opts ...RegisterOption) *Register {
	r := &Register{
		limit: HistoryLimit,
		now:   time.Now,
		newID: util.TransactionID,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.trim()
	return r
}

// CompleteSale records a sale for the current cart contents. It does not
// modify the cart; the caller clears it once the record has been handled.
func (r *Register) CompleteSale(c *Cart, method domain.PaymentMethod) (domain.SaleRecord, error) {
	if c.Len() == 0 {
		return domain.SaleRecord{}, domain.NewEmptyCartError()
	}
	if !method.Valid() {
		return domain.SaleRecord{}, domain.NewInvalidPaymentMethodError(string(method))
	}
	rec := domain.SaleRecord{
		ID:         r.newID(),
		Time:       r.now(),
		Total:      ComputeTotals(c).Total,
		Method:     method,
		ItemsCount: c.Len(),
	}
	r.history = append([]domain.SaleRecord{rec}, r.history...)
	r.trim()
	return rec, nil
}

// History returns recent sales, most recent first.
func (r *Register) History() []domain.SaleRecord {
	return append([]domain.SaleRecord(nil), r.history...)
}

func (r *Register) trim() {
	if len(r.history) > r.limit {
		r.history = r.history[:r.limit]
	}
}
