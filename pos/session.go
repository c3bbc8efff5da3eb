package pos

import (
	"strings"
	"sync"
	"time"

	"copsis/catalog"
	"copsis/domain"
)

// State is where a session is in the sale flow.
type State int

const (
	StateIdle State = iota
	StateSearching
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	default:
		return "unknown"
	}
}

// Session is one cashier's sale in progress: the active search, the cart,
// the chosen payment method and the register. All methods are serialized.
type Session struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	cart     *Cart
	register *Register
	now      func() time.Time
	query    string
	method   domain.PaymentMethod
	lastSale *domain.SaleRecord
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionClock sets the clock used for expiry checks.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithCart replaces the session cart.
func WithCart(c *Cart) SessionOption {
	return func(s *Session) { s.cart = c }
}

// WithRegister replaces the session register.
func WithRegister(r *Register) SessionOption {
	return func(s *Session) { s.register = r }
}

// NewSession starts an idle session over cat.
func NewSession(cat *catalog.Catalog, opts ...SessionOption) *Session {
	s := &Session{
		catalog: cat,
		now:     time.Now,
		method:  domain.PaymentCash,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cart == nil {
		s.cart = NewCart()
	}
	if s.register == nil {
		s.register = NewRegister(WithClock(s.now))
	}
	return s
}

// Now returns the session's current time.
func (s *Session) Now() time.Time { return s.now() }

// Catalog returns the catalog the session sells from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Search sets the active query and returns matching products.
func (s *Session) Search(query string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	return Search(query, s.catalog.Products())
}

// Query returns the active search query.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// State reports whether a search is active.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(s.query) != "" {
		return StateSearching
	}
	return StateIdle
}

// AddBatch adds one unit of the given batch and clears the search on success.
func (s *Session) AddBatch(productID, batchID string) (domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, b, err := s.catalog.Batch(productID, batchID)
	if err != nil {
		return domain.CartLine{}, err
	}
	line, err := s.cart.AddBatch(p, b, s.now())
	if err != nil {
		return domain.CartLine{}, err
	}
	s.query = ""
	return line, nil
}

// RemoveLine removes a cart line; unknown ids are ignored.
func (s *Session) RemoveLine(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveLine(cartID)
}

// SetQuantity sets a clamped quantity on a cart line.
func (s *Session) SetQuantity(cartID string, qty int) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(cartID, qty)
}

// SetDiscount sets the manual discount, floored at zero.
func (s *Session) SetDiscount(amount int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetDiscount(amount)
}

// SetPaymentMethod chooses how the next sale is paid. Methods outside
// domain.PaymentMethods are rejected and the current choice is kept.
func (s *Session) SetPaymentMethod(m domain.PaymentMethod) error {
	if !m.Valid() {
		return domain.NewInvalidPaymentMethodError(string(m))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.method = m
	return nil
}

// PaymentMethod returns the chosen payment method.
func (s *Session) PaymentMethod() domain.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

// Lines returns the cart lines in insertion order.
func (s *Session) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Totals derives the current subtotal and total.
func (s *Session) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.cart)
}

// Checkout completes the sale and returns the session to idle with an empty
// cart and no discount. The payment method is kept for the next sale.
func (s *Session) Checkout() (domain.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.register.CompleteSale(s.cart, s.method)
	if err != nil {
		return domain.SaleRecord{}, err
	}
	s.cart.Clear()
	s.query = ""
	s.lastSale = &rec
	return rec, nil
}

// LastSale returns the most recent sale completed in this session.
func (s *Session) LastSale() (domain.SaleRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSale == nil {
		return domain.SaleRecord{}, false
	}
	return *s.lastSale, true
}

// History returns recent sales, most recent first.
func (s *Session) History() []domain.SaleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register.History()
}
