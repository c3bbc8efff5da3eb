package pos

import (
	"sync"
	"testing"
	"time"

	"copsis/catalog"
	"copsis/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	clock := func() time.Time { return testNow }
	return NewSession(catalog.Sample(),
		WithSessionClock(clock),
		WithCart(NewCart(WithLineIDs(seqIDs("c")))),
		WithRegister(NewRegister(WithClock(clock), WithTransactionIDs(seqIDs("TX-")))),
	)
}

func TestSession_SearchAndAddClearsQuery(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, StateIdle, s.State())

	results := s.Search("panadol")
	require.Len(t, results, 1)
	assert.Equal(t, StateSearching, s.State())

	line, err := s.AddBatch("p1", "b1")
	require.NoError(t, err)
	assert.Equal(t, "c1", line.CartID)
	assert.Equal(t, "", s.Query())
	assert.Equal(t, StateIdle, s.State())
}

func TestSession_BlankSearchIsIdle(t *testing.T) {
	s := newTestSession()
	assert.Empty(t, s.Search("   "))
	assert.Equal(t, StateIdle, s.State())
}

func TestSession_FailedAddKeepsQuery(t *testing.T) {
	s := newTestSession()
	s.Search("amox")

	_, err := s.AddBatch("p2", "b3")
	require.True(t, domain.IsBlockedBatchError(err))
	assert.Equal(t, "amox", s.Query())
	assert.Empty(t, s.Lines())

	_, err = s.AddBatch("p2", "nope")
	assert.True(t, domain.IsBatchNotFoundError(err))
	_, err = s.AddBatch("p99", "b1")
	assert.True(t, domain.IsProductNotFoundError(err))
}

func TestSession_CheckoutResets(t *testing.T) {
	s := newTestSession()
	_, err := s.Checkout()
	require.True(t, domain.IsEmptyCartError(err))
	_, ok := s.LastSale()
	assert.False(t, ok)

	_, err = s.AddBatch("p9", "b12")
	require.NoError(t, err)
	_, err = s.AddBatch("p8", "b11")
	require.NoError(t, err)
	s.SetQuantity("c2", 10)
	s.SetDiscount(300)
	require.NoError(t, s.SetPaymentMethod(domain.PaymentTransfer))

	assert.Equal(t, domain.Totals{Subtotal: 5800, Discount: 300, Total: 5500}, s.Totals())

	rec, err := s.Checkout()
	require.NoError(t, err)
	assert.Equal(t, "TX-1", rec.ID)
	assert.Equal(t, int64(5500), rec.Total)
	assert.Equal(t, 2, rec.ItemsCount)
	assert.Equal(t, domain.PaymentTransfer, rec.Method)
	assert.Equal(t, testNow, rec.Time)

	assert.Empty(t, s.Lines())
	assert.Equal(t, domain.Totals{}, s.Totals())
	assert.Equal(t, domain.PaymentTransfer, s.PaymentMethod())
	last, ok := s.LastSale()
	require.True(t, ok)
	assert.Equal(t, rec, last)
	assert.Equal(t, []domain.SaleRecord{rec}, s.History())
}

func TestSession_CatalogUntouchedBySale(t *testing.T) {
	s := newTestSession()
	_, err := s.AddBatch("p3", "b5")
	require.NoError(t, err)
	s.SetQuantity("c1", 20)
	_, err = s.Checkout()
	require.NoError(t, err)

	_, b, err := s.Catalog().Batch("p3", "b5")
	require.NoError(t, err)
	assert.Equal(t, 20, b.Stock)
}

func TestSession_ConcurrentOperations(t *testing.T) {
	s := NewSession(catalog.Sample(), WithSessionClock(func() time.Time { return testNow }))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddBatch("p8", "b11")
			_ = s.Totals()
			s.Search("flagyl")
		}()
	}
	wg.Wait()

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 50, lines[0].Quantity)
}

func TestSession_SetPaymentMethodRejectsUnknown(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetPaymentMethod(domain.PaymentPOS))

	err := s.SetPaymentMethod(domain.PaymentMethod("Bitcoin"))
	assert.True(t, domain.IsInvalidPaymentMethodError(err))
	assert.Error(t, s.SetPaymentMethod(""))
	assert.Equal(t, domain.PaymentPOS, s.PaymentMethod())
}

func TestSession_SharedBatchIDsStayOnTheirProduct(t *testing.T) {
	cat, err := catalog.New([]domain.Product{
		{ID: "p1", Name: "Panadol", Price: 1500, Batches: []domain.Batch{batch("b1", "2026-05-20", 10)}},
		{ID: "p2", Name: "Amoxicillin", Price: 3500, Batches: []domain.Batch{batch("b1", "2026-05-20", 10)}},
	})
	require.NoError(t, err)
	s := NewSession(cat, WithSessionClock(func() time.Time { return testNow }))

	_, err = s.AddBatch("p1", "b1")
	require.NoError(t, err)
	_, err = s.AddBatch("p2", "b1")
	require.NoError(t, err)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "p2", lines[1].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(5000), s.Totals().Subtotal)
}
