package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"copsis/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	c := Sample()
	require.Equal(t, 10, c.Len())

	p, b, err := c.Batch("p2", "b3")
	require.NoError(t, err)
	assert.Equal(t, "Amoxicillin 500mg", p.Name)
	assert.Equal(t, "AMX-882", b.BatchNumber)
	assert.Equal(t, "2023-12-01", b.ExpiryDate.String())
}

func TestLookupErrors(t *testing.T) {
	c := Sample()

	_, err := c.Product("nope")
	assert.True(t, domain.IsProductNotFoundError(err))

	_, _, err = c.Batch("p1", "b99")
	assert.True(t, domain.IsBatchNotFoundError(err))
}

func TestProductsReturnsCopies(t *testing.T) {
	c := Sample()
	ps := c.Products()
	ps[0].Name = "changed"
	ps[0].Batches[0].Stock = 0

	p, err := c.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, "Panadol Extra", p.Name)
	assert.Equal(t, 15, p.Batches[0].Stock)
}

func TestNewRejectsDuplicates(t *testing.T) {
	p := domain.Product{ID: "p1", Name: "A"}
	_, err := New([]domain.Product{p, p})
	assert.True(t, domain.IsInvalidProductError(err))
	assert.False(t, domain.IsInvalidItemError(err))
	assert.Contains(t, err.Error(), "invalid catalog product")
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml document", func(t *testing.T) {
		c, err := LoadFile("testdata/catalog.yaml")
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())
		_, b, err := c.Batch("p2", "b4")
		require.NoError(t, err)
		assert.Equal(t, 100, b.Stock)
	})

	t.Run("json array", func(t *testing.T) {
		c, err := LoadFile("testdata/catalog.json")
		require.NoError(t, err)
		p, err := c.Product("p3")
		require.NoError(t, err)
		assert.Equal(t, int64(2000), p.Price)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := LoadFile("testdata/bad_date.json")
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, []byte("id,name"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/none.json")
		assert.Error(t, err)
	})
}
