// Package catalog holds the read-only product and batch reference data a sale
// session searches and sells from.
package catalog

import (
	"copsis/domain"
)

// Catalog is an immutable, ordered set of products.
type Catalog struct {
	products []domain.Product
	index    map[string]int
}

// New validates products and builds a catalog preserving their order.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := domain.ValidateProduct(p); err != nil {
			return nil, err
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, domain.NewInvalidProductError(p.ID, "id", "duplicate product", p.ID)
		}
		p.Batches = append([]domain.Batch(nil), p.Batches...)
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Products returns a copy of all products in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = clone(p)
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Product looks a product up by id.
func (c *Catalog) Product(id string) (domain.Product, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}
	return clone(c.products[i]), nil
}

// Batch looks up a product and one of its batches.
func (c *Catalog) Batch(productID, batchID string) (domain.Product, domain.Batch, error) {
	p, err := c.Product(productID)
	if err != nil {
		return domain.Product{}, domain.Batch{}, err
	}
	for _, b := range p.Batches {
		if b.ID == batchID {
			return p, b, nil
		}
	}
	return domain.Product{}, domain.Batch{}, domain.NewBatchNotFoundError(productID, batchID)
}

func clone(p domain.Product) domain.Product {
	p.Batches = append([]domain.Batch(nil), p.Batches...)
	return p
}
