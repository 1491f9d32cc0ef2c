package domain

import "fmt"

// Catalog is an in-memory, read-only collection of products for one store.
// Iteration order is load order and is stable for the life of the process.
type Catalog struct {
	store    string
	products []Product
	bySKU    map[string]int
}

// NewCatalog builds a catalog from pre-parsed products. The SKU of every
// product must be unique within the catalog; a duplicate fails construction.
func NewCatalog(store string, products []Product) (*Catalog, error) {
	c := &Catalog{
		store:    store,
		products: make([]Product, len(products)),
		bySKU:    make(map[string]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if prev, ok := c.bySKU[p.SKU]; ok {
			return nil, fmt.Errorf("%w: %q at rows %d and %d (%s)",
				ErrDuplicateSKU, p.SKU, prev+1, i+1, store)
		}
		c.bySKU[p.SKU] = i
	}
	return c, nil
}

// Store returns the store label the catalog was loaded for.
func (c *Catalog) Store() string { return c.store }

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }

// Products returns the products in load order. The returned slice is shared
// and must be treated as read-only.
func (c *Catalog) Products() []Product { return c.products }

// BySKU returns the product with the given SKU, if present.
func (c *Catalog) BySKU(sku string) (Product, bool) {
	i, ok := c.bySKU[sku]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}
