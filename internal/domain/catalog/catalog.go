package catalog

// Recipe maps an ingredient name to the quantity needed for one unit.
type Recipe map[string]int

// Product is a catalog entry. Products are immutable after process start.
type Product struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"` // cents
	Recipe Recipe `json:"recipe"`
}

// Clone returns a deep copy so callers can hold a product without sharing the recipe map.
func (p Product) Clone() Product {
	recipe := make(Recipe, len(p.Recipe))
	for ingredient, qty := range p.Recipe {
		recipe[ingredient] = qty
	}
	p.Recipe = recipe
	return p
}

// Catalog is the read-only list of products on offer.
type Catalog struct {
	products []Product
	byID     map[string]int
}

func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}
	return c
}

// Default returns the bouquet line-up the shop opened with.
func Default() *Catalog {
	return New([]Product{
		{
			ID:    "sunflower-bouquet",
			Name:  "Sunflower Bouquet",
			Price: 1699,
			Recipe: Recipe{
				"wrapping paper":    1,
				"ribbon":            1,
				"sunflower":         2,
				"decorative flower": 6,
			},
		},
		{
			ID:    "rose-bouquet",
			Name:  "Rose Bouquet",
			Price: 1899,
			Recipe: Recipe{
				"wrapping paper":    1,
				"ribbon":            1,
				"rose":              2,
				"decorative flower": 6,
			},
		},
	})
}

// List returns the products in their display order.
func (c *Catalog) List() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Clone())
	}
	return out
}

// Find returns the product with the given id.
func (c *Catalog) Find(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i].Clone(), true
}
