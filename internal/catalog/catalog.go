// Package catalog serves the static product catalog backing the browse and
// product-detail views.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/craftroots/storefront/internal/model"
)

type Catalog struct {
	products []model.Product
	byID     map[int]model.Product
}

// New returns the catalog seeded with the marketplace's handcrafted items.
func New() *Catalog {
	products := seedProducts()
	byID := make(map[int]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// List returns all products in catalog order.
func (c *Catalog) List() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// GetByID returns the product with the given id, reporting whether it exists.
func (c *Catalog) GetByID(id int) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func seedProducts() []model.Product {
	return []model.Product{
		{
			ID:             1,
			Title:          "Artisan Ceramic Mug",
			Description:    "Handcrafted ceramic mug with unique glaze patterns. Perfect for your morning coffee.",
			Price:          decimal.RequireFromString("32.99"),
			Image:          "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Seller:         "Elena Morales",
			SellerLocation: "Antigua, Guatemala",
		},
		{
			ID:             2,
			Title:          "Woven Basket Set",
			Description:    "Beautiful set of 3 handwoven baskets made from sustainable materials.",
			Price:          decimal.RequireFromString("89.50"),
			Image:          "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Seller:         "María González",
			SellerLocation: "Oaxaca, Mexico",
		},
		{
			ID:          3,
			Title:       "Knitted Wool Scarf",
			Description: "Soft merino wool scarf in beautiful earth tones. Hand-knitted with love and care.",
			Price:       decimal.RequireFromString("35.50"),
			Image:       "https://images.unsplash.com/photo-1520903920243-00d872a2d1c9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		},
		{
			ID:          4,
			Title:       "Hand-blown Glass Vase",
			Description: "Elegant glass vase with unique patterns. Each piece is one-of-a-kind.",
			Price:       decimal.RequireFromString("68.00"),
			Image:       "https://images.unsplash.com/photo-1578500494198-246f612d3b3d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		},
		{
			ID:          5,
			Title:       "Leather Journal",
			Description: "Genuine leather journal with handmade paper. Perfect for writing and sketching.",
			Price:       decimal.RequireFromString("24.99"),
			Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		},
		{
			ID:          6,
			Title:       "Artisan Candles Set",
			Description: "Set of 3 soy candles with natural scents. Hand-poured in small batches.",
			Price:       decimal.RequireFromString("42.00"),
			Image:       "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		},
	}
}
