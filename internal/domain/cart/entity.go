// internal/domain/cart/entity.go
package cart

import "github.com/techvista/storefront/internal/domain/catalog"

// Item represents a cart line: a product snapshot and a quantity.
// The product is copied by value when added, so later catalog edits or
// deletions do not touch the cart.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Totals represents derived cart totals, recomputed on every read
type Totals struct {
	TotalItems int     `json:"total_items"` // Sum of all quantities
	TotalPrice float64 `json:"total_price"` // Sum of price * quantity
}
