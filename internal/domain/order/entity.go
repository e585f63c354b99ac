// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/techvista/storefront/internal/domain/cart"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValid reports whether the status is one of the known values
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is an immutable record of a completed checkout. Items are value
// copies taken at creation time; later cart or catalog changes never alter
// an existing order. Orders are never deleted, only their status changes.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Items         []cart.Item `json:"items"`
	Total         float64     `json:"total"`
	Status        Status      `json:"status"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"payment_method"`
	CreatedAt     time.Time   `json:"created_at"`
}
