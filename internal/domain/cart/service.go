// internal/domain/cart/service.go
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/techvista/storefront/internal/domain/catalog"
	"github.com/techvista/storefront/internal/infrastructure/storage"
)

// storageKey is the persistence key for the cart contents
const storageKey = "cart"

var (
	// ErrInvalidQuantity is returned when a quantity below 1 is supplied
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrItemNotFound is returned when no cart line matches the product id
	ErrItemNotFound = errors.New("item not found in cart")
)

// Service handles cart business logic. The cart belongs to whoever is
// currently using the storefront; it is persisted after every mutation and
// reloaded at construction. Stock is advisory only: the service never blocks
// an add because of stock, the UI boundary may warn.
type Service struct {
	mu    sync.RWMutex
	store storage.Store
	items []Item
}

// NewService creates a cart service, restoring any persisted contents.
// A corrupt or missing snapshot yields an empty cart.
func NewService(store storage.Store) *Service {
	s := &Service{store: store}

	value, found, err := store.Load(storageKey)
	if err == nil && found {
		var items []Item
		if err := json.Unmarshal([]byte(value), &items); err == nil {
			s.items = items
		}
	}

	return s
}

// Items returns the cart lines in insertion order
func (s *Service) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Add puts quantity units of product into the cart. If the product already
// has a line, the quantity is added to it; the cart never holds two lines
// for the same product id.
func (s *Service) Add(product catalog.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			return s.persist()
		}
	}

	s.items = append(s.items, Item{Product: product.Clone(), Quantity: quantity})
	return s.persist()
}

// SetQuantity replaces the quantity of the matching line. Quantities below 1
// are rejected; removal is only through Remove.
func (s *Service) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			return s.persist()
		}
	}

	return ErrItemNotFound
}

// Remove deletes the matching line; removing an absent product is a no-op
func (s *Service) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}

	return nil
}

// Clear empties the cart
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist()
}

// TotalItems returns the sum of all quantities, recomputed on every call
func (s *Service) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price * quantity over all lines,
// recomputed on every call
func (s *Service) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Totals returns both derived values in one read
func (s *Service) Totals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var totals Totals
	for _, item := range s.items {
		totals.TotalItems += item.Quantity
		totals.TotalPrice += item.Product.Price * float64(item.Quantity)
	}
	return totals
}

// persist writes the cart snapshot; callers must hold the write lock
func (s *Service) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.store.Save(storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
