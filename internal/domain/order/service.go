// internal/domain/order/service.go
package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/techvista/storefront/internal/domain/cart"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/infrastructure/storage"
)

// storageKey is the persistence key for all order records
const storageKey = "orders"

var (
	// ErrUnauthenticated is returned when an order is created without identity
	ErrUnauthenticated = errors.New("authentication required to place an order")

	// ErrNotFound is returned when no order matches the requested id
	ErrNotFound = errors.New("order not found")
)

// Service handles order business logic. It reads the session store to bind
// new orders to the authenticated identity. Listing performs no authorization:
// the HTTP boundary guards the admin-only ListAll route.
type Service struct {
	mu      sync.RWMutex
	store   storage.Store
	session *session.Service
	orders  []Order
}

// NewService creates an order service, restoring persisted orders
func NewService(store storage.Store, sess *session.Service) *Service {
	s := &Service{store: store, session: sess}

	if value, found, err := store.Load(storageKey); err == nil && found {
		var orders []Order
		if err := json.Unmarshal([]byte(value), &orders); err == nil {
			s.orders = orders
		}
	}

	return s
}

// Create places a new order for the authenticated user. Items are deep
// copied, so clearing or mutating the source cart afterwards leaves the
// order untouched. The order starts in status pending.
func (s *Service) Create(items []cart.Item, total float64, address, paymentMethod string) (*Order, error) {
	user := s.session.Current()
	if user == nil {
		return nil, ErrUnauthenticated
	}

	copied := make([]cart.Item, len(items))
	for i, item := range items {
		copied[i] = cart.Item{
			Product:  item.Product.Clone(),
			Quantity: item.Quantity,
		}
	}

	newOrder := Order{
		ID:            fmt.Sprintf("order-%s", uuid.New().String()),
		UserID:        user.ID,
		Items:         copied,
		Total:         total,
		Status:        StatusPending,
		Address:       address,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, newOrder)
	if err := s.persist(); err != nil {
		return nil, err
	}

	return &newOrder, nil
}

// ListByUser returns all orders owned by userID, in storage order
func (s *Service) ListByUser(userID string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Order
	for _, o := range s.orders {
		if o.UserID == userID {
			matches = append(matches, o)
		}
	}
	return matches
}

// ListAll returns every order regardless of owner
func (s *Service) ListAll() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// GetByID returns the order with the given id
func (s *Service) GetByID(orderID string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			found := o
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateStatus overwrites the status of the matching order. Any status may
// follow any other; no transition rules are enforced.
func (s *Service) UpdateStatus(orderID string, newStatus Status) (*Order, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid order status: %q", newStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = newStatus
			if err := s.persist(); err != nil {
				return nil, err
			}
			updated := s.orders[i]
			return &updated, nil
		}
	}

	return nil, ErrNotFound
}

// persist writes the order list; callers must hold the write lock
func (s *Service) persist() error {
	data, err := json.Marshal(s.orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}

	if err := s.store.Save(storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist orders: %w", err)
	}
	return nil
}
