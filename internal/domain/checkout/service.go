// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techvista/storefront/internal/config"
	"github.com/techvista/storefront/internal/domain/cart"
	"github.com/techvista/storefront/internal/domain/order"
	"github.com/techvista/storefront/internal/domain/session"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no items
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingAddress is returned when required address fields are empty
	ErrMissingAddress = errors.New("shipping address is required")

	// ErrMissingCardDetails is returned for card payment without card fields
	ErrMissingCardDetails = errors.New("card details are required for card payment")
)

// Payment method tags accepted by the simulated checkout
const (
	PaymentCard     = "card"
	PaymentPayPal   = "paypal"
	PaymentTransfer = "transfer"
)

// Service orchestrates checkout: it snapshots the cart and session, simulates
// payment processing, creates the order, then clears the cart. Order creation
// and cart clearing are two separate persistence writes with no atomicity.
type Service struct {
	config       *config.Config
	cartService  *cart.Service
	orderService *order.Service
	session      *session.Service
}

// NewService creates a new checkout service
func NewService(cfg *config.Config, cartSvc *cart.Service, orderSvc *order.Service, sess *session.Service) *Service {
	return &Service{
		config:       cfg,
		cartService:  cartSvc,
		orderService: orderSvc,
		session:      sess,
	}
}

// Request represents checkout form data
type Request struct {
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`

	// Card fields, required only for card payment. Never stored.
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVC    string `json:"card_cvc"`
}

// Process validates the request, simulates the payment delay and transforms
// the cart into an order. The context bounds the simulated delay: a caller
// that navigates away abandons the checkout with ctx.Err().
func (s *Service) Process(ctx context.Context, req *Request) (*order.Order, error) {
	if s.session.Current() == nil {
		return nil, order.ErrUnauthenticated
	}

	if req.Address == "" || req.City == "" || req.PostalCode == "" {
		return nil, ErrMissingAddress
	}
	if req.PaymentMethod == PaymentCard {
		if req.CardNumber == "" || req.CardExpiry == "" || req.CardCVC == "" {
			return nil, ErrMissingCardDetails
		}
	}

	items := s.cartService.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := s.cartService.TotalPrice()

	// Simulated payment processing; no real gateway is involved
	select {
	case <-time.After(s.config.Checkout.PaymentDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	fullAddress := fmt.Sprintf("%s, %s %s", req.Address, req.PostalCode, req.City)

	created, err := s.orderService.Create(items, total, fullAddress, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	// Separate write; a failure here leaves the order placed and the cart
	// intact, which the caller surfaces but does not roll back
	if err := s.cartService.Clear(); err != nil {
		return created, fmt.Errorf("order placed but cart not cleared: %w", err)
	}

	return created, nil
}
