// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techvista/storefront/internal/domain/checkout"
	"github.com/techvista/storefront/internal/domain/order"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/pkg/i18n"
)

// CheckoutHandler handles the checkout endpoint
type CheckoutHandler struct {
	checkoutService *checkout.Service
	sessionService  *session.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(co *checkout.Service, sess *session.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: co,
		sessionService:  sess,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	lang := h.sessionService.Language()

	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": i18n.CheckoutMissingFields.In(lang),
		})
		return
	}

	created, err := h.checkoutService.Process(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"message": i18n.CheckoutSuccess.In(lang),
			"data":    created,
		})
	case errors.Is(err, order.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": i18n.AuthRequired.In(lang),
		})
	case errors.Is(err, checkout.ErrMissingAddress):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": i18n.CheckoutMissingFields.In(lang),
		})
	case errors.Is(err, checkout.ErrMissingCardDetails):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": i18n.CheckoutMissingPayment.In(lang),
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		// Clearing the cart can fail after the order was already placed;
		// the order still stands, so report it alongside the warning.
		if created != nil {
			c.JSON(http.StatusCreated, gin.H{
				"message": i18n.CheckoutSuccess.In(lang),
				"warning": err.Error(),
				"data":    created,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": i18n.CheckoutPaymentFailed.In(lang),
		})
	}
}
