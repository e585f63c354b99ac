// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techvista/storefront/internal/domain/cart"
	"github.com/techvista/storefront/internal/domain/catalog"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/pkg/i18n"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService    *cart.Service
	catalogService *catalog.Service
	sessionService *session.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartSvc *cart.Service, cat *catalog.Service, sess *session.Service) *CartHandler {
	return &CartHandler{
		cartService:    cartSvc,
		catalogService: cat,
		sessionService: sess,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	h.respondWithCart(c, http.StatusOK, "", "")
}

// AddToCart handles POST /cart/items. Stock is advisory: when the requested
// total exceeds the catalog stock the item is still added and the response
// carries a warning for the UI to surface.
func (h *CartHandler) AddToCart(c *gin.Context) {
	lang := h.sessionService.Language()

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.GetByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": i18n.ProductNotFound.In(lang),
		})
		return
	}

	if err := h.cartService.Add(product, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	warning := ""
	for _, item := range h.cartService.Items() {
		if item.Product.ID == product.ID && item.Quantity > product.Stock {
			warning = fmt.Sprintf(i18n.CartStockWarning.In(lang), item.Quantity, product.Stock)
			break
		}
	}

	h.respondWithCart(c, http.StatusOK, i18n.CartItemAdded.In(lang), warning)
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	lang := h.sessionService.Language()

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := h.cartService.SetQuantity(c.Param("id"), req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.respondWithCart(c, http.StatusOK, i18n.CartItemUpdated.In(lang), "")
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	lang := h.sessionService.Language()

	if err := h.cartService.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item",
		})
		return
	}

	h.respondWithCart(c, http.StatusOK, i18n.CartItemRemoved.In(lang), "")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := h.sessionService.Language()

	if err := h.cartService.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	h.respondWithCart(c, http.StatusOK, i18n.CartCleared.In(lang), "")
}

func (h *CartHandler) respondWithCart(c *gin.Context, status int, message, warning string) {
	response := gin.H{
		"data": gin.H{
			"items":  h.cartService.Items(),
			"totals": h.cartService.Totals(),
		},
	}
	if message != "" {
		response["message"] = message
	}
	if warning != "" {
		response["warning"] = warning
	}

	c.JSON(status, response)
}
