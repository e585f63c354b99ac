// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techvista/storefront/internal/domain/order"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/interfaces/http/middleware"
	"github.com/techvista/storefront/internal/pkg/i18n"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService   *order.Service
	sessionService *session.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Service, sess *session.Service) *OrderHandler {
	return &OrderHandler{
		orderService:   orders,
		sessionService: sess,
	}
}

// UpdateStatusRequest represents an order status change
type UpdateStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// GetOrders handles GET /orders: the authenticated user's own orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	orders := h.orderService.ListByUser(userID)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"orders": orders,
			"total":  len(orders),
		},
	})
}

// GetOrder handles GET /orders/:id. Users can only see their own orders;
// admins can see any.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	lang := h.sessionService.Language()

	found, err := h.orderService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": i18n.OrderNotFound.In(lang),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	if found.UserID != userID && !middleware.IsAdminFromContext(c) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": i18n.OrderNotFound.In(lang),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": found,
	})
}

// AdminGetOrders handles GET /admin/orders. The store itself performs no
// authorization; the admin middleware on this route is the guard.
func (h *OrderHandler) AdminGetOrders(c *gin.Context) {
	orders := h.orderService.ListAll()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"orders": orders,
			"total":  len(orders),
		},
	})
}

// AdminUpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) AdminUpdateOrderStatus(c *gin.Context) {
	lang := h.sessionService.Language()

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.orderService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": i18n.OrderNotFound.In(lang),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf(i18n.OrderStatusUpdated.In(lang), updated.Status),
		"data":    updated,
	})
}
