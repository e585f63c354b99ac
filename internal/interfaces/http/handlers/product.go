// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techvista/storefront/internal/domain/catalog"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/pkg/i18n"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalogService *catalog.Service
	sessionService *session.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(cat *catalog.Service, sess *session.Service) *ProductHandler {
	return &ProductHandler{
		catalogService: cat,
		sessionService: sess,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := h.catalogService.List()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	lang := h.sessionService.Language()

	product, err := h.catalogService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": i18n.ProductNotFound.In(lang),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// GetProductsByCategory handles GET /products/category/:category
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	category := catalog.Category(c.Param("category"))
	if !category.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("unknown category: %q", category),
		})
		return
	}

	products := h.catalogService.GetByCategory(category)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// SearchProducts handles GET /products/search?q=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	products := h.catalogService.Search(query)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": products,
			"total":    len(products),
			"query":    query,
		},
	})
}

// AdminCreateProduct handles POST /admin/products
func (h *ProductHandler) AdminCreateProduct(c *gin.Context) {
	lang := h.sessionService.Language()

	var req catalog.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.Add(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf(i18n.ProductAdded.In(lang), product.Name),
		"data":    product,
	})
}

// AdminUpdateProduct handles PUT /admin/products/:id
func (h *ProductHandler) AdminUpdateProduct(c *gin.Context) {
	lang := h.sessionService.Language()

	var req catalog.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": i18n.ProductNotFound.In(lang),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.ProductUpdated.In(lang),
		"data":    product,
	})
}

// AdminDeleteProduct handles DELETE /admin/products/:id
func (h *ProductHandler) AdminDeleteProduct(c *gin.Context) {
	lang := h.sessionService.Language()

	if err := h.catalogService.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": i18n.ProductNotFound.In(lang),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.ProductDeleted.In(lang),
	})
}
