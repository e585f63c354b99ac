// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvista/storefront/internal/domain/cart"
	"github.com/techvista/storefront/internal/domain/catalog"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/infrastructure/storage"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	sess := session.NewService(store)
	cat := catalog.NewService([]catalog.Product{
		{ID: "phone-1", Name: "TechPhone Pro Max", Price: 100, Category: catalog.CategorySmartphone, Stock: 5},
		{ID: "laptop-1", Name: "TechBook Pro", Price: 250, Category: catalog.CategoryLaptop, Stock: 8},
	})
	handler := NewCartHandler(cart.NewService(store), cat, sess)

	router := gin.New()
	router.GET("/cart", handler.GetCart)
	router.DELETE("/cart", handler.ClearCart)
	router.POST("/cart/items", handler.AddToCart)
	router.PUT("/cart/items/:id", handler.UpdateCartItem)
	router.DELETE("/cart/items/:id", handler.RemoveFromCart)

	return router
}

func cartData(t *testing.T, body map[string]any) (items []any, totals map[string]any) {
	t.Helper()
	data := body["data"].(map[string]any)
	if data["items"] != nil {
		items = data["items"].([]any)
	}
	totals = data["totals"].(map[string]any)
	return items, totals
}

func TestCartHandler_AddAndGet(t *testing.T) {
	router := newCartRouter(t)

	add := doJSON(router, http.MethodPost, "/cart/items", gin.H{
		"product_id": "phone-1",
		"quantity":   2,
	}, "")
	require.Equal(t, http.StatusOK, add.Code)
	assert.Equal(t, "Produit ajouté au panier", decodeBody(t, add)["message"])

	get := doJSON(router, http.MethodGet, "/cart", nil, "")
	require.Equal(t, http.StatusOK, get.Code)

	items, totals := cartData(t, decodeBody(t, get))
	require.Len(t, items, 1)
	assert.Equal(t, 2.0, totals["total_items"])
	assert.Equal(t, 200.0, totals["total_price"])
}

func TestCartHandler_Add_MergesLines(t *testing.T) {
	router := newCartRouter(t)

	for i := 0; i < 2; i++ {
		w := doJSON(router, http.MethodPost, "/cart/items", gin.H{
			"product_id": "phone-1",
			"quantity":   2,
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	get := doJSON(router, http.MethodGet, "/cart", nil, "")
	items, totals := cartData(t, decodeBody(t, get))
	assert.Len(t, items, 1)
	assert.Equal(t, 4.0, totals["total_items"])
}

func TestCartHandler_Add_UnknownProduct(t *testing.T) {
	router := newCartRouter(t)

	w := doJSON(router, http.MethodPost, "/cart/items", gin.H{
		"product_id": "missing",
		"quantity":   1,
	}, "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Produit introuvable", decodeBody(t, w)["error"])
}

func TestCartHandler_Add_StockWarning(t *testing.T) {
	router := newCartRouter(t)

	// phone-1 has 5 in stock; the add still succeeds with a warning
	w := doJSON(router, http.MethodPost, "/cart/items", gin.H{
		"product_id": "phone-1",
		"quantity":   9,
	}, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Quantité demandée 9 supérieure au stock disponible 5", body["warning"])

	_, totals := cartData(t, body)
	assert.Equal(t, 9.0, totals["total_items"])
}

func TestCartHandler_UpdateItem(t *testing.T) {
	router := newCartRouter(t)

	doJSON(router, http.MethodPost, "/cart/items", gin.H{"product_id": "phone-1", "quantity": 2}, "")

	w := doJSON(router, http.MethodPut, "/cart/items/phone-1", gin.H{"quantity": 5}, "")
	require.Equal(t, http.StatusOK, w.Code)
	_, totals := cartData(t, decodeBody(t, w))
	assert.Equal(t, 5.0, totals["total_items"])

	missing := doJSON(router, http.MethodPut, "/cart/items/laptop-1", gin.H{"quantity": 1}, "")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	invalid := doJSON(router, http.MethodPut, "/cart/items/phone-1", gin.H{"quantity": 0}, "")
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	router := newCartRouter(t)

	doJSON(router, http.MethodPost, "/cart/items", gin.H{"product_id": "phone-1", "quantity": 1}, "")
	doJSON(router, http.MethodPost, "/cart/items", gin.H{"product_id": "laptop-1", "quantity": 1}, "")

	remove := doJSON(router, http.MethodDelete, "/cart/items/phone-1", nil, "")
	require.Equal(t, http.StatusOK, remove.Code)
	items, _ := cartData(t, decodeBody(t, remove))
	assert.Len(t, items, 1)

	clear := doJSON(router, http.MethodDelete, "/cart", nil, "")
	require.Equal(t, http.StatusOK, clear.Code)
	body := decodeBody(t, clear)
	assert.Equal(t, "Panier vidé", body["message"])
	items, totals := cartData(t, body)
	assert.Empty(t, items)
	assert.Equal(t, 0.0, totals["total_items"])
}
