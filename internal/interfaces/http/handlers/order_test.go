// internal/interfaces/http/handlers/order_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvista/storefront/internal/domain/cart"
	"github.com/techvista/storefront/internal/domain/catalog"
	"github.com/techvista/storefront/internal/domain/order"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/infrastructure/storage"
	"github.com/techvista/storefront/internal/interfaces/http/middleware"
)

type orderFixture struct {
	router  *gin.Engine
	session *session.Service
	orders  *order.Service
}

func newOrderRouter(t *testing.T) *orderFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	store := storage.NewMemoryStore()
	sess := session.NewService(store)
	orderSvc := order.NewService(store, sess)
	handler := NewOrderHandler(orderSvc, sess)

	router := gin.New()

	orders := router.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	orders.GET("", handler.GetOrders)
	orders.GET("/:id", handler.GetOrder)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	admin.GET("/orders", handler.AdminGetOrders)
	admin.PUT("/orders/:id/status", handler.AdminUpdateOrderStatus)

	return &orderFixture{router: router, session: sess, orders: orderSvc}
}

func (f *orderFixture) login(t *testing.T, email, password string) string {
	t.Helper()
	user, err := f.session.Login(email, password)
	require.NoError(t, err)

	handler := NewAuthHandler(f.session, testConfig())
	token, err := handler.jwtManager.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (f *orderFixture) placeOrder(t *testing.T) *order.Order {
	t.Helper()
	created, err := f.orders.Create([]cart.Item{{
		Product:  catalog.Product{ID: "phone-1", Name: "TechPhone Pro Max", Price: 100},
		Quantity: 2,
	}}, 200, "1 rue de la Paix, 75001 Paris", "card")
	require.NoError(t, err)
	return created
}

func TestOrderHandler_GetOrders(t *testing.T) {
	f := newOrderRouter(t)
	token := f.login(t, "marie@example.com", "secret")
	created := f.placeOrder(t)

	w := doJSON(f.router, http.MethodGet, "/orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, 1.0, data["total"])
	first := data["orders"].([]any)[0].(map[string]any)
	assert.Equal(t, created.ID, first["id"])
}

func TestOrderHandler_GetOrder_OwnershipGuard(t *testing.T) {
	f := newOrderRouter(t)
	ownerToken := f.login(t, "marie@example.com", "secret")
	created := f.placeOrder(t)

	w := doJSON(f.router, http.MethodGet, "/orders/"+created.ID, nil, ownerToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Another user sees not-found rather than someone else's order
	otherToken := f.login(t, "paul@example.com", "secret")
	w = doJSON(f.router, http.MethodGet, "/orders/"+created.ID, nil, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_AdminListAndStatus(t *testing.T) {
	f := newOrderRouter(t)
	f.login(t, "marie@example.com", "secret")
	created := f.placeOrder(t)

	adminToken := f.login(t, "admin", "motherboard")

	list := doJSON(f.router, http.MethodGet, "/admin/orders", nil, adminToken)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Equal(t, 1.0, decodeBody(t, list)["data"].(map[string]any)["total"])

	update := doJSON(f.router, http.MethodPut, "/admin/orders/"+created.ID+"/status", gin.H{
		"status": "shipped",
	}, adminToken)
	require.Equal(t, http.StatusOK, update.Code)
	body := decodeBody(t, update)
	assert.Equal(t, "Statut de la commande mis à jour: shipped", body["message"])

	invalid := doJSON(f.router, http.MethodPut, "/admin/orders/"+created.ID+"/status", gin.H{
		"status": "lost",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)

	missing := doJSON(f.router, http.MethodPut, "/admin/orders/order-missing/status", gin.H{
		"status": "shipped",
	}, adminToken)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestOrderHandler_RequiresAuth(t *testing.T) {
	f := newOrderRouter(t)

	w := doJSON(f.router, http.MethodGet, "/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken := f.login(t, "marie@example.com", "secret")
	w = doJSON(f.router, http.MethodGet, "/admin/orders", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
