// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/techvista/storefront/internal/config"
	"github.com/techvista/storefront/internal/domain/assistant"
	"github.com/techvista/storefront/internal/domain/cart"
	"github.com/techvista/storefront/internal/domain/catalog"
	"github.com/techvista/storefront/internal/domain/checkout"
	"github.com/techvista/storefront/internal/domain/order"
	"github.com/techvista/storefront/internal/domain/session"
	"github.com/techvista/storefront/internal/interfaces/http/handlers"
	"github.com/techvista/storefront/internal/interfaces/http/middleware"
)

// Services bundles the domain services the HTTP layer exposes
type Services struct {
	Session   *session.Service
	Catalog   *catalog.Service
	Cart      *cart.Service
	Order     *order.Service
	Checkout  *checkout.Service
	Assistant *assistant.Service
}

// SetupRoutes wires all API routes onto the given router group
func SetupRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	setupAuthRoutes(rg, svc, cfg)
	setupPreferenceRoutes(rg, svc)
	setupProductRoutes(rg, svc)
	setupCartRoutes(rg, svc)
	setupOrderRoutes(rg, svc, cfg)
	setupAssistantRoutes(rg, svc)
	setupAdminRoutes(rg, svc, cfg)
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(svc.Session, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// setupPreferenceRoutes sets up language and theme routes. Preferences are
// device-level, not account-level, so no authentication is required.
func setupPreferenceRoutes(rg *gin.RouterGroup, svc *Services) {
	preferencesHandler := handlers.NewPreferencesHandler(svc.Session)

	preferences := rg.Group("/preferences")
	{
		preferences.GET("", preferencesHandler.GetPreferences)
		preferences.POST("/language/toggle", preferencesHandler.ToggleLanguage)
		preferences.PUT("/theme", preferencesHandler.SetTheme)
	}
}

// setupProductRoutes sets up public catalog routes
func setupProductRoutes(rg *gin.RouterGroup, svc *Services) {
	productHandler := handlers.NewProductHandler(svc.Catalog, svc.Session)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/search", productHandler.SearchProducts)
		products.GET("/category/:category", productHandler.GetProductsByCategory)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// setupCartRoutes sets up cart routes. The cart works for guests too, so
// no authentication is required.
func setupCartRoutes(rg *gin.RouterGroup, svc *Services) {
	cartHandler := handlers.NewCartHandler(svc.Cart, svc.Catalog, svc.Session)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}
}

// setupOrderRoutes sets up order and checkout routes
func setupOrderRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(svc.Order, svc.Session)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout, svc.Session)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(cfg))
	{
		checkout.POST("", checkoutHandler.Checkout)
	}
}

// setupAssistantRoutes sets up AI assistant routes
func setupAssistantRoutes(rg *gin.RouterGroup, svc *Services) {
	assistantHandler := handlers.NewAssistantHandler(svc.Assistant)

	ai := rg.Group("/assistant")
	{
		ai.POST("/ask", assistantHandler.Ask)
		ai.POST("/image", assistantHandler.AnalyzeImage)
	}
}

// setupAdminRoutes sets up admin-only catalog and order management routes
func setupAdminRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(svc.Catalog, svc.Session)
	orderHandler := handlers.NewOrderHandler(svc.Order, svc.Session)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/products", productHandler.AdminCreateProduct)
		admin.PUT("/products/:id", productHandler.AdminUpdateProduct)
		admin.DELETE("/products/:id", productHandler.AdminDeleteProduct)

		admin.GET("/orders", orderHandler.AdminGetOrders)
		admin.PUT("/orders/:id/status", orderHandler.AdminUpdateOrderStatus)
	}
}
