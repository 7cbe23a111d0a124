package router

import (
	"time"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/logger"
	"storefront/internal/menu"
	"storefront/internal/middleware"
	"storefront/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps holds everything the HTTP surface is built from.
type Deps struct {
	CORSOrigins []string

	Menu      *menu.Handler
	MenuAdmin *menu.AdminHandler
	Cart      *cart.Handler
	Checkout  *checkout.Handler
	Auth      *auth.Handler
	Orders    *order.Handler
	OrdersHub *order.Hub

	Sessions   middleware.SessionValidator
	CartTokens middleware.CartTokenParser
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware())

	corsConfig := cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Cart-Token"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(d.CORSOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// --------------------------------------------------
	// Storefront
	// --------------------------------------------------
	r.GET("/menu", d.Menu.List)
	r.GET("/menu/categories", d.Menu.Categories)

	r.POST("/cart", d.Cart.Create)

	cartRoutes := r.Group("/cart")
	cartRoutes.Use(middleware.CartToken(d.CartTokens))
	{
		cartRoutes.GET("", d.Cart.Get)
		cartRoutes.DELETE("", d.Cart.Clear)
		cartRoutes.POST("/items", d.Cart.AddItem)
		cartRoutes.PATCH("/items/:index", d.Cart.UpdateItem)
		cartRoutes.DELETE("/items/:index", d.Cart.RemoveItem)
		cartRoutes.POST("/checkout", d.Checkout.Checkout)
	}

	// --------------------------------------------------
	// Admin
	// --------------------------------------------------
	r.POST("/admin/login", d.Auth.Login)
	r.POST("/admin/logout", d.Auth.Logout)
	r.GET("/admin/session", d.Auth.Session)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminSession(d.Sessions))
	{
		admin.GET("/menu", d.MenuAdmin.List)
		admin.POST("/menu", d.MenuAdmin.Create)
		admin.GET("/menu/export", d.MenuAdmin.Export)
		admin.PUT("/menu/:id", d.MenuAdmin.Update)
		admin.DELETE("/menu/:id", d.MenuAdmin.Delete)
		admin.POST("/menu/:id/image", d.MenuAdmin.UploadImage)

		admin.GET("/orders", d.Orders.List)
		admin.PATCH("/orders/:id/status", d.Orders.UpdateStatus)
		admin.GET("/orders/ws", d.OrdersHub.Serve)
	}

	return r
}
