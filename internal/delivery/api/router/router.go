// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"menumaster/internal/delivery/api/middleware"
	"menumaster/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	ProfileHandler    *handler.ProfileHandler
	AdminUserHandler  *handler.AdminUserHandler
	ReportHandler     *handler.ReportHandler
	SettingsHandler   *handler.SettingsHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	profileHandler    *handler.ProfileHandler
	adminUserHandler  *handler.AdminUserHandler
	reportHandler     *handler.ReportHandler
	settingsHandler   *handler.SettingsHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		profileHandler:    params.ProfileHandler,
		adminUserHandler:  params.AdminUserHandler,
		reportHandler:     params.ReportHandler,
		settingsHandler:   params.SettingsHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/session", r.authHandler.Session)

	// Customer auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Public catalog, cart and receipts
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/:id", r.catalogHandler.GetProduct)
	apiV1.GET("/categories", r.catalogHandler.Categories)

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.ChangeQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
	}

	apiV1.GET("/orders/:id/qr", r.orderHandler.ReceiptQR)
	apiV1.POST("/orders/receipt/verify", r.orderHandler.VerifyReceipt)
	apiV1.GET("/settings", r.settingsHandler.GetSettings)

	// Routes that require a customer session
	meGroup := apiV1.Group("/me")
	meGroup.Use(r.sessionMiddleware.RequireUser)
	{
		meGroup.GET("", r.profileHandler.GetProfile)
		meGroup.PUT("", r.profileHandler.UpdateProfile)
		meGroup.PUT("/password", r.profileHandler.ChangePassword)
		meGroup.GET("/orders", r.orderHandler.MyOrders)
	}

	// Admin login is public, everything else under /admin needs the admin session
	apiV1.POST("/admin/auth/login", r.authHandler.AdminLogin)
	apiV1.POST("/admin/auth/logout", r.authHandler.AdminLogout)

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.sessionMiddleware.RequireAdmin)
	{
		adminGroup.POST("/auth/signup", r.authHandler.AdminSignup)

		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		adminGroup.GET("/users", r.adminUserHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminUserHandler.GetUser)
		adminGroup.PUT("/users/:id", r.adminUserHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminUserHandler.DeleteUser)

		adminGroup.GET("/reports", r.reportHandler.General)
		adminGroup.GET("/reports/today", r.reportHandler.Today)
		adminGroup.POST("/reports/finalize", r.reportHandler.Finalize)
		adminGroup.GET("/reports/:date", r.reportHandler.DayDetail)

		adminGroup.PATCH("/settings", r.settingsHandler.UpdateSettings)
	}
}
