// Package router contains routing setup for the HTTP delivery.
package router

import (
	"vendo/internal/delivery/http/middleware"
	"vendo/internal/delivery/http/router/handler"
	"vendo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	VendorHandler   *handler.VendorHandler
	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.params.AuthMiddleware.Authenticate
	requireVendor := r.params.AuthMiddleware.RequireRole(entity.RoleVendor.String())
	requireCustomer := r.params.AuthMiddleware.RequireRole(entity.RoleCustomer.String())

	// Account routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.params.UserHandler.Register)
		userGroup.POST("/login", r.params.UserHandler.Login)
		userGroup.POST("/refresh", r.params.UserHandler.RefreshToken)
		userGroup.POST("/logout", r.params.UserHandler.Logout)
		userGroup.GET("/profile", r.params.UserHandler.Profile, authenticate)
	}

	// Vendor-facing routes, role-gated at the surface
	vendorGroup := e.Group("/vendor", authenticate, requireVendor)
	{
		vendorGroup.POST("/create-store", r.params.VendorHandler.CreateStore)
		vendorGroup.POST("/add-product", r.params.VendorHandler.AddProduct)
		vendorGroup.GET("/product-reviews", r.params.VendorHandler.ProductReviews)
		vendorGroup.GET("/followers", r.params.VendorHandler.Followers)
		vendorGroup.GET("/store-qr", r.params.VendorHandler.StoreQR)
	}

	// Customer-facing routes
	customerGroup := e.Group("/customer", authenticate, requireCustomer)
	{
		customerGroup.POST("/create-profile", r.params.CustomerHandler.CreateProfile)
		customerGroup.PUT("/update-profile", r.params.CustomerHandler.UpdateProfile)
		customerGroup.GET("/orders", r.params.CustomerHandler.Orders)
		customerGroup.GET("/reviews", r.params.CustomerHandler.Reviews)
		customerGroup.GET("/vendors", r.params.CustomerHandler.Vendors)
		customerGroup.POST("/follow/:vendorId", r.params.CustomerHandler.Follow)
		customerGroup.DELETE("/follow/:vendorId", r.params.CustomerHandler.Unfollow)
		customerGroup.GET("/following", r.params.CustomerHandler.Following)
	}

	// Catalog routes; reads are public, writes authenticated with ownership
	// enforced in the application layer
	productGroup := e.Group("/product")
	{
		productGroup.POST("/create", r.params.ProductHandler.Create, authenticate)
		productGroup.GET("/all", r.params.ProductHandler.All)
		productGroup.GET("/:productId", r.params.ProductHandler.Get)
		productGroup.PUT("/update/:productId", r.params.ProductHandler.Update, authenticate)
		productGroup.DELETE("/delete/:productId", r.params.ProductHandler.Delete, authenticate)
	}

	// Order ledger routes
	orderGroup := e.Group("/order", authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Create)
		orderGroup.GET("/vendor", r.params.OrderHandler.VendorOrders)
		orderGroup.GET("/customer", r.params.OrderHandler.CustomerOrders)
		orderGroup.GET("/:orderId", r.params.OrderHandler.Get)
	}

	// Review ledger routes; the product listing is public
	reviewGroup := e.Group("/review")
	{
		reviewGroup.POST("/add", r.params.ReviewHandler.Add, authenticate)
		reviewGroup.GET("/product/:productId", r.params.ReviewHandler.ByProduct)
		reviewGroup.PUT("/update/:reviewId", r.params.ReviewHandler.Update, authenticate)
		reviewGroup.DELETE("/delete/:reviewId", r.params.ReviewHandler.Delete, authenticate)
	}
}
