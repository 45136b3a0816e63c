// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"steakz/internal/delivery/http/middleware"
	"steakz/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	OrderHandler     *handler.OrderHandler
	PaymentHandler   *handler.PaymentHandler
	MenuHandler      *handler.MenuHandler
	BranchHandler    *handler.BranchHandler
	InventoryHandler *handler.InventoryHandler
	StaffHandler     *handler.StaffHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
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
	authenticate := r.params.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Branch listing and menu browsing are public; customers need them to order.
	e.GET("/branches", r.params.BranchHandler.ListBranches)
	e.GET("/menu", r.params.MenuHandler.ListMenu)

	// Branch management routes
	branchGroup := e.Group("/branches", authenticate)
	{
		branchGroup.POST("", r.params.BranchHandler.CreateBranch)
		branchGroup.PUT("/:id", r.params.BranchHandler.UpdateBranch)
		branchGroup.DELETE("/:id", r.params.BranchHandler.DeleteBranch)
	}

	// Menu management routes
	menuGroup := e.Group("/menu", authenticate)
	{
		menuGroup.POST("", r.params.MenuHandler.CreateMenuItem)
		menuGroup.PUT("/:id", r.params.MenuHandler.UpdateMenuItem)
		menuGroup.PATCH("/:id/availability", r.params.MenuHandler.SetAvailability)
		menuGroup.DELETE("/:id", r.params.MenuHandler.DeleteMenuItem)
	}

	// Order lifecycle routes
	orderGroup := e.Group("/orders", authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.CreateOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", r.params.OrderHandler.TransitionStatus)
		orderGroup.DELETE("/:id", r.params.OrderHandler.DeleteOrder)
		orderGroup.GET("/:id/receipt", r.params.OrderHandler.GetReceipt)
	}

	// Payment routes
	paymentGroup := e.Group("/payments", authenticate)
	{
		paymentGroup.POST("", r.params.PaymentHandler.CreatePayment)
		paymentGroup.GET("", r.params.PaymentHandler.ListPayments)
	}

	// Inventory routes
	inventoryGroup := e.Group("/inventory", authenticate)
	{
		inventoryGroup.POST("", r.params.InventoryHandler.CreateInventoryItem)
		inventoryGroup.GET("", r.params.InventoryHandler.ListInventory)
		inventoryGroup.PATCH("/:id/quantity", r.params.InventoryHandler.AdjustQuantity)
	}

	// Staff management routes
	staffGroup := e.Group("/staff", authenticate)
	{
		staffGroup.POST("", r.params.StaffHandler.CreateStaff)
		staffGroup.GET("", r.params.StaffHandler.ListStaff)
	}

	// Dashboard routes
	dashboardGroup := e.Group("/dashboard", authenticate)
	{
		dashboardGroup.GET("/stats", r.params.DashboardHandler.GetStats)
	}
}
