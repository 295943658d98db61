// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"relief/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AllocationHandler   *handler.AllocationHandler
	SupplyHandler       *handler.SupplyHandler
	NotificationHandler *handler.NotificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	allocationHandler   *handler.AllocationHandler
	supplyHandler       *handler.SupplyHandler
	notificationHandler *handler.NotificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		allocationHandler:   params.AllocationHandler,
		supplyHandler:       params.SupplyHandler,
		notificationHandler: params.NotificationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Demand request routes
	requestGroup := e.Group("/requests")
	{
		requestGroup.POST("/:id/allocate", r.allocationHandler.Allocate)
		requestGroup.GET("/:id/plan", r.allocationHandler.Plan)
	}

	// Supply routes
	supplyGroup := e.Group("/supply")
	{
		supplyGroup.GET("", r.supplyHandler.ListCompatible)
		supplyGroup.GET("/:id/history", r.supplyHandler.History)
		supplyGroup.DELETE("/:id", r.supplyHandler.Withdraw)
		supplyGroup.PATCH("/:id/quantity", r.supplyHandler.AdjustQuantity)
	}

	// Notification feed routes
	e.GET("/organizations/:id/notifications", r.notificationHandler.ListForOrganization)
	e.POST("/notifications/:id/read", r.notificationHandler.MarkRead)
}
