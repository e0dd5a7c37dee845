// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/easyimob/backend/internal/integration/entrypoint/controller"
	"github.com/easyimob/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	analyticsController *controller.AnalyticsController
	rateLimiter         *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	analyticsController *controller.AnalyticsController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		analyticsController: analyticsController,
		rateLimiter:         rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route is read-only
// and accepts no filtering parameters.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	if r.analyticsController == nil {
		return
	}

	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	raw := v1.Group("/raw")
	{
		raw.GET("/payments", r.analyticsController.GetRawPayments)
	}

	analytics := v1.Group("/analytics")
	{
		analytics.GET("/payments-by-property", r.analyticsController.GetPaymentsByProperty)
		analytics.GET("/sales-by-month", r.analyticsController.GetSalesByMonth)
		analytics.GET("/sales-share-by-type", r.analyticsController.GetSalesShareByType)
	}
}
