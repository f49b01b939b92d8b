// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	dashboardController   *controller.DashboardController
	transactionController *controller.TransactionController
	profileController     *controller.ProfileController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	dashboardController *controller.DashboardController,
	transactionController *controller.TransactionController,
	profileController *controller.ProfileController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		dashboardController:   dashboardController,
		transactionController: transactionController,
		profileController:     profileController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	if err := dto.RegisterValidators(); err != nil {
		slog.Error("Failed to register request validators", "error", err)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil {
			v1.GET("/auth/providers", r.authController.Providers)
		}

		if r.authMiddleware == nil {
			return
		}

		// Everything below requires a merchant identity.
		authed := v1.Group("")
		authed.Use(r.authMiddleware.Authenticate())
		if r.rateLimiter != nil {
			authed.Use(r.rateLimiter.Middleware())
		}

		if r.dashboardController != nil {
			authed.GET("/dashboard/overview", r.dashboardController.GetOverview)
		}

		if r.transactionController != nil {
			transactions := authed.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
			}
		}

		if r.profileController != nil {
			profile := authed.Group("/profile")
			{
				profile.GET("", r.profileController.Get)
				profile.PATCH("", r.profileController.Update)
			}
		}
	}
}
