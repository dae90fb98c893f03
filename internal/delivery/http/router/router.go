// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kda/internal/delivery/http/middleware"
	"kda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	CustomerHandler   *handler.CustomerHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	customerHandler   *handler.CustomerHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		customerHandler:   params.CustomerHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration is exempt from session resolution: the request carries
	// no usable identity and resolving it would clear the very cookies the
	// handler is about to set.
	e.POST("/api/register", r.authHandler.Register)

	// Session resolution runs on every other API route, including login,
	// so login can short-circuit and cookies stay consistent.
	api := e.Group("/api")
	api.Use(r.sessionMiddleware.Resolve)

	api.POST("/login", r.authHandler.Login)

	// Routes that require a resolved identity
	api.GET("/isAuthenticated", r.authHandler.IsAuthenticated, r.sessionMiddleware.RequireAuth)
	api.POST("/logout", r.authHandler.Logout, r.sessionMiddleware.RequireAuth)
	api.GET("/users/current", r.userHandler.Current, r.sessionMiddleware.RequireAuth)

	customerGroup := api.Group("/customers")
	customerGroup.Use(r.sessionMiddleware.RequireAuth)
	{
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.PUT("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
	}
}
