// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gramsaarthi/config"
	"gramsaarthi/internal/delivery/http/middleware"
	"gramsaarthi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group(r.cfg.HTTP.APIPrefix)

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Self-service routes that require a valid bearer token
	meGroup := api.Group("/users")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/me", r.accountHandler.GetMe)
		meGroup.PUT("/me", r.accountHandler.UpdateMe)
		meGroup.DELETE("/me", r.accountHandler.DeleteMe)
	}
}
