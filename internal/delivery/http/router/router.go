// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Post routes. Reads are public, mutations require a valid token.
	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.List)
		postGroup.GET("/post/:id", r.postHandler.Get)

		postGroup.POST("/post", r.postHandler.Create, r.authMiddleware.Authenticate)
		postGroup.PUT("/post/:id", r.postHandler.Update, r.authMiddleware.Authenticate)
		postGroup.DELETE("/post/:id", r.postHandler.Delete, r.authMiddleware.Authenticate)
	}
}
