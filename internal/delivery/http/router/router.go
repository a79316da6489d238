// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kennel/internal/delivery/http/middleware"
	"kennel/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler *handler.IdentityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler *handler.IdentityHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler: params.IdentityHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.identityHandler.Register)
		authGroup.POST("/login", r.identityHandler.Login)
	}

	// Identity routes that require a valid token
	identityGroup := e.Group("/identities")
	identityGroup.Use(r.authMiddleware.Authenticate)
	{
		identityGroup.GET("", r.identityHandler.ListIdentities)
		identityGroup.GET("/:handle", r.identityHandler.GetIdentity)
		identityGroup.PUT("/profile", r.identityHandler.UpdateProfile)
		identityGroup.POST("/password/change", r.identityHandler.ChangePassword)
	}
}
