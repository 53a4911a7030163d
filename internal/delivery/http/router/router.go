// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ShoutHandler   *handler.ShoutHandler
	VictoryHandler *handler.VictoryHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	shoutHandler   *handler.ShoutHandler
	victoryHandler *handler.VictoryHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		shoutHandler:   params.ShoutHandler,
		victoryHandler: params.VictoryHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/redeem", r.userHandler.RedeemLoginKey)
		authGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
	}

	// User routes: public information and victory history
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.GET("/:id/victories", r.userHandler.GetUserVictories)
	}

	// Shout routes: seeding, forwarding and listening
	shoutGroup := e.Group("/shouts")
	shoutGroup.Use(r.authMiddleware.Authenticate)
	{
		shoutGroup.POST("", r.shoutHandler.CreateShout)
		shoutGroup.GET("/best", r.shoutHandler.BestShouts)
		shoutGroup.GET("/:id", r.shoutHandler.GetShout)
		shoutGroup.PUT("/:id", handler.NotSupported)
		shoutGroup.DELETE("/:id", handler.NotSupported)
	}

	// Template routes: read-only outside the engine
	templateGroup := e.Group("/templates")
	templateGroup.Use(r.authMiddleware.Authenticate)
	{
		templateGroup.GET("/:id", r.shoutHandler.GetTemplate)
		templateGroup.PUT("/:id", handler.NotSupported)
		templateGroup.DELETE("/:id", handler.NotSupported)
	}

	// Victory routes: settlement happens inside the engine, never over HTTP
	victoryGroup := e.Group("/victories")
	victoryGroup.Use(r.authMiddleware.Authenticate)
	{
		victoryGroup.GET("/:id", r.victoryHandler.GetVictory)
		victoryGroup.PUT("/:id", handler.NotSupported)
		victoryGroup.DELETE("/:id", handler.NotSupported)
	}
}
