// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"linkup/internal/delivery/http/middleware"
	"linkup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ResumeHandler  *handler.ResumeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	resumeHandler  *handler.ResumeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		resumeHandler:  params.ResumeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
	}

	// Routes below require a valid bearer token.
	profileGroup := api.Group("/user")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("/profile", r.userHandler.GetProfile)
	}

	resumeGroup := api.Group("/resume")
	resumeGroup.Use(r.authMiddleware.Authenticate)
	{
		resumeGroup.POST("/parse", r.resumeHandler.Parse)
	}
}
