// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidgate/internal/delivery/http/middleware"
	"vidgate/internal/delivery/http/router/handler"
	"vidgate/internal/domain/constants"
	"vidgate/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LoginHandler       *handler.LoginHandler
	ContentHandler     *handler.ContentHandler
	EntitlementHandler *handler.EntitlementHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	loginHandler       *handler.LoginHandler
	contentHandler     *handler.ContentHandler
	entitlementHandler *handler.EntitlementHandler
	authMiddleware     *middleware.AuthMiddleware
	metrics            *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		loginHandler:       params.LoginHandler,
		contentHandler:     params.ContentHandler,
		entitlementHandler: params.EntitlementHandler,
		authMiddleware:     params.AuthMiddleware,
		metrics:            params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/v1")
	api.Use(r.authMiddleware.Authenticate)

	// Per-user commands relayed by the bot front end
	users := api.Group("/users/:id")
	users.Use(r.authMiddleware.RequireScope(constants.ScopeUsers))
	{
		users.POST("/login", r.loginHandler.StartLogin)
		users.GET("/login", r.loginHandler.Step)
		users.DELETE("/login", r.loginHandler.Cancel)
		users.POST("/login/input", r.loginHandler.SubmitText)
		users.POST("/logout", r.loginHandler.Logout)
		users.POST("/content", r.contentHandler.RequestContent)
		users.GET("/entitlement", r.entitlementHandler.Status)
	}

	// Catalog maintenance
	api.POST("/items", r.contentHandler.AddItem, r.authMiddleware.RequireScope(constants.ScopeCatalogWrite))
}
