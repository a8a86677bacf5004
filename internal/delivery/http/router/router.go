// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agrisense/internal/delivery/http/middleware"
	"agrisense/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	DeviceHandler   *handler.DeviceHandler
	IngestHandler   *handler.IngestHandler
	AdvisoryHandler *handler.AdvisoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	deviceHandler   *handler.DeviceHandler
	ingestHandler   *handler.IngestHandler
	advisoryHandler *handler.AdvisoryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		deviceHandler:   params.DeviceHandler,
		ingestHandler:   params.IngestHandler,
		advisoryHandler: params.AdvisoryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	api := e.Group("/api")

	// Device-facing intake endpoint. Devices authenticate by registration,
	// not by user tokens: unknown and inactive devices are rejected.
	api.POST("/sensor-data", r.ingestHandler.IngestReadings)

	// Device registry routes, owner-scoped behind JWT auth
	deviceGroup := api.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.ListDevices)
		deviceGroup.PATCH("/:deviceID/active", r.deviceHandler.SetDeviceActive)
		deviceGroup.GET("/:deviceID/qrcode", r.deviceHandler.GetDeviceQR)
		deviceGroup.GET("/:deviceID/readings", r.deviceHandler.ListReadings)
		deviceGroup.POST("/:deviceID/readings/export", r.deviceHandler.ExportReadings)
	}

	// Recommendation routes, owner-scoped behind JWT auth
	advisoryGroup := api.Group("/recommendations")
	advisoryGroup.Use(r.authMiddleware.Authenticate)
	{
		advisoryGroup.POST("/generate", r.advisoryHandler.GenerateAdvisories)
		advisoryGroup.GET("", r.advisoryHandler.ListAdvisories)
		advisoryGroup.PATCH("/:id/read", r.advisoryHandler.MarkRead)
		advisoryGroup.PATCH("/:id/dismiss", r.advisoryHandler.MarkDismissed)
	}
}
