package router

import (
	"classboard/internal/classboard/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, h *handler.ClassboardHandler) {
	// The dashboard front end is served from another origin during development
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	v1.GET("/widget_types", h.GetWidgetTypes)

	// Workspaces
	v1.GET("/workspaces", h.GetWorkspaces)
	v1.POST("/workspaces", h.PostWorkspace)
	v1.PUT("/workspaces/current", h.PutCurrentWorkspace)
	v1.PUT("/workspaces/:id", h.PutWorkspace)
	v1.DELETE("/workspaces/:id", h.DeleteWorkspace)

	// Widgets of the current workspace
	v1.GET("/widgets", h.GetWidgets)
	v1.POST("/widgets", h.PostWidget)
	v1.PUT("/widgets/:id/position", h.PutWidgetPosition)
	v1.PUT("/widgets/:id/minimize", h.PutWidgetMinimize)
	v1.PUT("/widgets/:id/name", h.PutWidgetName)
	v1.PATCH("/widgets/:id/config", h.PatchWidgetConfig)
	v1.DELETE("/widgets/:id", h.DeleteWidget)
	v1.GET("/widgets/:id/state", h.GetWidgetState)
	v1.POST("/widgets/:id/actions", h.PostWidgetAction)

	v1.POST("/microphone/samples", h.PostMicrophoneSamples)
}
