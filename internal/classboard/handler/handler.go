package handler

import (
	"net/http"

	"classboard/internal/classboard/adapter"
	"classboard/internal/classboard/service"

	"github.com/labstack/echo/v4"
)

type ClassboardHandler struct {
	Service service.ClassboardService
	// Microphone receives sample frames posted by the client. Nil disables
	// the samples endpoint.
	Microphone *adapter.FeedMicrophone
}

func NewClassboardHandler(s service.ClassboardService, mic *adapter.FeedMicrophone) *ClassboardHandler {
	return &ClassboardHandler{Service: s, Microphone: mic}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetWidgetTypes handles GET /widget_types
func (h *ClassboardHandler) GetWidgetTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Service.WidgetTypes())
}
