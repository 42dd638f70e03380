package handler

import (
	"net/http"
	"strings"

	"classboard/internal/classboard/model"

	"github.com/labstack/echo/v4"
)

// GetWidgets handles GET /widgets
func (h *ClassboardHandler) GetWidgets(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Service.ListWidgets())
}

// PostWidget handles POST /widgets
func (h *ClassboardHandler) PostWidget(c echo.Context) error {
	var req model.AddWidgetReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	w, err := h.Service.AddWidget(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusCreated, w)
}

// PutWidgetPosition handles PUT /widgets/:id/position
func (h *ClassboardHandler) PutWidgetPosition(c echo.Context) error {
	var req model.MoveWidgetReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	w, err := h.Service.MoveWidget(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, w)
}

// PutWidgetMinimize handles PUT /widgets/:id/minimize
func (h *ClassboardHandler) PutWidgetMinimize(c echo.Context) error {
	var req model.MinimizeWidgetReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	w, err := h.Service.MinimizeWidget(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, w)
}

// PutWidgetName handles PUT /widgets/:id/name
func (h *ClassboardHandler) PutWidgetName(c echo.Context) error {
	var req model.RenameWidgetReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	w, err := h.Service.RenameWidget(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, w)
}

// PatchWidgetConfig handles PATCH /widgets/:id/config. The body is the
// partial configuration itself.
func (h *ClassboardHandler) PatchWidgetConfig(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return badRequest(c, "Widget id required")
	}

	var partial map[string]any
	if err := c.Echo().JSONSerializer.Deserialize(c, &partial); err != nil {
		return badRequest(c, "Body must be a JSON object")
	}
	if len(partial) == 0 {
		return badRequest(c, "Empty configuration update")
	}

	w, err := h.Service.UpdateWidgetConfig(c.Request().Context(), id, partial)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, w)
}

// DeleteWidget handles DELETE /widgets/:id
func (h *ClassboardHandler) DeleteWidget(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return badRequest(c, "Widget id required")
	}

	if err := h.Service.RemoveWidget(c.Request().Context(), id); err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetWidgetState handles GET /widgets/:id/state
func (h *ClassboardHandler) GetWidgetState(c echo.Context) error {
	state, err := h.Service.WidgetState(strings.TrimSpace(c.Param("id")))
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, state)
}

// PostWidgetAction handles POST /widgets/:id/actions
func (h *ClassboardHandler) PostWidgetAction(c echo.Context) error {
	var req model.WidgetActionReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	state, err := h.Service.PerformAction(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, state)
}
