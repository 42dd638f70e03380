package handler

import (
	"net/http"
	"strings"

	"classboard/internal/classboard/model"

	"github.com/labstack/echo/v4"
)

// GetWorkspaces handles GET /workspaces
func (h *ClassboardHandler) GetWorkspaces(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Service.ListWorkspaces())
}

// PostWorkspace handles POST /workspaces
func (h *ClassboardHandler) PostWorkspace(c echo.Context) error {
	var req model.CreateWorkspaceReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	ws, err := h.Service.CreateWorkspace(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusCreated, ws)
}

// PutWorkspace handles PUT /workspaces/:id (rename)
func (h *ClassboardHandler) PutWorkspace(c echo.Context) error {
	var req model.RenameWorkspaceReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	ws, err := h.Service.RenameWorkspace(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, ws)
}

// DeleteWorkspace handles DELETE /workspaces/:id
func (h *ClassboardHandler) DeleteWorkspace(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return badRequest(c, "Workspace id required")
	}

	if err := h.Service.DeleteWorkspace(c.Request().Context(), id); err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, h.Service.ListWorkspaces())
}

// PutCurrentWorkspace handles PUT /workspaces/current
func (h *ClassboardHandler) PutCurrentWorkspace(c echo.Context) error {
	var req model.SelectWorkspaceReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	ws, err := h.Service.SelectWorkspace(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return fail(c, code, body)
	}
	return c.JSON(http.StatusOK, ws)
}
