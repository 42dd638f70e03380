package handler

import (
	"errors"
	"net/http"

	"classboard/internal/classboard/factory"
	"classboard/internal/classboard/model"
	"classboard/internal/classboard/service"
	"classboard/internal/classboard/timer"
	"classboard/internal/classboard/widget"
	"classboard/internal/classboard/widgetconfig"
	"classboard/internal/classboard/workspace"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, model.ErrorResponse) {
	var code string
	var status int

	switch {
	case errors.Is(err, workspace.ErrWorkspaceNotFound),
		errors.Is(err, workspace.ErrWidgetNotFound):
		status = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, workspace.ErrLastWorkspace),
		errors.Is(err, workspace.ErrDuplicateID),
		errors.Is(err, timer.ErrRunning):
		status = http.StatusConflict
		code = "conflict"
	case errors.Is(err, factory.ErrUnknownType),
		errors.Is(err, widgetconfig.ErrUnknownType):
		status = http.StatusBadRequest
		code = "bad_request"
	case errors.Is(err, widgetconfig.ErrInvalidConfig),
		errors.Is(err, workspace.ErrInvalidName),
		errors.Is(err, timer.ErrNotRunnable),
		errors.Is(err, timer.ErrNotRunning),
		errors.Is(err, timer.ErrNotEnoughTime),
		errors.Is(err, timer.ErrPhaseOutOfRange),
		errors.Is(err, timer.ErrInvalidPhase),
		errors.Is(err, widget.ErrInvalidOption),
		errors.Is(err, widget.ErrOutOfRange),
		errors.Is(err, service.ErrUnsupportedAction),
		errors.Is(err, service.ErrWidgetInactive):
		status = http.StatusUnprocessableEntity
		code = "rejected"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: err.Error()},
	}
}

// validationError turns the result of a request's Validate into a 400.
func validationError(err error) (int, model.ErrorResponse) {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return http.StatusBadRequest, model.ErrorResponse{Error: *detail}
	}
	return http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: msg, RequestID: requestID(c)},
	})
}

func fail(c echo.Context, code int, body model.ErrorResponse) error {
	body.Error.RequestID = requestID(c)
	return c.JSON(code, body)
}
