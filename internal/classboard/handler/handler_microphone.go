package handler

import (
	"net/http"

	"classboard/internal/classboard/model"

	"github.com/labstack/echo/v4"
)

// PostMicrophoneSamples handles POST /microphone/samples. Each frame is
// fanned out to every listening sound meter.
func (h *ClassboardHandler) PostMicrophoneSamples(c echo.Context) error {
	if h.Microphone == nil {
		return c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "unavailable", Message: "Microphone feed disabled", RequestID: requestID(c)},
		})
	}

	var req model.MicrophoneSamplesReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return fail(c, code, body)
	}

	listeners := h.Microphone.Push(req.Bytes())
	return c.JSON(http.StatusOK, map[string]int{"listeners": listeners})
}
