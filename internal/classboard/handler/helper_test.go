package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"classboard/internal/classboard/adapter"
	"classboard/internal/classboard/handler"
	"classboard/internal/classboard/model"
	"classboard/internal/classboard/router"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func SetupServer(svc *MockClassboardService, mic *adapter.FeedMicrophone) *echo.Echo {
	e := echo.New()
	router.RegisterRoutes(e, handler.NewClassboardHandler(svc, mic))
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	switch b := body.(type) {
	case nil:
		bodyReader = strings.NewReader("")
	case string:
		bodyReader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		bodyReader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}
