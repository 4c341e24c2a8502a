package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/vladimirfomene/raggnet/internal/config"
)

func TestErrorHandlerUnmatchedRoute(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"production", "production"},
		{"development", "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = errorHandler(&config.Config{Env: tt.env})

			req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestErrorHandlerKeepsHandlerErrorBody(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler(&config.Config{Env: "development"})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Resource not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Resource not found"}`, rec.Body.String())
}
