package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vladimirfomene/raggnet/internal/errors"
	"github.com/vladimirfomene/raggnet/internal/service"
)

// AuthHandler handles the /auth/token endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,emailshape"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents a successful login response.
type TokenResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user,omitempty"`
}

// Login godoc
// @Summary Login, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Token: token,
		User:  user,
	})
}

// Logout godoc
// @Summary Logout, revokes the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/token [put]
func (h *AuthHandler) Logout(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// toHTTPError converts a domain error into an echo error carrying the
// standardized response body.
func toHTTPError(err error) *echo.HTTPError {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
