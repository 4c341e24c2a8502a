package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vladimirfomene/raggnet/internal/service"
)

// UserHandler bundles the /users HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a signup request.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,emailshape"`
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest represents a field-level merge update. Absent fields
// are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,emailshape"`
	Phone    *string `json:"phone" validate:"omitempty,phone"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// CreateUser godoc
// @Summary Sign up a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Signup data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Signup(c.Request().Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID (24 hex chars)"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update own user (field-level merge)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (24 hex chars)"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Update(c.Request().Context(), c.Param("id"), service.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete own user
// @Tags users
// @Produce json
// @Param id path string true "User ID (24 hex chars)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "user deleted",
	})
}
