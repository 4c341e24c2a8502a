package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vladimirfomene/raggnet/internal/model"
	"github.com/vladimirfomene/raggnet/internal/repository"
	"github.com/vladimirfomene/raggnet/internal/service"
)

// AdminHandler bundles the /admins HTTP handlers.
type AdminHandler struct {
	users     service.UserService
	resources service.ResourceService
}

// NewAdminHandler creates a handler layer.
func NewAdminHandler(users service.UserService, resources service.ResourceService) *AdminHandler {
	return &AdminHandler{users: users, resources: resources}
}

// CreateAdmin godoc
// @Summary Create an admin account
// @Tags admins
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Admin account data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admins [post]
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := h.users.CreateAdmin(c.Request().Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, admin)
}

// ListUnapprovedResources godoc
// @Summary List resources awaiting approval
// @Tags admins
// @Produce json
// @Success 200 {array} model.Resource
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admins/resources [get]
func (h *AdminHandler) ListUnapprovedResources(c echo.Context) error {
	resources, err := h.resources.List(c.Request().Context(), repository.ResourceFilter{
		Status: model.StatusPending,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, resources)
}
