package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vladimirfomene/raggnet/internal/auth"
	"github.com/vladimirfomene/raggnet/internal/model"
	"github.com/vladimirfomene/raggnet/internal/repository"
	"github.com/vladimirfomene/raggnet/internal/service"
)

// ResourceHandler bundles the /resources HTTP handlers.
type ResourceHandler struct {
	svc service.ResourceService
}

// NewResourceHandler creates a handler layer.
func NewResourceHandler(svc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// CreateResourceRequest represents a resource submission.
type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=book course other"`
	URL         string `json:"url" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=pending approved"`
}

// UpdateResourceRequest represents a field-level merge update. Absent
// fields are left untouched; approval status is not updatable here.
type UpdateResourceRequest struct {
	Title       *string `json:"title"`
	Type        *string `json:"type" validate:"omitempty,oneof=book course other"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
}

// ListResources godoc
// @Summary List resources, optionally filtered by type or status
// @Tags resources
// @Produce json
// @Param type query string false "Resource type (book/course/other)"
// @Param status query string false "Approval status (pending/approved)"
// @Success 200 {array} model.Resource
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c echo.Context) error {
	filter := repository.ResourceFilter{
		Type:   model.ResourceType(c.QueryParam("type")),
		Status: model.ResourceStatus(c.QueryParam("status")),
	}
	resources, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, resources)
}

// ListBooks godoc
// @Summary List book-type resources
// @Tags resources
// @Produce json
// @Success 200 {array} model.Resource
// @Router /resources/books [get]
func (h *ResourceHandler) ListBooks(c echo.Context) error {
	return h.listByType(c, model.TypeBook)
}

// ListCourses godoc
// @Summary List course-type resources
// @Tags resources
// @Produce json
// @Success 200 {array} model.Resource
// @Router /resources/courses [get]
func (h *ResourceHandler) ListCourses(c echo.Context) error {
	return h.listByType(c, model.TypeCourse)
}

func (h *ResourceHandler) listByType(c echo.Context, t model.ResourceType) error {
	resources, err := h.svc.List(c.Request().Context(), repository.ResourceFilter{Type: t})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, resources)
}

// GetResource godoc
// @Summary Get resource by id
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID (24 hex chars)"
// @Success 200 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c echo.Context) error {
	resource, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, resource)
}

// GetOtherResources godoc
// @Summary List other resources sharing the target's type or submitter
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID (24 hex chars)"
// @Success 200 {array} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id}/other-resources [get]
func (h *ResourceHandler) GetOtherResources(c echo.Context) error {
	resources, err := h.svc.Related(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, resources)
}

// CreateResource godoc
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param request body CreateResourceRequest true "Resource payload"
// @Success 201 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c echo.Context) error {
	var req CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resource, err := h.svc.Create(c.Request().Context(), auth.CurrentUser(c), service.ResourceInput{
		Title:       req.Title,
		Type:        model.ResourceType(req.Type),
		URL:         req.URL,
		Description: req.Description,
		Status:      model.ResourceStatus(req.Status),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, resource)
}

// UpdateResource godoc
// @Summary Update a resource (field-level merge)
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID (24 hex chars)"
// @Param request body UpdateResourceRequest true "Fields to update"
// @Success 200 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resources/{id} [put]
func (h *ResourceHandler) UpdateResource(c echo.Context) error {
	var req UpdateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var typ *model.ResourceType
	if req.Type != nil {
		t := model.ResourceType(*req.Type)
		typ = &t
	}

	resource, err := h.svc.Update(c.Request().Context(), c.Param("id"), service.ResourceUpdate{
		Title:       req.Title,
		Type:        typ,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, resource)
}

// ApproveResource godoc
// @Summary Approve a pending resource (idempotent)
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID (24 hex chars)"
// @Success 200 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resources/{id} [post]
func (h *ResourceHandler) ApproveResource(c echo.Context) error {
	resource, err := h.svc.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, resource)
}

// DeleteResource godoc
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID (24 hex chars)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "resource deleted",
	})
}
