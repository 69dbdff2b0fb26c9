package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/viewings-api/internal/core/ports"
)

// FeatureHandler handles HTTP requests for the features of a listing.
type FeatureHandler struct {
	service ports.PropertyFeatureService
}

func NewFeatureHandler(service ports.PropertyFeatureService) *FeatureHandler {
	return &FeatureHandler{service: service}
}

type createFeatureRequest struct {
	Name        string `json:"name"         validate:"required,min=2,max=50"`
	Description string `json:"description"  validate:"omitempty,max=2000"`
	Category    string `json:"category"     validate:"omitempty,oneof=INTERIOR EXTERIOR COMMUNITY"`
	IsHighlight *bool  `json:"is_highlight"`
	Value       *int   `json:"value"`
	Unit        string `json:"unit"         validate:"omitempty,max=50"`
}

type updateFeatureRequest struct {
	Name        *string `json:"name"         validate:"omitempty,min=2,max=50"`
	Description *string `json:"description"  validate:"omitempty,max=2000"`
	Category    *string `json:"category"     validate:"omitempty,oneof=INTERIOR EXTERIOR COMMUNITY"`
	IsHighlight *bool   `json:"is_highlight"`
	Value       *int    `json:"value"`
	Unit        *string `json:"unit"         validate:"omitempty,max=50"`
}

// Create handles POST /v1/properties/:propertyId/features.
//
// @Summary      Add a feature to a listing
// @Tags         features
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string                true  "Property ID"
// @Param        body        body      createFeatureRequest  true  "Feature details"
// @Success      201         {object}  domain.PropertyFeature
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/properties/{propertyId}/features [post]
func (h *FeatureHandler) Create(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	var req createFeatureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	f, err := h.service.AddFeature(c.Request().Context(), c.Param("propertyId"), ports.CreateFeatureInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsHighlight: req.IsHighlight,
		Value:       req.Value,
		Unit:        req.Unit,
	}, r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

// List handles GET /v1/properties/:propertyId/features.
//
// @Summary      List the features of a listing
// @Tags         features
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string  true  "Property ID"
// @Success      200         {array}   domain.PropertyFeature
// @Failure      404         {object}  errorResponse
// @Router       /v1/properties/{propertyId}/features [get]
func (h *FeatureHandler) List(c echo.Context) error {
	items, err := h.service.ListFeatures(c.Request().Context(), c.Param("propertyId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /v1/properties/:propertyId/features/:id.
//
// @Summary      Get a listing feature
// @Tags         features
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string  true  "Property ID"
// @Param        id          path      string  true  "Feature ID"
// @Success      200         {object}  domain.PropertyFeature
// @Failure      404         {object}  errorResponse
// @Router       /v1/properties/{propertyId}/features/{id} [get]
func (h *FeatureHandler) Get(c echo.Context) error {
	f, err := h.service.GetFeature(c.Request().Context(), c.Param("propertyId"), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Update handles PATCH /v1/properties/:propertyId/features/:id.
//
// @Summary      Update a listing feature
// @Tags         features
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string                true  "Property ID"
// @Param        id          path      string                true  "Feature ID"
// @Param        body        body      updateFeatureRequest  true  "Fields to change"
// @Success      200         {object}  domain.PropertyFeature
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/properties/{propertyId}/features/{id} [patch]
func (h *FeatureHandler) Update(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	var req updateFeatureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	f, err := h.service.UpdateFeature(c.Request().Context(), c.Param("propertyId"), c.Param("id"), ports.UpdateFeatureInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsHighlight: req.IsHighlight,
		Value:       req.Value,
		Unit:        req.Unit,
	}, r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Delete handles DELETE /v1/properties/:propertyId/features/:id.
//
// @Summary      Remove a listing feature
// @Tags         features
// @Security     BearerAuth
// @Param        propertyId  path  string  true  "Property ID"
// @Param        id          path  string  true  "Feature ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/properties/{propertyId}/features/{id} [delete]
func (h *FeatureHandler) Delete(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	if err := h.service.RemoveFeature(c.Request().Context(), c.Param("propertyId"), c.Param("id"), r); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
