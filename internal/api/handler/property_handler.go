package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/viewings-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type createPropertyRequest struct {
	Title        string  `json:"title"         validate:"required,max=200"`
	Description  string  `json:"description"   validate:"omitempty,max=2000"`
	Price        float64 `json:"price"         validate:"gte=0"`
	Address      string  `json:"address"       validate:"required"`
	City         string  `json:"city"          validate:"required"`
	Bedrooms     int     `json:"bedrooms"      validate:"gte=0"`
	Bathrooms    int     `json:"bathrooms"     validate:"gte=0"`
	Area         float64 `json:"area"          validate:"gte=0"`
	PropertyType string  `json:"property_type" validate:"omitempty,oneof=house apartment condo townhouse land commercial"`
	IsAvailable  *bool   `json:"is_available"`
}

type updatePropertyRequest struct {
	Title        *string  `json:"title"         validate:"omitempty,min=1,max=200"`
	Description  *string  `json:"description"   validate:"omitempty,max=2000"`
	Price        *float64 `json:"price"         validate:"omitempty,gte=0"`
	Address      *string  `json:"address"       validate:"omitempty,min=1"`
	City         *string  `json:"city"          validate:"omitempty,min=1"`
	Bedrooms     *int     `json:"bedrooms"      validate:"omitempty,gte=0"`
	Bathrooms    *int     `json:"bathrooms"     validate:"omitempty,gte=0"`
	Area         *float64 `json:"area"          validate:"omitempty,gte=0"`
	PropertyType *string  `json:"property_type" validate:"omitempty,oneof=house apartment condo townhouse land commercial"`
	IsAvailable  *bool    `json:"is_available"`
}

// Create handles POST /v1/properties.
//
// @Summary      Create a listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	var req createPropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Address:      req.Address,
		City:         req.City,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		PropertyType: req.PropertyType,
		IsAvailable:  req.IsAvailable,
	}, r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Get handles GET /v1/properties/:propertyId.
//
// @Summary      Get a listing
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string  true  "Property ID"
// @Success      200         {object}  domain.Property
// @Failure      404         {object}  errorResponse
// @Router       /v1/properties/{propertyId} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("propertyId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PATCH /v1/properties/:propertyId.
//
// @Summary      Update a listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string                 true  "Property ID"
// @Param        body        body      updatePropertyRequest  true  "Fields to change"
// @Success      200         {object}  domain.Property
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/properties/{propertyId} [patch]
func (h *PropertyHandler) Update(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	var req updatePropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Update(c.Request().Context(), c.Param("propertyId"), ports.UpdatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Address:      req.Address,
		City:         req.City,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		PropertyType: req.PropertyType,
		IsAvailable:  req.IsAvailable,
	}, r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /v1/properties/:propertyId. The property's
// appointments are removed with it.
//
// @Summary      Delete a listing
// @Tags         properties
// @Security     BearerAuth
// @Param        propertyId  path  string  true  "Property ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/properties/{propertyId} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("propertyId"), r); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

