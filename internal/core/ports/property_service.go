package ports

import (
	"context"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

// Requester identifies the authenticated caller of a use case.
type Requester struct {
	ID   string
	Role string
}

// CreatePropertyInput carries the data of a new listing.
type CreatePropertyInput struct {
	Title        string
	Description  string
	Price        float64
	Address      string
	City         string
	Bedrooms     int
	Bathrooms    int
	Area         float64
	PropertyType string
	IsAvailable  *bool
}

// UpdatePropertyInput is a partial update; nil fields are left untouched.
type UpdatePropertyInput struct {
	Title        *string
	Description  *string
	Price        *float64
	Address      *string
	City         *string
	Bedrooms     *int
	Bathrooms    *int
	Area         *float64
	PropertyType *string
	IsAvailable  *bool
}

// PropertyService defines use-case operations for listings.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput, requester Requester) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, id string, input UpdatePropertyInput, requester Requester) (*domain.Property, error)
	Delete(ctx context.Context, id string, requester Requester) error
}

type CreateFeatureInput struct {
	Name        string
	Description string
	Category    string
	IsHighlight *bool
	Value       *int
	Unit        string
}

// UpdateFeatureInput is a partial update; nil fields are left untouched.
type UpdateFeatureInput struct {
	Name        *string
	Description *string
	Category    *string
	IsHighlight *bool
	Value       *int
	Unit        *string
}

// PropertyFeatureService manages the features listed on a property. Reads
// are open to any caller; writes follow the property's ownership.
type PropertyFeatureService interface {
	AddFeature(ctx context.Context, propertyID string, input CreateFeatureInput, requester Requester) (*domain.PropertyFeature, error)
	ListFeatures(ctx context.Context, propertyID string) ([]*domain.PropertyFeature, error)
	GetFeature(ctx context.Context, propertyID, id string) (*domain.PropertyFeature, error)
	UpdateFeature(ctx context.Context, propertyID, id string, input UpdateFeatureInput, requester Requester) (*domain.PropertyFeature, error)
	RemoveFeature(ctx context.Context, propertyID, id string, requester Requester) error
}
