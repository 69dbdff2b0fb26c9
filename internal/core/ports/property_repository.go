package ports

import (
	"context"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

// PropertyRepository defines persistence operations for properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	// FindByID returns domain.ErrPropertyNotFound when no property matches.
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
}

// OwnershipResolver answers which agent owns a property.
type OwnershipResolver interface {
	GetPropertyWithAgent(ctx context.Context, propertyID string) (*domain.Property, string, error)
}

// FeatureRepository defines persistence operations for property features.
type FeatureRepository interface {
	Create(ctx context.Context, f *domain.PropertyFeature) error
	// FindByID returns domain.ErrFeatureNotFound when no feature matches.
	FindByID(ctx context.Context, id string) (*domain.PropertyFeature, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.PropertyFeature, error)
	Update(ctx context.Context, f *domain.PropertyFeature) error
	Delete(ctx context.Context, id string) error
	DeleteByProperty(ctx context.Context, propertyID string) (int64, error)
}
