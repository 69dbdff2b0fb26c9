package service

import (
	"context"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

// OwnershipResolver looks up a property together with its owning agent.
type OwnershipResolver struct {
	properties ports.PropertyRepository
}

func NewOwnershipResolver(properties ports.PropertyRepository) *OwnershipResolver {
	return &OwnershipResolver{properties: properties}
}

// GetPropertyWithAgent returns domain.ErrPropertyNotFound when id does not resolve.
func (r *OwnershipResolver) GetPropertyWithAgent(ctx context.Context, id string) (*domain.Property, string, error) {
	p, err := r.properties.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return p, p.AgentID, nil
}
