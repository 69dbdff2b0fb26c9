package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

// AddFeature attaches a feature to the property. Only admins and the owning
// agent may do so.
func (s *PropertyService) AddFeature(ctx context.Context, propertyID string, in ports.CreateFeatureInput, requester ports.Requester) (*domain.PropertyFeature, error) {
	if _, err := s.ownedProperty(ctx, propertyID, requester); err != nil {
		return nil, err
	}

	category := domain.FeatureInterior
	if in.Category != "" {
		category = domain.FeatureCategory(in.Category)
	}
	name := strings.TrimSpace(in.Name)
	if err := validateFeature(name, category, in.Unit); err != nil {
		return nil, err
	}
	highlight := true
	if in.IsHighlight != nil {
		highlight = *in.IsHighlight
	}

	now := time.Now().UTC()
	f := &domain.PropertyFeature{
		ID:          uuid.NewString(),
		PropertyID:  propertyID,
		Name:        name,
		Description: in.Description,
		Category:    category,
		IsHighlight: highlight,
		Value:       in.Value,
		Unit:        in.Unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.features.Create(ctx, f); err != nil {
		s.logger.Error().Err(err).Str("property_id", propertyID).Msg("failed to create property feature")
		return nil, err
	}

	s.logger.Info().Str("feature_id", f.ID).Str("property_id", propertyID).Msg("property feature created")
	return f, nil
}

func (s *PropertyService) ListFeatures(ctx context.Context, propertyID string) ([]*domain.PropertyFeature, error) {
	if _, err := s.repo.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}
	items, err := s.features.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list property features: %w", err)
	}
	if items == nil {
		items = []*domain.PropertyFeature{}
	}
	return items, nil
}

// GetFeature returns the feature only when it belongs to propertyID.
func (s *PropertyService) GetFeature(ctx context.Context, propertyID, id string) (*domain.PropertyFeature, error) {
	f, err := s.features.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.PropertyID != propertyID {
		return nil, domain.ErrFeatureNotFound
	}
	return f, nil
}

func (s *PropertyService) UpdateFeature(ctx context.Context, propertyID, id string, in ports.UpdateFeatureInput, requester ports.Requester) (*domain.PropertyFeature, error) {
	if _, err := s.ownedProperty(ctx, propertyID, requester); err != nil {
		return nil, err
	}
	f, err := s.GetFeature(ctx, propertyID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		f.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		f.Description = *in.Description
	}
	if in.Category != nil {
		f.Category = domain.FeatureCategory(*in.Category)
	}
	if in.IsHighlight != nil {
		f.IsHighlight = *in.IsHighlight
	}
	if in.Value != nil {
		f.Value = in.Value
	}
	if in.Unit != nil {
		f.Unit = *in.Unit
	}
	if err := validateFeature(f.Name, f.Category, f.Unit); err != nil {
		return nil, err
	}
	f.UpdatedAt = time.Now().UTC()

	if err := s.features.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("update property feature: %w", err)
	}
	return f, nil
}

func (s *PropertyService) RemoveFeature(ctx context.Context, propertyID, id string, requester ports.Requester) error {
	if _, err := s.ownedProperty(ctx, propertyID, requester); err != nil {
		return err
	}
	if _, err := s.GetFeature(ctx, propertyID, id); err != nil {
		return err
	}
	if err := s.features.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property feature: %w", err)
	}

	s.logger.Info().Str("feature_id", id).Str("property_id", propertyID).Msg("property feature deleted")
	return nil
}

// ownedProperty loads the property and checks the requester may change it.
func (s *PropertyService) ownedProperty(ctx context.Context, propertyID string, requester ports.Requester) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(requester.ID, requester.Role, p.AgentID) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func validateFeature(name string, category domain.FeatureCategory, unit string) error {
	if n := len([]rune(name)); n < domain.MinFeatureNameLength || n > domain.MaxFeatureNameLength {
		return domain.ValidationError("name must be %d to %d characters", domain.MinFeatureNameLength, domain.MaxFeatureNameLength)
	}
	if !category.Valid() {
		return domain.ValidationError("category must be one of: INTERIOR EXTERIOR COMMUNITY")
	}
	if len([]rune(unit)) > domain.MaxFeatureUnitLength {
		return domain.ValidationError("unit must be at most %d characters", domain.MaxFeatureUnitLength)
	}
	return nil
}
