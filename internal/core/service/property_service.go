package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

type PropertyService struct {
	repo         ports.PropertyRepository
	features     ports.FeatureRepository
	appointments ports.AppointmentRepository
	locker       ports.ScheduleLocker
	logger       zerolog.Logger
}

func NewPropertyService(
	repo ports.PropertyRepository,
	features ports.FeatureRepository,
	appointments ports.AppointmentRepository,
	locker ports.ScheduleLocker,
	logger zerolog.Logger,
) *PropertyService {
	return &PropertyService{
		repo:         repo,
		features:     features,
		appointments: appointments,
		locker:       locker,
		logger:       logger,
	}
}

// Create stores a listing owned by the requester.
func (s *PropertyService) Create(ctx context.Context, in ports.CreatePropertyInput, requester ports.Requester) (*domain.Property, error) {
	if requester.Role != domain.RoleAdmin && requester.Role != domain.RoleAgent {
		return nil, domain.ErrForbidden
	}
	if in.Title == "" || in.Address == "" || in.City == "" {
		return nil, domain.ValidationError("title, address and city are required")
	}
	if in.Price < 0 || in.Area < 0 || in.Bedrooms < 0 || in.Bathrooms < 0 {
		return nil, domain.ValidationError("numeric fields must not be negative")
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	now := time.Now().UTC()
	p := &domain.Property{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		Address:      in.Address,
		City:         in.City,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		Area:         in.Area,
		PropertyType: in.PropertyType,
		IsAvailable:  available,
		AgentID:      requester.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", p.ID).Str("agent_id", p.AgentID).Msg("property created")
	return p, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. Only admins and the owning agent may do so.
func (s *PropertyService) Update(ctx context.Context, id string, in ports.UpdatePropertyInput, requester ports.Requester) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(requester.ID, requester.Role, p.AgentID) {
		return nil, domain.ErrForbidden
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.Bedrooms != nil {
		p.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		p.Bathrooms = *in.Bathrooms
	}
	if in.Area != nil {
		p.Area = *in.Area
	}
	if in.PropertyType != nil {
		p.PropertyType = *in.PropertyType
	}
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	return p, nil
}

// Delete removes the property with its features and every appointment
// scheduled on it. The cascade holds the property's schedule lock so no
// booking can land between the appointment sweep and the property delete.
func (s *PropertyService) Delete(ctx context.Context, id string, requester ports.Requester) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutate(requester.ID, requester.Role, p.AgentID) {
		return domain.ErrForbidden
	}

	release, err := s.locker.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	n, err := s.appointments.DeleteByProperty(ctx, id)
	if err != nil {
		return fmt.Errorf("delete property appointments: %w", err)
	}
	if _, err := s.features.DeleteByProperty(ctx, id); err != nil {
		return fmt.Errorf("delete property features: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	s.logger.Info().Str("property_id", id).Int64("appointments_removed", n).Msg("property deleted")
	return nil
}
