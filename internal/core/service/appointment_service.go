package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

// AppointmentService manages the lifecycle of viewing appointments. Every
// schedule-changing write runs under the property's lock so the conflict scan
// and the write see the same schedule.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	owners ports.OwnershipResolver
	users  ports.UserRepository
	locker ports.ScheduleLocker
	logger zerolog.Logger
	now    func() time.Time
}

func NewAppointmentService(
	repo ports.AppointmentRepository,
	owners ports.OwnershipResolver,
	users ports.UserRepository,
	locker ports.ScheduleLocker,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		repo:   repo,
		owners: owners,
		users:  users,
		locker: locker,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create books a viewing on propertyID for the requester.
func (s *AppointmentService) Create(ctx context.Context, propertyID string, in ports.CreateAppointmentInput, requester ports.Requester) (*domain.Appointment, error) {
	if _, _, err := s.owners.GetPropertyWithAgent(ctx, propertyID); err != nil {
		return nil, err
	}

	if in.AppointmentDate.IsZero() {
		return nil, domain.ValidationError("appointment_date is required")
	}
	duration := in.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}
	if err := domain.ValidateDuration(duration); err != nil {
		return nil, err
	}
	if len(in.Notes) > domain.MaxNotesLength {
		return nil, domain.ValidationError("notes must be at most %d characters", domain.MaxNotesLength)
	}
	status := domain.StatusPending
	if in.Status != "" {
		status = domain.AppointmentStatus(in.Status)
		if !status.Valid() {
			return nil, domain.ValidationError("status must be one of: pending confirmed cancelled completed")
		}
	}

	if err := s.fillClientDefaults(ctx, &in, requester); err != nil {
		return nil, err
	}
	if in.ClientName == "" || in.ClientEmail == "" {
		return nil, domain.ValidationError("client_name and client_email are required")
	}

	agentID := requester.ID
	if in.AgentID != "" && in.AgentID != requester.ID {
		if requester.Role != domain.RoleAdmin && requester.Role != domain.RoleAgent {
			s.logger.Warn().
				Str("requester_id", requester.ID).
				Str("role", requester.Role).
				Msg("explicit agent denied")
			return nil, domain.ErrForbidden
		}
		agent, err := s.users.FindByID(ctx, in.AgentID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ValidationError("agent %s does not exist", in.AgentID)
			}
			return nil, fmt.Errorf("create appointment: resolve agent: %w", err)
		}
		if agent.Role != domain.RoleAdmin && agent.Role != domain.RoleAgent {
			return nil, domain.ValidationError("user %s is not an agent", in.AgentID)
		}
		agentID = in.AgentID
	}

	release, err := s.locker.Lock(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	defer release()

	// The property may have been deleted while we waited for the lock.
	if _, _, err := s.owners.GetPropertyWithAgent(ctx, propertyID); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("create appointment: load schedule: %w", err)
	}
	start := in.AppointmentDate.UTC()
	if c := domain.FindConflict(start, duration, existing, ""); c != nil {
		s.logger.Info().
			Str("property_id", propertyID).
			Str("conflicts_with", c.ID).
			Time("appointment_date", start).
			Msg("appointment rejected: schedule conflict")
		return nil, domain.ErrScheduleConflict
	}

	now := s.now()
	a := &domain.Appointment{
		ID:              uuid.NewString(),
		PropertyID:      propertyID,
		AgentID:         agentID,
		AppointmentDate: start,
		DurationMinutes: duration,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		Notes:           in.Notes,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error().Err(err).Str("property_id", propertyID).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", a.ID).
		Str("property_id", propertyID).
		Str("agent_id", agentID).
		Msg("appointment created")
	return a, nil
}

// fillClientDefaults copies the requester's profile into missing client fields.
func (s *AppointmentService) fillClientDefaults(ctx context.Context, in *ports.CreateAppointmentInput, requester ports.Requester) error {
	if requester.ID == "" || (in.ClientName != "" && in.ClientEmail != "" && in.ClientPhone != "") {
		return nil
	}

	u, err := s.users.FindByID(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("create appointment: load requester: %w", err)
	}

	if in.ClientName == "" {
		in.ClientName = u.FirstName
	}
	if in.ClientEmail == "" {
		in.ClientEmail = u.Email
	}
	if in.ClientPhone == "" {
		in.ClientPhone = u.Phone
	}
	return nil
}

// FindAll lists the appointments of one property.
func (s *AppointmentService) FindAll(ctx context.Context, propertyID string, in ports.ListAppointmentsInput) (*ports.AppointmentPage, error) {
	if _, _, err := s.owners.GetPropertyWithAgent(ctx, propertyID); err != nil {
		return nil, err
	}
	q, err := normalizeQuery(in)
	if err != nil {
		return nil, err
	}
	q.PropertyID = propertyID
	return s.list(ctx, q)
}

// FindByAgent lists the appointments bound to one agent across properties.
func (s *AppointmentService) FindByAgent(ctx context.Context, agentID string, in ports.ListAppointmentsInput) (*ports.AppointmentPage, error) {
	if _, err := s.users.FindByID(ctx, agentID); err != nil {
		return nil, err
	}
	q, err := normalizeQuery(in)
	if err != nil {
		return nil, err
	}
	q.AgentID = agentID
	return s.list(ctx, q)
}

func (s *AppointmentService) list(ctx context.Context, q ports.AppointmentQuery) (*ports.AppointmentPage, error) {
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if items == nil {
		items = []*domain.Appointment{}
	}
	return &ports.AppointmentPage{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages(total, q.Limit),
	}, nil
}

// FindOne returns the appointment with its property and agent resolved.
func (s *AppointmentService) FindOne(ctx context.Context, id string) (*ports.AppointmentDetail, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, a)
}

func (s *AppointmentService) detail(ctx context.Context, a *domain.Appointment) (*ports.AppointmentDetail, error) {
	d := &ports.AppointmentDetail{Appointment: *a}

	p, _, err := s.owners.GetPropertyWithAgent(ctx, a.PropertyID)
	switch {
	case err == nil:
		d.Property = &ports.PropertySummary{ID: p.ID, Title: p.Title, City: p.City, AgentID: p.AgentID}
	case !errors.Is(err, domain.ErrPropertyNotFound):
		return nil, fmt.Errorf("load appointment property: %w", err)
	}

	u, err := s.users.FindByID(ctx, a.AgentID)
	switch {
	case err == nil:
		d.Agent = &ports.AgentSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, Role: u.Role}
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("load appointment agent: %w", err)
	}

	return d, nil
}

// authorize loads the appointment and checks that the requester may change it.
func (s *AppointmentService) authorize(ctx context.Context, id string, requester ports.Requester) (*domain.Appointment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_, ownerID, err := s.owners.GetPropertyWithAgent(ctx, a.PropertyID)
	if err != nil && !errors.Is(err, domain.ErrPropertyNotFound) {
		return nil, err
	}

	if !domain.CanMutate(requester.ID, requester.Role, a.AgentID, ownerID) {
		s.logger.Warn().
			Str("appointment_id", id).
			Str("requester_id", requester.ID).
			Str("role", requester.Role).
			Msg("appointment mutation denied")
		return nil, domain.ErrForbidden
	}
	return a, nil
}

// Update applies a partial update. Every update runs under the property lock
// and works on a copy reloaded inside it, so a write never restores a date or
// duration another request has moved since authorization.
func (s *AppointmentService) Update(ctx context.Context, id string, in ports.UpdateAppointmentInput, requester ports.Requester) (*ports.AppointmentDetail, error) {
	a, err := s.authorize(ctx, id, requester)
	if err != nil {
		return nil, err
	}
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	release, err := s.locker.Lock(ctx, a.PropertyID)
	if err != nil {
		return nil, err
	}
	defer release()

	a, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.AppointmentDate != nil || in.DurationMinutes != nil {
		start := a.AppointmentDate
		if in.AppointmentDate != nil {
			start = in.AppointmentDate.UTC()
		}
		duration := a.DurationMinutes
		if in.DurationMinutes != nil {
			duration = *in.DurationMinutes
		}
		if duration == 0 {
			duration = domain.DefaultDurationMinutes
		}

		existing, err := s.repo.ListByProperty(ctx, a.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("update appointment: load schedule: %w", err)
		}
		if c := domain.FindConflict(start, duration, existing, a.ID); c != nil {
			s.logger.Info().
				Str("appointment_id", a.ID).
				Str("conflicts_with", c.ID).
				Msg("appointment update rejected: schedule conflict")
			return nil, domain.ErrScheduleConflict
		}

		a.AppointmentDate = start
		a.DurationMinutes = duration
	}

	applyUpdate(a, in)
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.logger.Info().Str("appointment_id", a.ID).Str("requester_id", requester.ID).Msg("appointment updated")
	return s.FindOne(ctx, id)
}

func validateUpdate(in ports.UpdateAppointmentInput) error {
	if in.AppointmentDate != nil && in.AppointmentDate.IsZero() {
		return domain.ValidationError("appointment_date must be a valid timestamp")
	}
	if in.DurationMinutes != nil {
		if err := domain.ValidateDuration(*in.DurationMinutes); err != nil {
			return err
		}
	}
	if in.Notes != nil && len(*in.Notes) > domain.MaxNotesLength {
		return domain.ValidationError("notes must be at most %d characters", domain.MaxNotesLength)
	}
	if in.Status != nil && !domain.AppointmentStatus(*in.Status).Valid() {
		return domain.ValidationError("status must be one of: pending confirmed cancelled completed")
	}
	return nil
}

func applyUpdate(a *domain.Appointment, in ports.UpdateAppointmentInput) {
	if in.ClientName != nil {
		a.ClientName = *in.ClientName
	}
	if in.ClientEmail != nil {
		a.ClientEmail = *in.ClientEmail
	}
	if in.ClientPhone != nil {
		a.ClientPhone = *in.ClientPhone
	}
	if in.Notes != nil {
		a.Notes = *in.Notes
	}
	if in.Status != nil {
		a.Status = domain.AppointmentStatus(*in.Status)
	}
}

// Remove deletes the appointment permanently.
func (s *AppointmentService) Remove(ctx context.Context, id string, requester ports.Requester) error {
	a, err := s.authorize(ctx, id, requester)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return fmt.Errorf("remove appointment: %w", err)
	}
	s.logger.Info().Str("appointment_id", a.ID).Str("requester_id", requester.ID).Msg("appointment removed")
	return nil
}
