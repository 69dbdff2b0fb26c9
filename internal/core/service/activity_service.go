package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	now  func() time.Time
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log,
	}
}

// Record validates and persists a single audit entry.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	action := domain.ActivityAction(in.Action)
	if !action.Valid() {
		return fmt.Errorf("record activity: %w: unknown action %q", domain.ErrInvalidActivity, in.Action)
	}
	if in.Appointment.ID == "" {
		return fmt.Errorf("record activity: %w: missing appointment id", domain.ErrInvalidActivity)
	}

	entry := &domain.AppointmentActivity{
		AppointmentID:   in.Appointment.ID,
		PropertyID:      in.Appointment.PropertyID,
		ActorID:         in.ActorID,
		Action:          action,
		Status:          in.Appointment.Status,
		AppointmentDate: in.Appointment.AppointmentDate,
		DurationMinutes: in.Appointment.DurationMinutes,
		OccurredAt:      s.now(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("appointment_id", entry.AppointmentID).
		Str("action", string(action)).
		Str("actor_id", entry.ActorID).
		Msg("activity recorded")
	return nil
}

// History returns the audit trail of an appointment. Removed appointments keep
// their history, so an unknown id yields an empty slice rather than NotFound.
func (s *activityService) History(ctx context.Context, appointmentID string) ([]*domain.AppointmentActivity, error) {
	entries, err := s.repo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("appointment history: %w", err)
	}
	if entries == nil {
		entries = []*domain.AppointmentActivity{}
	}
	return entries, nil
}
