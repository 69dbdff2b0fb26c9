package ports

import (
	"context"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

// ActivityRepository persists the appointment audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.AppointmentActivity) error
	// ListByAppointment returns the history of one appointment, oldest first.
	ListByAppointment(ctx context.Context, appointmentID string) ([]*domain.AppointmentActivity, error)
}
