package ports

import (
	"context"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

// ActivityInput is the DTO passed from the transport layer to ActivityService.
type ActivityInput struct {
	Action      string
	ActorID     string
	Appointment domain.Appointment
}

// ActivityService records and reads the appointment audit trail.
type ActivityService interface {
	Record(ctx context.Context, in ActivityInput) error
	History(ctx context.Context, appointmentID string) ([]*domain.AppointmentActivity, error)
}
