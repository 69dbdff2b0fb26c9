package ports

import (
	"context"
	"time"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

// CreateAppointmentInput carries the data of a new viewing request. Empty
// client fields are filled from the requester's profile.
type CreateAppointmentInput struct {
	AppointmentDate time.Time
	DurationMinutes int // 0 = default
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Notes           string
	Status          string // empty = pending
	AgentID         string // empty = requester
}

// UpdateAppointmentInput is a partial update; nil fields are left untouched.
type UpdateAppointmentInput struct {
	AppointmentDate *time.Time
	DurationMinutes *int
	ClientName      *string
	ClientEmail     *string
	ClientPhone     *string
	Notes           *string
	Status          *string
}

// ListAppointmentsInput is the raw list query as received from the transport.
type ListAppointmentsInput struct {
	Search      string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Status      string
	StartDate   time.Time
	EndDate     time.Time
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

// PropertySummary is the property relation embedded in appointment detail.
type PropertySummary struct {
	ID      string
	Title   string
	City    string
	AgentID string
}

// AgentSummary is the public view of the agent bound to an appointment.
type AgentSummary struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
}

// AppointmentDetail is an appointment with its relations resolved.
type AppointmentDetail struct {
	Appointment domain.Appointment
	Property    *PropertySummary
	Agent       *AgentSummary
}

// AppointmentPage is one page of a list query.
type AppointmentPage struct {
	Items      []*domain.Appointment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AppointmentService defines the appointment lifecycle use cases.
type AppointmentService interface {
	Create(ctx context.Context, propertyID string, input CreateAppointmentInput, requester Requester) (*domain.Appointment, error)
	FindAll(ctx context.Context, propertyID string, input ListAppointmentsInput) (*AppointmentPage, error)
	FindByAgent(ctx context.Context, agentID string, input ListAppointmentsInput) (*AppointmentPage, error)
	FindOne(ctx context.Context, id string) (*AppointmentDetail, error)
	Update(ctx context.Context, id string, input UpdateAppointmentInput, requester Requester) (*AppointmentDetail, error)
	Remove(ctx context.Context, id string, requester Requester) error
}
