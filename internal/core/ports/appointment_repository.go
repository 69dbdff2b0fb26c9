package ports

import (
	"context"
	"time"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

// Sortable appointment fields.
const (
	SortAppointmentDate = "appointmentDate"
	SortClientName      = "clientName"
	SortClientEmail     = "clientEmail"
	SortStatus          = "status"
	SortCreatedAt       = "createdAt"

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// AppointmentQuery carries a normalized list query. The service fills in
// defaults before it reaches the repository, so every field is usable as is.
type AppointmentQuery struct {
	PropertyID  string // empty = any property
	AgentID     string // empty = any agent
	Search      string // case-insensitive substring on client name or email
	ClientName  string
	ClientEmail string
	ClientPhone string
	Status      string
	StartDate   time.Time // inclusive, zero = unbounded
	EndDate     time.Time // inclusive, zero = unbounded
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	// FindByID returns domain.ErrAppointmentNotFound when no appointment matches.
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id string) error
	DeleteByProperty(ctx context.Context, propertyID string) (int64, error)
	// ListByProperty returns every appointment of the property, unpaginated.
	// It is the candidate set for conflict detection.
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.Appointment, error)
	// List returns one page of appointments matching q and the total count.
	List(ctx context.Context, q AppointmentQuery) ([]*domain.Appointment, int64, error)
}

// ScheduleLocker serializes schedule mutations of one property across
// processes. The returned release func must be called exactly once.
type ScheduleLocker interface {
	Lock(ctx context.Context, propertyID string) (release func(), err error)
}
