package domain

import (
	"errors"
	"fmt"
	"time"
)

// AppointmentStatus represents the lifecycle state of a viewing appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

const (
	DefaultDurationMinutes = 60
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 240
	MaxNotesLength         = 500
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrScheduleConflict    = errors.New("an appointment already exists for this property during the specified time period")
	ErrForbidden           = errors.New("access forbidden")
	ErrValidation          = errors.New("validation failed")
	ErrScheduleBusy        = errors.New("property schedule is locked by another request")
)

// Valid reports whether s is a known status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment is a scheduled viewing of one property, bound to one agent.
type Appointment struct {
	ID              string            `json:"id" bson:"_id"`
	PropertyID      string            `json:"property_id" bson:"property_id"`
	AgentID         string            `json:"agent_id" bson:"agent_id"`
	AppointmentDate time.Time         `json:"appointment_date" bson:"appointment_date"`
	DurationMinutes int               `json:"duration_minutes" bson:"duration_minutes"`
	ClientName      string            `json:"client_name" bson:"client_name"`
	ClientEmail     string            `json:"client_email" bson:"client_email"`
	ClientPhone     string            `json:"client_phone" bson:"client_phone"`
	Notes           string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Status          AppointmentStatus `json:"status" bson:"status"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}

// End returns the exclusive end of the appointment's interval.
func (a *Appointment) End() time.Time {
	return a.AppointmentDate.Add(minutes(a.DurationMinutes))
}

// ValidationError builds an error that wraps ErrValidation with a readable message.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ValidateDuration checks that minutes is inside the allowed booking window.
func ValidateDuration(minutes int) error {
	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes {
		return ValidationError("duration_minutes must be between %d and %d", MinDurationMinutes, MaxDurationMinutes)
	}
	return nil
}
