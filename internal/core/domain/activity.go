package domain

import (
	"errors"
	"time"
)

// ActivityAction is the kind of change recorded in an appointment's history.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityRemoved ActivityAction = "removed"
)

var ErrInvalidActivity = errors.New("invalid appointment activity")

// Valid reports whether a is a known action.
func (a ActivityAction) Valid() bool {
	switch a {
	case ActivityCreated, ActivityUpdated, ActivityRemoved:
		return true
	}
	return false
}

// AppointmentActivity is one audit entry of an appointment's history. It
// snapshots the schedule fields as they were after the change.
type AppointmentActivity struct {
	AppointmentID   string            `json:"appointment_id" bson:"appointment_id"`
	PropertyID      string            `json:"property_id" bson:"property_id"`
	ActorID         string            `json:"actor_id" bson:"actor_id"`
	Action          ActivityAction    `json:"action" bson:"action"`
	Status          AppointmentStatus `json:"status" bson:"status"`
	AppointmentDate time.Time         `json:"appointment_date" bson:"appointment_date"`
	DurationMinutes int               `json:"duration_minutes" bson:"duration_minutes"`
	OccurredAt      time.Time         `json:"occurred_at" bson:"occurred_at"`
}
