// Package metrics defines the custom Prometheus metrics of the viewings API.
// All metrics are registered with the default registry on package init via
// promauto; HTTP request metrics come from echoprometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

const namespace = "viewings"

// Operation names used as the "operation" label.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpRemove = "remove"
	OpList   = "list"
	OpGet    = "get"
)

// AppointmentOperationsTotal counts appointment use-case calls.
// Labels:
//   - operation: create, update, remove, list, get
//   - outcome: ok, conflict, forbidden, not_found, invalid, busy, error
var AppointmentOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_operations_total",
		Help:      "Total number of appointment operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// AppointmentOperationDuration measures service latency, including the time
// spent waiting for the property schedule lock.
var AppointmentOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "appointment_operation_duration_seconds",
		Help:      "Duration of appointment operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// AppointmentsCreatedTotal counts booked viewings by initial status.
var AppointmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created, by initial status.",
	},
	[]string{"status"},
)

// Outcome classifies an operation error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrScheduleConflict):
		return "conflict"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrScheduleBusy):
		return "busy"
	default:
		return "error"
	}
}

// ObserveAppointmentOp records one operation that started at start.
func ObserveAppointmentOp(op string, start time.Time, err error) {
	AppointmentOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	AppointmentOperationsTotal.WithLabelValues(op, Outcome(err)).Inc()
}
