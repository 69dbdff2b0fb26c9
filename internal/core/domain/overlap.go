package domain

import "time"

// Overlaps reports whether the half-open intervals [aStart, aStart+aMinutes)
// and [bStart, bStart+bMinutes) intersect. A non-positive duration is read as
// DefaultDurationMinutes.
func Overlaps(aStart time.Time, aMinutes int, bStart time.Time, bMinutes int) bool {
	aEnd := aStart.Add(minutes(aMinutes))
	bEnd := bStart.Add(minutes(bMinutes))
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflict returns the first appointment in existing whose interval
// overlaps the candidate, skipping excludeID. It returns nil when the
// candidate fits. Every element is examined; ordering does not matter.
func FindConflict(start time.Time, durationMinutes int, existing []*Appointment, excludeID string) *Appointment {
	for _, a := range existing {
		if a == nil {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if Overlaps(start, durationMinutes, a.AppointmentDate, a.DurationMinutes) {
			return a
		}
	}
	return nil
}

func minutes(m int) time.Duration {
	if m <= 0 {
		m = DefaultDurationMinutes
	}
	return time.Duration(m) * time.Minute
}
