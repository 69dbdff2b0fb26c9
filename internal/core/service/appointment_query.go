package service

import (
	"strings"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var sortableFields = map[string]struct{}{
	ports.SortAppointmentDate: {},
	ports.SortClientName:      {},
	ports.SortClientEmail:     {},
	ports.SortStatus:          {},
	ports.SortCreatedAt:       {},
}

// normalizeQuery applies defaults and bounds to a raw list query. Unknown
// sort fields fall back to appointmentDate and unknown orders to DESC.
func normalizeQuery(in ports.ListAppointmentsInput) (ports.AppointmentQuery, error) {
	page := in.Page
	if page == 0 {
		page = defaultPage
	}
	if page < 1 {
		return ports.AppointmentQuery{}, domain.ValidationError("page must be at least 1")
	}

	limit := in.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > maxLimit {
		return ports.AppointmentQuery{}, domain.ValidationError("limit must be between 1 and %d", maxLimit)
	}

	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.StartDate.After(in.EndDate) {
		return ports.AppointmentQuery{}, domain.ValidationError("start_date must not be after end_date")
	}

	if in.Status != "" && !domain.AppointmentStatus(in.Status).Valid() {
		return ports.AppointmentQuery{}, domain.ValidationError("status must be one of: pending confirmed cancelled completed")
	}

	sortBy := in.SortBy
	if _, ok := sortableFields[sortBy]; !ok {
		sortBy = ports.SortAppointmentDate
	}

	sortOrder := strings.ToUpper(strings.TrimSpace(in.SortOrder))
	if sortOrder != ports.SortAsc {
		sortOrder = ports.SortDesc
	}

	return ports.AppointmentQuery{
		Search:      strings.TrimSpace(in.Search),
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		SortBy:      sortBy,
		SortOrder:   sortOrder,
		Page:        page,
		Limit:       limit,
	}, nil
}

// totalPages is ceil(total/limit).
func totalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}
