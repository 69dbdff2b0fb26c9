package handler

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateAppointmentInput(req createAppointmentRequest) ports.CreateAppointmentInput {
	in := ports.CreateAppointmentInput{
		DurationMinutes: req.DurationMinutes,
		ClientName:      strings.TrimSpace(req.ClientName),
		ClientEmail:     strings.TrimSpace(req.ClientEmail),
		ClientPhone:     strings.TrimSpace(req.ClientPhone),
		Notes:           req.Notes,
		Status:          req.Status,
		AgentID:         req.AgentID,
	}
	if req.AppointmentDate != nil {
		in.AppointmentDate = req.AppointmentDate.UTC()
	}
	return in
}

func toUpdateAppointmentInput(req updateAppointmentRequest) ports.UpdateAppointmentInput {
	return ports.UpdateAppointmentInput{
		AppointmentDate: req.AppointmentDate,
		DurationMinutes: req.DurationMinutes,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Notes:           req.Notes,
		Status:          req.Status,
	}
}

// dateLayouts are accepted for start_date and end_date.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// toListInput reads the list query string. Range and type errors become a
// single 400; defaults and bounds are applied by the service.
func toListInput(c echo.Context) (ports.ListAppointmentsInput, error) {
	in := ports.ListAppointmentsInput{
		Search:      c.QueryParam("search"),
		ClientName:  c.QueryParam("client_name"),
		ClientEmail: c.QueryParam("client_email"),
		ClientPhone: c.QueryParam("client_phone"),
		Status:      c.QueryParam("status"),
		SortBy:      c.QueryParam("sort_by"),
		SortOrder:   c.QueryParam("sort_order"),
	}

	err := echo.QueryParamsBinder(c).
		Int("page", &in.Page).
		Int("limit", &in.Limit).
		CustomFunc("start_date", dateParam(&in.StartDate)).
		CustomFunc("end_date", dateParam(&in.EndDate)).
		BindError()
	if err != nil {
		return ports.ListAppointmentsInput{}, domain.ValidationError("invalid query: %s", bindErrorField(err))
	}
	return in, nil
}

func dateParam(dst *time.Time) func(values []string) []error {
	return func(values []string) []error {
		t, ok := parseDate(values[0])
		if !ok {
			return []error{echo.ErrBadRequest}
		}
		*dst = t
		return nil
	}
}

func bindErrorField(err error) string {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return be.Field
	}
	return err.Error()
}

// --- Service result → HTTP response ---

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:              a.ID,
		PropertyID:      a.PropertyID,
		AgentID:         a.AgentID,
		AppointmentDate: a.AppointmentDate.UTC(),
		EndsAt:          a.End().UTC(),
		DurationMinutes: a.DurationMinutes,
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		ClientPhone:     a.ClientPhone,
		Notes:           a.Notes,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt.UTC(),
		UpdatedAt:       a.UpdatedAt.UTC(),
	}
}

func toAppointmentDetailResponse(d *ports.AppointmentDetail) appointmentDetailResponse {
	resp := appointmentDetailResponse{appointmentResponse: toAppointmentResponse(&d.Appointment)}
	if d.Property != nil {
		resp.Property = &propertySummaryResponse{
			ID:      d.Property.ID,
			Title:   d.Property.Title,
			City:    d.Property.City,
			AgentID: d.Property.AgentID,
		}
	}
	if d.Agent != nil {
		resp.Agent = &agentResponse{
			ID:        d.Agent.ID,
			FirstName: d.Agent.FirstName,
			LastName:  d.Agent.LastName,
			Email:     d.Agent.Email,
			Role:      d.Agent.Role,
		}
	}
	return resp
}

func toListResponse(p *ports.AppointmentPage) listAppointmentsResponse {
	items := make([]appointmentResponse, len(p.Items))
	for i, a := range p.Items {
		items[i] = toAppointmentResponse(a)
	}
	return listAppointmentsResponse{
		Data: items,
		Meta: paginationResponse{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}
}

func appointmentLocation(propertyID, id string) string {
	return "/v1/properties/" + url.PathEscape(propertyID) + "/appointments/" + url.PathEscape(id)
}
