package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

type activityResponse struct {
	Action          string    `json:"action"`
	ActorID         string    `json:"actor_id"`
	Status          string    `json:"status,omitempty"`
	AppointmentDate time.Time `json:"appointment_date,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type activityListResponse struct {
	AppointmentID string             `json:"appointment_id"`
	Data          []activityResponse `json:"data"`
}

// ActivityHandler serves the appointment audit trail.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// History handles GET /v1/properties/:propertyId/appointments/:id/history.
//
// @Summary      Audit trail of a viewing
// @Description  Entries are recorded asynchronously and survive deletion of the appointment.
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string  true  "Property ID"
// @Param        id          path      string  true  "Appointment ID"
// @Success      200         {object}  activityListResponse
// @Failure      401         {object}  errorResponse
// @Router       /v1/properties/{propertyId}/appointments/{id}/history [get]
func (h *ActivityHandler) History(c echo.Context) error {
	id := c.Param("id")
	entries, err := h.service.History(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityListResponse{AppointmentID: id, Data: toActivityResponses(entries)})
}

func toActivityResponses(entries []*domain.AppointmentActivity) []activityResponse {
	out := make([]activityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityResponse{
			Action:          string(e.Action),
			ActorID:         e.ActorID,
			Status:          string(e.Status),
			AppointmentDate: e.AppointmentDate,
			DurationMinutes: e.DurationMinutes,
			OccurredAt:      e.OccurredAt,
		})
	}
	return out
}
