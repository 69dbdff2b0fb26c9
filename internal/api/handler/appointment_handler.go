package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/viewings-api/internal/api/metrics"
	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

// ActivityRecorder accepts audit entries for asynchronous persistence.
type ActivityRecorder interface {
	Enqueue(in ports.ActivityInput) bool
}

// AppointmentHandler handles HTTP requests for viewing appointments.
type AppointmentHandler struct {
	service  ports.AppointmentService
	recorder ActivityRecorder
}

// NewAppointmentHandler builds the handler. recorder may be nil, in which case
// no activity is recorded.
func NewAppointmentHandler(service ports.AppointmentService, recorder ActivityRecorder) *AppointmentHandler {
	return &AppointmentHandler{service: service, recorder: recorder}
}

func (h *AppointmentHandler) record(action domain.ActivityAction, actorID string, a domain.Appointment) {
	if h.recorder == nil {
		return
	}
	h.recorder.Enqueue(ports.ActivityInput{Action: string(action), ActorID: actorID, Appointment: a})
}

// Create handles POST /v1/properties/:propertyId/appointments.
//
// @Summary      Book a viewing
// @Description  Missing client fields default to the caller's profile. Rejected with 409 when the slot overlaps an existing appointment of the property.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string                    true  "Property ID"
// @Param        body        body      createAppointmentRequest  true  "Appointment details"
// @Success      201         {object}  appointmentResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Failure      503         {object}  errorResponse
// @Router       /v1/properties/{propertyId}/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveAppointmentOp(metrics.OpCreate, start, err) }()

	r, err := requester(c)
	if err != nil {
		return err
	}
	var req createAppointmentRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	propertyID := c.Param("propertyId")
	a, err := h.service.Create(c.Request().Context(), propertyID, toCreateAppointmentInput(req), r)
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.WithLabelValues(string(a.Status)).Inc()
	h.record(domain.ActivityCreated, r.ID, *a)
	c.Response().Header().Set(echo.HeaderLocation, appointmentLocation(propertyID, a.ID))
	return c.JSON(http.StatusCreated, toAppointmentResponse(a))
}

// List handles GET /v1/properties/:propertyId/appointments.
//
// @Summary      List the viewings of a property
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId    path      string  true   "Property ID"
// @Param        page          query     int     false  "Page (default 1)"
// @Param        limit         query     int     false  "Page size 1-100 (default 10)"
// @Param        search        query     string  false  "Case-insensitive match on client name or email"
// @Param        client_name   query     string  false  "Exact client name"
// @Param        client_email  query     string  false  "Exact client email"
// @Param        client_phone  query     string  false  "Exact client phone"
// @Param        status        query     string  false  "pending | confirmed | cancelled | completed"
// @Param        start_date    query     string  false  "Inclusive lower bound on appointment_date"
// @Param        end_date      query     string  false  "Inclusive upper bound on appointment_date"
// @Param        sort_by       query     string  false  "appointmentDate | clientName | clientEmail | status | createdAt"
// @Param        sort_order    query     string  false  "ASC | DESC (default DESC)"
// @Success      200           {object}  listAppointmentsResponse
// @Failure      400           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /v1/properties/{propertyId}/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveAppointmentOp(metrics.OpList, start, err) }()

	in, err := toListInput(c)
	if err != nil {
		return err
	}

	page, err := h.service.FindAll(c.Request().Context(), c.Param("propertyId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(page))
}

// ListByAgent handles GET /v1/agents/:agentId/appointments.
//
// @Summary      List the viewings bound to an agent
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        agentId  path      string  true   "Agent user ID"
// @Param        page     query     int     false  "Page (default 1)"
// @Param        limit    query     int     false  "Page size 1-100 (default 10)"
// @Param        status   query     string  false  "pending | confirmed | cancelled | completed"
// @Param        sort_by  query     string  false  "appointmentDate | clientName | clientEmail | status | createdAt"
// @Success      200      {object}  listAppointmentsResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/agents/{agentId}/appointments [get]
func (h *AppointmentHandler) ListByAgent(c echo.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveAppointmentOp(metrics.OpList, start, err) }()

	in, err := toListInput(c)
	if err != nil {
		return err
	}

	page, err := h.service.FindByAgent(c.Request().Context(), c.Param("agentId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(page))
}

// Get handles GET /v1/properties/:propertyId/appointments/:id.
//
// @Summary      Get a viewing with its property and agent
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string  true  "Property ID"
// @Param        id          path      string  true  "Appointment ID"
// @Success      200         {object}  appointmentDetailResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/properties/{propertyId}/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveAppointmentOp(metrics.OpGet, start, err) }()

	d, err := h.service.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentDetailResponse(d))
}

// Update handles PATCH /v1/properties/:propertyId/appointments/:id.
//
// @Summary      Update a viewing
// @Description  Only an admin, the bound agent or the property's agent may update. Date or duration changes are re-checked for conflicts.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId  path      string                    true  "Property ID"
// @Param        id          path      string                    true  "Appointment ID"
// @Param        body        body      updateAppointmentRequest  true  "Fields to change"
// @Success      200         {object}  appointmentDetailResponse
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Router       /v1/properties/{propertyId}/appointments/{id} [patch]
func (h *AppointmentHandler) Update(c echo.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveAppointmentOp(metrics.OpUpdate, start, err) }()

	r, err := requester(c)
	if err != nil {
		return err
	}
	var req updateAppointmentRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	d, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateAppointmentInput(req), r)
	if err != nil {
		return err
	}
	h.record(domain.ActivityUpdated, r.ID, d.Appointment)
	return c.JSON(http.StatusOK, toAppointmentDetailResponse(d))
}

// Remove handles DELETE /v1/properties/:propertyId/appointments/:id.
//
// @Summary      Delete a viewing
// @Tags         appointments
// @Security     BearerAuth
// @Param        propertyId  path  string  true  "Property ID"
// @Param        id          path  string  true  "Appointment ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/properties/{propertyId}/appointments/{id} [delete]
func (h *AppointmentHandler) Remove(c echo.Context) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveAppointmentOp(metrics.OpRemove, start, err) }()

	r, err := requester(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if err = h.service.Remove(c.Request().Context(), id, r); err != nil {
		return err
	}
	h.record(domain.ActivityRemoved, r.ID, domain.Appointment{ID: id, PropertyID: c.Param("propertyId")})
	return c.NoContent(http.StatusNoContent)
}
