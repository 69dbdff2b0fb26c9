package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createAppointmentRequest struct {
	AppointmentDate *time.Time `json:"appointment_date" validate:"required"`
	DurationMinutes int        `json:"duration_minutes" validate:"omitempty,min=15,max=240"`
	ClientName      string     `json:"client_name"      validate:"omitempty,max=100"`
	ClientEmail     string     `json:"client_email"     validate:"omitempty,email"`
	ClientPhone     string     `json:"client_phone"     validate:"omitempty,max=30"`
	Notes           string     `json:"notes"            validate:"omitempty,max=500"`
	Status          string     `json:"status"           validate:"omitempty,oneof=pending confirmed cancelled completed"`
	AgentID         string     `json:"agent_id"         validate:"omitempty,uuid"`
}

type updateAppointmentRequest struct {
	AppointmentDate *time.Time `json:"appointment_date"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=15,max=240"`
	ClientName      *string    `json:"client_name"      validate:"omitempty,min=1,max=100"`
	ClientEmail     *string    `json:"client_email"     validate:"omitempty,email"`
	ClientPhone     *string    `json:"client_phone"     validate:"omitempty,max=30"`
	Notes           *string    `json:"notes"            validate:"omitempty,max=500"`
	Status          *string    `json:"status"           validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

// --- Response types ---

type appointmentResponse struct {
	ID              string    `json:"id"`
	PropertyID      string    `json:"property_id"`
	AgentID         string    `json:"agent_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	EndsAt          time.Time `json:"ends_at"`
	DurationMinutes int       `json:"duration_minutes"`
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	ClientPhone     string    `json:"client_phone,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type propertySummaryResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	City    string `json:"city"`
	AgentID string `json:"agent_id"`
}

type agentResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type appointmentDetailResponse struct {
	appointmentResponse
	Property *propertySummaryResponse `json:"property,omitempty"`
	Agent    *agentResponse           `json:"agent,omitempty"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listAppointmentsResponse struct {
	Data []appointmentResponse `json:"data"`
	Meta paginationResponse    `json:"meta"`
}
