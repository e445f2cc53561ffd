// Package calsdk is a typed HTTP client for the calendar service. The wire
// types here are shared with the server handlers so request/response shapes
// cannot drift apart.
package calsdk

import "time"

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// SignUpRequest creates a new account. Timezone is an optional IANA zone
// name, defaulting to UTC.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Timezone string `json:"timezone,omitempty"`
}

type SignUpResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Timezone string `json:"timezone"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the session token minted by the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int    `json:"expires_in"` // seconds
}

// CreateEventRequest carries the caller-supplied event fields. Start and End
// are absolute instants (RFC 3339 with offset); the server stores them in
// UTC and every viewer sees them in their own zone.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	IsPrivate   bool      `json:"is_private,omitempty"`
	Recurrence  string    `json:"recurrence,omitempty"`
}

// EventView is an event projected for the requesting viewer: Start/End are
// local minute-precision ISO-8601 strings in the viewer's timezone.
type EventView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Subject      string `json:"subject"`
	Description  string `json:"description,omitempty"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Timezone     string `json:"timezone"`
	CreatedBy    string `json:"created_by"`
	IsPrivate    bool   `json:"is_private"`
	Recurrence   string `json:"recurrence,omitempty"`
	SubjectColor string `json:"subject_color"`
	Rank         int    `json:"rank"` // 0 today, 1 future, 2 past
}

type UpdateEventTimeRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MutationResult reports how many rows a mutation affected. Zero means the
// operation was a silent no-op (unauthorized or unknown event).
type MutationResult struct {
	Affected int64 `json:"affected"`
}

// CalendarEvent is the shape consumed by the calendar-rendering collaborator.
type CalendarEvent struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	RRule           string `json:"rrule,omitempty"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
}

// OccurrenceView is one expanded instance of an event within a query window.
type OccurrenceView struct {
	EventID   string `json:"event_id"`
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	CreatedBy string `json:"created_by"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Recurring bool   `json:"recurring"`
}

type SetAttendanceRequest struct {
	Status string `json:"status"` // "attending" or "not_attending"
}

type AttendanceRow struct {
	Username string `json:"username"`
	Status   string `json:"status"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
