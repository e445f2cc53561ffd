package domain

import "time"

type AttendanceStatus string

const (
	StatusAttending    AttendanceStatus = "attending"
	StatusNotAttending AttendanceStatus = "not_attending"
)

// Known reports whether s is a valid attendance status.
func (s AttendanceStatus) Known() bool {
	return s == StatusAttending || s == StatusNotAttending
}

// Attendance is one user's status on one event. (EventID, Username) is
// unique; writes are upserts.
type Attendance struct {
	EventID   string
	Username  string
	Status    AttendanceStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
