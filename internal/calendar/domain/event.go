package domain

import "time"

// Subject is the enum-like event category. The set is fixed; each subject
// carries a display color the UI uses for rendering.
type Subject string

const (
	SubjectBirthday Subject = "Birthday Event"
	SubjectSocial   Subject = "Social Event"
	SubjectVacation Subject = "Vacation Event"
	SubjectUrgent   Subject = "Urgent"
	SubjectOther    Subject = "Other"
)

var subjectColors = map[Subject]string{
	SubjectBirthday: "#1f77b4",
	SubjectSocial:   "#2ca02c",
	SubjectVacation: "#9467bd",
	SubjectUrgent:   "#d62728",
	SubjectOther:    "#7f7f7f",
}

// Known reports whether s belongs to the fixed subject set.
func (s Subject) Known() bool {
	_, ok := subjectColors[s]
	return ok
}

// Color returns the display color for the subject, or "" for unknown subjects.
func (s Subject) Color() string { return subjectColors[s] }

// Subjects returns the fixed subject set in display order.
func Subjects() []Subject {
	return []Subject{
		SubjectBirthday,
		SubjectSocial,
		SubjectVacation,
		SubjectUrgent,
		SubjectOther,
	}
}

// Event is a single calendar entry. Start and End are absolute instants
// (stored UTC); Timezone records the creator's zone at creation time and is
// informational only, every viewer sees the instants projected into their
// own zone.
type Event struct {
	ID           string // ULID
	Title        string
	Subject      Subject
	Description  string
	Start        time.Time
	End          time.Time
	Timezone     string
	CreatedBy    string
	IsPrivate    bool
	Recurrence   string // RRULE string, empty for one-off events
	SubjectColor string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Recurring reports whether the event carries a recurrence rule.
func (e Event) Recurring() bool { return e.Recurrence != "" }

// VisibleTo is the single visibility predicate shared by every caller-facing
// view: admins see everything, everyone sees public events, creators see
// their own private events.
func (e Event) VisibleTo(viewer UserContext) bool {
	if viewer.IsAdmin() {
		return true
	}
	return !e.IsPrivate || e.CreatedBy == viewer.Username
}
