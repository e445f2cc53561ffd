package service

import (
	"context"
	"strings"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/store"
	"github.com/borgstromhq/borgcal/pkg/idx"
	"github.com/borgstromhq/borgcal/pkg/slogx"
	"github.com/teambition/rrule-go"
)

// EventService owns event persistence and the ownership rules around
// mutation. Visibility filtering lives in ScheduleService.
type EventService struct {
	Store store.Store
}

// CreateEventInput carries the caller-supplied event fields. Timezone and
// creator are taken from the authenticated context, color is derived from
// the subject.
type CreateEventInput struct {
	Title       string
	Subject     domain.Subject
	Description string
	Start       time.Time
	End         time.Time
	IsPrivate   bool
	Recurrence  string // optional RRULE string, e.g. "FREQ=WEEKLY"
}

func (in *CreateEventInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "must not be empty")
	}
	if !in.Subject.Known() {
		return invalid("subject", "unknown subject")
	}
	if in.Start.IsZero() || in.End.IsZero() {
		return invalid("start", "start and end are required")
	}
	if in.End.Before(in.Start) {
		return invalid("end", "must not be before start")
	}
	if in.Recurrence != "" {
		if _, err := rrule.StrToRRule(in.Recurrence); err != nil {
			return invalid("recurrence", "unparseable recurrence rule")
		}
	}
	return nil
}

// Create validates and persists a new event owned by the caller.
func (s *EventService) Create(
	ctx context.Context,
	caller domain.UserContext,
	in CreateEventInput,
) (domain.Event, error) {
	l := slogx.FromContext(ctx)

	if err := in.validate(); err != nil {
		return domain.Event{}, err
	}
	if _, err := time.LoadLocation(caller.Timezone); err != nil {
		return domain.Event{}, invalid("timezone", "unknown IANA zone name")
	}

	event := domain.Event{
		ID:           idx.New().String(),
		Title:        strings.TrimSpace(in.Title),
		Subject:      in.Subject,
		Description:  in.Description,
		Start:        in.Start.UTC(),
		End:          in.End.UTC(),
		Timezone:     caller.Timezone,
		CreatedBy:    caller.Username,
		IsPrivate:    in.IsPrivate,
		Recurrence:   in.Recurrence,
		SubjectColor: in.Subject.Color(),
	}

	if err := s.Store.Events().CreateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}

	l.Info("event created",
		"event_id", event.ID,
		"created_by", event.CreatedBy,
		"private", event.IsPrivate,
	)
	return event, nil
}

// List returns all stored events, unfiltered; the scheduling engine applies
// visibility before anything reaches a caller.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.Store.Events().ListEvents(ctx)
}

// Get returns a single event, store.ErrNotFound when absent.
func (s *EventService) Get(ctx context.Context, id string) (domain.Event, error) {
	return s.Store.Events().GetEventByID(ctx, id)
}

// UpdateTime shifts an event's start/end. Only the creator or an admin
// matches any rows; unauthorized attempts return affected == 0 and no error.
func (s *EventService) UpdateTime(
	ctx context.Context,
	caller domain.UserContext,
	id string,
	start, end time.Time,
) (int64, error) {
	if start.IsZero() || end.IsZero() {
		return 0, invalid("start", "start and end are required")
	}
	if end.Before(start) {
		return 0, invalid("end", "must not be before start")
	}

	affected, err := s.Store.Events().UpdateEventTime(
		ctx, id, start.UTC(), end.UTC(), caller.Username, caller.IsAdmin())
	if err != nil {
		return 0, err
	}

	if affected == 0 {
		slogx.FromContext(ctx).Info("event time update affected no rows",
			"event_id", id, "requester", caller.Username)
	}
	return affected, nil
}

// Delete removes an event under the same ownership rule and silent-no-op
// contract. Attendance rows cascade with the event.
func (s *EventService) Delete(
	ctx context.Context,
	caller domain.UserContext,
	id string,
) (int64, error) {
	affected, err := s.Store.Events().DeleteEvent(ctx, id, caller.Username, caller.IsAdmin())
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		slogx.FromContext(ctx).Info("event deleted",
			"event_id", id, "requester", caller.Username)
	}
	return affected, nil
}
