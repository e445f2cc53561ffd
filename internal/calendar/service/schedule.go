package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/teambition/rrule-go"
)

// LocalTimeLayout is the minute-precision local ISO-8601 form every
// displayed timestamp is rendered in.
const LocalTimeLayout = "2006-01-02T15:04"

const defaultMaxOccurrencesPerEvent = 1000

// Event ranks for the chronological list view, in viewer-local dates.
const (
	RankToday  = 0
	RankFuture = 1
	RankPast   = 2
)

// ScheduleService sits between raw stored events and any caller-facing view:
// it filters by visibility, projects instants into the viewer's timezone,
// orders the list view, annotates the calendar view with recurrence rules,
// and expands recurring templates into concrete occurrences.
type ScheduleService struct {
	// Now is overridable so ranking tests can pin "today".
	Now func() time.Time

	// MaxOccurrencesPerEvent caps recurrence expansion per event.
	MaxOccurrencesPerEvent int
}

func (s *ScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ScheduleService) occurrenceCap() int {
	if s.MaxOccurrencesPerEvent > 0 {
		return s.MaxOccurrencesPerEvent
	}
	return defaultMaxOccurrencesPerEvent
}

// Visible filters events with the shared visibility predicate. Both the
// list view and the calendar view go through here, never a second copy of
// the rule.
func (s *ScheduleService) Visible(events []domain.Event, viewer domain.UserContext) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.VisibleTo(viewer) {
			out = append(out, e)
		}
	}
	return out
}

// RankedEvent is an event prepared for the chronological list view: rank
// relative to the viewer's "today" plus the instants projected into the
// viewer's zone.
type RankedEvent struct {
	domain.Event

	Rank       int
	LocalStart time.Time
	LocalEnd   time.Time
}

// RankVisible produces the list view: visible events partitioned into
// today / future / past by viewer-local start date, each partition ascending
// by date. Ties on the same date order by start instant, then event ID, so
// the result is deterministic rather than storage-order dependent.
func (s *ScheduleService) RankVisible(
	events []domain.Event,
	viewer domain.UserContext,
) ([]RankedEvent, error) {
	loc, err := viewer.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve viewer timezone: %w", err)
	}

	today := localDate(s.now().In(loc))

	visible := s.Visible(events, viewer)
	ranked := make([]RankedEvent, 0, len(visible))
	for _, e := range visible {
		localStart := e.Start.In(loc)

		rank := RankPast
		switch date := localDate(localStart); {
		case date == today:
			rank = RankToday
		case date > today:
			rank = RankFuture
		}

		ranked = append(ranked, RankedEvent{
			Event:      e,
			Rank:       rank,
			LocalStart: localStart,
			LocalEnd:   e.End.In(loc),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if da, db := localDate(a.LocalStart), localDate(b.LocalStart); da != db {
			return da < db
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.ID < b.ID
	})

	return ranked, nil
}

// CalendarEntry is an event shaped for the calendar-rendering collaborator:
// title annotated with the creator, instants in the viewer's zone, and the
// recurrence rule attached verbatim to the single template occurrence.
type CalendarEntry struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
	RRule string
	Color string
}

// CalendarView filters and annotates events for calendar rendering. The
// engine does not expand recurrence here; the renderer receives the rule and
// the template occurrence only, so attendance and edits stay
// template-granular.
func (s *ScheduleService) CalendarView(
	events []domain.Event,
	viewer domain.UserContext,
) ([]CalendarEntry, error) {
	loc, err := viewer.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve viewer timezone: %w", err)
	}

	visible := s.Visible(events, viewer)
	entries := make([]CalendarEntry, 0, len(visible))
	for _, e := range visible {
		entries = append(entries, CalendarEntry{
			ID:    e.ID,
			Title: annotateTitle(e),
			Start: e.Start.In(loc),
			End:   e.End.In(loc),
			RRule: e.Recurrence,
			Color: e.SubjectColor,
		})
	}
	return entries, nil
}

// Occurrence is one concrete instance of an event inside a query window,
// after recurrence expansion and timezone projection.
type Occurrence struct {
	EventID   string
	Title     string
	Subject   domain.Subject
	CreatedBy string
	Start     time.Time
	End       time.Time
	Recurring bool
}

// Occurrences expands visible events into concrete instances within
// [from, to]. Recurring templates expand via their RRULE anchored at the
// stored start in the creator's zone, preserving the template duration;
// non-recurring events contribute a single instance when they intersect the
// window. Expansion is capped per event.
func (s *ScheduleService) Occurrences(
	events []domain.Event,
	viewer domain.UserContext,
	from, to time.Time,
) ([]Occurrence, error) {
	if to.Before(from) {
		return nil, invalid("to", "must not be before from")
	}

	loc, err := viewer.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve viewer timezone: %w", err)
	}

	var out []Occurrence
	for _, e := range s.Visible(events, viewer) {
		if !e.Recurring() {
			if rangesOverlap(e.Start, e.End, from, to) {
				out = append(out, occurrenceAt(e, e.Start, e.End, loc))
			}
			continue
		}

		starts, err := s.expand(e, from, to)
		if err != nil {
			return nil, err
		}

		dur := e.End.Sub(e.Start)
		for _, st := range starts {
			out = append(out, occurrenceAt(e, st, st.Add(dur), loc))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].EventID < out[j].EventID
	})
	return out, nil
}

// expand evaluates the event's RRULE inside the window, in the creator's
// zone so e.g. "daily at 09:00" stays at 09:00 across DST changes.
func (s *ScheduleService) expand(e domain.Event, from, to time.Time) ([]time.Time, error) {
	evLoc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		// Stored zone names are validated at signup; fall back to UTC for
		// rows predating that.
		evLoc = time.UTC
	}

	r, err := rrule.StrToRRule(e.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("parse recurrence for event %s: %w", e.ID, err)
	}
	r.DTStart(e.Start.In(evLoc))

	starts := r.Between(from.In(evLoc), to.In(evLoc), true)
	if limit := s.occurrenceCap(); len(starts) > limit {
		starts = starts[:limit]
	}
	return starts, nil
}

func occurrenceAt(e domain.Event, start, end time.Time, loc *time.Location) Occurrence {
	return Occurrence{
		EventID:   e.ID,
		Title:     annotateTitle(e),
		Subject:   e.Subject,
		CreatedBy: e.CreatedBy,
		Start:     start.In(loc),
		End:       end.In(loc),
		Recurring: e.Recurring(),
	}
}

// annotateTitle is the display form consumed by the rendering collaborator.
func annotateTitle(e domain.Event) string {
	return fmt.Sprintf("%s (%s)", e.Title, e.CreatedBy)
}

func localDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}
