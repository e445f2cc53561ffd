package service

import (
	"testing"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/stretchr/testify/require"
)

func makeEvent(id, createdBy string, start time.Time, private bool) domain.Event {
	return domain.Event{
		ID:           id,
		Title:        "Event " + id,
		Subject:      domain.SubjectOther,
		Start:        start,
		End:          start.Add(time.Hour),
		Timezone:     "UTC",
		CreatedBy:    createdBy,
		IsPrivate:    private,
		SubjectColor: domain.SubjectOther.Color(),
	}
}

func TestVisibility(t *testing.T) {
	t.Parallel()

	svc := &ScheduleService{}
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	events := []domain.Event{
		makeEvent("pub", "alice", start, false),
		makeEvent("priv", "alice", start, true),
	}

	alice := domain.UserContext{Username: "alice", Role: domain.RoleUser, Timezone: "UTC"}
	bob := domain.UserContext{Username: "bob", Role: domain.RoleUser, Timezone: "UTC"}
	admin := domain.UserContext{Username: "root", Role: domain.RoleAdmin, Timezone: "UTC"}

	t.Run("creators see their own private events", func(t *testing.T) {
		visible := svc.Visible(events, alice)
		require.Len(t, visible, 2)
	})

	t.Run("other users only see public events", func(t *testing.T) {
		visible := svc.Visible(events, bob)
		require.Len(t, visible, 1)
		require.Equal(t, "pub", visible[0].ID)
	})

	t.Run("admins see everything", func(t *testing.T) {
		visible := svc.Visible(events, admin)
		require.Len(t, visible, 2)
	})
}

func TestRankVisible(t *testing.T) {
	t.Parallel()

	// Pin "now" so today/future/past are stable.
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := &ScheduleService{Now: func() time.Time { return now }}

	viewer := domain.UserContext{Username: "alice", Role: domain.RoleUser, Timezone: "UTC"}

	t.Run("orders today, then future, then past", func(t *testing.T) {
		events := []domain.Event{
			makeEvent("yesterday", "alice", now.Add(-24*time.Hour), false),
			makeEvent("tomorrow", "alice", now.Add(24*time.Hour), false),
			makeEvent("today", "alice", now.Add(time.Hour), false),
		}

		ranked, err := svc.RankVisible(events, viewer)
		require.NoError(t, err)
		require.Len(t, ranked, 3)

		require.Equal(t, "today", ranked[0].ID)
		require.Equal(t, RankToday, ranked[0].Rank)
		require.Equal(t, "tomorrow", ranked[1].ID)
		require.Equal(t, RankFuture, ranked[1].Rank)
		require.Equal(t, "yesterday", ranked[2].ID)
		require.Equal(t, RankPast, ranked[2].Rank)
	})

	t.Run("each partition ascends by date", func(t *testing.T) {
		events := []domain.Event{
			makeEvent("nextweek", "alice", now.Add(7*24*time.Hour), false),
			makeEvent("tomorrow", "alice", now.Add(24*time.Hour), false),
			makeEvent("lastweek", "alice", now.Add(-7*24*time.Hour), false),
			makeEvent("yesterday", "alice", now.Add(-24*time.Hour), false),
		}

		ranked, err := svc.RankVisible(events, viewer)
		require.NoError(t, err)

		var order []string
		for _, re := range ranked {
			order = append(order, re.ID)
		}
		require.Equal(t, []string{"tomorrow", "nextweek", "lastweek", "yesterday"}, order)
	})

	t.Run("same instant ties break by event ID", func(t *testing.T) {
		start := now.Add(time.Hour)
		events := []domain.Event{
			makeEvent("bbb", "alice", start, false),
			makeEvent("aaa", "alice", start, false),
		}

		ranked, err := svc.RankVisible(events, viewer)
		require.NoError(t, err)
		require.Equal(t, "aaa", ranked[0].ID)
		require.Equal(t, "bbb", ranked[1].ID)
	})

	t.Run("ranking follows the viewer's local date", func(t *testing.T) {
		// 2026-03-14 23:30 UTC is already 2026-03-15 in Sydney.
		event := makeEvent("late", "alice", time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC), false)

		utcViewer := viewer
		sydneyViewer := domain.UserContext{Username: "alice", Role: domain.RoleUser, Timezone: "Australia/Sydney"}

		rankedUTC, err := svc.RankVisible([]domain.Event{event}, utcViewer)
		require.NoError(t, err)
		require.Equal(t, RankToday, rankedUTC[0].Rank)

		rankedSydney, err := svc.RankVisible([]domain.Event{event}, sydneyViewer)
		require.NoError(t, err)
		require.Equal(t, RankFuture, rankedSydney[0].Rank)
	})

	t.Run("projects instants into the viewer's zone", func(t *testing.T) {
		event := makeEvent("proj", "alice", time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), false)
		sydneyViewer := domain.UserContext{Username: "bob", Role: domain.RoleUser, Timezone: "Australia/Sydney"}

		ranked, err := svc.RankVisible([]domain.Event{event}, sydneyViewer)
		require.NoError(t, err)

		// Same instant, Sydney wall clock (AEDT, UTC+11).
		require.Equal(t, "2026-03-14T20:00", ranked[0].LocalStart.Format(LocalTimeLayout))
		require.True(t, ranked[0].LocalStart.Equal(event.Start))
	})

	t.Run("rejects viewers with unusable timezones", func(t *testing.T) {
		broken := domain.UserContext{Username: "x", Role: domain.RoleUser, Timezone: "Nowhere/Void"}
		_, err := svc.RankVisible(nil, broken)
		require.Error(t, err)
	})
}

func TestCalendarView(t *testing.T) {
	t.Parallel()

	svc := &ScheduleService{}
	viewer := domain.UserContext{Username: "bob", Role: domain.RoleUser, Timezone: "UTC"}

	event := makeEvent("cal", "alice", time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), false)
	event.Recurrence = "FREQ=WEEKLY"

	entries, err := svc.CalendarView([]domain.Event{event}, viewer)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Title carries the creator, the rule rides along unexpanded.
	require.Equal(t, "Event cal (alice)", entries[0].Title)
	require.Equal(t, "FREQ=WEEKLY", entries[0].RRule)
	require.Equal(t, domain.SubjectOther.Color(), entries[0].Color)
}

func TestOccurrences(t *testing.T) {
	t.Parallel()

	svc := &ScheduleService{}
	viewer := domain.UserContext{Username: "alice", Role: domain.RoleUser, Timezone: "UTC"}

	windowFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	windowTo := time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)

	t.Run("expands a daily rule inside the window", func(t *testing.T) {
		event := makeEvent("daily", "alice", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), false)
		event.Recurrence = "FREQ=DAILY;COUNT=5"

		occs, err := svc.Occurrences([]domain.Event{event}, viewer, windowFrom, windowTo)
		require.NoError(t, err)
		require.Len(t, occs, 5)

		for i, o := range occs {
			require.True(t, o.Recurring)
			require.Equal(t, "Event daily (alice)", o.Title)
			wantStart := time.Date(2026, 3, 10+i, 9, 0, 0, 0, time.UTC)
			require.True(t, o.Start.Equal(wantStart), "occurrence %d: got %v", i, o.Start)
			require.True(t, o.End.Equal(wantStart.Add(time.Hour)))
		}
	})

	t.Run("window clips the expansion", func(t *testing.T) {
		event := makeEvent("weekly", "alice", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), false)
		event.Recurrence = "FREQ=WEEKLY"

		occs, err := svc.Occurrences([]domain.Event{event}, viewer, windowFrom, windowTo)
		require.NoError(t, err)
		// Mondays Mar 2, 9, 16, 23, 30
		require.Len(t, occs, 5)
	})

	t.Run("non-recurring events contribute one instance when overlapping", func(t *testing.T) {
		inside := makeEvent("inside", "alice", time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), false)
		outside := makeEvent("outside", "alice", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), false)

		occs, err := svc.Occurrences([]domain.Event{inside, outside}, viewer, windowFrom, windowTo)
		require.NoError(t, err)
		require.Len(t, occs, 1)
		require.Equal(t, "inside", occs[0].EventID)
		require.False(t, occs[0].Recurring)
	})

	t.Run("private events stay hidden from expansion", func(t *testing.T) {
		event := makeEvent("secret", "alice", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), true)
		event.Recurrence = "FREQ=DAILY;COUNT=3"

		bob := domain.UserContext{Username: "bob", Role: domain.RoleUser, Timezone: "UTC"}
		occs, err := svc.Occurrences([]domain.Event{event}, bob, windowFrom, windowTo)
		require.NoError(t, err)
		require.Empty(t, occs)
	})

	t.Run("results are sorted and projected into the viewer's zone", func(t *testing.T) {
		a := makeEvent("a", "alice", time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC), false)
		b := makeEvent("b", "alice", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), false)

		sydney := domain.UserContext{Username: "alice", Role: domain.RoleUser, Timezone: "Australia/Sydney"}
		occs, err := svc.Occurrences([]domain.Event{a, b}, sydney, windowFrom, windowTo)
		require.NoError(t, err)
		require.Len(t, occs, 2)
		require.Equal(t, "b", occs[0].EventID)
		require.Equal(t, "2026-03-10T20:00", occs[0].Start.Format(LocalTimeLayout))
	})

	t.Run("caps runaway rules per event", func(t *testing.T) {
		capped := &ScheduleService{MaxOccurrencesPerEvent: 3}
		event := makeEvent("forever", "alice", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), false)
		event.Recurrence = "FREQ=DAILY"

		occs, err := capped.Occurrences([]domain.Event{event}, viewer, windowFrom, windowTo)
		require.NoError(t, err)
		require.Len(t, occs, 3)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.Occurrences(nil, viewer, windowTo, windowFrom)
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "to", verr.Field)
	})
}
