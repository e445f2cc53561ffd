package service

import (
	"context"
	"testing"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/store"
	"github.com/stretchr/testify/require"
)

func validEventInput() CreateEventInput {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return CreateEventInput{
		Title:   "Team lunch",
		Subject: domain.SubjectSocial,
		Start:   start,
		End:     start.Add(time.Hour),
	}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &EventService{Store: st}

	alice := seedUser(t, st, "alice", domain.RoleUser, "Australia/Sydney")

	t.Run("persists the event with creator and derived color", func(t *testing.T) {
		event, err := svc.Create(ctx, alice, validEventInput())
		require.NoError(t, err)
		require.NotEmpty(t, event.ID)
		require.Equal(t, "alice", event.CreatedBy)
		require.Equal(t, "Australia/Sydney", event.Timezone)
		require.Equal(t, domain.SubjectSocial.Color(), event.SubjectColor)

		stored, err := st.Events().GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		require.True(t, stored.Start.Equal(event.Start))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		var verr *ValidationError

		in := validEventInput()
		in.Title = "  "
		_, err := svc.Create(ctx, alice, in)
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "title", verr.Field)

		in = validEventInput()
		in.Subject = "Quarterly Review"
		_, err = svc.Create(ctx, alice, in)
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "subject", verr.Field)

		in = validEventInput()
		in.End = in.Start.Add(-time.Minute)
		_, err = svc.Create(ctx, alice, in)
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "end", verr.Field)

		in = validEventInput()
		in.Recurrence = "EVERY=FULLMOON"
		_, err = svc.Create(ctx, alice, in)
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "recurrence", verr.Field)
	})

	t.Run("accepts a parseable recurrence rule", func(t *testing.T) {
		in := validEventInput()
		in.Recurrence = "FREQ=WEEKLY"
		event, err := svc.Create(ctx, alice, in)
		require.NoError(t, err)
		require.True(t, event.Recurring())
	})
}

func TestUpdateEventTimeOwnership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &EventService{Store: st}

	alice := seedUser(t, st, "alice", domain.RoleUser, "UTC")
	bob := seedUser(t, st, "bob", domain.RoleUser, "UTC")
	admin := seedUser(t, st, "root", domain.RoleAdmin, "UTC")

	event, err := svc.Create(ctx, alice, validEventInput())
	require.NoError(t, err)

	newStart := event.Start.Add(24 * time.Hour)
	newEnd := event.End.Add(24 * time.Hour)

	t.Run("non-owner mutation is a silent no-op", func(t *testing.T) {
		affected, err := svc.UpdateTime(ctx, bob, event.ID, newStart, newEnd)
		require.NoError(t, err)
		require.Zero(t, affected)

		stored, err := svc.Get(ctx, event.ID)
		require.NoError(t, err)
		require.True(t, stored.Start.Equal(event.Start))
	})

	t.Run("owner can shift the event", func(t *testing.T) {
		affected, err := svc.UpdateTime(ctx, alice, event.ID, newStart, newEnd)
		require.NoError(t, err)
		require.EqualValues(t, 1, affected)

		stored, err := svc.Get(ctx, event.ID)
		require.NoError(t, err)
		require.True(t, stored.Start.Equal(newStart))
		require.True(t, stored.End.Equal(newEnd))
	})

	t.Run("admin can shift anyone's event", func(t *testing.T) {
		affected, err := svc.UpdateTime(ctx, admin, event.ID, event.Start, event.End)
		require.NoError(t, err)
		require.EqualValues(t, 1, affected)
	})

	t.Run("unknown event is also a silent no-op", func(t *testing.T) {
		affected, err := svc.UpdateTime(ctx, alice, "01ARZ3NDEKTSV4RRFFQ69G5FAV", newStart, newEnd)
		require.NoError(t, err)
		require.Zero(t, affected)
	})

	t.Run("rejects inverted time ranges before touching the store", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.UpdateTime(ctx, alice, event.ID, newEnd, newStart)
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "end", verr.Field)
	})
}

func TestDeleteEventOwnership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &EventService{Store: st}
	att := &AttendanceService{Store: st}

	alice := seedUser(t, st, "alice", domain.RoleUser, "UTC")
	bob := seedUser(t, st, "bob", domain.RoleUser, "UTC")

	event, err := svc.Create(ctx, alice, validEventInput())
	require.NoError(t, err)
	require.NoError(t, att.Set(ctx, bob, event.ID, domain.StatusAttending))

	t.Run("non-owner delete is a silent no-op", func(t *testing.T) {
		affected, err := svc.Delete(ctx, bob, event.ID)
		require.NoError(t, err)
		require.Zero(t, affected)

		_, err = svc.Get(ctx, event.ID)
		require.NoError(t, err)
	})

	t.Run("owner delete cascades attendance", func(t *testing.T) {
		affected, err := svc.Delete(ctx, alice, event.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, affected)

		_, err = svc.Get(ctx, event.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		rows, err := st.Attendance().ListAttendance(ctx, event.ID)
		require.NoError(t, err)
		require.Empty(t, rows)
	})
}
