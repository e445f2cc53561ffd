package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/store"
	"github.com/borgstromhq/borgcal/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func insertUser(t *testing.T, st store.Store, username string) {
	t.Helper()
	require.NoError(t, st.Users().CreateUser(context.Background(), domain.User{
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$x$y",
		Role:         domain.RoleUser,
		Timezone:     "UTC",
	}))
}

func insertEvent(t *testing.T, st store.Store, createdBy string) domain.Event {
	t.Helper()

	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	e := domain.Event{
		ID:           idx.New().String(),
		Title:        "Stored event",
		Subject:      domain.SubjectUrgent,
		Description:  "with description",
		Start:        start,
		End:          start.Add(time.Hour),
		Timezone:     "Australia/Sydney",
		CreatedBy:    createdBy,
		IsPrivate:    true,
		Recurrence:   "FREQ=MONTHLY",
		SubjectColor: domain.SubjectUrgent.Color(),
	}
	require.NoError(t, st.Events().CreateEvent(context.Background(), e))
	return e
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	insertUser(t, st, "alice")

	empty, err = st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	t.Run("username collisions map to ErrAlreadyExists", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, domain.User{
			Username:     "alice",
			PasswordHash: "hash",
			Role:         domain.RoleUser,
			Timezone:     "UTC",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("missing users map to ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestEventsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	insertUser(t, st, "alice")

	e := insertEvent(t, st, "alice")

	got, err := st.Events().GetEventByID(ctx, e.ID)
	require.NoError(t, err)

	require.Equal(t, e.Title, got.Title)
	require.Equal(t, e.Subject, got.Subject)
	require.Equal(t, e.Recurrence, got.Recurrence)
	require.Equal(t, e.Timezone, got.Timezone)
	require.True(t, got.IsPrivate)
	require.True(t, got.Start.Equal(e.Start))
	require.True(t, got.End.Equal(e.End))
	require.False(t, got.CreatedAt.IsZero())

	t.Run("empty recurrence survives as empty string", func(t *testing.T) {
		plain := e
		plain.ID = idx.New().String()
		plain.Recurrence = ""
		require.NoError(t, st.Events().CreateEvent(ctx, plain))

		got, err := st.Events().GetEventByID(ctx, plain.ID)
		require.NoError(t, err)
		require.Empty(t, got.Recurrence)
	})
}

func TestEventOwnershipGuards(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	insertUser(t, st, "alice")

	e := insertEvent(t, st, "alice")
	shifted := e.Start.Add(48 * time.Hour)

	affected, err := st.Events().UpdateEventTime(ctx, e.ID, shifted, shifted.Add(time.Hour), "bob", false)
	require.NoError(t, err)
	require.Zero(t, affected)

	affected, err = st.Events().UpdateEventTime(ctx, e.ID, shifted, shifted.Add(time.Hour), "bob", true)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	affected, err = st.Events().DeleteEvent(ctx, e.ID, "bob", false)
	require.NoError(t, err)
	require.Zero(t, affected)

	affected, err = st.Events().DeleteEvent(ctx, e.ID, "alice", false)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
}

func TestAttendanceUpsertAndCascade(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	insertUser(t, st, "alice")
	insertUser(t, st, "bob")

	e := insertEvent(t, st, "alice")

	set := func(status domain.AttendanceStatus) {
		require.NoError(t, st.Attendance().SetAttendance(ctx, domain.Attendance{
			EventID:  e.ID,
			Username: "bob",
			Status:   status,
		}))
	}

	set(domain.StatusAttending)
	set(domain.StatusNotAttending)

	rows, err := st.Attendance().ListAttendance(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, domain.StatusNotAttending, rows[0].Status)

	// Deleting the event takes the attendance rows with it.
	_, err = st.Events().DeleteEvent(ctx, e.ID, "alice", false)
	require.NoError(t, err)

	rows, err = st.Attendance().ListAttendance(ctx, e.ID)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	errBoom := assert.AnError
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, domain.User{
			Username:     "ghost",
			PasswordHash: "hash",
			Role:         domain.RoleUser,
			Timezone:     "UTC",
		}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = st.Users().GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}
