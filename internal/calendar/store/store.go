package store

import (
	"context"
	"errors"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Events() Events
	Attendance() Attendance

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back when fn errors,
	// committed otherwise. This is the recommended way to run check-then-write
	// sequences so concurrent callers racing on the same row stay consistent.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUsername returns a user, or ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user. Returns ErrAlreadyExists on a username
	// collision.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users. Used by the bootstrap seed.
	IsEmpty(ctx context.Context) (bool, error)
}

type Events interface {
	// GetEventByID returns an event, or ErrNotFound.
	GetEventByID(ctx context.Context, id string) (domain.Event, error)

	// CreateEvent inserts a new event (id is provided by the service via ULID).
	CreateEvent(ctx context.Context, e domain.Event) error

	// ListEvents returns all events regardless of visibility; filtering is
	// the scheduling engine's responsibility.
	ListEvents(ctx context.Context) ([]domain.Event, error)

	// UpdateEventTime shifts start/end when the requester is the creator or
	// an admin. Unauthorized attempts affect zero rows and return no error;
	// callers detect the silent no-op from the count.
	UpdateEventTime(ctx context.Context, id string, start, end time.Time, requester string, isAdmin bool) (int64, error)

	// DeleteEvent removes the event under the same ownership rule and
	// silent-no-op contract. Attendance rows cascade per schema.
	DeleteEvent(ctx context.Context, id string, requester string, isAdmin bool) (int64, error)
}

type Attendance interface {
	// SetAttendance upserts the (event, user) status row.
	SetAttendance(ctx context.Context, a domain.Attendance) error

	// ListAttendance returns all status rows for an event in insertion order.
	ListAttendance(ctx context.Context, eventID string) ([]domain.Attendance, error)
}
