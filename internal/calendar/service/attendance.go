package service

import (
	"context"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/store"
)

// AttendanceService records per-(event, user) attendance. A caller can only
// ever write their own row; the upsert is idempotent.
type AttendanceService struct {
	Store store.Store
}

// Set upserts the caller's attendance status on an event. Returns
// store.ErrNotFound when the event does not exist. The existence check and
// the upsert share a transaction so a concurrent event deletion cannot leave
// an orphan row behind.
func (s *AttendanceService) Set(
	ctx context.Context,
	caller domain.UserContext,
	eventID string,
	status domain.AttendanceStatus,
) error {
	if !status.Known() {
		return invalid("status", "must be attending or not_attending")
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Events().GetEventByID(ctx, eventID); err != nil {
			return err
		}

		return tx.Attendance().SetAttendance(ctx, domain.Attendance{
			EventID:  eventID,
			Username: caller.Username,
			Status:   status,
		})
	})
}

// List returns all attendance rows for an event in insertion order.
// store.ErrNotFound when the event does not exist.
func (s *AttendanceService) List(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	if _, err := s.Store.Events().GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.Store.Attendance().ListAttendance(ctx, eventID)
}
