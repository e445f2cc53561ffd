package sqlite

import (
	"context"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
)

type attendanceRepo struct {
	q querier
}

// SetAttendance upserts the (event, user) status row, keyed on the composite
// primary key.
func (r *attendanceRepo) SetAttendance(ctx context.Context, a domain.Attendance) error {
	now := fmtTime(time.Now())
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO attendance (event_id, username, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(event_id, username)
		DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at`,
		a.EventID, a.Username, string(a.Status), now, now)
	return err
}

func (r *attendanceRepo) ListAttendance(ctx context.Context, eventID string) ([]domain.Attendance, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT event_id, username, status, created_at, updated_at
		FROM attendance
		WHERE event_id = ?
		ORDER BY created_at, username`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		var createdAt, updatedAt string
		if err := rows.Scan(&a.EventID, &a.Username, &a.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
