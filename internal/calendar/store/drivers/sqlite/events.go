package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
)

type eventsRepo struct {
	q querier
}

const eventColumns = `id, title, subject, description, start, "end", timezone,
	created_by, is_private, recurrence, subject_color, created_at, updated_at`

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = ?`, id)

	e, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	return e, nil
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	now := fmtTime(time.Now())
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO events
			(id, title, subject, description, start, "end", timezone,
			 created_by, is_private, recurrence, subject_color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, string(e.Subject), e.Description,
		fmtTime(e.Start), fmtTime(e.End), e.Timezone,
		e.CreatedBy, boolToInt(e.IsPrivate), mapStringNull(e.Recurrence),
		e.SubjectColor, now, now)
	return mapConstraint(err)
}

func (r *eventsRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateEventTime shifts start/end. Non-owner non-admin requesters match no
// rows, the silent-no-op contract.
func (r *eventsRepo) UpdateEventTime(
	ctx context.Context,
	id string,
	start, end time.Time,
	requester string,
	isAdmin bool,
) (int64, error) {
	var res sql.Result
	var err error

	if isAdmin {
		res, err = r.q.ExecContext(ctx, `
			UPDATE events SET start = ?, "end" = ?, updated_at = ?
			WHERE id = ?`,
			fmtTime(start), fmtTime(end), fmtTime(time.Now()), id)
	} else {
		res, err = r.q.ExecContext(ctx, `
			UPDATE events SET start = ?, "end" = ?, updated_at = ?
			WHERE id = ? AND created_by = ?`,
			fmtTime(start), fmtTime(end), fmtTime(time.Now()), id, requester)
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *eventsRepo) DeleteEvent(
	ctx context.Context,
	id string,
	requester string,
	isAdmin bool,
) (int64, error) {
	var res sql.Result
	var err error

	if isAdmin {
		res, err = r.q.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	} else {
		res, err = r.q.ExecContext(ctx, `
			DELETE FROM events WHERE id = ? AND created_by = ?`, id, requester)
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (domain.Event, error) {
	var e domain.Event
	var start, end, createdAt, updatedAt string
	var isPrivate int64
	var recurrence sql.NullString

	if err := s.Scan(
		&e.ID, &e.Title, &e.Subject, &e.Description, &start, &end, &e.Timezone,
		&e.CreatedBy, &isPrivate, &recurrence, &e.SubjectColor, &createdAt, &updatedAt,
	); err != nil {
		return domain.Event{}, err
	}

	var err error
	if e.Start, err = parseTime(start); err != nil {
		return domain.Event{}, err
	}
	if e.End, err = parseTime(end); err != nil {
		return domain.Event{}, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Event{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Event{}, err
	}

	e.IsPrivate = isPrivate != 0
	e.Recurrence = mapNullString(recurrence)
	return e, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
