package sqlite

import (
	"context"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
)

type usersRepo struct {
	q querier
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT username, password_hash, role, timezone, created_at, updated_at
		FROM users
		WHERE username = ?`, username)

	var u domain.User
	var createdAt, updatedAt string
	if err := row.Scan(&u.Username, &u.PasswordHash, &u.Role, &u.Timezone, &createdAt, &updatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}

	var err error
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.User{}, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := fmtTime(time.Now())
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, role, timezone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, string(u.Role), u.Timezone, now, now)
	return mapConstraint(err)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
