package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Username     string
	PasswordHash string // argon2id PHC encoded
	Role         Role
	Timezone     string // IANA zone name
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserContext identifies the authenticated caller. It is passed explicitly
// into every service call rather than held as ambient state.
type UserContext struct {
	Username string
	Role     Role
	Timezone string
}

func (u UserContext) IsAdmin() bool { return u.Role == RoleAdmin }

// Location resolves the caller's IANA timezone.
func (u UserContext) Location() (*time.Location, error) {
	return time.LoadLocation(u.Timezone)
}

// Context returns the user context for a stored user.
func (u User) Context() UserContext {
	return UserContext{
		Username: u.Username,
		Role:     u.Role,
		Timezone: u.Timezone,
	}
}
