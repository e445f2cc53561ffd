package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/store"
	"github.com/borgstromhq/borgcal/pkg/cryptox"
	"github.com/borgstromhq/borgcal/pkg/slogx"
)

// CredentialService owns signup and password verification. Passwords are
// only ever persisted as peppered argon2id hashes.
type CredentialService struct {
	Store store.Store
}

// SignUp creates a new user with role "user". The timezone preference is
// optional and defaults to UTC. A username collision returns
// ErrUsernameTaken with no further detail.
func (s *CredentialService) SignUp(
	ctx context.Context,
	username, password, timezone string,
) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, invalid("username", "must not be empty")
	}
	if password == "" {
		return domain.User{}, invalid("password", "must not be empty")
	}

	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return domain.User{}, invalid("timezone", "unknown IANA zone name")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Timezone:     timezone,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	l.Info("user created", "username", username)
	return user, nil
}

// Authenticate verifies a username/password pair and returns the caller's
// user context. Unknown users and wrong passwords are indistinguishable.
func (s *CredentialService) Authenticate(
	ctx context.Context,
	username, password string,
) (domain.UserContext, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn roughly the same time as a real verification so the two
			// failure cases are also hard to tell apart by timing.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return domain.UserContext{}, ErrInvalidCredentials
		}
		return domain.UserContext{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.UserContext{}, ErrInvalidCredentials
	}

	return user.Context(), nil
}

// dummyHash is a syntactically valid argon2id hash of a random string, used
// to equalize verification cost for unknown usernames.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$t5vRdclXE0JyqbWL7PS9VRjCJ1bqSWDvihvQPE3bdXs"
