package service

import (
	"context"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/store"
	"github.com/borgstromhq/borgcal/pkg/cryptox"
	"github.com/borgstromhq/borgcal/pkg/slogx"
)

// BootstrapService seeds the initial administrator account when the store
// starts out empty.
type BootstrapService struct {
	Store store.Store

	AdminUsername string
	AdminPassword string
}

// Seed creates the administrator account if no users exist yet. Returns true
// when a seed happened. The check and the insert run in one transaction so
// two racing processes cannot both seed.
func (s *BootstrapService) Seed(ctx context.Context) (bool, error) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(s.AdminPassword)
	if err != nil {
		return false, err
	}

	seeded := false
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return nil
		}

		if err := tx.Users().CreateUser(ctx, domain.User{
			Username:     s.AdminUsername,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			Timezone:     "UTC",
		}); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		l.Warn("seeded default administrator account, rotate the credential before production use",
			"username", s.AdminUsername)
	}
	return seeded, nil
}
