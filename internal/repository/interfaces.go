package repository

import (
	"context"
	"errors"

	"github.com/ontrackhk/ontrack/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProfileRepo is the durable store for completed survey profiles,
// keyed by user name.
type ProfileRepo interface {
	// Upsert writes the profile, replacing any existing row for the
	// same user name. The write is atomic per key.
	Upsert(ctx context.Context, p *domain.Profile) error

	// Get loads the profile for a user, or ErrNotFound.
	Get(ctx context.Context, userName string) (*domain.Profile, error)
}
