package profiles

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

// Repo defines persistence operations for student profiles.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (Profile, error)
	Upsert(ctx context.Context, profile Profile) (Profile, error)
}
