package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidInput    = errors.New("invalid input")
)

// Service contains business logic for student profiles.
type Service struct {
	Repo Repo
}

// Get returns the caller's profile, or ErrNotFound when none has been saved.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrUnauthenticated
	}
	return s.Repo.GetByUser(ctx, userID)
}

// Save validates and upserts the caller's profile. The owner is always taken
// from the authenticated identity, never from the payload.
func (s *Service) Save(ctx context.Context, userID string, profile Profile) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrUnauthenticated
	}
	if strings.TrimSpace(profile.StudentID) == "" {
		return Profile{}, fmt.Errorf("%w: student id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(profile.FirstName) == "" || strings.TrimSpace(profile.LastName) == "" {
		return Profile{}, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if profile.YearOfStudy < 1 || profile.YearOfStudy > 6 {
		return Profile{}, fmt.Errorf("%w: year of study must be between 1 and 6", ErrInvalidInput)
	}
	if profile.CGPA < 0 || profile.CGPA > 10 {
		return Profile{}, fmt.Errorf("%w: cgpa must be between 0 and 10", ErrInvalidInput)
	}

	profile.UserID = userID
	return s.Repo.Upsert(ctx, profile)
}
