package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrIdentityNotFound means the user search matched nobody.
	ErrIdentityNotFound = errors.New("user does not exist")
	// ErrIdentityAmbiguous means the user search matched more than one account.
	ErrIdentityAmbiguous = errors.New("user is ambiguous")
)

// UserSearcher returns the total match count of a user search.
type UserSearcher interface {
	SearchUserCount(ctx context.Context, name string) (int, error)
}

// IdentityValidator checks once, before polling starts, that the watched user exists.
type IdentityValidator struct {
	searcher UserSearcher
	logger   zerolog.Logger
}

// NewIdentityValidator creates an IdentityValidator.
func NewIdentityValidator(searcher UserSearcher, logger zerolog.Logger) *IdentityValidator {
	return &IdentityValidator{
		searcher: searcher,
		logger:   logger.With().Str("component", "IdentityValidator").Logger(),
	}
}

// IdentityExists reports whether the search for name matched exactly one account.
// Transport, status and decoding failures are returned as errors.
func (v *IdentityValidator) IdentityExists(ctx context.Context, name string) (bool, error) {
	exists, _, err := v.lookup(ctx, name)
	return exists, err
}

// Validate is IdentityExists with the failing count turned into a typed error.
// It issues a single search request.
func (v *IdentityValidator) Validate(ctx context.Context, name string) error {
	exists, count, err := v.lookup(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check user %q: %w", name, err)
	}
	if exists {
		v.logger.Info().Str("user", name).Msgf("User %q exists..continuing", name)
		return nil
	}
	if count == 0 {
		return fmt.Errorf("%w: %q", ErrIdentityNotFound, name)
	}
	return fmt.Errorf("%w: %q matched %d accounts", ErrIdentityAmbiguous, name, count)
}

func (v *IdentityValidator) lookup(ctx context.Context, name string) (bool, int, error) {
	count, err := v.searcher.SearchUserCount(ctx, name)
	if err != nil {
		return false, 0, err
	}
	return count == 1, count, nil
}
