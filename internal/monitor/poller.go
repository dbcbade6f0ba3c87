package monitor

import (
	"context"
	"fmt"

	"github.com/aleister1102/gistwatch/internal/models"
	"github.com/rs/zerolog"
)

// GistLister returns a user's gists, newest first.
type GistLister interface {
	ListGists(ctx context.Context, name string) ([]models.Gist, models.RateLimit, error)
}

// CollectionPoller fetches the full gist list of a user on demand.
type CollectionPoller struct {
	lister GistLister
	logger zerolog.Logger
}

// NewCollectionPoller creates a CollectionPoller.
func NewCollectionPoller(lister GistLister, logger zerolog.Logger) *CollectionPoller {
	return &CollectionPoller{
		lister: lister,
		logger: logger.With().Str("component", "CollectionPoller").Logger(),
	}
}

// FetchCollection issues one list request. There is no retry or partial result.
func (p *CollectionPoller) FetchCollection(ctx context.Context, name string) (models.CollectionSnapshot, error) {
	gists, rateLimit, err := p.lister.ListGists(ctx, name)
	if err != nil {
		return models.CollectionSnapshot{}, fmt.Errorf("failed to fetch gists for %q: %w", name, err)
	}

	snapshot := models.NewCollectionSnapshot(gists, rateLimit)
	event := p.logger.Debug().Str("user", name).Int("count", snapshot.Count)
	if rateLimit.Known {
		event = event.Int("ratelimit_remaining", rateLimit.Remaining).Time("ratelimit_reset", rateLimit.Reset)
	}
	event.Msg("Fetched gist list")

	return snapshot, nil
}
