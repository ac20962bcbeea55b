package commands

import (
	"context"
	"time"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// FilterCatalog exports filterCatalog for testing.
var FilterCatalog = filterCatalog //nolint:gochecknoglobals // test export

// MaxFetchAttempts exports maxFetchAttempts for testing.
const MaxFetchAttempts = maxFetchAttempts

// WithRetryDelay overrides the delay between fetch attempts.
func (it *PullCommand) WithRetryDelay(delay time.Duration) *PullCommand {
	it.retryDelay = delay
	return it
}

// FanOut exports fanOut for testing with string units.
func FanOut(limit int, units []string, work func(unit string) entities.SyncResult) []entities.SyncResult {
	return fanOut(context.Background(), limit, units, func(_ context.Context, unit string) entities.SyncResult {
		return work(unit)
	})
}
