//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// StubFeaturedCommand is a stub implementation of commands.Featured.
type StubFeaturedCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           entities.SyncReport
	LastOpts         commands.FeaturedOptions
}

var _ commands.Featured = (*StubFeaturedCommand)(nil)

func (s *StubFeaturedCommand) Execute(
	_ context.Context,
	opts commands.FeaturedOptions,
) (entities.SyncReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
