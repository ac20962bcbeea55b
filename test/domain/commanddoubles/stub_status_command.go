//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// StubStatusCommand is a stub implementation of commands.Status.
type StubStatusCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           entities.SyncReport
	LastOpts         commands.StatusOptions
}

var _ commands.Status = (*StubStatusCommand)(nil)

func (s *StubStatusCommand) Execute(
	_ context.Context,
	opts commands.StatusOptions,
) (entities.SyncReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
