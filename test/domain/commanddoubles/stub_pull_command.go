//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// StubPullCommand is a stub implementation of commands.Pull.
type StubPullCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           entities.SyncReport
	LastOpts         commands.PullOptions
}

var _ commands.Pull = (*StubPullCommand)(nil)

func (s *StubPullCommand) Execute(
	_ context.Context,
	opts commands.PullOptions,
) (entities.SyncReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
