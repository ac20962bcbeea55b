//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// StubCloneCommand is a stub implementation of commands.Clone.
type StubCloneCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           entities.SyncReport
	LastOpts         commands.CloneOptions
}

var _ commands.Clone = (*StubCloneCommand)(nil)

func (s *StubCloneCommand) Execute(
	_ context.Context,
	opts commands.CloneOptions,
) (entities.SyncReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
