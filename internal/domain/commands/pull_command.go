package commands

import (
	"context"
	"time"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const (
	operationPull = "pull"

	defaultRetryDelay = 250 * time.Millisecond
)

// Pull is the interface for the pull command.
type Pull interface {
	Execute(ctx context.Context, opts PullOptions) (entities.SyncReport, error)
}

// PullOptions holds runtime options for the pull command.
type PullOptions struct {
	Settings   entities.GitSettings
	ShowErrors bool // report dirty working trees at info level
}

// PullCommand fast-forwards every clean mirrored repository.
type PullCommand struct {
	tree       repositories.LocalTreeRepository
	git        repositories.GitRepository
	retryDelay time.Duration
}

// NewPullCommand creates a new PullCommand.
func NewPullCommand(tree repositories.LocalTreeRepository, git repositories.GitRepository) *PullCommand {
	return &PullCommand{tree: tree, git: git, retryDelay: defaultRetryDelay}
}

// Execute scans the mirror and runs the fast-forward protocol on every
// repository. Only scan failures are returned.
func (it *PullCommand) Execute(ctx context.Context, opts PullOptions) (entities.SyncReport, error) {
	start := time.Now()
	report := entities.SyncReport{Operation: operationPull}

	paths, err := scanTree(it.tree, opts.Settings.RootDirectory)
	if err != nil {
		return report, err
	}

	report.Results = fanOut(ctx, opts.Settings.Concurrency, paths,
		func(ctx context.Context, path string) entities.SyncResult {
			return it.fastForward(ctx, opts.Settings, path, opts.ShowErrors)
		},
	)

	logReport(report, start)
	return report, nil
}
