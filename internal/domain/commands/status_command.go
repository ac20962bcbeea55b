package commands

import (
	"context"
	"time"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const operationStatus = "status"

// Status is the interface for the status command.
type Status interface {
	Execute(ctx context.Context, opts StatusOptions) (entities.SyncReport, error)
}

// StatusOptions holds runtime options for the status command.
type StatusOptions struct {
	Settings entities.GitSettings
}

// StatusCommand reports mirrored repositories with uncommitted changes.
type StatusCommand struct {
	tree repositories.LocalTreeRepository
	git  repositories.GitRepository
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(tree repositories.LocalTreeRepository, git repositories.GitRepository) *StatusCommand {
	return &StatusCommand{tree: tree, git: git}
}

func (it *StatusCommand) Execute(ctx context.Context, opts StatusOptions) (entities.SyncReport, error) {
	start := time.Now()
	report := entities.SyncReport{Operation: operationStatus}

	paths, err := scanTree(it.tree, opts.Settings.RootDirectory)
	if err != nil {
		return report, err
	}

	report.Results = fanOut(ctx, opts.Settings.Concurrency, paths,
		func(_ context.Context, path string) entities.SyncResult {
			return it.status(path)
		},
	)

	logReport(report, start)
	return report, nil
}

func (it *StatusCommand) status(path string) entities.SyncResult {
	log := unitLogger(operationStatus, path)
	log.Trace("Checking directory")

	repo, err := it.git.Open(path)
	if err != nil {
		return failed(log, path, err)
	}

	clean, err := repo.IsClean()
	if err != nil {
		return failed(log, path, err)
	}
	if !clean {
		log.Info("Directory is dirty")
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeDirty}
	}

	return entities.SyncResult{Target: path, Outcome: entities.OutcomeClean}
}
