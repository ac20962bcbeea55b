package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const operationFeatured = "featured"

// Featured is the interface for the featured command.
type Featured interface {
	Execute(ctx context.Context, opts FeaturedOptions) (entities.SyncReport, error)
}

// FeaturedOptions holds runtime options for the featured command.
type FeaturedOptions struct {
	Settings entities.GitSettings
	ShowMain bool // also report repositories on main, master or develop
}

// FeaturedCommand reports mirrored repositories that are not on a trunk branch.
type FeaturedCommand struct {
	tree repositories.LocalTreeRepository
	git  repositories.GitRepository
}

// NewFeaturedCommand creates a new FeaturedCommand.
func NewFeaturedCommand(tree repositories.LocalTreeRepository, git repositories.GitRepository) *FeaturedCommand {
	return &FeaturedCommand{tree: tree, git: git}
}

func (it *FeaturedCommand) Execute(ctx context.Context, opts FeaturedOptions) (entities.SyncReport, error) {
	start := time.Now()
	report := entities.SyncReport{Operation: operationFeatured}

	paths, err := scanTree(it.tree, opts.Settings.RootDirectory)
	if err != nil {
		return report, err
	}

	report.Results = fanOut(ctx, opts.Settings.Concurrency, paths,
		func(_ context.Context, path string) entities.SyncResult {
			return it.featured(path, opts.ShowMain)
		},
	)

	logReport(report, start)
	return report, nil
}

func (it *FeaturedCommand) featured(path string, showMain bool) entities.SyncResult {
	log := unitLogger(operationFeatured, path)
	log.Tracef("Checking directory %s", path)

	repo, err := it.git.Open(path)
	if err != nil {
		return failed(log, path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return failed(log, path, fmt.Errorf("error in path: %w", err))
	}

	switch {
	case head.Unborn:
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeUnborn}
	case head.Detached:
		log.Error("not a branch")
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeDetached, Err: entities.ErrNoBranch}
	case head.IsTrunk():
		if showMain {
			log.Infof("on branch %s", head.Branch)
		}
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeOnTrunk}
	default:
		log.Infof("on branch %s", head.Branch)
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeOnBranch}
	}
}
