package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const (
	operationClone = "clone"

	// DefaultPageSize is the number of repositories requested per Bitbucket page.
	DefaultPageSize = 250
)

// Clone is the interface for the clone command.
type Clone interface {
	Execute(ctx context.Context, opts CloneOptions) (entities.SyncReport, error)
}

// CloneOptions holds runtime options for the clone command.
type CloneOptions struct {
	Settings    entities.GitSettings
	RootURL     string
	Credentials entities.Credentials
	Exclusions  entities.Exclusions
	PageSize    int
}

// CloneCommand discovers every repository on the Bitbucket server and clones
// the ones that are not mirrored yet.
type CloneCommand struct {
	catalog repositories.CatalogRepository
	git     repositories.GitRepository
	tree    repositories.LocalTreeRepository
}

// NewCloneCommand creates a new CloneCommand.
func NewCloneCommand(
	catalog repositories.CatalogRepository,
	git repositories.GitRepository,
	tree repositories.LocalTreeRepository,
) *CloneCommand {
	return &CloneCommand{catalog: catalog, git: git, tree: tree}
}

// Execute discovers, filters and clones. Only discovery failures are returned;
// clone failures are logged and recorded in the report.
func (it *CloneCommand) Execute(ctx context.Context, opts CloneOptions) (entities.SyncReport, error) {
	start := time.Now()
	report := entities.SyncReport{Operation: operationClone}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	catalog, err := it.catalog.DiscoverRepositories(ctx, opts.RootURL, opts.Credentials, pageSize)
	if err != nil {
		return report, fmt.Errorf("failed to discover repositories: %w", err)
	}

	units := filterCatalog(catalog, opts.Exclusions)
	logger.Infof(
		"Found %d repositories in %d projects, %d after exclusions",
		catalog.Len(), len(catalog), len(units),
	)

	report.Results = fanOut(ctx, opts.Settings.Concurrency, units,
		func(ctx context.Context, unit entities.ProjectRepository) entities.SyncResult {
			return it.cloneRepository(ctx, opts.Settings, unit)
		},
	)

	logReport(report, start)
	return report, nil
}

func (it *CloneCommand) cloneRepository(
	ctx context.Context,
	settings entities.GitSettings,
	unit entities.ProjectRepository,
) entities.SyncResult {
	path := settings.RepositoryPath(unit.Project, unit.Repository.Name)
	log := unitLogger(operationClone, path)

	log.Trace("Checking repository")
	if it.tree.Exists(path) {
		return entities.SyncResult{Target: path, Outcome: entities.OutcomePresent}
	}

	log.Infof("Cloning repository from %s", unit.Repository.GitURL)
	if settings.DryRun {
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeWouldClone}
	}

	if err := it.git.Clone(ctx, entities.CloneInput{
		URL:                unit.Repository.GitURL,
		Destination:        path,
		PrivateKeyLocation: settings.PrivateKeyLocation,
	}); err != nil {
		return failed(log, path, err)
	}

	return entities.SyncResult{Target: path, Outcome: entities.OutcomeCloned}
}

// filterCatalog drops excluded projects, then excluded repositories, and
// flattens what is left into clone units ordered by project key.
func filterCatalog(catalog entities.Catalog, exclusions entities.Exclusions) []entities.ProjectRepository {
	var units []entities.ProjectRepository
	for _, project := range catalog.Projects() {
		if !exclusions.ExcludesProject(project) {
			logger.Debugf("Excluding project %s", project)
			continue
		}
		for _, repository := range catalog[project] {
			if !exclusions.ExcludesRepository(project, repository.Name) {
				logger.Debugf("Excluding repository %s/%s", project, repository.Name)
				continue
			}
			units = append(units, entities.ProjectRepository{Project: project, Repository: repository})
		}
	}
	return units
}
