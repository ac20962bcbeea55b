package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gitbucket/internal/domain/repositories"
	bbRepo "github.com/rios0rios0/gitbucket/internal/infrastructure/repositories/bitbucket"
	fsRepo "github.com/rios0rios0/gitbucket/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/gitbucket/internal/infrastructure/repositories/gogit"
	promRepo "github.com/rios0rios0/gitbucket/internal/infrastructure/repositories/prometheus"
	termRepo "github.com/rios0rios0/gitbucket/internal/infrastructure/repositories/terminal"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []any{
		func() domainRepos.CatalogRepository { return bbRepo.NewCatalogRepository() },
		func() domainRepos.GitRepository { return gitRepo.NewGitRepository() },
		func() domainRepos.LocalTreeRepository { return fsRepo.NewLocalTreeRepository() },
		func() domainRepos.MetricsRepository { return promRepo.NewMetricsRepository() },
		func() domainRepos.PromptRepository { return termRepo.NewPromptRepository() },
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}
