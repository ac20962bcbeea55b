package repositories

import (
	"context"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// CatalogRepository discovers the remote repositories of a Bitbucket server.
type CatalogRepository interface {
	// DiscoverRepositories pages through every repository visible to the
	// credentials and returns them grouped by project key. Nothing is
	// returned until the last page has been read.
	DiscoverRepositories(
		ctx context.Context,
		rootURL string,
		credentials entities.Credentials,
		pageSize int,
	) (entities.Catalog, error)
}
