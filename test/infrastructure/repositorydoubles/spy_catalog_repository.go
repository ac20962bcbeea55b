//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// SpyCatalogRepository implements repositories.CatalogRepository as a configurable spy.
type SpyCatalogRepository struct {
	Catalog     entities.Catalog
	DiscoverErr error

	// spy: arguments received
	CallCount       int
	LastRootURL     string
	LastCredentials entities.Credentials
	LastPageSize    int
}

var _ repositories.CatalogRepository = (*SpyCatalogRepository)(nil)

func (s *SpyCatalogRepository) DiscoverRepositories(
	_ context.Context,
	rootURL string,
	credentials entities.Credentials,
	pageSize int,
) (entities.Catalog, error) {
	s.CallCount++
	s.LastRootURL = rootURL
	s.LastCredentials = credentials
	s.LastPageSize = pageSize
	if s.DiscoverErr != nil {
		return nil, s.DiscoverErr
	}
	return s.Catalog, nil
}
