//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// StubLocalTreeRepository implements repositories.LocalTreeRepository.
type StubLocalTreeRepository struct {
	Paths    []string
	ListErr  error
	Existing map[string]bool

	ListedRoots []string
}

var _ repositories.LocalTreeRepository = (*StubLocalTreeRepository)(nil)

func (s *StubLocalTreeRepository) ListExistingRepositories(root string) ([]string, error) {
	s.ListedRoots = append(s.ListedRoots, root)
	return s.Paths, s.ListErr
}

func (s *StubLocalTreeRepository) Exists(path string) bool {
	return s.Existing[path]
}
