//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// StubGitRepository implements repositories.GitRepository. Open returns the
// StubLocalRepository registered for the path. Safe for concurrent use.
type StubGitRepository struct {
	Repositories map[string]*StubLocalRepository
	CloneErrs    map[string]error // destination -> error

	mu     sync.Mutex
	clones []entities.CloneInput
}

var _ repositories.GitRepository = (*StubGitRepository)(nil)

func (s *StubGitRepository) Open(path string) (repositories.LocalRepository, error) {
	repo, ok := s.Repositories[path]
	if !ok {
		return nil, fmt.Errorf("repository does not exist: %s", path)
	}
	return repo, nil
}

func (s *StubGitRepository) Clone(_ context.Context, input entities.CloneInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clones = append(s.clones, input)
	return s.CloneErrs[input.Destination]
}

// Clones returns the clone inputs received so far.
func (s *StubGitRepository) Clones() []entities.CloneInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.CloneInput(nil), s.clones...)
}

// StubLocalRepository implements repositories.LocalRepository. It is only
// used by the worker that opened it, like the real one.
type StubLocalRepository struct {
	// --- IsClean ---
	Dirty    bool
	CleanErr error

	// --- Head ---
	HeadValue entities.Head
	HeadErr   error

	// --- Fetch ---
	FetchErrs   []error // error returned by each attempt, nil once exhausted
	FetchInputs []entities.FetchInput

	// --- MergeAnalysis ---
	Analysis    entities.MergeAnalysis
	AnalysisErr error

	// --- FastForward ---
	FastForwardErr     error
	FastForwardTargets []string
}

var _ repositories.LocalRepository = (*StubLocalRepository)(nil)

// NewStubLocalRepository returns a clean repository on branch.
func NewStubLocalRepository(branch string) *StubLocalRepository {
	return &StubLocalRepository{HeadValue: entities.Head{Branch: branch}}
}

func (s *StubLocalRepository) IsClean() (bool, error) {
	return !s.Dirty, s.CleanErr
}

func (s *StubLocalRepository) Head() (entities.Head, error) {
	return s.HeadValue, s.HeadErr
}

func (s *StubLocalRepository) Fetch(_ context.Context, input entities.FetchInput) error {
	attempt := len(s.FetchInputs)
	s.FetchInputs = append(s.FetchInputs, input)
	if attempt < len(s.FetchErrs) {
		return s.FetchErrs[attempt]
	}
	return nil
}

func (s *StubLocalRepository) MergeAnalysis(_, _ string) (entities.MergeAnalysis, error) {
	return s.Analysis, s.AnalysisErr
}

func (s *StubLocalRepository) FastForward(_, target string) error {
	s.FastForwardTargets = append(s.FastForwardTargets, target)
	return s.FastForwardErr
}
