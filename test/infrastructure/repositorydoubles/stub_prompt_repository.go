//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// StubPromptRepository implements repositories.PromptRepository.
type StubPromptRepository struct {
	PasswordValue string
	PasswordErr   error

	Messages []string
}

var _ repositories.PromptRepository = (*StubPromptRepository)(nil)

func (s *StubPromptRepository) Password(message string) (string, error) {
	s.Messages = append(s.Messages, message)
	return s.PasswordValue, s.PasswordErr
}
