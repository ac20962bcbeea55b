package terminal

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// PromptRepository implements repositories.PromptRepository with survey.
type PromptRepository struct {
	isTerminal func() bool
	ask        func(prompt survey.Prompt, response any) error
}

var _ repositories.PromptRepository = (*PromptRepository)(nil)

// NewPromptRepository creates a PromptRepository reading from stdin.
func NewPromptRepository() *PromptRepository {
	return &PromptRepository{
		isTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		ask: func(prompt survey.Prompt, response any) error {
			return survey.AskOne(prompt, response)
		},
	}
}

// Password asks for a secret without echoing it.
func (p *PromptRepository) Password(message string) (string, error) {
	if !p.isTerminal() {
		return "", entities.ErrPasswordUnavailable
	}

	var password string
	if err := p.ask(&survey.Password{Message: message}, &password); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}
