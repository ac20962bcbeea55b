package terminal

import "github.com/AlecAivazis/survey/v2"

// NewPromptRepositoryWith builds a PromptRepository with a fake terminal.
func NewPromptRepositoryWith(
	isTerminal func() bool,
	ask func(prompt survey.Prompt, response any) error,
) *PromptRepository {
	return &PromptRepository{isTerminal: isTerminal, ask: ask}
}
