//go:build unit

package terminal_test

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/infrastructure/repositories/terminal"
)

func TestPromptRepositoryPassword(t *testing.T) {
	t.Parallel()

	t.Run("should refuse to prompt without a terminal", func(t *testing.T) {
		// given
		asked := false
		prompt := terminal.NewPromptRepositoryWith(
			func() bool { return false },
			func(survey.Prompt, any) error { asked = true; return nil },
		)

		// when
		_, err := prompt.Password("Password for alice:")

		// then
		require.ErrorIs(t, err, entities.ErrPasswordUnavailable)
		assert.False(t, asked)
	})

	t.Run("should return what the operator typed", func(t *testing.T) {
		// given
		var message string
		prompt := terminal.NewPromptRepositoryWith(
			func() bool { return true },
			func(p survey.Prompt, response any) error {
				message = p.(*survey.Password).Message
				*response.(*string) = "typed"
				return nil
			},
		)

		// when
		password, err := prompt.Password("Password for alice:")

		// then
		require.NoError(t, err)
		assert.Equal(t, "typed", password)
		assert.Equal(t, "Password for alice:", message)
	})

	t.Run("should wrap prompt failures", func(t *testing.T) {
		// given
		prompt := terminal.NewPromptRepositoryWith(
			func() bool { return true },
			func(survey.Prompt, any) error { return errors.New("interrupt") },
		)

		// when
		_, err := prompt.Password("Password:")

		// then
		require.ErrorContains(t, err, "interrupt")
	})
}
