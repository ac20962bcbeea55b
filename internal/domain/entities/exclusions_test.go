//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

func TestNewExclusions(t *testing.T) {
	t.Parallel()

	t.Run("should normalize bare project keys to a wildcard", func(t *testing.T) {
		// given
		raw := "PROJ,OTHER/repo,THIRD/*"

		// when
		exclusions := entities.NewExclusions(raw)

		// then
		assert.Equal(t, []string{"PROJ/*", "OTHER/repo", "THIRD/*"}, exclusions.Rules())
	})

	t.Run("should trim whitespace and skip empty entries", func(t *testing.T) {
		// given
		raw := " PROJ , ,OTHER/repo,"

		// when
		exclusions := entities.NewExclusions(raw)

		// then
		assert.Equal(t, []string{"PROJ/*", "OTHER/repo"}, exclusions.Rules())
	})

	t.Run("should produce no rules for an empty string", func(t *testing.T) {
		// given
		raw := ""

		// when
		exclusions := entities.NewExclusions(raw)

		// then
		assert.Empty(t, exclusions.Rules())
		assert.True(t, exclusions.ExcludesProject("ANY"))
		assert.True(t, exclusions.ExcludesRepository("ANY", "repo"))
	})
}

func TestExclusionsPredicates(t *testing.T) {
	t.Parallel()

	exclusions := entities.NewExclusions("PROJ,OTHER/repo")

	t.Run("should return false for an excluded project", func(t *testing.T) {
		// when
		keep := exclusions.ExcludesProject("PROJ")

		// then
		assert.False(t, keep)
	})

	t.Run("should return true for a project that is not excluded", func(t *testing.T) {
		// when
		keep := exclusions.ExcludesProject("OTHER")

		// then
		assert.True(t, keep)
	})

	t.Run("should return false for an exactly excluded repository", func(t *testing.T) {
		// when
		keep := exclusions.ExcludesRepository("OTHER", "repo")

		// then
		assert.False(t, keep)
	})

	t.Run("should ignore project wildcards when checking a repository", func(t *testing.T) {
		// when
		keep := exclusions.ExcludesRepository("PROJ", "anything")

		// then
		assert.True(t, keep)
	})

	t.Run("should compare rules case sensitively", func(t *testing.T) {
		// when
		keep := exclusions.ExcludesProject("proj")

		// then
		assert.True(t, keep)
	})
}
