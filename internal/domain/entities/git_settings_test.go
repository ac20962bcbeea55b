//go:build unit

package entities_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

func TestNewGitSettings(t *testing.T) {
	t.Parallel()

	t.Run("should build valid settings", func(t *testing.T) {
		// when
		settings, err := entities.NewGitSettings("/mirror", "/key", true, 8)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.GitSettings{
			RootDirectory:      "/mirror",
			PrivateKeyLocation: "/key",
			DryRun:             true,
			Concurrency:        8,
		}, settings)
	})

	t.Run("should reject an empty root directory", func(t *testing.T) {
		// when
		_, err := entities.NewGitSettings("", "/key", false, 1)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})

	t.Run("should reject a concurrency below one", func(t *testing.T) {
		// when
		_, err := entities.NewGitSettings("/mirror", "/key", false, 0)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})

	t.Run("should join project and repository below the root", func(t *testing.T) {
		// given
		settings := entities.GitSettings{RootDirectory: "/mirror"}

		// when
		path := settings.RepositoryPath("PROJ", "repo")

		// then
		assert.Equal(t, filepath.Join("/mirror", "PROJ", "repo"), path)
	})
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel
func TestDefaultPrivateKeyLocation(t *testing.T) {
	t.Run("should default to id_rsa below HOME", func(t *testing.T) {
		// given
		t.Setenv("HOME", "/home/alice")

		// when
		location, err := entities.DefaultPrivateKeyLocation()

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/alice", ".ssh", "id_rsa"), location)
	})

	t.Run("should fail when HOME is not set", func(t *testing.T) {
		// given
		t.Setenv("HOME", "")

		// when
		_, err := entities.DefaultPrivateKeyLocation()

		// then
		require.ErrorIs(t, err, entities.ErrHomeNotFound)
	})
}
