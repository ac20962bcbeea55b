//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should parse every field", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "gitbucket.yaml", `
directory: /srv/mirror
private_key: /keys/id_ed25519
bitbucket_root_url: https://bitbucket.example.com
user: alice
password: inline
excluded_projects: PROJ,OTHER/repo
concurrency: 4
page_size: 100
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, &entities.Settings{
			Directory:        "/srv/mirror",
			PrivateKey:       "/keys/id_ed25519",
			BitbucketRootURL: "https://bitbucket.example.com",
			User:             "alice",
			Password:         "inline",
			ExcludedProjects: "PROJ,OTHER/repo",
			Concurrency:      4,
			PageSize:         100,
		}, settings)
	})

	t.Run("should expand environment variables", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_GITBUCKET_USER", "bob")
		t.Setenv("TEST_GITBUCKET_PASSWORD", "hunter2")
		path := writeFile(t, t.TempDir(), "gitbucket.yaml",
			"user: ${TEST_GITBUCKET_USER}\npassword: ${TEST_GITBUCKET_PASSWORD}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "bob", settings.User)
		assert.Equal(t, "hunter2", settings.Password)
	})

	t.Run("should read the password from a file", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		secret := writeFile(t, dir, "password.txt", "from-file\n")
		path := writeFile(t, dir, "gitbucket.yaml", "password: "+secret+"\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-file", settings.Password)
	})

	t.Run("should reject a negative concurrency", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "gitbucket.yaml", "concurrency: -1\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})

	t.Run("should fail on invalid yaml", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeFile(t, t.TempDir(), "gitbucket.yaml", "concurrency: [unclosed\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})
}

func TestResolveSecret(t *testing.T) {
	t.Parallel()

	t.Run("should return an empty value unchanged", func(t *testing.T) {
		assert.Empty(t, entities.ResolveSecret(""))
	})

	t.Run("should return an inline value unchanged", func(t *testing.T) {
		assert.Equal(t, "not-a-file", entities.ResolveSecret("not-a-file"))
	})
}
