//go:build unit

package controllers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitbucket/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/gitbucket/test/infrastructure/repositorydoubles"
)

// isolate clears every variable the controllers read and points HOME at an
// empty directory so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, env := range []string{
		controllers.EnvDirectory, controllers.EnvPrivateKey, controllers.EnvExcludedProjects,
		controllers.EnvConcurrency, controllers.EnvConfig, controllers.EnvUser, controllers.EnvRootURL,
	} {
		t.Setenv(env, "")
	}
	return home
}

func run(t *testing.T, controller entities.Controller, args ...string) error {
	t.Helper()
	root := &cobra.Command{Use: "gitbucket", SilenceUsage: true, SilenceErrors: true}
	controllers.AddGlobalFlags(root)

	bind := controller.GetBind()
	sub := &cobra.Command{Use: bind.Use, RunE: controller.Execute}
	controller.AddFlags(sub)
	root.AddCommand(sub)

	root.SetArgs(append([]string{bind.Use}, args...))
	return root.Execute()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitbucket.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel
func TestPullController(t *testing.T) {
	t.Run("should use defaults when nothing is configured", func(t *testing.T) {
		// given
		home := isolate(t)
		command := &commanddoubles.StubPullCommand{}
		controller := controllers.NewPullController(command, &doubles.SpyMetricsRepository{})

		// when
		err := run(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, commands.PullOptions{Settings: entities.GitSettings{
			RootDirectory:      ".",
			PrivateKeyLocation: filepath.Join(home, ".ssh", "id_rsa"),
			Concurrency:        entities.DefaultConcurrency,
		}}, command.LastOpts)
	})

	t.Run("should prefer flags over environment over config file", func(t *testing.T) {
		// given
		isolate(t)
		config := writeConfig(t, "directory: /from-file\nprivate_key: /file/key\nconcurrency: 3\n")
		t.Setenv(controllers.EnvConfig, config)
		t.Setenv(controllers.EnvDirectory, "/from-env")
		t.Setenv(controllers.EnvConcurrency, "5")
		command := &commanddoubles.StubPullCommand{}
		controller := controllers.NewPullController(command, &doubles.SpyMetricsRepository{})

		// when
		err := run(t, controller, "--directory", "/from-flag", "--show-errors", "--dry-run")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/from-flag", command.LastOpts.Settings.RootDirectory)
		assert.Equal(t, 5, command.LastOpts.Settings.Concurrency)
		assert.Equal(t, "/file/key", command.LastOpts.Settings.PrivateKeyLocation)
		assert.True(t, command.LastOpts.Settings.DryRun)
		assert.True(t, command.LastOpts.ShowErrors)
	})

	t.Run("should reject a non-numeric concurrency from the environment", func(t *testing.T) {
		// given
		isolate(t)
		t.Setenv(controllers.EnvConcurrency, "lots")
		command := &commanddoubles.StubPullCommand{}
		controller := controllers.NewPullController(command, &doubles.SpyMetricsRepository{})

		// when
		err := run(t, controller)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Zero(t, command.ExecuteCallCount)
	})

	t.Run("should fail without HOME when no private key is given", func(t *testing.T) {
		// given
		isolate(t)
		t.Setenv("HOME", "")
		controller := controllers.NewPullController(&commanddoubles.StubPullCommand{}, &doubles.SpyMetricsRepository{})

		// when
		err := run(t, controller)

		// then
		require.ErrorIs(t, err, entities.ErrHomeNotFound)
	})

	t.Run("should observe the report and export metrics when asked", func(t *testing.T) {
		// given
		isolate(t)
		report := entities.SyncReport{Operation: "pull", Results: []entities.SyncResult{
			{Target: "/m/A/a", Outcome: entities.OutcomeUpToDate},
		}}
		metrics := &doubles.SpyMetricsRepository{}
		controller := controllers.NewPullController(&commanddoubles.StubPullCommand{Report: report}, metrics)

		// when
		err := run(t, controller, "--metrics-file", "/tmp/gitbucket.prom")

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.SyncReport{report}, metrics.Reports)
		assert.Equal(t, []string{"/tmp/gitbucket.prom"}, metrics.ExportedPaths)
	})

	t.Run("should return command errors without recording metrics", func(t *testing.T) {
		// given
		isolate(t)
		metrics := &doubles.SpyMetricsRepository{}
		command := &commanddoubles.StubPullCommand{ExecuteErr: entities.ErrDirectoryUnreadable}
		controller := controllers.NewPullController(command, metrics)

		// when
		err := run(t, controller)

		// then
		require.ErrorIs(t, err, entities.ErrDirectoryUnreadable)
		assert.Empty(t, metrics.Reports)
	})
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel
func TestCloneController(t *testing.T) {
	t.Run("should build clone options from flags", func(t *testing.T) {
		// given
		isolate(t)
		command := &commanddoubles.StubCloneCommand{}
		prompt := &doubles.StubPromptRepository{}
		controller := controllers.NewCloneController(command, &doubles.SpyMetricsRepository{}, prompt)

		// when
		err := run(t, controller,
			"-u", "alice", "--password", "s3cret",
			"--bitbucket-root-url", "https://bitbucket.example.com",
			"--excluded-projects", "PROJ,OTHER/repo",
			"--page-size", "100",
			"--private-key", "/keys/id",
		)

		// then
		require.NoError(t, err)
		opts := command.LastOpts
		assert.Equal(t, "https://bitbucket.example.com", opts.RootURL)
		assert.Equal(t, "alice", opts.Credentials.Username())
		wantCredentials, _ := entities.NewCredentials("alice", "s3cret")
		assert.Equal(t, wantCredentials.AuthorizationHeader(), opts.Credentials.AuthorizationHeader())
		assert.Equal(t, []string{"PROJ/*", "OTHER/repo"}, opts.Exclusions.Rules())
		assert.Equal(t, 100, opts.PageSize)
		assert.Equal(t, "/keys/id", opts.Settings.PrivateKeyLocation)
		assert.Empty(t, prompt.Messages)
	})

	t.Run("should read user and url from the environment", func(t *testing.T) {
		// given
		isolate(t)
		t.Setenv(controllers.EnvUser, "bob")
		t.Setenv(controllers.EnvRootURL, "https://env.example.com")
		command := &commanddoubles.StubCloneCommand{}
		controller := controllers.NewCloneController(command, &doubles.SpyMetricsRepository{},
			&doubles.StubPromptRepository{PasswordValue: "typed"})

		// when
		err := run(t, controller)

		// then
		require.NoError(t, err)
		assert.Equal(t, "bob", command.LastOpts.Credentials.Username())
		assert.Equal(t, "https://env.example.com", command.LastOpts.RootURL)
		assert.Equal(t, commands.DefaultPageSize, command.LastOpts.PageSize)
	})

	t.Run("should prompt for a missing password", func(t *testing.T) {
		// given
		isolate(t)
		command := &commanddoubles.StubCloneCommand{}
		prompt := &doubles.StubPromptRepository{PasswordValue: "typed"}
		controller := controllers.NewCloneController(command, &doubles.SpyMetricsRepository{}, prompt)

		// when
		err := run(t, controller, "-u", "alice", "--bitbucket-root-url", "https://bitbucket.example.com")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"Password for alice:"}, prompt.Messages)
		wantCredentials, _ := entities.NewCredentials("alice", "typed")
		assert.Equal(t, wantCredentials.AuthorizationHeader(), command.LastOpts.Credentials.AuthorizationHeader())
	})

	t.Run("should take the password from the config file", func(t *testing.T) {
		// given
		isolate(t)
		config := writeConfig(t, "user: carol\npassword: from-file\nbitbucket_root_url: https://file.example.com\n")
		command := &commanddoubles.StubCloneCommand{}
		prompt := &doubles.StubPromptRepository{}
		controller := controllers.NewCloneController(command, &doubles.SpyMetricsRepository{}, prompt)

		// when
		err := run(t, controller, "--config", config)

		// then
		require.NoError(t, err)
		assert.Empty(t, prompt.Messages)
		assert.Equal(t, "carol", command.LastOpts.Credentials.Username())
		assert.Equal(t, "https://file.example.com", command.LastOpts.RootURL)
	})

	t.Run("should fail without a root url", func(t *testing.T) {
		// given
		isolate(t)
		command := &commanddoubles.StubCloneCommand{}
		controller := controllers.NewCloneController(command, &doubles.SpyMetricsRepository{}, &doubles.StubPromptRepository{})

		// when
		err := run(t, controller, "-u", "alice", "--password", "x")

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Zero(t, command.ExecuteCallCount)
	})

	t.Run("should fail without a user", func(t *testing.T) {
		// given
		isolate(t)
		command := &commanddoubles.StubCloneCommand{}
		controller := controllers.NewCloneController(command, &doubles.SpyMetricsRepository{}, &doubles.StubPromptRepository{})

		// when
		err := run(t, controller, "--bitbucket-root-url", "https://bitbucket.example.com")

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Zero(t, command.ExecuteCallCount)
	})

	t.Run("should fail when the password cannot be prompted", func(t *testing.T) {
		// given
		isolate(t)
		command := &commanddoubles.StubCloneCommand{}
		prompt := &doubles.StubPromptRepository{PasswordErr: entities.ErrPasswordUnavailable}
		controller := controllers.NewCloneController(command, &doubles.SpyMetricsRepository{}, prompt)

		// when
		err := run(t, controller, "-u", "alice", "--bitbucket-root-url", "https://bitbucket.example.com")

		// then
		require.ErrorIs(t, err, entities.ErrPasswordUnavailable)
		assert.Zero(t, command.ExecuteCallCount)
	})
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel
func TestStatusAndFeaturedControllers(t *testing.T) {
	t.Run("should pass the resolved settings to status", func(t *testing.T) {
		// given
		isolate(t)
		command := &commanddoubles.StubStatusCommand{}
		controller := controllers.NewStatusController(command, &doubles.SpyMetricsRepository{})

		// when
		err := run(t, controller, "-d", "/mirror", "--concurrency", "2")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/mirror", command.LastOpts.Settings.RootDirectory)
		assert.Equal(t, 2, command.LastOpts.Settings.Concurrency)
	})

	t.Run("should pass show-main to featured", func(t *testing.T) {
		// given
		isolate(t)
		command := &commanddoubles.StubFeaturedCommand{}
		controller := controllers.NewFeaturedController(command, &doubles.SpyMetricsRepository{})

		// when
		err := run(t, controller, "--show-main")

		// then
		require.NoError(t, err)
		assert.True(t, command.LastOpts.ShowMain)
	})

	t.Run("should reject a concurrency of zero", func(t *testing.T) {
		// given
		isolate(t)
		command := &commanddoubles.StubFeaturedCommand{}
		controller := controllers.NewFeaturedController(command, &doubles.SpyMetricsRepository{})

		// when
		err := run(t, controller, "--concurrency", "0")

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})
}
