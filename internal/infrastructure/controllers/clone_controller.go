package controllers

import (
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// CloneController handles the "clone" subcommand.
type CloneController struct {
	command commands.Clone
	metrics repositories.MetricsRepository
	prompt  repositories.PromptRepository
}

// NewCloneController creates a new CloneController.
func NewCloneController(
	command commands.Clone,
	metrics repositories.MetricsRepository,
	prompt repositories.PromptRepository,
) *CloneController {
	return &CloneController{command: command, metrics: metrics, prompt: prompt}
}

// GetBind returns the Cobra command metadata for the clone controller.
func (it *CloneController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clone",
		Short: "Clone every Bitbucket repository that is not mirrored yet",
		Long: `Discover every repository visible to the user on the Bitbucket server
and clone the missing ones into <directory>/<PROJECT>/<repo>.

Repositories that already exist locally are left untouched.
Use --excluded-projects to skip whole projects (KEY or KEY/*)
or single repositories (KEY/repo).`,
	}
}

// AddFlags adds the clone-specific flags to the given Cobra command.
func (it *CloneController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "", "Bitbucket user (env: "+EnvUser+")")
	cmd.Flags().String("password", "", "Bitbucket password (prompted when omitted)")
	cmd.Flags().String("bitbucket-root-url", "",
		"Root URL of the Bitbucket server, e.g. https://bitbucket.example.com (env: "+EnvRootURL+")")
	cmd.Flags().Int("page-size", commands.DefaultPageSize, "Repositories requested per API page")
}

// Execute resolves the clone options and runs the clone command.
func (it *CloneController) Execute(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	opts, err := resolveBaseOptions(cmd)
	if err != nil {
		return err
	}

	cloneOpts, err := it.resolveCloneOptions(cmd, opts)
	if err != nil {
		return err
	}

	logger.Infof("Cloning from %s as %s into %s", cloneOpts.RootURL, cloneOpts.Credentials.Username(),
		opts.settings.RootDirectory)
	report, err := it.command.Execute(cmd.Context(), cloneOpts)
	return finish(it.metrics, opts, report, start, err)
}

func (it *CloneController) resolveCloneOptions(cmd *cobra.Command, opts baseOptions) (commands.CloneOptions, error) {
	rootURL := resolveString(cmd, "bitbucket-root-url", EnvRootURL, opts.file.BitbucketRootURL, "")
	if rootURL == "" {
		return commands.CloneOptions{}, fmt.Errorf("%w: --bitbucket-root-url is required", entities.ErrInvalidSettings)
	}

	user := resolveString(cmd, "user", EnvUser, opts.file.User, "")
	password := resolveString(cmd, "password", "", opts.file.Password, "")
	if password == "" && user != "" {
		var err error
		if password, err = it.prompt.Password(fmt.Sprintf("Password for %s:", user)); err != nil {
			return commands.CloneOptions{}, err
		}
	}

	credentials, err := entities.NewCredentials(user, password)
	if err != nil {
		return commands.CloneOptions{}, err
	}

	pageSize, err := resolveInt(cmd, "page-size", "", opts.file.PageSize, commands.DefaultPageSize)
	if err != nil {
		return commands.CloneOptions{}, err
	}

	return commands.CloneOptions{
		Settings:    opts.settings,
		RootURL:     rootURL,
		Credentials: credentials,
		Exclusions:  opts.exclusions,
		PageSize:    pageSize,
	}, nil
}
