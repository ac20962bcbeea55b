package controllers

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// PullController handles the "pull" subcommand.
type PullController struct {
	command commands.Pull
	metrics repositories.MetricsRepository
}

// NewPullController creates a new PullController.
func NewPullController(command commands.Pull, metrics repositories.MetricsRepository) *PullController {
	return &PullController{command: command, metrics: metrics}
}

// GetBind returns the Cobra command metadata for the pull controller.
func (it *PullController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pull",
		Short: "Fast-forward every clean mirrored repository",
		Long: `Fetch the current branch of every repository below <directory>/<PROJECT>/
and fast-forward it when possible.

Repositories with local changes, no branch, or a diverged history
are left untouched. Nothing is ever merged or rebased.`,
	}
}

// AddFlags adds the pull-specific flags to the given Cobra command.
func (it *PullController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("show-errors", false, "Report repositories with local changes")
}

// Execute runs the pull command.
func (it *PullController) Execute(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	opts, err := resolveBaseOptions(cmd)
	if err != nil {
		return err
	}

	showErrors, _ := cmd.Flags().GetBool("show-errors")
	report, err := it.command.Execute(cmd.Context(), commands.PullOptions{
		Settings:   opts.settings,
		ShowErrors: showErrors,
	})
	return finish(it.metrics, opts, report, start, err)
}
