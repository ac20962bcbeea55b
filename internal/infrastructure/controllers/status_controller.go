package controllers

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Status
	metrics repositories.MetricsRepository
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status, metrics repositories.MetricsRepository) *StatusController {
	return &StatusController{command: command, metrics: metrics}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status",
		Short: "List mirrored repositories with uncommitted changes",
	}
}

func (it *StatusController) AddFlags(_ *cobra.Command) {}

// Execute runs the status command.
func (it *StatusController) Execute(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	opts, err := resolveBaseOptions(cmd)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(cmd.Context(), commands.StatusOptions{Settings: opts.settings})
	return finish(it.metrics, opts, report, start, err)
}
