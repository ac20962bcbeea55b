package controllers

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// FeaturedController handles the "featured" subcommand.
type FeaturedController struct {
	command commands.Featured
	metrics repositories.MetricsRepository
}

// NewFeaturedController creates a new FeaturedController.
func NewFeaturedController(command commands.Featured, metrics repositories.MetricsRepository) *FeaturedController {
	return &FeaturedController{command: command, metrics: metrics}
}

// GetBind returns the Cobra command metadata for the featured controller.
func (it *FeaturedController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "featured",
		Short: "List mirrored repositories that are on a feature branch",
		Long: `Report every repository below <directory>/<PROJECT>/ whose HEAD is not
on main, master or develop. Detached heads are reported as errors.`,
	}
}

// AddFlags adds the featured-specific flags to the given Cobra command.
func (it *FeaturedController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("show-main", false, "Also report repositories on main, master or develop")
}

// Execute runs the featured command.
func (it *FeaturedController) Execute(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	opts, err := resolveBaseOptions(cmd)
	if err != nil {
		return err
	}

	showMain, _ := cmd.Flags().GetBool("show-main")
	report, err := it.command.Execute(cmd.Context(), commands.FeaturedOptions{
		Settings: opts.settings,
		ShowMain: showMain,
	})
	return finish(it.metrics, opts, report, start, err)
}
