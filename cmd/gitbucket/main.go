package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbucket/internal"
	"github.com/rios0rios0/gitbucket/internal/infrastructure/controllers"
)

const envLogLevel = "GITBUCKET_LOG_LEVEL"

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gitbucket",
		Short: "Mirror a Bitbucket Server into a local directory tree",
		Long: `Keep a local mirror of every repository on a Bitbucket Server.

The mirror is laid out as <directory>/<PROJECT>/<repo>.

  gitbucket clone     Clone every repository that is not mirrored yet
  gitbucket pull      Fast-forward every clean mirrored repository
  gitbucket status    List mirrored repositories with local changes
  gitbucket featured  List mirrored repositories on a feature branch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			configureLogLevel(command)
		},
	}

	controllers.AddGlobalFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}
		controller.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func configureLogLevel(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose || os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}
	if raw := os.Getenv(envLogLevel); raw != "" {
		level, err := logger.ParseLevel(raw)
		if err != nil {
			logger.Warnf("Ignoring %s=%q: %v", envLogLevel, raw, err)
			return
		}
		logger.SetLevel(level)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("Failed to load .env: %v", err)
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectAppContext())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'gitbucket': %s", err)
	}
}
