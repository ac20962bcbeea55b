package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// AddGlobalFlags adds the flags shared by every subcommand to the root command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("directory", "d", defaultDirectory,
		"Root of the mirror (env: "+EnvDirectory+")")
	cmd.PersistentFlags().String("private-key", "",
		"SSH private key (env: "+EnvPrivateKey+", default: $HOME/.ssh/id_rsa)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().String("excluded-projects", "",
		"Comma-separated KEY, KEY/* or KEY/repo entries to skip (env: "+EnvExcludedProjects+")")
	cmd.PersistentFlags().Int("concurrency", entities.DefaultConcurrency,
		"Repositories processed at once (env: "+EnvConcurrency+")")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (env: "+EnvConfig+", default: auto-detect)")
	cmd.PersistentFlags().String("metrics-file", "",
		"Write Prometheus metrics to this file after the run")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}
