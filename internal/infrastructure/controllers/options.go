package controllers

import (
	"fmt"
	"os"
	"strconv"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// Environment variables read when the matching flag is not given.
const (
	EnvDirectory        = "GITBUCKET_DIRECTORY"
	EnvPrivateKey       = "GITBUCKET_PRIVATE_KEY"
	EnvExcludedProjects = "GITBUCKET_EXCLUDED_PROJECTS"
	EnvConcurrency      = "GITBUCKET_CONCURRENCY"
	EnvConfig           = "GITBUCKET_CONFIG"
	EnvUser             = "GITBUCKET_USER"
	EnvRootURL          = "GITBUCKET_ROOT_URL"
)

const defaultDirectory = "."

// baseOptions is what every controller resolves before running its command.
type baseOptions struct {
	settings    entities.GitSettings
	exclusions  entities.Exclusions
	metricsFile string
	file        entities.Settings
}

// resolveBaseOptions applies flag > environment > config file > default to the
// persistent flags.
func resolveBaseOptions(cmd *cobra.Command) (baseOptions, error) {
	file, err := loadSettingsFile(cmd)
	if err != nil {
		return baseOptions{}, err
	}

	directory := resolveString(cmd, "directory", EnvDirectory, file.Directory, defaultDirectory)

	privateKey := resolveString(cmd, "private-key", EnvPrivateKey, file.PrivateKey, "")
	if privateKey == "" {
		if privateKey, err = entities.DefaultPrivateKeyLocation(); err != nil {
			return baseOptions{}, err
		}
	}

	concurrency, err := resolveInt(cmd, "concurrency", EnvConcurrency, file.Concurrency, entities.DefaultConcurrency)
	if err != nil {
		return baseOptions{}, err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	settings, err := entities.NewGitSettings(directory, privateKey, dryRun, concurrency)
	if err != nil {
		return baseOptions{}, err
	}

	metricsFile, _ := cmd.Flags().GetString("metrics-file")
	excluded := resolveString(cmd, "excluded-projects", EnvExcludedProjects, file.ExcludedProjects, "")

	return baseOptions{
		settings:    settings,
		exclusions:  entities.NewExclusions(excluded),
		metricsFile: metricsFile,
		file:        file,
	}, nil
}

// loadSettingsFile reads the config file named by --config or GITBUCKET_CONFIG,
// falling back to the standard locations. No file at all is not an error.
func loadSettingsFile(cmd *cobra.Command) (entities.Settings, error) {
	path := resolveString(cmd, "config", EnvConfig, "", "")
	if path == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Trace("No config file found, using flags and environment only")
			return entities.Settings{}, nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	settings, err := entities.NewSettings(path)
	if err != nil {
		return entities.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	return *settings, nil
}

func resolveString(cmd *cobra.Command, flag, env, fileValue, fallback string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	if value := os.Getenv(env); env != "" && value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return fallback
}

func resolveInt(cmd *cobra.Command, flag, env string, fileValue, fallback int) (int, error) {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return cmd.Flags().GetInt(flag)
	}
	if raw := os.Getenv(env); env != "" && raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer, got %q", entities.ErrInvalidSettings, env, raw)
		}
		return value, nil
	}
	if fileValue != 0 {
		return fileValue, nil
	}
	return fallback, nil
}

// finish records the report and writes the metrics file when one was asked for.
func finish(
	metrics repositories.MetricsRepository,
	opts baseOptions,
	report entities.SyncReport,
	start time.Time,
	err error,
) error {
	if err != nil {
		return err
	}

	metrics.Observe(report, time.Since(start))
	if opts.metricsFile == "" {
		return nil
	}
	if exportErr := metrics.Export(opts.metricsFile); exportErr != nil {
		logger.Warnf("Metrics not written: %v", exportErr)
		return nil
	}
	logger.Debugf("Metrics written to %s", opts.metricsFile)
	return nil
}
