package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the optional configuration file. Every field can be
// overridden by an environment variable or a command-line flag.
type Settings struct {
	Directory        string `yaml:"directory"`
	PrivateKey       string `yaml:"private_key"`
	BitbucketRootURL string `yaml:"bitbucket_root_url"`
	User             string `yaml:"user"`
	Password         string `yaml:"password"` // Inline, ${ENV_VAR}, or file path
	ExcludedProjects string `yaml:"excluded_projects"`
	Concurrency      int    `yaml:"concurrency"`
	PageSize         int    `yaml:"page_size"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment
// variables and resolving the password file path.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Directory = expandEnv(settings.Directory)
	settings.PrivateKey = expandEnv(settings.PrivateKey)
	settings.BitbucketRootURL = expandEnv(settings.BitbucketRootURL)
	settings.User = expandEnv(settings.User)
	settings.ExcludedProjects = expandEnv(settings.ExcludedProjects)
	settings.Password = ResolveSecret(settings.Password)

	if validateErr := validateSettings(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitbucket.yaml",
		".gitbucket.yml",
		"gitbucket.yaml",
		"gitbucket.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the secret from the file.
func ResolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := expandEnv(raw)

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read secret from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func validateSettings(settings *Settings) error {
	if settings.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative", ErrInvalidSettings)
	}
	if settings.PageSize < 0 {
		return fmt.Errorf("%w: page_size must not be negative", ErrInvalidSettings)
	}
	return nil
}
