package entities

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConcurrency is the number of repositories processed at once when
// no limit is configured.
const DefaultConcurrency = 16

// GitSettings is the read-only configuration shared by every worker of an
// operation. Each worker receives its own copy.
type GitSettings struct {
	RootDirectory      string
	PrivateKeyLocation string
	DryRun             bool
	Concurrency        int
}

// NewGitSettings validates and builds GitSettings.
func NewGitSettings(rootDirectory, privateKeyLocation string, dryRun bool, concurrency int) (GitSettings, error) {
	if rootDirectory == "" {
		return GitSettings{}, fmt.Errorf("%w: root directory is required", ErrInvalidSettings)
	}
	if concurrency < 1 {
		return GitSettings{}, fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidSettings, concurrency)
	}
	return GitSettings{
		RootDirectory:      rootDirectory,
		PrivateKeyLocation: privateKeyLocation,
		DryRun:             dryRun,
		Concurrency:        concurrency,
	}, nil
}

// RepositoryPath returns where a remote repository is mirrored locally.
func (s GitSettings) RepositoryPath(project, repository string) string {
	return filepath.Join(s.RootDirectory, project, repository)
}

// DefaultPrivateKeyLocation returns $HOME/.ssh/id_rsa.
func DefaultPrivateKeyLocation() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", ErrHomeNotFound
	}
	return filepath.Join(home, ".ssh", "id_rsa"), nil
}
