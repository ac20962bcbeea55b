package repositories

import (
	"context"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// GitRepository is the version-control collaborator.
type GitRepository interface {
	// Open opens the repository rooted at path.
	Open(path string) (LocalRepository, error)

	// Clone clones a remote repository into a new directory.
	Clone(ctx context.Context, input entities.CloneInput) error
}

// LocalRepository is an opened local repository. A LocalRepository is owned
// by a single worker and is not safe for concurrent use.
type LocalRepository interface {
	// IsClean reports whether the working tree has no uncommitted changes,
	// untracked files included.
	IsClean() (bool, error)

	// Head describes the current HEAD.
	Head() (entities.Head, error)

	// Fetch fetches one branch from a remote into its remote-tracking reference.
	// Errors matching entities.ErrRemoteBranchUnborn or entities.ErrSSHSession
	// are transient.
	Fetch(ctx context.Context, input entities.FetchInput) error

	// MergeAnalysis compares refs/heads/<branch> with the fetched tip.
	MergeAnalysis(remoteName, branch string) (entities.MergeAnalysis, error)

	// FastForward moves refs/heads/<branch> to target and force-checks it out.
	FastForward(branch, target string) error
}
