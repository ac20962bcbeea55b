// Package gogit implements the version-control ports on top of go-git.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const (
	sshProtocol    = "ssh"
	defaultSSHUser = "git"
)

// GitRepository implements repositories.GitRepository with go-git.
type GitRepository struct{}

var _ repositories.GitRepository = (*GitRepository)(nil)

// NewGitRepository creates a new GitRepository.
func NewGitRepository() *GitRepository {
	return &GitRepository{}
}

// Open opens the repository at path.
func (g *GitRepository) Open(path string) (repositories.LocalRepository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repo %s: %w", path, err)
	}
	return &LocalRepository{repo: repo, path: path}, nil
}

// Clone clones input.URL into input.Destination, authenticating SSH remotes
// with the private key at input.PrivateKeyLocation.
func (g *GitRepository) Clone(ctx context.Context, input entities.CloneInput) error {
	auth, err := authFor(input.URL, input.PrivateKeyLocation)
	if err != nil {
		return err
	}

	_, err = git.PlainCloneContext(ctx, input.Destination, false, &git.CloneOptions{
		URL:  input.URL,
		Auth: auth,
	})
	if err != nil {
		return fmt.Errorf("clone %s: %w", input.URL, classifyTransportError(err))
	}
	return nil
}

// LocalRepository implements repositories.LocalRepository for one opened repository.
type LocalRepository struct {
	repo *git.Repository
	path string
}

var _ repositories.LocalRepository = (*LocalRepository)(nil)

// IsClean reports whether the working tree has no modifications, additions or
// deletions relative to HEAD. Untracked files do not count.
func (l *LocalRepository) IsClean() (bool, error) {
	wt, err := l.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("status: %w", err)
	}
	for _, file := range status {
		if file.Staging == git.Untracked && file.Worktree == git.Untracked {
			continue
		}
		if file.Staging != git.Unmodified || file.Worktree != git.Unmodified {
			return false, nil
		}
	}
	return true, nil
}

// Head resolves HEAD. An unborn branch is not an error.
func (l *LocalRepository) Head() (entities.Head, error) {
	ref, err := l.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return entities.Head{Unborn: true}, nil
		}
		return entities.Head{}, fmt.Errorf("head: %w", err)
	}
	if !ref.Name().IsBranch() {
		return entities.Head{Detached: true}, nil
	}
	return entities.Head{Branch: ref.Name().Short()}, nil
}

// Fetch fetches refs/heads/<branch> into refs/remotes/<remote>/<branch>.
func (l *LocalRepository) Fetch(ctx context.Context, input entities.FetchInput) error {
	remote, err := l.repo.Remote(input.RemoteName)
	if err != nil {
		return fmt.Errorf("remote %s: %w", input.RemoteName, err)
	}

	var auth transport.AuthMethod
	if urls := remote.Config().URLs; len(urls) > 0 {
		auth, err = authFor(urls[0], input.PrivateKeyLocation)
		if err != nil {
			return err
		}
	}

	refSpec := gitcfg.RefSpec(fmt.Sprintf(
		"+%s:%s",
		plumbing.NewBranchReferenceName(input.Branch),
		plumbing.NewRemoteReferenceName(input.RemoteName, input.Branch),
	))
	err = l.repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: input.RemoteName,
		RefSpecs:   []gitcfg.RefSpec{refSpec},
		Auth:       auth,
		Tags:       git.NoTags,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("fetch %s: %w", input.Branch, classifyTransportError(err))
	}
	return nil
}

// MergeAnalysis compares the local branch tip with the fetched remote-tracking tip.
func (l *LocalRepository) MergeAnalysis(remoteName, branch string) (entities.MergeAnalysis, error) {
	localRef, err := l.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return entities.MergeAnalysis{}, fmt.Errorf("local ref: %w", err)
	}
	remoteRef, err := l.repo.Reference(plumbing.NewRemoteReferenceName(remoteName, branch), true)
	if err != nil {
		return entities.MergeAnalysis{}, fmt.Errorf("remote ref: %w", err)
	}

	target := remoteRef.Hash().String()
	if localRef.Hash() == remoteRef.Hash() {
		return entities.MergeAnalysis{Kind: entities.MergeUpToDate, Target: target}, nil
	}

	localCommit, err := l.repo.CommitObject(localRef.Hash())
	if err != nil {
		return entities.MergeAnalysis{}, fmt.Errorf("local commit: %w", err)
	}
	remoteCommit, err := l.repo.CommitObject(remoteRef.Hash())
	if err != nil {
		return entities.MergeAnalysis{}, fmt.Errorf("remote commit: %w", err)
	}

	kind, err := analyse(localCommit, remoteCommit)
	if err != nil {
		return entities.MergeAnalysis{}, err
	}
	return entities.MergeAnalysis{Kind: kind, Target: target}, nil
}

func analyse(local, remote *object.Commit) (entities.MergeKind, error) {
	fastForward, err := local.IsAncestor(remote)
	if err != nil {
		return entities.MergeDiverged, fmt.Errorf("ancestor check: %w", err)
	}
	if fastForward {
		return entities.MergeFastForward, nil
	}
	behind, err := remote.IsAncestor(local)
	if err != nil {
		return entities.MergeDiverged, fmt.Errorf("ancestor check: %w", err)
	}
	if behind {
		// remote tip already contained locally
		return entities.MergeUpToDate, nil
	}
	return entities.MergeDiverged, nil
}

// FastForward points refs/heads/<branch> at target, makes it HEAD and
// force-checks out the working tree.
func (l *LocalRepository) FastForward(branch, target string) error {
	branchRef := plumbing.NewBranchReferenceName(branch)
	ref := plumbing.NewHashReference(branchRef, plumbing.NewHash(target))
	if err := l.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrReferenceMove, err)
	}

	wt, err := l.repo.Worktree()
	if err != nil {
		return fmt.Errorf("worktree: %w", err)
	}
	if err = wt.Checkout(&git.CheckoutOptions{Branch: branchRef, Force: true}); err != nil {
		return fmt.Errorf("checkout %s: %w", branch, err)
	}
	return nil
}

// authFor returns public key auth for SSH endpoints and nil for everything else.
func authFor(rawURL, privateKeyLocation string) (transport.AuthMethod, error) {
	endpoint, err := transport.NewEndpoint(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %s: %w", rawURL, err)
	}
	if endpoint.Protocol != sshProtocol {
		return nil, nil //nolint:nilnil // no auth for non-ssh remotes
	}

	user := endpoint.User
	if user == "" {
		user = defaultSSHUser
	}
	keys, err := ssh.NewPublicKeysFromFile(user, privateKeyLocation, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load SSH key from %s: %w", privateKeyLocation, err)
	}
	return keys, nil
}

// classifyTransportError tags the transient failures the pull protocol retries.
func classifyTransportError(err error) error {
	if errors.Is(err, git.NoMatchingRefSpecError{}) || errors.Is(err, transport.ErrEmptyRemoteRepository) {
		return fmt.Errorf("%w: %w", entities.ErrRemoteBranchUnborn, err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "ssh: handshake failed") && !strings.Contains(msg, "unable to authenticate") {
		return fmt.Errorf("%w: %w", entities.ErrSSHSession, err)
	}
	return err
}
