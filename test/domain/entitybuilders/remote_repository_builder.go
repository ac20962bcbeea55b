//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

const defaultHost = "bitbucket.example.com"

// RemoteRepositoryBuilder helps create remote repositories with a fluent interface.
type RemoteRepositoryBuilder struct {
	*testkit.BaseBuilder
	project string
	name    string
	gitURL  string
}

// NewRemoteRepositoryBuilder creates a new remote repository builder with sensible defaults.
func NewRemoteRepositoryBuilder() *RemoteRepositoryBuilder {
	return &RemoteRepositoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		project:     "PROJ",
		name:        "repo",
	}
}

// WithProject sets the project key used to derive the default SSH URL.
func (b *RemoteRepositoryBuilder) WithProject(project string) *RemoteRepositoryBuilder {
	b.project = project
	return b
}

// WithName sets the repository slug.
func (b *RemoteRepositoryBuilder) WithName(name string) *RemoteRepositoryBuilder {
	b.name = name
	return b
}

// WithGitURL overrides the SSH clone URL.
func (b *RemoteRepositoryBuilder) WithGitURL(gitURL string) *RemoteRepositoryBuilder {
	b.gitURL = gitURL
	return b
}

// Build creates the remote repository (satisfies testkit.Builder interface).
func (b *RemoteRepositoryBuilder) Build() interface{} {
	return b.BuildRemoteRepository()
}

// BuildRemoteRepository creates the remote repository with a concrete return type.
func (b *RemoteRepositoryBuilder) BuildRemoteRepository() entities.RemoteRepository {
	gitURL := b.gitURL
	if gitURL == "" {
		gitURL = fmt.Sprintf("ssh://git@%s:7999/%s/%s.git", defaultHost, b.project, b.name)
	}
	return entities.RemoteRepository{Name: b.name, GitURL: gitURL}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RemoteRepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.project = "PROJ"
	b.name = "repo"
	b.gitURL = ""
	return b
}

// Clone creates a deep copy of the RemoteRepositoryBuilder.
func (b *RemoteRepositoryBuilder) Clone() testkit.Builder {
	return &RemoteRepositoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		project:     b.project,
		name:        b.name,
		gitURL:      b.gitURL,
	}
}
