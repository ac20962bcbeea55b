//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// GitSettingsBuilder helps create GitSettings with a fluent interface.
type GitSettingsBuilder struct {
	*testkit.BaseBuilder
	root        string
	privateKey  string
	dryRun      bool
	concurrency int
}

// NewGitSettingsBuilder creates a new builder for a four-worker, non-dry run.
func NewGitSettingsBuilder() *GitSettingsBuilder {
	return &GitSettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		root:        "/mirror",
		privateKey:  "/home/test/.ssh/id_rsa",
		concurrency: 4,
	}
}

// WithRoot sets the mirror root directory.
func (b *GitSettingsBuilder) WithRoot(root string) *GitSettingsBuilder {
	b.root = root
	return b
}

// WithPrivateKey sets the SSH key location.
func (b *GitSettingsBuilder) WithPrivateKey(path string) *GitSettingsBuilder {
	b.privateKey = path
	return b
}

// WithDryRun enables or disables dry-run mode.
func (b *GitSettingsBuilder) WithDryRun(dryRun bool) *GitSettingsBuilder {
	b.dryRun = dryRun
	return b
}

// WithConcurrency sets the worker limit.
func (b *GitSettingsBuilder) WithConcurrency(concurrency int) *GitSettingsBuilder {
	b.concurrency = concurrency
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *GitSettingsBuilder) Build() interface{} {
	return b.BuildGitSettings()
}

// BuildGitSettings creates the settings with a concrete return type.
func (b *GitSettingsBuilder) BuildGitSettings() entities.GitSettings {
	return entities.GitSettings{
		RootDirectory:      b.root,
		PrivateKeyLocation: b.privateKey,
		DryRun:             b.dryRun,
		Concurrency:        b.concurrency,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *GitSettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.root = "/mirror"
	b.privateKey = "/home/test/.ssh/id_rsa"
	b.dryRun = false
	b.concurrency = 4
	return b
}

// Clone creates a deep copy of the GitSettingsBuilder.
func (b *GitSettingsBuilder) Clone() testkit.Builder {
	return &GitSettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		root:        b.root,
		privateKey:  b.privateKey,
		dryRun:      b.dryRun,
		concurrency: b.concurrency,
	}
}
