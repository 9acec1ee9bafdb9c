//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepositoryBuilder helps create test repositories with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	id            string
	name          string
	webURL        string
	defaultBranch string
	project       entities.Project
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		id:            "repo-id",
		name:          "test-repo",
		webURL:        "https://dev.azure.com/test-org/test-project/_git/test-repo",
		defaultBranch: "refs/heads/develop",
		project:       entities.Project{ID: "project-id", Name: "test-project"},
	}
}

// WithID sets the repository id.
func (b *RepositoryBuilder) WithID(id string) *RepositoryBuilder {
	b.id = id
	return b
}

// WithName sets the repository name.
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithDefaultBranch sets the fully-qualified default branch.
func (b *RepositoryBuilder) WithDefaultBranch(ref string) *RepositoryBuilder {
	b.defaultBranch = ref
	return b
}

// WithProject sets the owning project.
func (b *RepositoryBuilder) WithProject(id, name string) *RepositoryBuilder {
	b.project = entities.Project{ID: id, Name: name}
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() entities.Repository {
	return entities.Repository{
		ID:               b.id,
		Name:             b.name,
		WebURL:           b.webURL,
		DefaultBranchRef: b.defaultBranch,
		Project:          b.project,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewRepositoryBuilder()
	b.id = fresh.id
	b.name = fresh.name
	b.webURL = fresh.webURL
	b.defaultBranch = fresh.defaultBranch
	b.project = fresh.project
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	return &RepositoryBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:            b.id,
		name:          b.name,
		webURL:        b.webURL,
		defaultBranch: b.defaultBranch,
		project:       b.project,
	}
}
