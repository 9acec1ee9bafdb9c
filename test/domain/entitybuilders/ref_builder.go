//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RefBuilder helps create test refs with a fluent interface.
type RefBuilder struct {
	*testkit.BaseBuilder
	name     string
	objectID string
	creator  entities.Identity
}

// NewRefBuilder creates a new ref builder pointing refs/heads/develop at a fixed commit.
func NewRefBuilder() *RefBuilder {
	return &RefBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "refs/heads/develop",
		objectID:    "1111111111111111111111111111111111111111",
		creator:     entities.Identity{ID: "user-id", DisplayName: "Test User", UniqueName: "test@example.com"},
	}
}

// WithBranch sets the name to refs/heads/<branch>.
func (b *RefBuilder) WithBranch(branch string) *RefBuilder {
	b.name = entities.HeadsPrefix + branch
	return b
}

// WithTag sets the name to refs/tags/<tag>.
func (b *RefBuilder) WithTag(tag string) *RefBuilder {
	b.name = entities.TagsPrefix + tag
	return b
}

// WithObjectID sets the commit the ref points at.
func (b *RefBuilder) WithObjectID(objectID string) *RefBuilder {
	b.objectID = objectID
	return b
}

// Build creates the ref (satisfies testkit.Builder interface).
func (b *RefBuilder) Build() interface{} {
	return b.BuildRef()
}

// BuildRef creates the ref with a concrete return type.
func (b *RefBuilder) BuildRef() entities.Ref {
	return entities.Ref{Name: b.name, ObjectID: b.objectID, Creator: b.creator}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RefBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewRefBuilder()
	b.name = fresh.name
	b.objectID = fresh.objectID
	b.creator = fresh.creator
	return b
}

// Clone creates a deep copy of the RefBuilder.
func (b *RefBuilder) Clone() testkit.Builder {
	return &RefBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		objectID:    b.objectID,
		creator:     b.creator,
	}
}
