//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/test/domain/entitybuilders"
)

func TestClassifyRefs(t *testing.T) {
	t.Parallel()

	t.Run("should record develop, master and main presence", func(t *testing.T) {
		t.Parallel()

		// given
		refs := []entities.Ref{
			entitybuilders.NewRefBuilder().WithBranch("develop").BuildRef(),
			entitybuilders.NewRefBuilder().WithBranch("master").BuildRef(),
			entitybuilders.NewRefBuilder().WithBranch("main").BuildRef(),
		}

		// when
		presence, release := entities.ClassifyRefs(refs)

		// then
		assert.Equal(t, entities.BranchPresence{HasDevelop: true, HasMaster: true, HasMain: true}, presence)
		assert.Nil(t, release)
	})

	t.Run("should return empty presence for no refs", func(t *testing.T) {
		t.Parallel()

		// given
		var refs []entities.Ref

		// when
		presence, release := entities.ClassifyRefs(refs)

		// then
		assert.Equal(t, entities.BranchPresence{}, presence)
		assert.Nil(t, release)
	})

	t.Run("should match names by substring", func(t *testing.T) {
		t.Parallel()

		// given
		refs := []entities.Ref{
			entitybuilders.NewRefBuilder().WithBranch("develop-old").BuildRef(),
		}

		// when
		presence, _ := entities.ClassifyRefs(refs)

		// then
		assert.True(t, presence.HasDevelop)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		t.Parallel()

		// given
		refs := []entities.Ref{
			entitybuilders.NewRefBuilder().WithBranch("Develop").BuildRef(),
			entitybuilders.NewRefBuilder().WithBranch("MASTER").BuildRef(),
		}

		// when
		presence, _ := entities.ClassifyRefs(refs)

		// then
		assert.False(t, presence.HasDevelop)
		assert.False(t, presence.HasMaster)
	})

	t.Run("should keep the newest release branch regardless of order", func(t *testing.T) {
		t.Parallel()

		// given
		older := entitybuilders.NewRefBuilder().WithBranch("release/1.2.0").WithObjectID("aaa").BuildRef()
		newer := entitybuilders.NewRefBuilder().WithBranch("release/1.3.0").WithObjectID("bbb").BuildRef()

		// when
		_, forward := entities.ClassifyRefs([]entities.Ref{older, newer})
		_, backward := entities.ClassifyRefs([]entities.Ref{newer, older})

		// then
		require.NotNil(t, forward)
		require.NotNil(t, backward)
		assert.Equal(t, "refs/heads/release/1.3.0", forward.Name)
		assert.Equal(t, *forward, *backward)
	})

	t.Run("should keep the newest release version over the greatest string", func(t *testing.T) {
		t.Parallel()

		// given
		minor9 := entitybuilders.NewRefBuilder().WithBranch("release/1.9").BuildRef()
		minor10 := entitybuilders.NewRefBuilder().WithBranch("release/1.10").BuildRef()

		// when
		_, forward := entities.ClassifyRefs([]entities.Ref{minor10, minor9})
		_, backward := entities.ClassifyRefs([]entities.Ref{minor9, minor10})

		// then
		require.NotNil(t, forward)
		require.NotNil(t, backward)
		assert.Equal(t, "refs/heads/release/1.10", forward.Name)
		assert.Equal(t, "refs/heads/release/1.10", backward.Name)
	})

	t.Run("should fall back to string order for names that are not versions", func(t *testing.T) {
		t.Parallel()

		// given
		hotfix := entitybuilders.NewRefBuilder().WithBranch("release/hotfix").BuildRef()
		sprint := entitybuilders.NewRefBuilder().WithBranch("release/sprint-12").BuildRef()

		// when
		_, forward := entities.ClassifyRefs([]entities.Ref{hotfix, sprint})
		_, backward := entities.ClassifyRefs([]entities.Ref{sprint, hotfix})

		// then
		require.NotNil(t, forward)
		assert.Equal(t, "refs/heads/release/sprint-12", forward.Name)
		assert.Equal(t, *forward, *backward)
	})

	t.Run("should not treat tags as branches", func(t *testing.T) {
		t.Parallel()

		// given
		refs := []entities.Ref{
			entitybuilders.NewRefBuilder().WithTag("develop").BuildRef(),
		}

		// when
		presence, _ := entities.ClassifyRefs(refs)

		// then
		assert.False(t, presence.HasDevelop)
	})
}

func TestBranchPresenceTrunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		presence   entities.BranchPresence
		trunk      string
		canCompare bool
	}{
		{
			name:       "should prefer master over main",
			presence:   entities.BranchPresence{HasDevelop: true, HasMaster: true, HasMain: true},
			trunk:      entities.BranchMaster,
			canCompare: true,
		},
		{
			name:       "should fall back to main",
			presence:   entities.BranchPresence{HasDevelop: true, HasMain: true},
			trunk:      entities.BranchMain,
			canCompare: true,
		},
		{
			name:       "should have no trunk without master or main",
			presence:   entities.BranchPresence{HasDevelop: true},
			trunk:      "",
			canCompare: false,
		},
		{
			name:       "should not compare without develop",
			presence:   entities.BranchPresence{HasMaster: true},
			trunk:      entities.BranchMaster,
			canCompare: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			presence := tt.presence

			// when
			trunk := presence.Trunk()
			canCompare := presence.CanCompare()

			// then
			assert.Equal(t, tt.trunk, trunk)
			assert.Equal(t, tt.canCompare, canCompare)
		})
	}
}

func TestDiffResultIsEmpty(t *testing.T) {
	t.Parallel()

	t.Run("should be empty without counts or changes", func(t *testing.T) {
		t.Parallel()

		// given
		diff := entities.DiffResult{AheadCount: 0, BehindCount: 3}

		// when
		empty := diff.IsEmpty()

		// then
		assert.True(t, empty)
	})

	t.Run("should not be empty with change counts", func(t *testing.T) {
		t.Parallel()

		// given
		diff := entities.DiffResult{ChangeCounts: map[string]int{"edit": 2, "add": 1}}

		// when
		empty := diff.IsEmpty()

		// then
		assert.False(t, empty)
		assert.Equal(t, 3, diff.TotalChanges())
	})

	t.Run("should not be empty with changes only", func(t *testing.T) {
		t.Parallel()

		// given
		diff := entities.DiffResult{Changes: []entities.Change{{Path: "/README.md", ChangeType: "edit"}}}

		// when
		empty := diff.IsEmpty()

		// then
		assert.False(t, empty)
	})
}
