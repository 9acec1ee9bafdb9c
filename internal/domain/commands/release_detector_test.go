//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/releasekeeper/test/infrastructure/repositorydoubles"
)

func TestClassifyRepository(t *testing.T) {
	t.Parallel()

	repo := entitybuilders.NewRepositoryBuilder().WithID("repo-1").BuildRepository()

	t.Run("should not diff when there is no trunk", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyHostRepository{}
		refs := []entities.Ref{branch("develop", developCommit), branch("feature/x", sourceCommit)}

		// when
		decision, err := commands.ClassifyRepository(context.Background(), spy, repo, refs)

		// then
		require.NoError(t, err)
		assert.False(t, decision.NeedsRelease)
		assert.Nil(t, decision.Diff)
		assert.Empty(t, spy.DiffCalls)
	})

	t.Run("should not diff when there is no develop branch", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyHostRepository{}
		refs := []entities.Ref{branch("main", targetCommit)}

		// when
		decision, err := commands.ClassifyRepository(context.Background(), spy, repo, refs)

		// then
		require.NoError(t, err)
		assert.False(t, decision.NeedsRelease)
		assert.Empty(t, spy.DiffCalls)
	})

	t.Run("should need a release when develop differs from master", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyHostRepository{
			DiffsByRepository: map[string]entities.DiffResult{
				"repo-1": {ChangeCounts: map[string]int{"edit": 1}},
			},
		}
		refs := []entities.Ref{branch("develop", developCommit), branch("master", targetCommit), branch("main", sourceCommit)}

		// when
		decision, err := commands.ClassifyRepository(context.Background(), spy, repo, refs)

		// then
		require.NoError(t, err)
		assert.True(t, decision.NeedsRelease)
		require.NotNil(t, decision.Diff)
		assert.Equal(t, []doubles.DiffCall{{RepositoryID: "repo-1", Base: "master", Target: "develop"}}, spy.DiffCalls)
	})

	t.Run("should not need a release when the diff is empty", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyHostRepository{}
		refs := []entities.Ref{branch("develop", developCommit), branch("main", targetCommit)}

		// when
		decision, err := commands.ClassifyRepository(context.Background(), spy, repo, refs)

		// then
		require.NoError(t, err)
		assert.False(t, decision.NeedsRelease)
		assert.Equal(t, "main", spy.DiffCalls[0].Base)
	})

	t.Run("should report the existing release branch", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyHostRepository{}
		refs := []entities.Ref{branch("release/2.0.0", sourceCommit), branch("develop", developCommit)}

		// when
		decision, err := commands.ClassifyRepository(context.Background(), spy, repo, refs)

		// then
		require.NoError(t, err)
		require.NotNil(t, decision.ExistingReleaseRef)
		assert.Equal(t, "release/2.0.0", decision.ExistingReleaseRef.ShortName())
	})

	t.Run("should return the diff error", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyHostRepository{DiffErrByRepo: map[string]error{"repo-1": entities.ErrTransient}}
		refs := []entities.Ref{branch("develop", developCommit), branch("master", targetCommit)}

		// when
		_, err := commands.ClassifyRepository(context.Background(), spy, repo, refs)

		// then
		require.ErrorIs(t, err, entities.ErrTransient)
	})
}
