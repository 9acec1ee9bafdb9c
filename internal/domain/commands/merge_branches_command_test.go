//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/releasekeeper/test/infrastructure/repositorydoubles"
)

const (
	sourceCommit = "1111111111111111111111111111111111111111"
	targetCommit = "2222222222222222222222222222222222222222"
)

func newMergeSpy(polls ...entities.MergeOperation) *doubles.SpyHostRepository {
	repo := entitybuilders.NewRepositoryBuilder().WithID("repo-1").WithName("api").BuildRepository()
	return &doubles.SpyHostRepository{
		Repository: repo,
		RefsByRepository: map[string][]entities.Ref{
			"repo-1": {branch("develop", sourceCommit), branch("master", targetCommit)},
		},
		CreatedMerge:  entities.MergeOperation{OperationID: 42, Status: entities.MergeStatusQueued},
		PollResponses: polls,
	}
}

func newMergeCommand(spy *doubles.SpyHostRepository, notifier *doubles.SpyNotificationRepository) *commands.MergeBranchesCommand {
	return commands.NewMergeBranchesCommand(newProviderRegistry(spy), &doubles.StubRemoteRepository{}, notifier)
}

func mergeOptions() commands.MergeOptions {
	return commands.MergeOptions{
		Target:  entities.RepositoryTarget{Repository: "api"},
		Source:  "develop",
		Into:    "master",
		Comment: "release 1.4.0",
	}
}

func TestMergeBranchesCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should poll until completed and advance the target once", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy(
			entities.MergeOperation{OperationID: 42, Status: entities.MergeStatusInProgress},
			entities.MergeOperation{OperationID: 42, Status: entities.MergeStatusInProgress},
			entities.MergeOperation{OperationID: 42, Status: entities.MergeStatusCompleted, MergeCommitID: "abc123"},
		)
		notifier := &doubles.SpyNotificationRepository{}
		cmd := newMergeCommand(spy, notifier)

		// when
		outcome, err := cmd.Execute(context.Background(), newTestSettings(), mergeOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MergeStateCompleted, outcome.State)
		assert.Equal(t, 3, outcome.PollCount)
		assert.Equal(t, 3, spy.Polls())
		require.Len(t, spy.RefUpdates, 1)
		require.Len(t, spy.RefUpdates[0], 1)
		assert.Equal(t, entities.RefUpdateRequest{
			RepositoryID: "repo-1",
			Name:         "refs/heads/master",
			OldObjectID:  targetCommit,
			NewObjectID:  "abc123",
		}, spy.RefUpdates[0][0])
		assert.Equal(t, []string{"Branches Merged!"}, notifier.Messages())
	})

	t.Run("should order merge parents target first", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy(entities.MergeOperation{Status: entities.MergeStatusCompleted, MergeCommitID: "abc123"})
		cmd := newMergeCommand(spy, &doubles.SpyNotificationRepository{})

		// when
		_, err := cmd.Execute(context.Background(), newTestSettings(), mergeOptions())

		// then
		require.NoError(t, err)
		require.Len(t, spy.MergeRequests, 1)
		assert.Equal(t, []string{targetCommit, sourceCommit}, spy.MergeRequests[0].Parents)
		assert.Equal(t, "release 1.4.0", spy.MergeRequests[0].Comment)
	})

	t.Run("should end indeterminate without a ref update on timeout", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy(entities.MergeOperation{Status: entities.MergeStatusInProgress})
		notifier := &doubles.SpyNotificationRepository{}
		cmd := newMergeCommand(spy, notifier)
		opts := mergeOptions()
		opts.Timeout = 20 * time.Millisecond

		// when
		outcome, err := cmd.Execute(context.Background(), newTestSettings(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MergeStateIndeterminate, outcome.State)
		assert.Empty(t, spy.RefUpdates)
		require.Len(t, notifier.Messages(), 1)
		assert.Contains(t, notifier.Messages()[0], "Error Merging Branches: ")
	})

	t.Run("should stop polling as soon as the caller cancels", func(t *testing.T) {
		t.Parallel()

		// given
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		spy := newMergeSpy(entities.MergeOperation{Status: entities.MergeStatusInProgress})
		spy.OnPoll = func(count int) {
			if count == 2 {
				cancel()
			}
		}
		cmd := newMergeCommand(spy, &doubles.SpyNotificationRepository{})
		opts := mergeOptions()
		opts.Timeout = time.Minute

		// when
		outcome, err := cmd.Execute(ctx, newTestSettings(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MergeStateCancelled, outcome.State)
		assert.Equal(t, 2, spy.Polls())
		assert.Empty(t, spy.RefUpdates)
	})

	t.Run("should end indeterminate when polling fails", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy()
		spy.PollErr = entities.ErrTransient
		cmd := newMergeCommand(spy, &doubles.SpyNotificationRepository{})

		// when
		outcome, err := cmd.Execute(context.Background(), newTestSettings(), mergeOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MergeStateIndeterminate, outcome.State)
		assert.Contains(t, outcome.Message, "polling failed")
		assert.Equal(t, 1, spy.Polls())
		assert.Empty(t, spy.RefUpdates)
	})

	t.Run("should not update the target when the merge has conflicts", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy(entities.MergeOperation{Status: entities.MergeStatusCompleted, Conflicts: true})
		notifier := &doubles.SpyNotificationRepository{}
		cmd := newMergeCommand(spy, notifier)

		// when
		outcome, err := cmd.Execute(context.Background(), newTestSettings(), mergeOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MergeStateConflicts, outcome.State)
		require.ErrorIs(t, outcome.Err(), entities.ErrMergeConflict)
		assert.Empty(t, spy.RefUpdates)
		require.Len(t, notifier.Notifications, 1)
		assert.Equal(t, entities.NotificationError, notifier.Notifications[0].Level)
	})

	t.Run("should map failed and abandoned statuses without a ref update", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			status entities.MergeStatus
			state  entities.MergeState
		}{
			{entities.MergeStatusFailed, entities.MergeStateFailed},
			{entities.MergeStatusAbandoned, entities.MergeStateAbandoned},
		}

		for _, tt := range tests {
			// given
			spy := newMergeSpy(entities.MergeOperation{Status: tt.status, FailureMessage: "server said no"})
			cmd := newMergeCommand(spy, &doubles.SpyNotificationRepository{})

			// when
			outcome, err := cmd.Execute(context.Background(), newTestSettings(), mergeOptions())

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.state, outcome.State)
			assert.Equal(t, "server said no", outcome.Message)
			assert.Empty(t, spy.RefUpdates)
		}
	})

	t.Run("should report a ref conflict without retrying when the target moved", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy(entities.MergeOperation{Status: entities.MergeStatusCompleted, MergeCommitID: "abc123"})
		spy.RefUpdateResults = []entities.RefUpdateResult{
			{Name: "refs/heads/master", Success: false, UpdateStatus: "staleOldObjectId"},
		}
		cmd := newMergeCommand(spy, &doubles.SpyNotificationRepository{})

		// when
		outcome, err := cmd.Execute(context.Background(), newTestSettings(), mergeOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MergeStateRefConflict, outcome.State)
		require.ErrorIs(t, outcome.Err(), entities.ErrRefConflict)
		assert.Len(t, spy.RefUpdates, 1)
	})

	t.Run("should return an error when the final ref update call fails", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy(entities.MergeOperation{Status: entities.MergeStatusCompleted, MergeCommitID: "abc123"})
		spy.UpdateRefsErr = entities.ErrTransient
		notifier := &doubles.SpyNotificationRepository{}
		cmd := newMergeCommand(spy, notifier)

		// when
		outcome, err := cmd.Execute(context.Background(), newTestSettings(), mergeOptions())

		// then
		require.ErrorIs(t, err, entities.ErrTransient)
		assert.Equal(t, "abc123", outcome.MergeCommitID)
		require.Len(t, notifier.Messages(), 1)
		assert.Contains(t, notifier.Messages()[0], "Error Merging Branches: ")
	})

	t.Run("should reject merging a branch into itself before any host call", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy()
		cmd := newMergeCommand(spy, &doubles.SpyNotificationRepository{})
		opts := mergeOptions()
		opts.Into = "refs/heads/develop"

		// when
		_, err := cmd.Execute(context.Background(), newTestSettings(), opts)

		// then
		require.ErrorIs(t, err, entities.ErrValidation)
		assert.Empty(t, spy.RequestedTargets)
		assert.Empty(t, spy.MergeRequests)
	})

	t.Run("should fail validation when the source branch does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newMergeSpy()
		cmd := newMergeCommand(spy, &doubles.SpyNotificationRepository{})
		opts := mergeOptions()
		opts.Source = "feature/missing"

		// when
		_, err := cmd.Execute(context.Background(), newTestSettings(), opts)

		// then
		require.ErrorIs(t, err, entities.ErrValidation)
		assert.Empty(t, spy.MergeRequests)
	})
}
