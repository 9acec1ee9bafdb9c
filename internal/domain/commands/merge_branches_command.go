package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
)

const (
	messageBranchesMerged = "Branches Merged!"
	messageMergeError     = "Error Merging Branches: "
)

// MergeBranches is the interface for merging one branch into another.
type MergeBranches interface {
	Execute(ctx context.Context, settings *entities.Settings, opts MergeOptions) (entities.MergeOutcome, error)
}

// MergeOptions describes one merge. Zero durations fall back to the configuration.
type MergeOptions struct {
	Target       entities.RepositoryTarget
	Source       string
	Into         string
	Comment      string
	Timeout      time.Duration
	PollInterval time.Duration
}

// MergeBranchesCommand asks the host for an asynchronous merge of two branch
// heads, polls it until it settles, and then moves the target branch with a
// compare-and-swap on the head it read before merging.
//
// The returned error is reserved for failures before the merge was requested
// (validation, lookups, the request itself) and for a failed final ref update
// call. Every other ending is described by the outcome's State.
type MergeBranchesCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	remote           repositories.RemoteRepository
	notifier         repositories.NotificationRepository
}

func NewMergeBranchesCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	remote repositories.RemoteRepository,
	notifier repositories.NotificationRepository,
) *MergeBranchesCommand {
	return &MergeBranchesCommand{
		providerRegistry: providerRegistry,
		remote:           remote,
		notifier:         notifier,
	}
}

func (it *MergeBranchesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts MergeOptions,
) (entities.MergeOutcome, error) {
	sourceName, targetName := strings.TrimSpace(opts.Source), strings.TrimSpace(opts.Into)
	if sourceName == "" || targetName == "" {
		return entities.MergeOutcome{}, fmt.Errorf("%w: source and target branches are required", entities.ErrValidation)
	}
	source, target := entities.BranchRefName(sourceName), entities.BranchRefName(targetName)
	if source == target {
		return entities.MergeOutcome{}, fmt.Errorf("%w: cannot merge %s into itself", entities.ErrValidation, source)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = settings.Merge.Timeout
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = settings.Merge.PollInterval
	}
	if timeout <= 0 || interval <= 0 {
		return entities.MergeOutcome{}, fmt.Errorf("%w: merge timeout and poll interval must be positive", entities.ErrValidation)
	}

	host, err := openHost(it.providerRegistry, settings)
	if err != nil {
		return entities.MergeOutcome{}, err
	}

	repo, err := resolveRepository(ctx, host, it.remote, settings, opts.Target)
	if err != nil {
		return entities.MergeOutcome{}, err
	}

	comment := opts.Comment
	if comment == "" {
		comment = fmt.Sprintf("Merge %s into %s", entities.ShortRefName(source), entities.ShortRefName(target))
	}

	outcome, err := mergeAndAdvance(ctx, host, repo, mergePlan{
		source:   source,
		target:   target,
		comment:  comment,
		timeout:  timeout,
		interval: interval,
	})
	if err != nil {
		it.notifier.Notify(entities.Notification{Level: entities.NotificationError, Message: messageMergeError + err.Error()})
		return outcome, err
	}

	it.notifyOutcome(outcome)
	return outcome, nil
}

func (it *MergeBranchesCommand) notifyOutcome(outcome entities.MergeOutcome) {
	if outcome.Succeeded() {
		it.notifier.Notify(entities.Notification{Level: entities.NotificationInfo, Message: messageBranchesMerged})
		return
	}
	it.notifier.Notify(entities.Notification{
		Level:   entities.NotificationError,
		Message: messageMergeError + outcome.Err().Error(),
	})
}

type mergePlan struct {
	source   string
	target   string
	comment  string
	timeout  time.Duration
	interval time.Duration
}

func mergeAndAdvance(
	ctx context.Context,
	host repositories.HostRepository,
	repo entities.Repository,
	plan mergePlan,
) (entities.MergeOutcome, error) {
	// both heads stay pinned: as merge parents and as the old object id of the
	// final update
	sourceRef, err := readBranch(ctx, host, repo, plan.source)
	if err != nil {
		return entities.MergeOutcome{}, err
	}
	targetRef, err := readBranch(ctx, host, repo, plan.target)
	if err != nil {
		return entities.MergeOutcome{}, err
	}

	operation, err := host.CreateMerge(ctx, repo, entities.MergeRequest{
		RepositoryID: repo.ID,
		Comment:      plan.comment,
		Parents:      []string{targetRef.ObjectID, sourceRef.ObjectID},
	})
	if err != nil {
		return entities.MergeOutcome{}, fmt.Errorf("failed to request merge: %w", err)
	}
	logger.Infof("Merge %d requested (%s)", operation.OperationID, operation.Status)

	outcome := entities.MergeOutcome{
		OperationID:    operation.OperationID,
		SourceCommitID: sourceRef.ObjectID,
		TargetCommitID: targetRef.ObjectID,
	}

	settled, ok := pollMerge(ctx, host, repo, plan, &outcome)
	if !ok {
		return outcome, nil
	}

	switch settled.EffectiveStatus() {
	case entities.MergeStatusCompleted:
		return advanceTarget(ctx, host, repo, plan.target, settled, outcome)
	case entities.MergeStatusConflicts:
		outcome.State = entities.MergeStateConflicts
	case entities.MergeStatusAbandoned:
		outcome.State = entities.MergeStateAbandoned
	case entities.MergeStatusFailed, entities.MergeStatusQueued, entities.MergeStatusInProgress:
		outcome.State = entities.MergeStateFailed
	default:
		outcome.State = entities.MergeStateFailed
	}
	outcome.Message = settled.FailureMessage
	return outcome, nil
}

// pollMerge queries the operation on every tick until it reaches a terminal
// status. It returns false when polling stopped early; outcome then carries
// the Cancelled or Indeterminate state.
func pollMerge(
	ctx context.Context,
	host repositories.MergeService,
	repo entities.Repository,
	plan mergePlan,
	outcome *entities.MergeOutcome,
) (entities.MergeOperation, bool) {
	pollCtx, cancel := context.WithTimeout(ctx, plan.timeout)
	defer cancel()

	ticker := time.NewTicker(plan.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pollCtx.Done():
		case <-ticker.C:
		}
		if pollCtx.Err() != nil {
			stopPolling(ctx, outcome, "no terminal status before "+plan.timeout.String())
			return entities.MergeOperation{}, false
		}

		operation, err := host.GetMerge(pollCtx, repo, outcome.OperationID)
		outcome.PollCount++
		if err != nil {
			if isCancellation(pollCtx, err) {
				stopPolling(ctx, outcome, "no terminal status before "+plan.timeout.String())
			} else {
				stopPolling(ctx, outcome, "polling failed: "+err.Error())
			}
			return entities.MergeOperation{}, false
		}

		logger.Debugf("Merge %d: %s", outcome.OperationID, operation.Status)
		if operation.Status.IsTerminal() {
			return operation, true
		}
	}
}

// stopPolling tells a caller cancellation apart from everything else, which
// leaves the server-side merge in an unknown state.
func stopPolling(ctx context.Context, outcome *entities.MergeOutcome, reason string) {
	if ctx.Err() != nil {
		outcome.State = entities.MergeStateCancelled
		outcome.Message = "polling cancelled; the merge may still complete on the server"
		return
	}
	outcome.State = entities.MergeStateIndeterminate
	outcome.Message = reason
}

func advanceTarget(
	ctx context.Context,
	host repositories.RefWriter,
	repo entities.Repository,
	target string,
	settled entities.MergeOperation,
	outcome entities.MergeOutcome,
) (entities.MergeOutcome, error) {
	if settled.MergeCommitID == "" {
		outcome.State = entities.MergeStateFailed
		outcome.Message = "merge completed without a merge commit"
		return outcome, nil
	}
	outcome.MergeCommitID = settled.MergeCommitID

	results, err := host.UpdateRefs(ctx, repo, []entities.RefUpdateRequest{{
		RepositoryID: repo.ID,
		Name:         target,
		OldObjectID:  outcome.TargetCommitID,
		NewObjectID:  settled.MergeCommitID,
	}})
	if err != nil {
		return outcome, fmt.Errorf("merge %d completed but %s was not updated: %w", outcome.OperationID, target, err)
	}

	if len(results) == 0 {
		return outcome, errors.New("host returned no ref update result")
	}
	if !results[0].Success {
		outcome.State = entities.MergeStateRefConflict
		outcome.Message = results[0].Message()
		return outcome, nil
	}

	outcome.State = entities.MergeStateCompleted
	logger.Infof("%s advanced to %s", target, settled.MergeCommitID)
	return outcome, nil
}
