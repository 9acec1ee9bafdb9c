package entities

import (
	"fmt"
	"strings"
)

// MergeStatus mirrors the host's asynchronous operation status.
type MergeStatus string

const (
	MergeStatusQueued     MergeStatus = "queued"
	MergeStatusInProgress MergeStatus = "inProgress"
	MergeStatusCompleted  MergeStatus = "completed"
	MergeStatusFailed     MergeStatus = "failed"
	MergeStatusConflicts  MergeStatus = "conflicts"
	MergeStatusAbandoned  MergeStatus = "abandoned"
)

// IsTerminal reports whether polling can stop on this status.
func (s MergeStatus) IsTerminal() bool {
	switch s {
	case MergeStatusCompleted, MergeStatusFailed, MergeStatusConflicts, MergeStatusAbandoned:
		return true
	case MergeStatusQueued, MergeStatusInProgress:
		return false
	default:
		return false
	}
}

// MergeRequest asks the host to merge two commits. Parents are ordered
// target first, then source.
type MergeRequest struct {
	RepositoryID string
	Comment      string
	Parents      []string
}

// MergeOperation is a snapshot of an asynchronous merge job.
type MergeOperation struct {
	OperationID    int
	Status         MergeStatus
	MergeCommitID  string
	FailureMessage string
	Conflicts      bool
}

// EffectiveStatus folds the detailed conflict flag into the status.
func (o MergeOperation) EffectiveStatus() MergeStatus {
	if o.Status.IsTerminal() && o.Conflicts {
		return MergeStatusConflicts
	}
	return o.Status
}

// MergeState is the final state of one orchestration run.
type MergeState string

const (
	MergeStateCompleted     MergeState = "Completed"
	MergeStateFailed        MergeState = "Failed"
	MergeStateConflicts     MergeState = "Conflicts"
	MergeStateAbandoned     MergeState = "Abandoned"
	MergeStateIndeterminate MergeState = "Indeterminate"
	MergeStateCancelled     MergeState = "Cancelled"
	MergeStateRefConflict   MergeState = "RefConflict"
)

// MergeOutcome reports how a merge orchestration ended.
type MergeOutcome struct {
	State          MergeState
	OperationID    int
	SourceCommitID string
	TargetCommitID string
	MergeCommitID  string
	Message        string
	PollCount      int
}

// Succeeded reports whether the target ref now points at the merge commit.
func (o MergeOutcome) Succeeded() bool {
	return o.State == MergeStateCompleted
}

// Err maps an unsuccessful outcome onto the error taxonomy.
func (o MergeOutcome) Err() error {
	switch o.State {
	case MergeStateCompleted:
		return nil
	case MergeStateConflicts:
		return fmt.Errorf("%w: %s", ErrMergeConflict, o.Message)
	case MergeStateRefConflict:
		return fmt.Errorf("%w: %s", ErrRefConflict, o.Message)
	case MergeStateIndeterminate:
		return fmt.Errorf("merge %d is indeterminate: %s", o.OperationID, o.Message)
	case MergeStateFailed, MergeStateAbandoned, MergeStateCancelled:
		return fmt.Errorf("merge %d %s: %s", o.OperationID, strings.ToLower(string(o.State)), o.Message)
	default:
		return fmt.Errorf("merge %d ended in unknown state %q", o.OperationID, o.State)
	}
}
