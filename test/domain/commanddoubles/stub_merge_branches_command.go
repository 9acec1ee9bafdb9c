//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// StubMergeBranchesCommand is a stub implementation of commands.MergeBranches.
type StubMergeBranchesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Outcome          entities.MergeOutcome
	LastSettings     *entities.Settings
	LastOpts         commands.MergeOptions
	// LastCtxErr is the state of the context the stub was called with.
	LastCtxErr error
}

var _ commands.MergeBranches = (*StubMergeBranchesCommand)(nil)

func (s *StubMergeBranchesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts commands.MergeOptions,
) (entities.MergeOutcome, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	s.LastCtxErr = ctx.Err()
	return s.Outcome, s.ExecuteErr
}
