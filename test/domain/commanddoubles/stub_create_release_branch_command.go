//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// StubCreateReleaseBranchCommand is a stub implementation of commands.CreateReleaseBranch.
type StubCreateReleaseBranchCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          []entities.RefUpdateResult
	LastSettings     *entities.Settings
	LastOpts         commands.ReleaseBranchOptions
}

var _ commands.CreateReleaseBranch = (*StubCreateReleaseBranchCommand)(nil)

func (s *StubCreateReleaseBranchCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ReleaseBranchOptions,
) ([]entities.RefUpdateResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Results, s.ExecuteErr
}
