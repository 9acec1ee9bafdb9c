//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// StubListProjectsCommand is a stub implementation of commands.ListProjects.
type StubListProjectsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Listing          *commands.ProjectListing
	LastSettings     *entities.Settings
}

var _ commands.ListProjects = (*StubListProjectsCommand)(nil)

func (s *StubListProjectsCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) (*commands.ProjectListing, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Listing == nil {
		return &commands.ProjectListing{}, nil
	}
	return s.Listing, nil
}
