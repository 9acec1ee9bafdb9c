//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// StubScanReleasesCommand is a stub implementation of commands.ScanReleases.
type StubScanReleasesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *commands.ScanReport
	LastSettings     *entities.Settings
	LastOpts         commands.ScanOptions
}

var _ commands.ScanReleases = (*StubScanReleasesCommand)(nil)

func (s *StubScanReleasesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ScanOptions,
) (*commands.ScanReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.Report == nil {
		return &commands.ScanReport{}, s.ExecuteErr
	}
	return s.Report, s.ExecuteErr
}
