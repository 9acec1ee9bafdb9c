//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// StubManageSettingsCommand is a stub implementation of commands.ManageSettings.
type StubManageSettingsCommand struct {
	ShowCallCount   int
	UpdateCallCount int
	Err             error
	Snapshot        commands.SettingsSnapshot
	LastUpdate      commands.SettingsUpdate
}

var _ commands.ManageSettings = (*StubManageSettingsCommand)(nil)

func (s *StubManageSettingsCommand) Show(_ context.Context, _ *entities.Settings) (commands.SettingsSnapshot, error) {
	s.ShowCallCount++
	return s.Snapshot, s.Err
}

func (s *StubManageSettingsCommand) Update(
	_ context.Context,
	_ *entities.Settings,
	update commands.SettingsUpdate,
) (commands.SettingsSnapshot, error) {
	s.UpdateCallCount++
	s.LastUpdate = update
	return s.Snapshot, s.Err
}
