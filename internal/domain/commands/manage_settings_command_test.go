//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	doubles "github.com/rios0rios0/releasekeeper/test/infrastructure/repositorydoubles"
)

func TestManageSettingsCommand(t *testing.T) {
	t.Parallel()

	t.Run("should show empty documents when nothing is stored", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewManageSettingsCommand(newSettingsRegistry(doubles.NewInMemorySettingsRepository()))

		// when
		snapshot, err := cmd.Show(context.Background(), newTestSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, commands.SettingsSnapshot{}, snapshot)
	})

	t.Run("should add a project repository and save only the system document", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemorySettingsRepository()
		cmd := commands.NewManageSettingsCommand(newSettingsRegistry(store))
		update := commands.SettingsUpdate{
			List:   commands.ListProjectRepositories,
			Entity: entities.SettingsEntity{DisplayName: "api", OriginID: "r-api"},
		}

		// when
		snapshot, err := cmd.Update(context.Background(), newTestSettings(), update)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"r-api"}, entities.EntityIDs(snapshot.System.ProjectRepositories))
		assert.Equal(t, []string{entities.SystemSettingsKey}, store.SetKeys)

		shown, showErr := cmd.Show(context.Background(), newTestSettings())
		require.NoError(t, showErr)
		assert.Equal(t, snapshot, shown)
	})

	t.Run("should remove an entity from the user's repositories", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemorySettingsRepository()
		store.Seed(entities.UserSettingsKey, entities.ScopeUser, entities.UserSettings{
			MyRepositories:        []entities.SettingsEntity{{OriginID: "r-api"}, {OriginID: "r-web"}},
			ProjectRepositoriesID: "project-guid",
		})
		cmd := commands.NewManageSettingsCommand(newSettingsRegistry(store))
		update := commands.SettingsUpdate{
			List:   commands.ListMyRepositories,
			Entity: entities.SettingsEntity{OriginID: "r-api"},
			Remove: true,
		}

		// when
		snapshot, err := cmd.Update(context.Background(), newTestSettings(), update)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"r-web"}, entities.EntityIDs(snapshot.User.MyRepositories))
		assert.Equal(t, "project-guid", snapshot.User.ProjectRepositoriesID)
		assert.Equal(t, []string{entities.UserSettingsKey}, store.SetKeys)
	})

	t.Run("should set the user's selected project", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemorySettingsRepository()
		cmd := commands.NewManageSettingsCommand(newSettingsRegistry(store))

		// when
		snapshot, err := cmd.Update(
			context.Background(), newTestSettings(), commands.SettingsUpdate{ProjectRepositoriesID: "project-guid"},
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, "project-guid", snapshot.User.ProjectRepositoriesID)
		assert.Equal(t, []string{entities.UserSettingsKey}, store.SetKeys)
	})

	t.Run("should reject updates that change nothing or lack an id", func(t *testing.T) {
		t.Parallel()

		tests := []commands.SettingsUpdate{
			{},
			{List: commands.ListAllowedUsers, Entity: entities.SettingsEntity{DisplayName: "no id"}},
			{List: commands.SettingsList("unknown"), Entity: entities.SettingsEntity{OriginID: "x"}},
		}

		for _, update := range tests {
			// given
			store := doubles.NewInMemorySettingsRepository()
			cmd := commands.NewManageSettingsCommand(newSettingsRegistry(store))

			// when
			_, err := cmd.Update(context.Background(), newTestSettings(), update)

			// then
			require.ErrorIs(t, err, entities.ErrValidation)
			assert.Empty(t, store.SetKeys)
		}
	})

	t.Run("should surface store write failures", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemorySettingsRepository()
		store.SetErr = entities.ErrTransient
		cmd := commands.NewManageSettingsCommand(newSettingsRegistry(store))
		update := commands.SettingsUpdate{
			List:   commands.ListAllowedUserGroups,
			Entity: entities.SettingsEntity{OriginID: "group-1"},
		}

		// when
		_, err := cmd.Update(context.Background(), newTestSettings(), update)

		// then
		require.ErrorIs(t, err, entities.ErrTransient)
	})
}
