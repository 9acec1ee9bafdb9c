//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	doubles "github.com/rios0rios0/releasekeeper/test/infrastructure/repositorydoubles"
)

func newProjectSpy() *doubles.SpyHostRepository {
	return &doubles.SpyHostRepository{
		Projects: []entities.Project{
			{ID: "p-platform", Name: "Platform", State: "wellFormed"},
			{ID: "p-billing", Name: "billing", State: "wellFormed"},
			{ID: "p-mobile", Name: "Mobile", State: "wellFormed"},
		},
	}
}

func TestListProjectsCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should list projects sorted and mark the configured one", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewListProjectsCommand(
			newProviderRegistry(newProjectSpy()), newSettingsRegistry(doubles.NewInMemorySettingsRepository()),
		)

		// when
		listing, err := cmd.Execute(context.Background(), newTestSettings())

		// then
		require.NoError(t, err)
		projectNames := lo.Map(listing.Projects, func(p entities.Project, _ int) string { return p.Name })
		assert.Equal(t, []string{"billing", "Mobile", "Platform"}, projectNames)
		assert.Equal(t, "p-platform", listing.SelectedID)
	})

	t.Run("should fall back to the project saved in the user settings", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemorySettingsRepository()
		store.Seed(entities.UserSettingsKey, entities.ScopeUser, entities.UserSettings{ProjectRepositoriesID: "p-mobile"})
		settings := newTestSettings()
		settings.Project = ""
		cmd := commands.NewListProjectsCommand(newProviderRegistry(newProjectSpy()), newSettingsRegistry(store))

		// when
		listing, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, "p-mobile", listing.SelectedID)
	})

	t.Run("should leave the selection empty when nothing matches", func(t *testing.T) {
		t.Parallel()

		// given
		settings := newTestSettings()
		settings.Project = "Retired"
		cmd := commands.NewListProjectsCommand(
			newProviderRegistry(newProjectSpy()), newSettingsRegistry(doubles.NewInMemorySettingsRepository()),
		)

		// when
		listing, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Len(t, listing.Projects, 3)
		assert.Empty(t, listing.SelectedID)
	})

	t.Run("should wrap host failures", func(t *testing.T) {
		t.Parallel()

		// given
		spy := newProjectSpy()
		spy.ListProjectsErr = entities.ErrAuth
		cmd := commands.NewListProjectsCommand(
			newProviderRegistry(spy), newSettingsRegistry(doubles.NewInMemorySettingsRepository()),
		)

		// when
		listing, err := cmd.Execute(context.Background(), newTestSettings())

		// then
		require.ErrorIs(t, err, entities.ErrAuth)
		assert.Nil(t, listing)
	})
}
