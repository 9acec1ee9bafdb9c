package commands

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
)

// ListProjects is the interface for listing the projects of the organization.
type ListProjects interface {
	Execute(ctx context.Context, settings *entities.Settings) (*ProjectListing, error)
}

// ProjectListing holds the organization's projects sorted by name and the id
// of the project repositories are listed from by default, when it is known.
type ProjectListing struct {
	Projects   []entities.Project
	SelectedID string
}

type ListProjectsCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	settingsRegistry *infraRepos.SettingsRegistry
}

func NewListProjectsCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	settingsRegistry *infraRepos.SettingsRegistry,
) *ListProjectsCommand {
	return &ListProjectsCommand{
		providerRegistry: providerRegistry,
		settingsRegistry: settingsRegistry,
	}
}

func (it *ListProjectsCommand) Execute(ctx context.Context, settings *entities.Settings) (*ProjectListing, error) {
	host, err := openHost(it.providerRegistry, settings)
	if err != nil {
		return nil, err
	}

	store, err := it.settingsRegistry.Get(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	var user entities.UserSettings
	if _, err = store.GetValue(ctx, entities.UserSettingsKey, entities.ScopeUser, &user); err != nil {
		return nil, fmt.Errorf("failed to read user settings: %w", err)
	}

	projects, err := host.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	// same precedence as the repository listing: config, then user settings
	selected := lo.CoalesceOrEmpty(settings.Project, user.ProjectRepositoriesID)
	listing := &ProjectListing{Projects: entities.SortProjectsByName(projects)}
	if match, ok := lo.Find(listing.Projects, func(p entities.Project) bool {
		return p.ID == selected || p.Name == selected
	}); ok {
		listing.SelectedID = match.ID
	}
	return listing, nil
}
