package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
)

// ListRepositories is the interface for listing the allowed repositories of a project.
type ListRepositories interface {
	Execute(ctx context.Context, settings *entities.Settings, selection RepositorySelection) ([]entities.Repository, error)
}

type ListRepositoriesCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	settingsRegistry *infraRepos.SettingsRegistry
}

func NewListRepositoriesCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	settingsRegistry *infraRepos.SettingsRegistry,
) *ListRepositoriesCommand {
	return &ListRepositoriesCommand{
		providerRegistry: providerRegistry,
		settingsRegistry: settingsRegistry,
	}
}

func (it *ListRepositoriesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	selection RepositorySelection,
) ([]entities.Repository, error) {
	host, err := openHost(it.providerRegistry, settings)
	if err != nil {
		return nil, err
	}

	store, err := it.settingsRegistry.Get(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	return selectRepositories(ctx, host, store, settings, selection)
}
