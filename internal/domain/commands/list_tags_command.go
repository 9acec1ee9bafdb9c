package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
)

// ListTags is the interface for listing a repository's tags.
type ListTags interface {
	Execute(ctx context.Context, settings *entities.Settings, target entities.RepositoryTarget) ([]entities.Ref, error)
}

type ListTagsCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	remote           repositories.RemoteRepository
}

func NewListTagsCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	remote repositories.RemoteRepository,
) *ListTagsCommand {
	return &ListTagsCommand{providerRegistry: providerRegistry, remote: remote}
}

// Execute returns the tags newest first.
func (it *ListTagsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	target entities.RepositoryTarget,
) ([]entities.Ref, error) {
	host, err := openHost(it.providerRegistry, settings)
	if err != nil {
		return nil, err
	}

	repo, err := resolveRepository(ctx, host, it.remote, settings, target)
	if err != nil {
		return nil, err
	}

	tags, err := host.ListRefs(ctx, repo, "tags/")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags of %s: %w", repo.Name, err)
	}

	entities.SortTagsDescending(tags)
	return tags, nil
}
