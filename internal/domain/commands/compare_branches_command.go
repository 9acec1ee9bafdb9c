package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
)

// CompareBranches is the interface for diffing two branches of a repository.
type CompareBranches interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CompareOptions) (entities.DiffResult, error)
}

type CompareOptions struct {
	Target entities.RepositoryTarget
	Base   string
	Head   string
}

type CompareBranchesCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	remote           repositories.RemoteRepository
}

func NewCompareBranchesCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	remote repositories.RemoteRepository,
) *CompareBranchesCommand {
	return &CompareBranchesCommand{providerRegistry: providerRegistry, remote: remote}
}

func (it *CompareBranchesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CompareOptions,
) (entities.DiffResult, error) {
	base, head := strings.TrimSpace(opts.Base), strings.TrimSpace(opts.Head)
	if base == "" || head == "" {
		return entities.DiffResult{}, fmt.Errorf("%w: both branches are required", entities.ErrValidation)
	}

	host, err := openHost(it.providerRegistry, settings)
	if err != nil {
		return entities.DiffResult{}, err
	}

	repo, err := resolveRepository(ctx, host, it.remote, settings, opts.Target)
	if err != nil {
		return entities.DiffResult{}, err
	}

	diff, err := host.Diff(ctx, repo, base, head)
	if err != nil {
		return entities.DiffResult{}, fmt.Errorf("failed to diff %s..%s: %w", base, head, err)
	}
	return diff, nil
}
