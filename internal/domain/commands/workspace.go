package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
)

const currentDirectory = "."

// openHost resolves the hosting platform configured in settings.
func openHost(
	registry *infraRepos.ProviderRegistry,
	settings *entities.Settings,
) (repositories.HostRepository, error) {
	host, err := registry.Get(infraRepos.ProviderAzureDevOps, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize host: %w", err)
	}
	return host, nil
}

// resolveRepository fills the blanks of target from the configuration and the
// local checkout's origin remote, then looks the repository up on the host.
func resolveRepository(
	ctx context.Context,
	host repositories.HostRepository,
	remote repositories.RemoteRepository,
	settings *entities.Settings,
	target entities.RepositoryTarget,
) (entities.Repository, error) {
	if target.Project == "" {
		target.Project = settings.Project
	}

	if !target.IsComplete() && remote != nil {
		origin, err := remote.DetectOrigin(currentDirectory)
		if err != nil {
			logger.Debugf("Could not detect origin remote: %v", err)
		} else {
			if target.Project == "" {
				target.Project = origin.Project
			}
			if target.Repository == "" {
				target.Repository = origin.Repository
			}
		}
	}

	if !target.IsComplete() {
		return entities.Repository{}, fmt.Errorf(
			"%w: project and repository are required (flags, config or origin remote)",
			entities.ErrValidation,
		)
	}

	repo, err := host.GetRepository(ctx, target)
	if err != nil {
		return entities.Repository{}, fmt.Errorf(
			"failed to find repository %s/%s: %w", target.Project, target.Repository, err,
		)
	}
	return repo, nil
}

// readBranch returns the ref for a single branch.
func readBranch(
	ctx context.Context,
	refs repositories.RefReader,
	repo entities.Repository,
	branch string,
) (entities.Ref, error) {
	name := entities.BranchRefName(branch)

	found, err := refs.ListRefs(ctx, repo, entities.ShortRefNameForFilter(name))
	if err != nil {
		return entities.Ref{}, fmt.Errorf("failed to read %s: %w", name, err)
	}

	ref, ok := entities.FindRef(found, name)
	if !ok {
		return entities.Ref{}, fmt.Errorf("%w: branch %q does not exist", entities.ErrValidation, name)
	}
	return ref, nil
}

// isCancellation reports whether err comes from the caller giving up.
func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
