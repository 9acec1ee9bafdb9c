package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
)

const (
	messageBranchCreated     = "Branch Created!"
	messageBranchCreateError = "Error Creating Branch: "
)

// CreateReleaseBranch is the interface for cutting a release branch.
type CreateReleaseBranch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReleaseBranchOptions) ([]entities.RefUpdateResult, error)
}

// ReleaseBranchOptions describes the branch to cut.
type ReleaseBranchOptions struct {
	Target     entities.RepositoryTarget
	Suffix     string // becomes refs/heads/release/<Suffix>
	BaseBranch string // defaults to develop
}

// CreateReleaseBranchCommand creates refs/heads/release/<suffix> from the
// base branch. The zero old object id makes the update create-only.
type CreateReleaseBranchCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	remote           repositories.RemoteRepository
	notifier         repositories.NotificationRepository
}

func NewCreateReleaseBranchCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	remote repositories.RemoteRepository,
	notifier repositories.NotificationRepository,
) *CreateReleaseBranchCommand {
	return &CreateReleaseBranchCommand{
		providerRegistry: providerRegistry,
		remote:           remote,
		notifier:         notifier,
	}
}

func (it *CreateReleaseBranchCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReleaseBranchOptions,
) ([]entities.RefUpdateResult, error) {
	suffix := strings.TrimSpace(opts.Suffix)
	if suffix == "" {
		return nil, fmt.Errorf("%w: release branch name must not be empty", entities.ErrValidation)
	}

	baseBranch := strings.TrimSpace(opts.BaseBranch)
	if baseBranch == "" {
		baseBranch = entities.BranchDevelop
	}

	host, err := openHost(it.providerRegistry, settings)
	if err != nil {
		return nil, err
	}

	repo, err := resolveRepository(ctx, host, it.remote, settings, opts.Target)
	if err != nil {
		return nil, err
	}

	base, err := readBranch(ctx, host, repo, baseBranch)
	if err != nil {
		return nil, err
	}

	request := entities.RefUpdateRequest{
		RepositoryID: repo.ID,
		Name:         entities.HeadsPrefix + entities.ReleasePrefix + suffix,
		OldObjectID:  entities.ZeroObjectID,
		NewObjectID:  base.ObjectID,
		IsLocked:     false,
	}
	logger.Infof("Creating %s at %s (%s)", request.Name, base.ShortName(), base.ObjectID)

	results, err := host.UpdateRefs(ctx, repo, []entities.RefUpdateRequest{request})
	if err != nil {
		it.notifier.Notify(entities.Notification{
			Level:   entities.NotificationError,
			Message: messageBranchCreateError + err.Error(),
		})
		return nil, err
	}
	if len(results) == 0 {
		err = fmt.Errorf("%w: host returned no ref update result", entities.ErrTransient)
		it.notifier.Notify(entities.Notification{
			Level:   entities.NotificationError,
			Message: messageBranchCreateError + err.Error(),
		})
		return nil, err
	}

	for _, result := range results {
		if result.Success {
			it.notifier.Notify(entities.Notification{Level: entities.NotificationInfo, Message: messageBranchCreated})
			continue
		}
		it.notifier.Notify(entities.Notification{
			Level:   entities.NotificationError,
			Message: messageBranchCreateError + result.Message(),
		})
	}

	return results, nil
}
