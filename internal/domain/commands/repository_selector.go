package commands

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

// RepositorySelection narrows the repositories of a project.
type RepositorySelection struct {
	Project string
	Mine    bool // use the user's own list instead of the system allow-list
	All     bool // ignore every allow-list
}

// selectRepositories lists the project's repositories, keeps the allowed ones
// and orders them by name. An empty allow-list means no filtering.
func selectRepositories(
	ctx context.Context,
	host repositories.RepositoryDirectory,
	store repositories.SettingsRepository,
	settings *entities.Settings,
	selection RepositorySelection,
) ([]entities.Repository, error) {
	var user entities.UserSettings
	if _, err := store.GetValue(ctx, entities.UserSettingsKey, entities.ScopeUser, &user); err != nil {
		return nil, fmt.Errorf("failed to read user settings: %w", err)
	}

	project := lo.CoalesceOrEmpty(selection.Project, settings.Project, user.ProjectRepositoriesID)
	if project == "" {
		return nil, fmt.Errorf("%w: no project selected", entities.ErrValidation)
	}

	repos, err := host.ListRepositories(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories of %q: %w", project, err)
	}

	if !selection.All {
		allowed, allowErr := allowedRepositoryIDs(ctx, store, settings, user, selection.Mine)
		if allowErr != nil {
			return nil, allowErr
		}
		if len(allowed) > 0 {
			logger.Debugf("Filtering %d repositories against %d allowed ids", len(repos), len(allowed))
			repos = entities.FilterAllowed(repos, allowed)
		}
	}

	return entities.SortByName(repos), nil
}

func allowedRepositoryIDs(
	ctx context.Context,
	store repositories.SettingsRepository,
	settings *entities.Settings,
	user entities.UserSettings,
	mine bool,
) ([]string, error) {
	if mine {
		return entities.EntityIDs(user.MyRepositories), nil
	}

	var system entities.SystemSettings
	if _, err := store.GetValue(ctx, entities.SystemSettingsKey, entities.ScopeSystem, &system); err != nil {
		return nil, fmt.Errorf("failed to read system settings: %w", err)
	}

	return lo.Uniq(append(
		append([]string{}, settings.AllowedRepositories...),
		entities.EntityIDs(system.ProjectRepositories)...,
	)), nil
}
