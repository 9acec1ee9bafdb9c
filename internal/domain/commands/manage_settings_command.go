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

// SettingsList names one of the entity lists kept in the settings documents.
type SettingsList string

const (
	ListMyRepositories      SettingsList = "myRepositories"
	ListProjectRepositories SettingsList = "projectRepositories"
	ListAllowedUsers        SettingsList = "allowedUsers"
	ListAllowedUserGroups   SettingsList = "allowedUserGroups"
)

// ManageSettings is the interface for reading and editing user and system settings.
type ManageSettings interface {
	Show(ctx context.Context, settings *entities.Settings) (SettingsSnapshot, error)
	Update(ctx context.Context, settings *entities.Settings, update SettingsUpdate) (SettingsSnapshot, error)
}

// SettingsSnapshot holds both settings documents.
type SettingsSnapshot struct {
	User   entities.UserSettings
	System entities.SystemSettings
}

// SettingsUpdate adds or removes one entity from a list. When
// ProjectRepositoriesID is set it replaces the user's selected project.
type SettingsUpdate struct {
	List                  SettingsList
	Entity                entities.SettingsEntity
	Remove                bool
	ProjectRepositoriesID string
}

type ManageSettingsCommand struct {
	settingsRegistry *infraRepos.SettingsRegistry
}

func NewManageSettingsCommand(settingsRegistry *infraRepos.SettingsRegistry) *ManageSettingsCommand {
	return &ManageSettingsCommand{settingsRegistry: settingsRegistry}
}

func (it *ManageSettingsCommand) Show(ctx context.Context, settings *entities.Settings) (SettingsSnapshot, error) {
	store, err := it.settingsRegistry.Get(settings)
	if err != nil {
		return SettingsSnapshot{}, fmt.Errorf("failed to open settings store: %w", err)
	}
	return readSnapshot(ctx, store)
}

func (it *ManageSettingsCommand) Update(
	ctx context.Context,
	settings *entities.Settings,
	update SettingsUpdate,
) (SettingsSnapshot, error) {
	if update.List != "" && strings.TrimSpace(update.Entity.OriginID) == "" {
		return SettingsSnapshot{}, fmt.Errorf("%w: entity id is required", entities.ErrValidation)
	}
	if update.List == "" && update.ProjectRepositoriesID == "" {
		return SettingsSnapshot{}, fmt.Errorf("%w: nothing to update", entities.ErrValidation)
	}

	store, err := it.settingsRegistry.Get(settings)
	if err != nil {
		return SettingsSnapshot{}, fmt.Errorf("failed to open settings store: %w", err)
	}

	snapshot, err := readSnapshot(ctx, store)
	if err != nil {
		return SettingsSnapshot{}, err
	}

	userChanged := update.ProjectRepositoriesID != ""
	if userChanged {
		snapshot.User.ProjectRepositoriesID = update.ProjectRepositoriesID
	}

	systemChanged := false
	switch update.List {
	case "":
	case ListMyRepositories:
		snapshot.User.MyRepositories = applyEntity(snapshot.User.MyRepositories, update)
		userChanged = true
	case ListProjectRepositories:
		snapshot.System.ProjectRepositories = applyEntity(snapshot.System.ProjectRepositories, update)
		systemChanged = true
	case ListAllowedUsers:
		snapshot.System.AllowedUsers = applyEntity(snapshot.System.AllowedUsers, update)
		systemChanged = true
	case ListAllowedUserGroups:
		snapshot.System.AllowedUserGroups = applyEntity(snapshot.System.AllowedUserGroups, update)
		systemChanged = true
	default:
		return SettingsSnapshot{}, fmt.Errorf("%w: unknown settings list %q", entities.ErrValidation, update.List)
	}

	if userChanged {
		if err := store.SetValue(ctx, entities.UserSettingsKey, entities.ScopeUser, snapshot.User); err != nil {
			return SettingsSnapshot{}, fmt.Errorf("failed to save user settings: %w", err)
		}
		logger.Infof("Saved %s", entities.UserSettingsKey)
	}
	if systemChanged {
		if err := store.SetValue(ctx, entities.SystemSettingsKey, entities.ScopeSystem, snapshot.System); err != nil {
			return SettingsSnapshot{}, fmt.Errorf("failed to save system settings: %w", err)
		}
		logger.Infof("Saved %s", entities.SystemSettingsKey)
	}

	return snapshot, nil
}

func applyEntity(list []entities.SettingsEntity, update SettingsUpdate) []entities.SettingsEntity {
	if update.Remove {
		return entities.RemoveEntity(list, update.Entity.OriginID)
	}
	return entities.AddEntity(list, update.Entity)
}

func readSnapshot(ctx context.Context, store repositories.SettingsRepository) (SettingsSnapshot, error) {
	var snapshot SettingsSnapshot
	if _, err := store.GetValue(ctx, entities.UserSettingsKey, entities.ScopeUser, &snapshot.User); err != nil {
		return SettingsSnapshot{}, fmt.Errorf("failed to read user settings: %w", err)
	}
	if _, err := store.GetValue(ctx, entities.SystemSettingsKey, entities.ScopeSystem, &snapshot.System); err != nil {
		return SettingsSnapshot{}, fmt.Errorf("failed to read system settings: %w", err)
	}
	return snapshot, nil
}
