package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	domainRepos "github.com/rios0rios0/releasekeeper/internal/domain/repositories"
	adoRepo "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories/azuredevops"
	fileRepo "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories/filesettings"
	remoteRepo "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories/gitremote"
	notifyRepo "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories/notification"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register(ProviderAzureDevOps, adoRepo.NewHostRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() *SettingsRegistry {
		reg := NewSettingsRegistry()
		reg.Register(entities.SettingsBackendFile, fileRepo.NewFileSettingsRepository)
		reg.Register(entities.SettingsBackendExtension, adoRepo.NewExtensionDataRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.NotificationRepository {
		return notifyRepo.NewLogNotificationRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.RemoteRepository {
		return remoteRepo.NewGitRemoteRepository()
	}); err != nil {
		return err
	}

	return nil
}
