//go:build unit

package commands_test

import (
	"time"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/releasekeeper/test/infrastructure/repositorydoubles"
)

func newProviderRegistry(spy *doubles.SpyHostRepository) *infraRepos.ProviderRegistry {
	registry := infraRepos.NewProviderRegistry()
	registry.Register(infraRepos.ProviderAzureDevOps, func(_ *entities.Settings) repositories.HostRepository {
		return spy
	})
	return registry
}

func newSettingsRegistry(store *doubles.InMemorySettingsRepository) *infraRepos.SettingsRegistry {
	registry := infraRepos.NewSettingsRegistry()
	registry.Register(entities.SettingsBackendFile, func(_ *entities.Settings) repositories.SettingsRepository {
		return store
	})
	return registry
}

func newTestSettings() *entities.Settings {
	return &entities.Settings{
		Organization: "contoso",
		Token:        "pat",
		Project:      "Platform",
		Store:        entities.StoreSettings{Backend: entities.SettingsBackendFile},
		Merge: entities.MergeSettings{
			PollInterval: time.Millisecond,
			Timeout:      time.Second,
		},
		Scan: entities.ScanSettings{Concurrency: 2},
	}
}

func branch(name, objectID string) entities.Ref {
	return entities.Ref{Name: entities.HeadsPrefix + name, ObjectID: objectID}
}
