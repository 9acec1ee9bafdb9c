package repositories

import (
	"fmt"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	domainRepos "github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

// SettingsFactory builds a SettingsRepository from the loaded configuration.
type SettingsFactory func(settings *entities.Settings) domainRepos.SettingsRepository

// SettingsRegistry maps a settings backend name to its store implementation.
type SettingsRegistry struct {
	backends map[string]SettingsFactory
}

func NewSettingsRegistry() *SettingsRegistry {
	return &SettingsRegistry{backends: make(map[string]SettingsFactory)}
}

// Register adds a store factory under a backend name (e.g. "file").
func (r *SettingsRegistry) Register(backend string, factory SettingsFactory) {
	r.backends[backend] = factory
}

// Get returns the store selected by settings.Store.Backend.
func (r *SettingsRegistry) Get(settings *entities.Settings) (domainRepos.SettingsRepository, error) {
	factory, ok := r.backends[settings.Store.Backend]
	if !ok {
		return nil, fmt.Errorf("unknown settings backend: %q", settings.Store.Backend)
	}
	return factory(settings), nil
}
