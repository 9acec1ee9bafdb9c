package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	domainRepos "github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

const ProviderAzureDevOps = "azuredevops"

// ProviderFactory builds a HostRepository from the loaded configuration.
type ProviderFactory func(settings *entities.Settings) domainRepos.HostRepository

// ProviderRegistry manages all registered hosting platform implementations.
type ProviderRegistry struct {
	providers map[string]ProviderFactory
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ProviderFactory),
	}
}

// Register adds a provider factory under the given name (e.g. "azuredevops").
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) {
	r.providers[name] = factory
}

// Get returns a configured host repository for the given name.
func (r *ProviderRegistry) Get(name string, settings *entities.Settings) (domainRepos.HostRepository, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", name)
	}
	return factory(settings), nil
}

// Names returns the sorted list of registered provider names.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
