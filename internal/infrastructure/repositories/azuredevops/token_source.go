package azuredevops

import (
	"errors"
	"sync"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// ConfigTokenSource serves the configured PAT and refreshes it by resolving
// the raw configuration value again (env var or token file), which picks up a
// rotated token without restarting.
type ConfigTokenSource struct {
	mu    sync.Mutex
	raw   string
	token string
}

// NewConfigTokenSource creates a token source from the raw and resolved token.
func NewConfigTokenSource(raw, resolved string) *ConfigTokenSource {
	return &ConfigTokenSource{raw: raw, token: resolved}
}

func (s *ConfigTokenSource) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *ConfigTokenSource) Refresh() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.raw == "" {
		return "", errors.New("no token source configured")
	}

	refreshed := entities.ResolveToken(s.raw)
	if refreshed == "" {
		return "", errors.New("token resolved to an empty value")
	}
	s.token = refreshed
	return s.token, nil
}
