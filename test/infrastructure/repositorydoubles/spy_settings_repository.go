//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

// InMemorySettingsRepository is a fake SettingsRepository keeping JSON documents in memory.
type InMemorySettingsRepository struct {
	mu        sync.Mutex
	documents map[string][]byte

	GetErr error
	SetErr error
	// SetKeys records every key written, in order.
	SetKeys []string
}

var _ repositories.SettingsRepository = (*InMemorySettingsRepository)(nil)

func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{documents: make(map[string][]byte)}
}

// Seed stores value directly, without recording a write.
func (s *InMemorySettingsRepository) Seed(key string, scope entities.SettingsScope, value any) {
	raw, _ := json.Marshal(value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[string(scope)+"/"+key] = raw
}

func (s *InMemorySettingsRepository) GetValue(
	_ context.Context, key string, scope entities.SettingsScope, out any,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GetErr != nil {
		return false, s.GetErr
	}
	raw, ok := s.documents[string(scope)+"/"+key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (s *InMemorySettingsRepository) SetValue(
	_ context.Context, key string, scope entities.SettingsScope, value any,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SetKeys = append(s.SetKeys, key)
	if s.SetErr != nil {
		return s.SetErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.documents[string(scope)+"/"+key] = raw
	return nil
}
