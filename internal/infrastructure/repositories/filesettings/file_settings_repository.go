package filesettings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

const (
	filePermissions = 0o600
	dirPermissions  = 0o750
)

// document maps scope -> key -> stored value.
type document map[entities.SettingsScope]map[string]yaml.Node

// FileSettingsRepository keeps settings documents in a local YAML file.
type FileSettingsRepository struct {
	mu   sync.Mutex
	path string
}

var _ repositories.SettingsRepository = (*FileSettingsRepository)(nil)

// NewFileSettingsRepository creates the file-backed settings store from the configuration.
func NewFileSettingsRepository(settings *entities.Settings) repositories.SettingsRepository {
	return NewFileSettingsRepositoryAt(settings.Store.Path)
}

// NewFileSettingsRepositoryAt creates a store writing to path.
func NewFileSettingsRepositoryAt(path string) *FileSettingsRepository {
	return &FileSettingsRepository{path: path}
}

func (r *FileSettingsRepository) GetValue(
	_ context.Context,
	key string,
	scope entities.SettingsScope,
	out any,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return false, err
	}

	node, ok := doc[scope][key]
	if !ok {
		return false, nil
	}
	if err := node.Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}

func (r *FileSettingsRepository) SetValue(
	_ context.Context,
	key string,
	scope entities.SettingsScope,
	value any,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if doc[scope] == nil {
		doc[scope] = make(map[string]yaml.Node)
	}
	doc[scope][key] = node

	return r.save(doc)
}

func (r *FileSettingsRepository) load() (document, error) {
	doc := make(document)

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", r.path, err)
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %q: %w", r.path, err)
	}
	return doc, nil
}

func (r *FileSettingsRepository) save(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), dirPermissions); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write settings file %q: %w", r.path, err)
	}
	return nil
}
