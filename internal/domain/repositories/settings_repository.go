package repositories

import (
	"context"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// SettingsRepository is a scoped key/value store for settings documents.
type SettingsRepository interface {
	// GetValue decodes the value stored under key into out. It returns false
	// when nothing is stored.
	GetValue(ctx context.Context, key string, scope entities.SettingsScope, out any) (bool, error)

	// SetValue replaces the value stored under key.
	SetValue(ctx context.Context, key string, scope entities.SettingsScope, value any) error
}
