package azuredevops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

const settingsCollection = "$settings"

// ExtensionDataRepository stores settings documents in the extension data
// service of an installed Azure DevOps extension.
type ExtensionDataRepository struct {
	client    *Client
	publisher string
	extension string
}

var _ repositories.SettingsRepository = (*ExtensionDataRepository)(nil)

// NewExtensionDataRepository creates the extension-backed settings store.
func NewExtensionDataRepository(settings *entities.Settings) repositories.SettingsRepository {
	tokens := NewConfigTokenSource(settings.RawToken, settings.Token)
	return NewExtensionDataRepositoryWithClient(
		NewClient(settings.Organization, tokens), settings.Store.Publisher, settings.Store.Extension,
	)
}

// NewExtensionDataRepositoryWithClient wraps an existing client.
func NewExtensionDataRepositoryWithClient(client *Client, publisher, extension string) *ExtensionDataRepository {
	return &ExtensionDataRepository{client: client, publisher: publisher, extension: extension}
}

type documentDTO struct {
	ID    string          `json:"id"`
	Value json.RawMessage `json:"value"`
	ETag  int             `json:"__etag"`
}

func (r *ExtensionDataRepository) GetValue(
	ctx context.Context,
	key string,
	scope entities.SettingsScope,
	out any,
) (bool, error) {
	resp, err := r.client.doRequest(ctx, http.MethodGet, r.documentURL(scope, key), nil)
	if errors.Is(err, entities.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	var doc documentDTO
	if err := json.Unmarshal(resp, &doc); err != nil {
		return false, fmt.Errorf("failed to parse %q document: %w", key, err)
	}
	if len(doc.Value) == 0 || string(doc.Value) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(doc.Value, out); err != nil {
		return false, fmt.Errorf("failed to decode %q value: %w", key, err)
	}
	return true, nil
}

func (r *ExtensionDataRepository) SetValue(
	ctx context.Context,
	key string,
	scope entities.SettingsScope,
	value any,
) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q value: %w", key, err)
	}

	// an etag of -1 overwrites whatever revision is stored
	body := documentDTO{ID: key, Value: raw, ETag: -1}
	endpoint := r.collectionURL(scope) + "?api-version=" + extensionAPIVersion
	if _, err := r.client.doRequest(ctx, http.MethodPut, endpoint, body); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (r *ExtensionDataRepository) collectionURL(scope entities.SettingsScope) string {
	scopeType, scopeValue := "Default", "Current"
	if scope == entities.ScopeUser {
		scopeType, scopeValue = "User", "Me"
	}

	return fmt.Sprintf(
		"%s/_apis/ExtensionManagement/InstalledExtensions/%s/%s/Data/Scopes/%s/%s/Collections/%s/Documents",
		r.client.ExtensionBaseURL(),
		url.PathEscape(r.publisher), url.PathEscape(r.extension),
		scopeType, scopeValue,
		url.PathEscape(settingsCollection),
	)
}

func (r *ExtensionDataRepository) documentURL(scope entities.SettingsScope, key string) string {
	return r.collectionURL(scope) + "/" + url.PathEscape(key) + "?api-version=" + extensionAPIVersion
}
