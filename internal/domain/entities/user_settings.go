package entities

import "github.com/samber/lo"

// SettingsScope selects whose settings document is read or written.
type SettingsScope string

const (
	ScopeUser   SettingsScope = "user"
	ScopeSystem SettingsScope = "system"

	UserSettingsKey   = "user-settings"
	SystemSettingsKey = "system-settings"
)

// SettingsEntity is a user, group or repository stored in an allow-list.
type SettingsEntity struct {
	DisplayName string `json:"displayName" yaml:"displayName"`
	OriginID    string `json:"originId"    yaml:"originId"`
	Descriptor  string `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
}

// UserSettings is the per-user document.
type UserSettings struct {
	MyRepositories        []SettingsEntity `json:"myRepositories"        yaml:"myRepositories"`
	ProjectRepositoriesID string           `json:"projectRepositoriesId" yaml:"projectRepositoriesId"`
}

// SystemSettings is the collection-wide document.
type SystemSettings struct {
	AllowedUserGroups   []SettingsEntity `json:"allowedUserGroups"   yaml:"allowedUserGroups"`
	AllowedUsers        []SettingsEntity `json:"allowedUsers"        yaml:"allowedUsers"`
	ProjectRepositories []SettingsEntity `json:"projectRepositories" yaml:"projectRepositories"`
}

// EntityIDs projects the origin ids out of a list of entities.
func EntityIDs(entities []SettingsEntity) []string {
	return lo.Map(entities, func(e SettingsEntity, _ int) string { return e.OriginID })
}

// AddEntity appends entity unless one with the same origin id is already listed.
func AddEntity(entities []SettingsEntity, entity SettingsEntity) []SettingsEntity {
	if lo.ContainsBy(entities, func(e SettingsEntity) bool { return e.OriginID == entity.OriginID }) {
		return entities
	}
	return append(entities, entity)
}

// RemoveEntity drops every entity carrying originID.
func RemoveEntity(entities []SettingsEntity, originID string) []SettingsEntity {
	return lo.Reject(entities, func(e SettingsEntity, _ int) bool { return e.OriginID == originID })
}
