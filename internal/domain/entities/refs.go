package entities

import "strings"

const (
	// ZeroObjectID is the sentinel old object id meaning "the ref must not exist yet".
	ZeroObjectID = "0000000000000000000000000000000000000000"

	HeadsPrefix = "refs/heads/"
	TagsPrefix  = "refs/tags/"

	BranchDevelop = "develop"
	BranchMaster  = "master"
	BranchMain    = "main"
	ReleasePrefix = "release/"
)

// ShortRefName returns the branch or tag name without its refs/ namespace.
func ShortRefName(name string) string {
	name = strings.TrimPrefix(name, HeadsPrefix)
	return strings.TrimPrefix(name, TagsPrefix)
}

// BranchRefName qualifies a branch name; already-qualified names are returned unchanged.
func BranchRefName(branch string) string {
	if strings.HasPrefix(branch, "refs/") {
		return branch
	}
	return HeadsPrefix + branch
}

// FindRef returns the ref whose fully-qualified name equals name.
func FindRef(refs []Ref, name string) (Ref, bool) {
	for _, ref := range refs {
		if ref.Name == name {
			return ref, true
		}
	}
	return Ref{}, false
}

// RefUpdateRequest is a compare-and-swap mutation of a single ref. The host
// rejects it when the current value of Name differs from OldObjectID.
type RefUpdateRequest struct {
	RepositoryID string
	Name         string
	OldObjectID  string
	NewObjectID  string
	IsLocked     bool
}

// RefUpdateResult is the host's per-request outcome.
type RefUpdateResult struct {
	Name          string
	Success       bool
	CustomMessage string
	UpdateStatus  string
	NewObjectID   string
}

// Message returns the most descriptive failure text available.
func (r RefUpdateResult) Message() string {
	if r.CustomMessage != "" {
		return r.CustomMessage
	}
	return r.UpdateStatus
}

// ShortRefNameForFilter turns "refs/heads/x" into the "heads/x" form the host
// uses as a ref list filter.
func ShortRefNameForFilter(name string) string {
	return strings.TrimPrefix(name, "refs/")
}
