package entities

// Project represents an Azure DevOps team project.
type Project struct {
	ID    string
	Name  string
	State string
}

// Repository represents a Git repository hosted in a project.
type Repository struct {
	ID               string
	Name             string
	WebURL           string
	RemoteURL        string
	DefaultBranchRef string
	Project          Project
}

// Identity is the author of a ref, as reported by the host.
type Identity struct {
	ID          string
	DisplayName string
	UniqueName  string
}

// Ref is a named pointer to a commit (branch or tag).
type Ref struct {
	Name     string // fully-qualified, e.g. "refs/heads/develop"
	ObjectID string
	Creator  Identity
}

// ShortName strips the "refs/heads/" or "refs/tags/" prefix.
func (r Ref) ShortName() string {
	return ShortRefName(r.Name)
}
