package entities

// RepositoryTarget names a repository as the user typed it: project and
// repository may be names or ids.
type RepositoryTarget struct {
	Project    string
	Repository string
}

// IsComplete reports whether both parts are known.
func (t RepositoryTarget) IsComplete() bool {
	return t.Project != "" && t.Repository != ""
}

// RemoteInfo holds the parsed components of an Azure DevOps Git remote URL.
type RemoteInfo struct {
	Organization string
	Project      string
	Repository   string
}
