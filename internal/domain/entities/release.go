package entities

import "strings"

const (
	headsDevelop = "heads/" + BranchDevelop
	headsMaster  = "heads/" + BranchMaster
	headsMain    = "heads/" + BranchMain
	headsRelease = "heads/release"
)

// BranchPresence records which integration branches a repository carries.
type BranchPresence struct {
	HasDevelop bool
	HasMaster  bool
	HasMain    bool
}

// Trunk returns the diff base: master wins over main, empty when neither exists.
func (p BranchPresence) Trunk() string {
	switch {
	case p.HasMaster:
		return BranchMaster
	case p.HasMain:
		return BranchMain
	default:
		return ""
	}
}

// CanCompare reports whether develop can be diffed against a trunk branch.
func (p BranchPresence) CanCompare() bool {
	return p.HasDevelop && p.Trunk() != ""
}

// ReleaseDecision is the outcome of classifying one repository.
type ReleaseDecision struct {
	RepositoryID       string
	Presence           BranchPresence
	NeedsRelease       bool
	ExistingReleaseRef *Ref
	Diff               *DiffResult
}

// ReleaseCandidate pairs a repository with the decision computed for it.
type ReleaseCandidate struct {
	Repository Repository
	Decision   ReleaseDecision
}

// ClassifyRefs scans refs once, recording branch presence and the existing
// release branch. When several release branches exist the newest version is
// kept (string order when the names are not versions), so the answer never
// depends on the order of refs.
func ClassifyRefs(refs []Ref) (BranchPresence, *Ref) {
	var presence BranchPresence
	var release *Ref

	for i := range refs {
		name := refs[i].Name
		if strings.Contains(name, headsDevelop) {
			presence.HasDevelop = true
		}
		if strings.Contains(name, headsMaster) {
			presence.HasMaster = true
		}
		if strings.Contains(name, headsMain) {
			presence.HasMain = true
		}
		if strings.Contains(name, headsRelease) {
			if release == nil || newerVersion(releaseVersion(name), releaseVersion(release.Name)) {
				ref := refs[i]
				release = &ref
			}
		}
	}

	return presence, release
}

// releaseVersion strips "refs/heads/release/" from a release branch name.
func releaseVersion(name string) string {
	return strings.TrimPrefix(ShortRefName(name), ReleasePrefix)
}
