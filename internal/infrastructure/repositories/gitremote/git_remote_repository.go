package gitremote

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

const (
	originRemote      = "origin"
	visualStudioHost  = ".visualstudio.com"
	azureSSHSeparator = ":v3/"
)

// GitRemoteRepository reads the origin remote of a local checkout with go-git.
type GitRemoteRepository struct{}

var _ repositories.RemoteRepository = (*GitRemoteRepository)(nil)

func NewGitRemoteRepository() *GitRemoteRepository {
	return &GitRemoteRepository{}
}

// DetectOrigin opens the repository containing path and parses its origin URL.
func (r *GitRemoteRepository) DetectOrigin(path string) (entities.RemoteInfo, error) {
	//nolint:exhaustruct // only DetectDotGit matters here
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return entities.RemoteInfo{}, fmt.Errorf("failed to open git repository at %q: %w", path, err)
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		return entities.RemoteInfo{}, fmt.Errorf("failed to read %q remote: %w", originRemote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return entities.RemoteInfo{}, errors.New("origin remote has no URL")
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts organization, project and repository from an Azure
// DevOps remote. HTTPS (dev.azure.com and *.visualstudio.com) and SSH forms are accepted.
func ParseRemoteURL(rawURL string) (entities.RemoteInfo, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), ".git")

	if strings.Contains(cleaned, azureSSHSeparator) {
		_, after, _ := strings.Cut(cleaned, azureSSHSeparator)
		parts := strings.Split(after, "/")
		if len(parts) >= 3 { //nolint:mnd // org/project/repo
			return entities.RemoteInfo{Organization: parts[0], Project: parts[1], Repository: parts[2]}, nil
		}
		return entities.RemoteInfo{}, fmt.Errorf("invalid Azure DevOps SSH URL: %s", rawURL)
	}

	if !strings.Contains(cleaned, "dev.azure.com") && !strings.Contains(cleaned, visualStudioHost) {
		return entities.RemoteInfo{}, fmt.Errorf("unsupported git remote URL: %s", rawURL)
	}

	parts := strings.Split(cleaned, "/")
	for i, p := range parts {
		if p != "_git" || i+1 >= len(parts) || i < 2 {
			continue
		}

		org := parts[i-2]
		if host := hostOf(org); strings.HasSuffix(host, visualStudioHost) {
			org = strings.TrimSuffix(host, visualStudioHost)
		}
		return entities.RemoteInfo{
			Organization: org,
			Project:      parts[i-1],
			Repository:   parts[i+1],
		}, nil
	}

	return entities.RemoteInfo{}, fmt.Errorf("invalid Azure DevOps URL: %s", rawURL)
}

// hostOf drops any "user@" prefix from a host segment.
func hostOf(segment string) string {
	if _, after, found := strings.Cut(segment, "@"); found {
		return after
	}
	return segment
}
