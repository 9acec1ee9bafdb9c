//go:build unit

package gitremote_test

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories/gitremote"
)

func TestParseRemoteURL(t *testing.T) {
	t.Parallel()

	expected := entities.RemoteInfo{Organization: "contoso", Project: "Platform", Repository: "api"}

	tests := []struct {
		name string
		url  string
	}{
		{name: "should parse an HTTPS URL", url: "https://dev.azure.com/contoso/Platform/_git/api"},
		{name: "should parse an HTTPS URL with a user", url: "https://contoso@dev.azure.com/contoso/Platform/_git/api"},
		{name: "should strip a .git suffix", url: "https://dev.azure.com/contoso/Platform/_git/api.git"},
		{name: "should parse an SSH URL", url: "git@ssh.dev.azure.com:v3/contoso/Platform/api"},
		{name: "should parse a visualstudio.com URL", url: "https://contoso.visualstudio.com/Platform/_git/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			url := tt.url

			// when
			info, err := gitremote.ParseRemoteURL(url)

			// then
			require.NoError(t, err)
			assert.Equal(t, expected, info)
		})
	}

	t.Run("should reject other hosts", func(t *testing.T) {
		t.Parallel()

		// given
		url := "https://github.com/contoso/api.git"

		// when
		_, err := gitremote.ParseRemoteURL(url)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported git remote URL")
	})

	t.Run("should reject a truncated SSH URL", func(t *testing.T) {
		t.Parallel()

		// given
		url := "git@ssh.dev.azure.com:v3/contoso/Platform"

		// when
		_, err := gitremote.ParseRemoteURL(url)

		// then
		require.Error(t, err)
	})
}

func TestGitRemoteRepositoryDetectOrigin(t *testing.T) {
	t.Parallel()

	t.Run("should read the origin remote of a checkout", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		_, err = repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: []string{"https://dev.azure.com/contoso/Platform/_git/api"},
		})
		require.NoError(t, err)

		// when
		info, err := gitremote.NewGitRemoteRepository().DetectOrigin(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.RemoteInfo{Organization: "contoso", Project: "Platform", Repository: "api"}, info)
	})

	t.Run("should fail without an origin remote", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)

		// when
		_, err = gitremote.NewGitRemoteRepository().DetectOrigin(dir)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "origin")
	})

	t.Run("should fail outside a git repository", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		_, err := gitremote.NewGitRemoteRepository().DetectOrigin(dir)

		// then
		require.Error(t, err)
	})
}
