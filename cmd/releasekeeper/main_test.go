//go:build unit

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	t.Parallel()

	t.Run("should mount every controller with its flags", func(t *testing.T) {
		t.Parallel()

		// given
		root := buildRootCommand()
		app := injectAppContext()

		// when
		addSubcommands(root, app.GetControllers())

		// then
		names := make([]string, 0, len(root.Commands()))
		for _, sub := range root.Commands() {
			names = append(names, sub.Name())
		}
		assert.ElementsMatch(t, []string{"projects", "repos", "scan", "diff", "release", "merge", "tags", "settings"}, names)

		merge, _, err := root.Find([]string{"merge"})
		require.NoError(t, err)
		assert.NotNil(t, merge.Flags().Lookup("timeout"))
		assert.NotNil(t, merge.Flags().Lookup("repository"))
		assert.NotNil(t, root.PersistentFlags().Lookup("organization"))
	})
}
