package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// flagged is implemented by controllers that declare their own flags.
type flagged interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "releasekeeper",
		Short: "Release bookkeeping for Azure DevOps repositories",
		Long: `Keep track of which Azure DevOps repositories need a release and cut it.

releasekeeper compares develop against master/main across your allowed
repositories, creates release branches, merges branches through the
Azure DevOps merge API, lists tags, and manages the allow-lists that decide
which repositories are shown.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("organization", "",
		"Azure DevOps organization name or URL (e.g., https://dev.azure.com/MyOrg)")
	cmd.PersistentFlags().String("token", "",
		"Personal Access Token (or set AZURE_DEVOPS_PAT env var)")
	cmd.PersistentFlags().StringP("project", "p", "",
		"Project name or id")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, controllers []entities.Controller) {
	for _, controller := range controllers {
		bind := controller.GetBind()
		ctrl := controller
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		if withFlags, ok := ctrl.(flagged); ok {
			withFlags.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, appContext.GetControllers())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'releasekeeper': %s", err)
	}
}
