package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// ReposController handles the "repos" subcommand.
type ReposController struct {
	command commands.ListRepositories
}

func NewReposController(command commands.ListRepositories) *ReposController {
	return &ReposController{command: command}
}

func (it *ReposController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "repos",
		Short: "List the allowed repositories of a project",
		Long: `List the repositories of a project, sorted by name.

When an allow-list is configured (allowed_repositories in the config file or
projectRepositories in the system settings) only those repositories are shown.
Use --mine to apply your own repository list instead, or --all to skip filtering.`,
	}
}

func (it *ReposController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	mine, _ := cmd.Flags().GetBool("mine")
	all, _ := cmd.Flags().GetBool("all")
	output, _ := cmd.Flags().GetString("output")
	if outputErr := validOutput(output); outputErr != nil {
		logger.Error(outputErr)
		return
	}

	repos, err := it.command.Execute(context.Background(), settings, commands.RepositorySelection{
		Mine: mine,
		All:  all,
	})
	if err != nil {
		logger.Errorf("Listing repositories failed: %v", err)
		return
	}

	if output == outputJSON {
		if writeErr := writeJSON(cmd.OutOrStdout(), repos); writeErr != nil {
			logger.Errorf("failed to write output: %v", writeErr)
		}
		return
	}
	printRepositories(cmd.OutOrStdout(), repos)
}

func (it *ReposController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("mine", false, "Filter with your own repository list (user settings)")
	cmd.Flags().Bool("all", false, "Do not filter by any allow-list")
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table or json")
}
