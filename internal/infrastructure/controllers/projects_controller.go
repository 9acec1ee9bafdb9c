package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// ProjectsController handles the "projects" subcommand.
type ProjectsController struct {
	command commands.ListProjects
}

func NewProjectsController(command commands.ListProjects) *ProjectsController {
	return &ProjectsController{command: command}
}

func (it *ProjectsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "projects",
		Short: "List the projects of the organization",
		Long: `List the projects of the organization, sorted by name.

The project repositories are listed from by default is marked with "*". Save
another one with: releasekeeper settings --project-repositories-id <id>`,
	}
}

func (it *ProjectsController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	output, _ := cmd.Flags().GetString("output")
	if outputErr := validOutput(output); outputErr != nil {
		logger.Error(outputErr)
		return
	}

	listing, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		logger.Errorf("Listing projects failed: %v", err)
		return
	}

	if output == outputJSON {
		if writeErr := writeJSON(cmd.OutOrStdout(), listing); writeErr != nil {
			logger.Errorf("failed to write output: %v", writeErr)
		}
		return
	}
	printProjects(cmd.OutOrStdout(), listing.Projects, listing.SelectedID)
}

func (it *ProjectsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table or json")
}
