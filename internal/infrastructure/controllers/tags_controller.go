package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// TagsController handles the "tags" subcommand.
type TagsController struct {
	command commands.ListTags
}

func NewTagsController(command commands.ListTags) *TagsController {
	return &TagsController{command: command}
}

func (it *TagsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "tags",
		Short: "List the tags of a repository, newest version first",
	}
}

func (it *TagsController) Execute(cmd *cobra.Command, _ []string) {
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

	tags, err := it.command.Execute(context.Background(), settings, targetFromFlags(cmd))
	if err != nil {
		logger.Errorf("Listing tags failed: %v", err)
		return
	}

	if output == outputJSON {
		if writeErr := writeJSON(cmd.OutOrStdout(), tags); writeErr != nil {
			logger.Errorf("failed to write output: %v", writeErr)
		}
		return
	}
	printTags(cmd.OutOrStdout(), tags)
}

func (it *TagsController) AddFlags(cmd *cobra.Command) {
	addRepositoryFlag(cmd)
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table or json")
}
