package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// ReleaseController handles the "release" subcommand.
type ReleaseController struct {
	command commands.CreateReleaseBranch
}

func NewReleaseController(command commands.CreateReleaseBranch) *ReleaseController {
	return &ReleaseController{command: command}
}

func (it *ReleaseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "release <name>",
		Short: "Create release/<name> from develop",
		Long: `Create the branch release/<name> pointing at the current head of develop
(or --from). The branch is only created when it does not exist yet.`,
	}
}

func (it *ReleaseController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		logger.Error("release needs exactly one argument: the release branch name")
		return
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	from, _ := cmd.Flags().GetString("from")

	if _, err := it.command.Execute(context.Background(), settings, commands.ReleaseBranchOptions{
		Target:     targetFromFlags(cmd),
		Suffix:     args[0],
		BaseBranch: from,
	}); err != nil {
		logger.Errorf("Creating release branch failed: %v", err)
	}
}

func (it *ReleaseController) AddFlags(cmd *cobra.Command) {
	addRepositoryFlag(cmd)
	cmd.Flags().String("from", entities.BranchDevelop, "Branch the release is cut from")
}
