package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// DiffController handles the "diff" subcommand.
type DiffController struct {
	command commands.CompareBranches
}

func NewDiffController(command commands.CompareBranches) *DiffController {
	return &DiffController{command: command}
}

func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff <base> <head>",
		Short: "Compare two branches of a repository",
		Long:  `Show how many commits head is ahead of and behind base, and which files differ.`,
	}
}

func (it *DiffController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 2 { //nolint:mnd // base and head
		logger.Error("diff needs exactly two branches: <base> <head>")
		return
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	diff, err := it.command.Execute(context.Background(), settings, commands.CompareOptions{
		Target: targetFromFlags(cmd),
		Base:   args[0],
		Head:   args[1],
	})
	if err != nil {
		logger.Errorf("Diff failed: %v", err)
		return
	}
	printDiff(cmd.OutOrStdout(), args[0], args[1], diff)
}

func (it *DiffController) AddFlags(cmd *cobra.Command) {
	addRepositoryFlag(cmd)
}
