package controllers

import (
	"context"
	"os"
	"os/signal"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// MergeController handles the "merge" subcommand.
type MergeController struct {
	command commands.MergeBranches
}

func NewMergeController(command commands.MergeBranches) *MergeController {
	return &MergeController{command: command}
}

func (it *MergeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "merge <source> <target>",
		Short: "Merge one branch into another",
		Long: `Ask Azure DevOps to merge source into target, wait for the merge to finish
and move target to the merge commit.

Target is only moved if nobody pushed to it in the meantime. When the wait
times out (or is interrupted with Ctrl+C) the merge may still finish on the
server, but target is left untouched.`,
	}
}

func (it *MergeController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != 2 { //nolint:mnd // source and target
		logger.Error("merge needs exactly two branches: <source> <target>")
		return
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	comment, _ := cmd.Flags().GetString("message")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome, err := it.command.Execute(ctx, settings, commands.MergeOptions{
		Target:  targetFromFlags(cmd),
		Source:  args[0],
		Into:    args[1],
		Comment: comment,
		Timeout: timeout,
	})
	if err != nil {
		logger.Errorf("Merge failed: %v", err)
		return
	}

	logger.WithFields(logger.Fields{
		"operation": outcome.OperationID,
		"state":     outcome.State,
		"polls":     outcome.PollCount,
	}).Info("Merge finished")
}

func (it *MergeController) AddFlags(cmd *cobra.Command) {
	addRepositoryFlag(cmd)
	cmd.Flags().StringP("message", "m", "", "Merge commit comment")
	cmd.Flags().Duration("timeout", 0, "How long to wait for the merge (default: config merge.timeout)")
}
