package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command commands.ScanReleases
}

func NewScanController(command commands.ScanReleases) *ScanController {
	return &ScanController{command: command}
}

func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan",
		Short: "Find repositories that need a release",
		Long: `Compare develop against the trunk branch (master, or main when there is
no master) of every allowed repository. A repository needs a release when
develop carries any change the trunk does not have.

Repositories are processed concurrently; one failing repository is reported
and never stops the rest of the scan.`,
	}
}

func (it *ScanController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	mine, _ := cmd.Flags().GetBool("mine")
	all, _ := cmd.Flags().GetBool("all")
	onlyNeeded, _ := cmd.Flags().GetBool("needed")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	output, _ := cmd.Flags().GetString("output")
	if outputErr := validOutput(output); outputErr != nil {
		logger.Error(outputErr)
		return
	}

	report, err := it.command.Execute(context.Background(), settings, commands.ScanOptions{
		Selection:   commands.RepositorySelection{Mine: mine, All: all},
		Concurrency: concurrency,
	})
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return
	}

	candidates := report.Candidates
	if onlyNeeded {
		candidates = report.NeedingRelease()
	}

	if output == outputJSON {
		if writeErr := writeJSON(cmd.OutOrStdout(), candidates); writeErr != nil {
			logger.Errorf("failed to write output: %v", writeErr)
		}
		return
	}
	printCandidates(cmd.OutOrStdout(), candidates)
	for _, failure := range report.Failures {
		logger.Warnf("%s was skipped: %v", failure.Repository.Name, failure.Err)
	}
}

func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("mine", false, "Scan your own repository list (user settings)")
	cmd.Flags().Bool("all", false, "Scan every repository of the project")
	cmd.Flags().Bool("needed", false, "Only show repositories that need a release")
	cmd.Flags().Int("concurrency", 0, "Repositories processed in parallel (default: config scan.concurrency)")
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table or json")
}
