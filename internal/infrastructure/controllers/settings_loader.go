package controllers

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

const tokenEnvVar = "AZURE_DEVOPS_PAT"

// loadSettings builds the configuration for one invocation: the config file
// (explicit or auto-detected) overlaid with the global flags.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	organization, _ := cmd.Flags().GetString("organization")
	token, _ := cmd.Flags().GetString("token")
	project, _ := cmd.Flags().GetString("project")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath := configPath
	if cfgPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			cfgPath = found
		} else {
			logger.Debugf("No config file: %v", err)
		}
	}

	settings := &entities.Settings{}
	if cfgPath != "" {
		logger.Debugf("Using config file: %s", cfgPath)
		loaded, err := entities.LoadSettings(cfgPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if organization != "" {
		settings.Organization = organization
	}
	if project != "" {
		settings.Project = project
	}
	switch {
	case token != "":
		settings.SetToken(token)
	case settings.RawToken == "" && os.Getenv(tokenEnvVar) != "":
		settings.SetToken("${" + tokenEnvVar + "}")
	}

	if err := settings.Finalize(); err != nil {
		return nil, err
	}
	return settings, nil
}

// targetFromFlags reads the --repository flag; the project comes from the global flag.
func targetFromFlags(cmd *cobra.Command) entities.RepositoryTarget {
	project, _ := cmd.Flags().GetString("project")
	repository, _ := cmd.Flags().GetString("repository")
	return entities.RepositoryTarget{Project: project, Repository: repository}
}

func addRepositoryFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("repository", "r", "",
		"Repository name or id (default: origin remote of the current checkout)")
}
