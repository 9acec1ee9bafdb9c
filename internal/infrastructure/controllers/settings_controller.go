package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekeeper/internal/domain/commands"
	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// SettingsController handles the "settings" subcommand.
type SettingsController struct {
	command commands.ManageSettings
}

func NewSettingsController(command commands.ManageSettings) *SettingsController {
	return &SettingsController{command: command}
}

func (it *SettingsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "settings",
		Short: "Show or edit user and system settings",
		Long: `Without flags, print the user settings (myRepositories, projectRepositoriesId)
and the system settings (allowedUsers, allowedUserGroups, projectRepositories).

Edit a list with --list and either --add or --remove, e.g.:
  releasekeeper settings --list projectRepositories --add <repo-id> --name my-repo`,
	}
}

func (it *SettingsController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	list, _ := cmd.Flags().GetString("list")
	add, _ := cmd.Flags().GetString("add")
	remove, _ := cmd.Flags().GetString("remove")
	name, _ := cmd.Flags().GetString("name")
	descriptor, _ := cmd.Flags().GetString("descriptor")
	projectID, _ := cmd.Flags().GetString("project-repositories-id")

	ctx := context.Background()
	var snapshot commands.SettingsSnapshot

	if list == "" && projectID == "" {
		snapshot, err = it.command.Show(ctx, settings)
	} else {
		originID := add
		if remove != "" {
			originID = remove
		}
		if name == "" {
			name = originID
		}
		snapshot, err = it.command.Update(ctx, settings, commands.SettingsUpdate{
			List:                  commands.SettingsList(list),
			Entity:                entities.SettingsEntity{DisplayName: name, OriginID: originID, Descriptor: descriptor},
			Remove:                remove != "",
			ProjectRepositoriesID: projectID,
		})
	}
	if err != nil {
		logger.Errorf("Settings failed: %v", err)
		return
	}

	out := cmd.OutOrStdout()
	printEntities(out, "myRepositories", snapshot.User.MyRepositories)
	printEntities(out, "projectRepositories", snapshot.System.ProjectRepositories)
	printEntities(out, "allowedUsers", snapshot.System.AllowedUsers)
	printEntities(out, "allowedUserGroups", snapshot.System.AllowedUserGroups)
	if snapshot.User.ProjectRepositoriesID != "" {
		logger.Infof("projectRepositoriesId: %s", snapshot.User.ProjectRepositoriesID)
	}
}

func (it *SettingsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("list", "",
		"List to edit: myRepositories, projectRepositories, allowedUsers, allowedUserGroups")
	cmd.Flags().String("add", "", "Origin id of the entity to add")
	cmd.Flags().String("remove", "", "Origin id of the entity to remove")
	cmd.Flags().String("name", "", "Display name of the entity to add")
	cmd.Flags().String("descriptor", "", "Identity descriptor of the entity to add")
	cmd.Flags().String("project-repositories-id", "", "Project whose repositories are listed by default")
	cmd.MarkFlagsMutuallyExclusive("add", "remove")
}
