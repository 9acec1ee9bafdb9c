package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewListProjectsCommand,
		NewListRepositoriesCommand,
		NewScanReleasesCommand,
		NewCompareBranchesCommand,
		NewCreateReleaseBranchCommand,
		NewMergeBranchesCommand,
		NewListTagsCommand,
		NewManageSettingsCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *ListProjectsCommand) ListProjects { return impl },
		func(impl *ListRepositoriesCommand) ListRepositories { return impl },
		func(impl *ScanReleasesCommand) ScanReleases { return impl },
		func(impl *CompareBranchesCommand) CompareBranches { return impl },
		func(impl *CreateReleaseBranchCommand) CreateReleaseBranch { return impl },
		func(impl *MergeBranchesCommand) MergeBranches { return impl },
		func(impl *ListTagsCommand) ListTags { return impl },
		func(impl *ManageSettingsCommand) ManageSettings { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
