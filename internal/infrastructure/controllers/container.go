package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewProjectsController,
		NewReposController,
		NewScanController,
		NewDiffController,
		NewReleaseController,
		NewMergeController,
		NewTagsController,
		NewSettingsController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	projectsController *ProjectsController,
	reposController *ReposController,
	scanController *ScanController,
	diffController *DiffController,
	releaseController *ReleaseController,
	mergeController *MergeController,
	tagsController *TagsController,
	settingsController *SettingsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		projectsController,
		reposController,
		scanController,
		diffController,
		releaseController,
		mergeController,
		tagsController,
		settingsController,
	}
}
