package internal

import "github.com/rios0rios0/releasekeeper/internal/domain/entities"

// AppInternal exposes the wired controllers to the CLI entry point.
type AppInternal struct {
	controllers []entities.Controller
}

func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
