package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	for _, constructor := range []any{
		NewCloneController,
		NewFeaturedController,
		NewPullController,
		NewStatusController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}
	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	cloneController *CloneController,
	featuredController *FeaturedController,
	pullController *PullController,
	statusController *StatusController,
) *[]entities.Controller {
	return &[]entities.Controller{
		cloneController,
		featuredController,
		pullController,
		statusController,
	}
}
