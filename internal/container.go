package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitbucket/internal/domain/commands"
	"github.com/rios0rios0/gitbucket/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitbucket/internal/infrastructure/repositories"
)

// RegisterProviders registers the adapters, commands and controllers, in that
// order, followed by the AppInternal.
func RegisterProviders(container *dig.Container) error {
	for _, register := range []func(*dig.Container) error{
		repositories.RegisterProviders,
		commands.RegisterProviders,
		controllers.RegisterProviders,
	} {
		if err := register(container); err != nil {
			return err
		}
	}
	return container.Provide(NewAppInternal)
}
