package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders provides every command both as its concrete type and as
// the interface the controllers depend on.
func RegisterProviders(container *dig.Container) error {
	for _, provider := range []any{
		NewCloneCommand,
		func(impl *CloneCommand) Clone { return impl },
		NewPullCommand,
		func(impl *PullCommand) Pull { return impl },
		NewStatusCommand,
		func(impl *StatusCommand) Status { return impl },
		NewFeaturedCommand,
		func(impl *FeaturedCommand) Featured { return impl },
	} {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}
