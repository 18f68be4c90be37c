// Package di provides dependency injection configuration for the wp2ghost CLI.
package di

import (
	"github.com/samber/do/v2"

	"github.com/wp2ghost/wp2ghost/internal/config"
	"github.com/wp2ghost/wp2ghost/internal/di/providers"
	"github.com/wp2ghost/wp2ghost/internal/logger"
	"github.com/wp2ghost/wp2ghost/internal/migrate"
)

// NewContainer creates the DI container for one run. The configuration is
// loaded by the caller so usage errors are reported before anything is built.
func NewContainer(cfg *config.Config) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, cfg)
	do.Provide(injector, providers.ProvideLogger)

	// Conversion pipeline
	do.Provide(injector, providers.ProvideConverter)
	do.Provide(injector, providers.ProvideMigrateService)

	return injector
}

// Bootstrap builds every service and returns the conversion service along
// with the run's logger.
func Bootstrap(injector *do.RootScope) (*migrate.Service, *logger.Logger) {
	return do.MustInvoke[*migrate.Service](injector), do.MustInvoke[*logger.Logger](injector)
}
