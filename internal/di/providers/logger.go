// Package providers contains dependency injection providers for the wp2ghost CLI.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/wp2ghost/wp2ghost/internal/config"
	"github.com/wp2ghost/wp2ghost/internal/logger"
)

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Debug("starting wp2ghost",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"input", cfg.Convert.Input,
		"output", cfg.Convert.Output,
		"redirects", cfg.Convert.RedirectsPath(),
	)

	return log, nil
}
