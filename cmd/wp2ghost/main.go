// Package main provides the entry point for the wp2ghost converter.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wp2ghost/wp2ghost/internal/config"
	"github.com/wp2ghost/wp2ghost/internal/di"
	domainerrors "github.com/wp2ghost/wp2ghost/internal/errors"
	"github.com/wp2ghost/wp2ghost/internal/migrate"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		if domainerrors.Is(err, flag.ErrHelp) {
			config.Usage(os.Stdout)
			return 0
		}
		fmt.Fprintf(os.Stderr, "wp2ghost: %v\n", err) //nolint:errcheck // best effort
		if domainerrors.Is(err, config.ErrUsage) {
			config.Usage(os.Stderr)
		}
		return exitStatus(err)
	}

	injector := di.NewContainer(cfg)
	svc, log := di.Bootstrap(injector)

	// Interrupt stops the pass between elements; nothing is written.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, err = svc.ConvertFile(ctx, migrate.Paths{
		Input:     cfg.Convert.Input,
		Output:    cfg.Convert.Output,
		Redirects: cfg.Convert.RedirectsPath(),
	})
	if err != nil {
		log.WithError(err).Error("conversion failed", "input", cfg.Convert.Input)
		return exitStatus(err)
	}

	return 0
}

func exitStatus(err error) int {
	var convErr *domainerrors.Error
	if domainerrors.As(err, &convErr) {
		return convErr.Code.ExitStatus()
	}
	return 1
}
