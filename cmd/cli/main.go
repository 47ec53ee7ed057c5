package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/banking/infra/initializer"
	"github.com/amirasaad/banking/internal/cli"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Logs go to stderr so they never interleave with the prompts on stdout.
	logger := initializer.SetupLogger(os.Stderr, cfg.Log)
	deps, err := initializer.InitializeWithLogger(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			logger.Error("Failed to release resources", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := cli.NewRouter(a, cli.NewPrompter(os.Stdin, os.Stdout))
	return router.Run(ctx)
}
