package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"coffee/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := cmd.NewLogger(config, os.Stderr)
	if err != nil {
		log.Fatalf("Error configuring logger: %v", err)
	}

	app := cmd.NewCompositionRoot(config, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = newRootCommand(&app, os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
