// Package main is the entry point for Cat Lounge.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/catlounge/internal/game"
	"github.com/samdwyer/catlounge/internal/logging"
	"github.com/samdwyer/catlounge/internal/telemetry"
	"github.com/samdwyer/catlounge/internal/ui"
)

func main() {
	if err := run(); err != nil {
		// Deferred cleanup in run has already happened; the log file may be
		// gone or disabled, so the final line goes to stderr.
		fmt.Fprintln(os.Stderr, logging.Line("fatal", "catlounge stopped", logging.Fields{"error": err.Error()}))
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development
	// This makes HONEYCOMB_CATLOUNGE_API_KEY available
	envErr := godotenv.Load()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The terminal belongs to the game screen, so logs go to a file
	closer, err := logging.Open(cfg.LogFile)
	if err != nil {
		// Keep playing without a log file
		fmt.Fprintln(os.Stderr, err)
	}
	defer closer.Close()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		logging.Info(".env file not loaded", logging.Fields{"reason": envErr.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		// Continue without telemetry - game still works
		logging.Error("telemetry setup failed, running without traces", err, nil)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logging.Error("telemetry shutdown failed", err, nil)
			}
		}()
	}

	logging.Info("starting", logging.Fields{
		"session":    telemetry.SessionID(),
		"tick_rate":  cfg.TickRate,
		"hold_ticks": cfg.HoldTicks,
		"seed":       cfg.Seed,
	})

	// Create and run game
	machine, err := game.New(ctx, cfg)
	if err != nil {
		logging.Error("failed to initialize game", err, nil)
		return err
	}

	app, err := ui.NewApp(cfg, machine)
	if err != nil {
		logging.Error("failed to open terminal", err, nil)
		return err
	}

	if err := app.Run(ctx); err != nil {
		logging.Error("game error", err, nil)
		return err
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Default the endpoint to Honeycomb unless one is already set
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_CATLOUNGE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CATLOUNGE_DATASET")
	if dataset == "" {
		dataset = "catlounge" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
