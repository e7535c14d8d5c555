// cmd/bridge/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aymen99tn/modbus-rpi-opta/internal/bridge"
	"github.com/aymen99tn/modbus-rpi-opta/internal/config"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: bridge <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config validation failed")
	}

	config.Normalize(cfg)

	// --------------------
	// Build the pipeline
	// --------------------

	br, closeLinks, err := bridge.Build(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("bridge build failed")
	}
	defer func() {
		if err := closeLinks(); err != nil {
			log.Warn().Err(err).Msg("link close failed")
		}
	}()

	b := cfg.Bridge
	log.Info().
		Str("modbus", b.Source.Endpoint).
		Uint8("unit_id", b.Source.UnitID).
		Str("mms", b.Relay.Endpoint).
		Str("mirror", b.Mirror.Path).
		Int("interval_ms", b.Poll.IntervalMs).
		Msg("bridge running")

	// --------------------
	// Run until killed
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	br.Run(ctx)

	log.Info().Msg("bridge stopped")
}
