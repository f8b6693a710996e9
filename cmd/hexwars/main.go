// Package main is the entry point for HexWars.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/samdwyer/hexwars/internal/config"
	"github.com/samdwyer/hexwars/internal/game"
	"github.com/samdwyer/hexwars/internal/gamedata"
	"github.com/samdwyer/hexwars/internal/telemetry"
	"github.com/samdwyer/hexwars/internal/ui"
	"github.com/samdwyer/hexwars/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal belongs to tcell, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx := context.Background()

	if cfg.Telemetry {
		telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	setup, err := newSetup(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g := game.New(
		game.WithSeed(cfg.Seed),
		game.WithLogger(logger),
		game.WithBuildings(gamedata.MustLoadBuildingRegistry()),
	)

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	client := ui.NewClient(screen, g, setup, gamedata.MustLoadPalette(), logger)
	if err := client.Run(ctx); err != nil {
		logger.Error("game error", "error", err)
		os.Exit(1)
	}
}

// newSetup builds the game setup from the map preset and overrides.
func newSetup(cfg config.Config) (game.Setup, error) {
	presets := gamedata.MustLoadPresetRegistry()

	shape := world.ShapeRandom
	if cfg.Shape != "" {
		s, err := world.ParseShape(cfg.Shape)
		if err != nil {
			return game.Setup{}, fmt.Errorf("HEXWARS_SHAPE: %w", err)
		}
		shape = s
	}

	preset := presets.GetOrDefault(cfg.MapSize)
	return game.SetupFromPreset(preset, presets.TerrainWeights(), game.SeatPlayers(cfg.Players), shape), nil
}
