package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
	"github.com/vovakirdan/seabattle/internal/registry"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagUI             string
	flagSeedHumanFleet bool
	flagRequireFleet   bool
	flagNoHistory      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match against the automated opponent.

Enter coordinates as "x y", column first, both from 1 to 6. A hit lets you
fire again; a miss passes the turn. The match has no end of its own: quit
with Ctrl+C (or Esc in the terminal UI), or close the input.

UI options:
  auto    - Terminal UI when attached to a terminal, console otherwise
  console - Plain text prompts, works over pipes
  tui     - Full-screen terminal UI

Examples:
  seabattle play
  seabattle play --ui console
  seabattle play --seed 42 --seed-human-fleet
  echo "1 1" | seabattle play --no-history`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the match flags; the root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagUI, "ui", "", "Frontend: auto, console, tui (overrides config)")
	cmd.Flags().BoolVar(&flagSeedHumanFleet, "seed-human-fleet", false, "Also place a random fleet on your grid")
	cmd.Flags().BoolVar(&flagRequireFleet, "require-fleet", false, "Reseed until every ship fits")
	cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this match")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	frontendID := resolveUI(cfg.Display.UI, isTerminal())
	frontend, err := registry.Create(frontendID)
	if err != nil {
		return err
	}

	// The terminal UI owns the screen; logs there would corrupt it.
	logger, closeLog, err := newLogger(cfg.Log, frontendID == tui.ID)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	env := registry.Env{
		Options: seabattle.Options{
			Seed:           seed,
			SeedHumanFleet: cfg.Fleet.SeedHuman,
			RequireFleet:   cfg.Fleet.RequireComplete,
			ShipGlyph:      cfg.Display.Glyph(),
			Logger:         logger,
		},
		In:  os.Stdin,
		Out: os.Stdout,
	}

	if cfg.Storage.Enabled {
		store, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			// Continue without history - the match still works
			logger.Warn("match history disabled", "err", err)
		} else {
			defer store.Close()
			env.Listeners = append(env.Listeners, storage.NewRecorder(store, frontendID, logger))
		}
	}

	logger.Debug("starting match", "ui", frontendID, "seed", seed)
	err = frontend.Play(cmd.Context(), env)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
