// seabattle is a single-player sea battle game for the terminal: a 6x6 board,
// a fleet of seven ships, and an opponent that fires at random.
//
// Usage:
//
//	seabattle                  - Play a match (same as 'seabattle play')
//	seabattle play             - Play a match
//	seabattle list             - List available frontends
//	seabattle history [id]     - Show recorded matches, or the shots of one
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.seabattle, ./configs)
//	--seed <value>      - Set RNG seed for reproducible matches
//	--db <path>         - Set database path (default: ~/.seabattle/history.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/seabattle/internal/platform/console"
	_ "github.com/vovakirdan/seabattle/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seabattle",
	Short: "Sea Battle - sink the hidden fleet in your terminal",
	Long: `Sea Battle is a turn-based naval game on a 6x6 board. Fire at the
opponent's hidden fleet by entering coordinates as "x y"; a hit lets you fire
again, a miss passes the turn to the opponent.

Available commands:
  play     - Play a match (default)
  list     - Show available frontends
  history  - Show recorded matches

Examples:
  seabattle
  seabattle play --ui console
  seabattle --seed 42 --seed-human-fleet
  seabattle history`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
}
