package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/platform/tui"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagHistoryLimit int
	flagPlain        bool
)

var historyCmd = &cobra.Command{
	Use:   "history [match-id]",
	Short: "Show recorded matches",
	Long: `Without arguments, list the most recent matches. On a terminal this
opens an interactive browser; use --plain for text output.

With a match ID, print every shot of that match in order.

Examples:
  seabattle history
  seabattle history --plain --limit 5
  seabattle history 3f9c2a1b`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to list")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text even on a terminal")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer store.Close()

	if len(args) == 1 {
		return printShots(store, args[0])
	}

	if !flagPlain && isTerminal() {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}
	return printMatches(store, flagHistoryLimit)
}

func printMatches(store *storage.Store, limit int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'seabattle play' to start one!")
		return nil
	}

	fmt.Printf("  %-10s  %-16s  %-8s  %6s  %-9s  %s\n", "Match", "Date", "UI", "Rounds", "Shots", "Ended")
	fmt.Printf("  %-10s  %-16s  %-8s  %6s  %-9s  %s\n", "-----", "----", "--", "------", "-----", "-----")

	for _, m := range matches {
		ended := m.EndReason
		if ended == "" {
			ended = "-"
		}
		shots := fmt.Sprintf("%d/%d", m.HumanShots, m.AutomatedShots)
		fmt.Printf("  %-10s  %-16s  %-8s  %6d  %-9s  %s\n",
			m.MatchID, m.CreatedAt.Format("2006-01-02 15:04"), m.Frontend, m.Rounds, shots, ended)
	}

	fmt.Println()
	fmt.Println("Shots are yours/opponent's. Run 'seabattle history <match>' for details.")
	return nil
}

func printShots(store *storage.Store, matchID string) error {
	m, err := store.MatchByID(matchID)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if m == nil {
		return fmt.Errorf("history: unknown match %q", matchID)
	}

	shots, err := store.MatchShots(matchID)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	fmt.Printf("Match %s - seed %d, %s, %d rounds\n", m.MatchID, m.Seed, m.Frontend, m.Rounds)
	fmt.Println()

	if len(shots) == 0 {
		fmt.Println("No shots were fired.")
		return nil
	}

	fmt.Printf("  %4s  %-10s  %-8s  %s\n", "#", "Side", "Target", "Result")
	fmt.Printf("  %4s  %-10s  %-8s  %s\n", "-", "----", "------", "------")
	for _, s := range shots {
		target := fmt.Sprintf("(%d, %d)", s.X, s.Y)
		fmt.Printf("  %4d  %-10s  %-8s  %s\n", s.Seq, s.Side, target, tui.ShotOutcome(s))
	}
	return nil
}
