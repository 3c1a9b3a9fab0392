package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avorobev/breakout-tui/internal/auth"
	"github.com/avorobev/breakout-tui/internal/platform/tui"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboards",
	Long: `Browse the leaderboards: best score per player and the top
individual runs. Tab switches between views.

Examples:
  breakout scores
  breakout scores --db ./breakout.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := auth.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening accounts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}
