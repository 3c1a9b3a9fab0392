package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avorobev/breakout-tui/internal/audio"
	"github.com/avorobev/breakout-tui/internal/auth"
	"github.com/avorobev/breakout-tui/internal/breakout"
	"github.com/avorobev/breakout-tui/internal/config"
	"github.com/avorobev/breakout-tui/internal/core"
	"github.com/avorobev/breakout-tui/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout locally",
	Long: `Start a local game session.

Controls:
  Left/Right or A/D  - Move paddle
  Enter              - Start / resume
  P/Esc              - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slower ball
  normal - Default settings
  hard   - 2 lives, narrow paddle, faster ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml
  breakout play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Load game config and apply difficulty
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}

	// Open account storage; the game needs it for login
	store, err := auth.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening accounts database: %v\n", err)
		os.Exit(1)
	}

	// Sound is best-effort; keep playing silently if the speaker is busy
	var sound *audio.Manager
	if !flagMute {
		sound = audio.NewManager()
		if initErr := sound.Init(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", initErr)
			sound = nil
		}
	}

	game := breakout.New(gameCfg, store)

	runErr := tui.Run(game, store, sound, rt)

	if sound != nil {
		sound.Close()
	}
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
