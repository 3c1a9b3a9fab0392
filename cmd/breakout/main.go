// breakout is a terminal Breakout arcade with user accounts and persistent
// high scores.
//
// Usage:
//
//	breakout play            - Play locally
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show the leaderboards
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakout/breakout.db)
//	--mute          - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - smash bricks in your terminal",
	Long: `Breakout is a terminal arcade game: bounce the ball off your paddle,
smash brick walls, catch power-ups and climb the leaderboard. Accounts and
high scores persist in a local SQLite database.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View the leaderboards

Examples:
  breakout play
  breakout play --difficulty hard
  breakout serve --ssh :2222
  breakout scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/breakout.db", "Path to accounts database")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
