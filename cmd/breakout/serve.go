package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avorobev/breakout-tui/internal/config"
	"github.com/avorobev/breakout-tui/internal/platform/tui"
)

var (
	flagSSHAddr   string
	flagHostKey   string
	flagServeCfg  string
	flagServeDiff string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so anyone can play over the network:

  ssh -p 23234 localhost

Each connection gets its own game session; accounts and high scores are
shared through the server's database.

Examples:
  breakout serve
  breakout serve --ssh :2222
  breakout serve --ssh :2222 --db ./breakout.db`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().StringVar(&flagServeCfg, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagServeDiff, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runServe(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagServeCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagServeDiff != "" {
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagServeDiff))
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.GameConfig = gameCfg

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
