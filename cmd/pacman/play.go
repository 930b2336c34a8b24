package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: pacman).

Controls:
  Arrows/WASD/HJKL - Move
  P/Space          - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.pacman/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slower ghosts, longer frightened time
  normal - Classic rules
  hard   - 2 lives, faster ghosts, shorter frightened time
  fixed  - Level 1 tuning on every level, no progression

Examples:
  pacman play
  pacman play --difficulty easy
  pacman play pacman_attract --seed 42
  pacman play --config ./my-rules.yaml --levels ./mazes --mazes arcade`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := pacman.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	setup, err := configureGames(logger)
	if err != nil {
		fail(os.Stderr, "%v", err)
	}

	// Fail before entering the alternate screen when the setup is broken
	if _, err := pacman.LoadCampaign(setup); err != nil {
		fail(os.Stderr, "%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail(os.Stderr, "creating game: %v", err)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, runtimeConfig(), logger)
	closeStore(store, logger)

	if runErr != nil {
		fail(os.Stderr, "running game: %v", runErr)
	}
}
