package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

// runMenu opens the start menu: pick a mode and difficulty, play, and
// return to the menu when the game ends.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	setup, err := configureGames(logger)
	if err != nil {
		fail(os.Stderr, "%v", err)
	}

	store := openStore(logger)
	runErr := tui.RunSession(store, runtimeConfig(), setup.Difficulty, logger)
	closeStore(store, logger)

	if runErr != nil {
		fail(os.Stderr, "running menu: %v", runErr)
	}
}
