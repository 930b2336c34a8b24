package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/logging"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// configureGames applies the global flags to every game created afterwards.
func configureGames(logger *log.Logger) (pacman.Setup, error) {
	if !logging.ValidLevel(flagLogLevel) {
		return pacman.Setup{}, fmt.Errorf("unknown log level %q", flagLogLevel)
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return pacman.Setup{}, err
	}

	s := pacman.Setup{
		ConfigPath: flagConfig,
		MazeDir:    flagLevels,
		MazeIDs:    flagMazes,
		Difficulty: preset,
		Strict:     flagStrict,
		Logger:     logger,
	}
	pacman.Configure(s)
	return pacman.CurrentSetup(), nil
}

// stderrLogger logs to the terminal for commands without a full-screen UI.
func stderrLogger() *log.Logger {
	return logging.Stderr("pacman", flagLogLevel)
}

// fileLogger logs to ~/.pacman/pacman.log so full-screen commands keep the
// terminal clean. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return logging.Discard(), func() {}
	}
	dir := filepath.Join(home, ".pacman")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logging.Discard(), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "pacman.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.Discard(), func() {}
	}
	logger := logging.New(f, logging.Options{Prefix: "pacman", Level: flagLogLevel, Timestamp: true})
	return logger, func() { _ = f.Close() }
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}

// runtimeConfig describes the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Player = localPlayer()
	return cfg
}

// localPlayer names the player on the score board.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// fail prints an error and exits.
func fail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Error: "+format+"\n", args...)
	os.Exit(1)
}
