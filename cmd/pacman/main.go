// pacman is a terminal Pac-Man with a deterministic simulation core.
//
// Usage:
//
//	pacman                    - Start menu to pick a mode and difficulty
//	pacman list               - List available modes
//	pacman play [mode]        - Play a mode directly
//	pacman sim                - Run the autopilot headless
//	pacman scores [board]     - Show high scores per difficulty board
//	pacman levels list        - List mazes
//	pacman levels validate    - Check maze files
//	pacman config             - Print the effective rules
//	pacman serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.pacman/scores.db)
//	--config <path>       - Rules YAML
//	--levels <dir>        - Maze directory
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagMazes      []string
	flagDifficulty string
	flagLogLevel   string
	flagStrict     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `Pac-Man for the terminal, built on a tick-based simulation that
replays identically for the same seed, mazes and rules.

Run without a command to open the start menu.

Available commands:
  list     - Show playable modes
  play     - Play a mode directly
  sim      - Run the autopilot without a screen
  scores   - View high scores
  levels   - List and validate mazes
  config   - Print the effective rules
  serve    - Start SSH server for remote play

Examples:
  pacman
  pacman play --difficulty hard
  pacman sim --seed 42 --ticks 5000 --render
  pacman levels validate ./mazes
  pacman serve --ssh :2222`,
	SilenceUsage: true,
	Run:          runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (the simulation always runs at 60 ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.pacman/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to rules YAML (default: ~/.pacman/configs/rules.yaml, then built-in)")
	pf.StringVar(&flagLevels, "levels", "", "Directory of maze files (default: built-in mazes)")
	pf.StringSliceVar(&flagMazes, "mazes", nil, "Maze IDs to play, in order (default: all)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error, off (default: $PACMAN_LOG_LEVEL or info)")
	pf.BoolVar(&flagStrict, "strict", false, "Panic on out-of-bounds coordinates instead of recovering")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
