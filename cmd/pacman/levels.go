package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate mazes",
	Long: `Inspect the maze files used by the campaign. Mazes are YAML or TOML
files; --levels points at a directory of them, otherwise the built-in
mazes are used.`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mazes in campaign order",
	Args:  cobra.NoArgs,
	Run:   runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check every maze file and report errors",
	Long: `Load every maze file and report the ones that cannot be played,
with their error code.

Examples:
  pacman levels validate
  pacman levels validate ./mazes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func mazeLoader(dir string) *levels.Loader {
	if dir == "" {
		return levels.Default()
	}
	return levels.NewLoader(dir)
}

func runLevelsList(_ *cobra.Command, _ []string) {
	loader := mazeLoader(flagLevels)
	mazes, err := loader.LoadAll()
	if err != nil {
		fail(os.Stderr, "%v", err)
	}

	fmt.Printf("Mazes in %s:\n", loader.Root)
	fmt.Println()
	fmt.Printf("  %-3s  %-12s  %-20s  %-7s  %-7s  %s\n", "#", "ID", "Name", "Size", "Pellets", "Ghosts")
	fmt.Printf("  %-3s  %-12s  %-20s  %-7s  %-7s  %s\n", "-", "--", "----", "----", "-------", "------")
	for i, m := range mazes {
		size := fmt.Sprintf("%dx%d", m.Grid.W, m.Grid.H)
		fmt.Printf("  %-3d  %-12s  %-20s  %-7s  %-7d  %d\n", i+1, m.ID, m.Name, size, m.Grid.PelletsLeft(), len(m.Ghosts))
	}
}

func runLevelsValidate(_ *cobra.Command, args []string) {
	dir := flagLevels
	if len(args) == 1 {
		dir = args[0]
	}
	loader := mazeLoader(dir)

	results, err := loader.Check()
	if err != nil {
		fail(os.Stderr, "%v", err)
	}
	if len(results) == 0 {
		fail(os.Stderr, "no maze files in %s", loader.Root)
	}

	bad := 0
	for _, r := range results {
		if r.Err == nil {
			fmt.Printf("  ok    %-30s  %s\n", r.Path, r.Maze.ID)
			continue
		}
		bad++
		code := "ERROR"
		var ce core.ConfigError
		if errors.As(r.Err, &ce) {
			code = ce.Code
		}
		fmt.Printf("  FAIL  %-30s  %s: %v\n", r.Path, code, r.Err)
	}

	fmt.Println()
	fmt.Printf("%d of %d mazes valid\n", len(results)-bad, len(results))
	if bad > 0 {
		os.Exit(1)
	}
}
