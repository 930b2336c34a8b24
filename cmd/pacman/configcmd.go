package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

var flagConfigRaw bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules",
	Long: `Print the rules YAML after the search order and the difficulty preset
are applied. Redirect the output to ~/.pacman/configs/rules.yaml to start
a custom rules file.

Examples:
  pacman config
  pacman config --difficulty hard
  pacman config --raw > ~/.pacman/configs/rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigRaw, "raw", false, "Print the rules file without the difficulty preset")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		fail(os.Stderr, "%v", err)
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail(os.Stderr, "%v", err)
	}
	if !flagConfigRaw {
		config.ApplyPacmanPreset(&cfg, preset)
	}
	if _, err := cfg.ToRules(); err != nil {
		fail(os.Stderr, "%v", err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fail(os.Stderr, "encoding config: %v", err)
	}
	fmt.Fprintf(os.Stderr, "# source: %s\n", cfg.Source)
	if !flagConfigRaw {
		fmt.Fprintf(os.Stderr, "# difficulty: %s\n", preset)
	}
	os.Stdout.Write(out)
}
