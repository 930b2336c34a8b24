package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the hardcoded default configuration.
// It matches defaults/pacman.yaml.
func DefaultPacmanConfig() PacmanConfig {
	c := FromRules(core.DefaultRules())
	c.Source = "built-in defaults"
	return c
}
