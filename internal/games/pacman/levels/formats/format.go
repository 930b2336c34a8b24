// Package formats provides pluggable maze file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// Point is a tile coordinate as written in maze files.
type Point struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

// Ghost overrides the defaults ParseMaze assigns to the i-th ghost spawn.
// Zero fields keep the default.
type Ghost struct {
	Name   string `yaml:"name" toml:"name"`
	Corner *Point `yaml:"corner" toml:"corner"`
	Home   *Point `yaml:"home" toml:"home"`
}

// Level is a parsed maze file, independent of its on-disk format.
type Level struct {
	ID     string
	Name   string
	Rows   []string
	Ghosts []Ghost
}

// ToMaze builds the core maze and applies ghost overrides in layout order.
func (l Level) ToMaze() (*core.Maze, error) {
	if strings.TrimSpace(l.ID) == "" {
		return nil, fmt.Errorf("maze has no id")
	}
	m, err := core.ParseMaze(l.ID, l.Name, l.Rows)
	if err != nil {
		return nil, err
	}
	if len(l.Ghosts) > len(m.Ghosts) {
		return nil, fmt.Errorf("maze %q: %d ghost entries for %d spawns", l.ID, len(l.Ghosts), len(m.Ghosts))
	}
	for i, g := range l.Ghosts {
		spec := &m.Ghosts[i]
		if g.Name != "" {
			spec.Name = g.Name
		}
		if g.Corner != nil {
			spec.Corner = core.C(g.Corner.X, g.Corner.Y)
		}
		if g.Home != nil {
			spec.Home = core.C(g.Home.X, g.Home.Y)
		}
	}
	return m, nil
}

// splitLayout turns a block scalar into rows.
func splitLayout(layout string) []string {
	return strings.Split(layout, "\n")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
