// Package core provides the Pacman simulation engine: maze model, entity
// movement, ghost behavior and the game state machine.
// This package is UI-agnostic and deterministic for a given seed and input.
package core

import "strings"

// Dir represents a movement direction on the grid.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Priority is the fixed tie-break order used by ghost decisions.
var Priority = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone is its own opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// bit returns the exit-mask bit for a direction.
func (d Dir) bit() uint8 {
	if d == DirNone {
		return 0
	}
	return 1 << (d - 1)
}

// Tile is the static content of a single maze cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
	TilePellet
	TilePowerPellet
	TileEmpty // pellet already consumed
)

// String returns the string representation of a tile.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	case TilePellet:
		return "Pellet"
	case TilePowerPellet:
		return "PowerPellet"
	case TileEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Walkable reports whether entities may stand on the tile.
// Every tile except Wall is Floor-class.
func (t Tile) Walkable() bool {
	return t != TileWall
}

// Char returns the maze-file rune for the tile.
func (t Tile) Char() rune {
	switch t {
	case TileWall:
		return '#'
	case TilePellet:
		return '.'
	case TilePowerPellet:
		return 'o'
	default:
		return ' '
	}
}

// PelletKind is the result of consuming a tile.
type PelletKind uint8

const (
	PelletNone PelletKind = iota
	PelletNormal
	PelletPower
)

// GhostMode selects how a ghost picks its next direction.
type GhostMode uint8

const (
	ModeScatter GhostMode = iota
	ModeChase
	ModeConfused
	ModeFrightened
	ModeEaten
)

// String returns the lowercase name used in config files.
func (m GhostMode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeConfused:
		return "confused"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Scheduled reports whether the mode can appear in a level's phase schedule.
func (m GhostMode) Scheduled() bool {
	return m == ModeScatter || m == ModeChase || m == ModeConfused
}

// ParseGhostMode converts a config name to a GhostMode.
func ParseGhostMode(s string) (GhostMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scatter":
		return ModeScatter, true
	case "chase":
		return ModeChase, true
	case "confused", "random":
		return ModeConfused, true
	case "frightened":
		return ModeFrightened, true
	case "eaten":
		return ModeEaten, true
	default:
		return ModeScatter, false
	}
}
