package core

import "strings"

// Maze layout runes.
const (
	RuneWall        = '#'
	RunePellet      = '.'
	RunePowerPellet = 'o'
	RuneFloor       = ' '
	RuneEmpty       = '_'
	RunePlayer      = 'P'
	RuneGhost       = 'G'
)

// DefaultGhostNames are assigned to ghost spawns in layout order.
var DefaultGhostNames = []string{"blinky", "pinky", "inky", "clyde"}

// GhostSpec describes a ghost's fixed placement in a maze.
type GhostSpec struct {
	Name   string
	Spawn  Coord // start tile after level start and respawn
	Home   Coord // Eaten target
	Corner Coord // Scatter target
}

// Maze is the pristine definition of a level layout.
// The simulation never mutates it; each level start clones the grid.
type Maze struct {
	ID          string
	Name        string
	Grid        *Grid
	PlayerSpawn Coord
	Ghosts      []GhostSpec
}

// ParseMaze builds a maze from layout rows. 'P' and 'G' mark spawns and
// stand on Floor. Ghosts are named from DefaultGhostNames and scatter to
// the grid corners (top-right, top-left, bottom-right, bottom-left).
func ParseMaze(id, name string, rows []string) (*Maze, error) {
	rows = trimLayout(rows)
	if len(rows) == 0 {
		return nil, configErr(CodeNotRectangular, "maze %q has no rows", id)
	}

	w := len([]rune(rows[0]))
	h := len(rows)
	tiles := make([]Tile, 0, w*h)
	m := &Maze{ID: id, Name: name}
	players := 0

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, configErr(CodeNotRectangular, "maze %q row %d has width %d, want %d", id, y, len(runes), w)
		}
		for x, r := range runes {
			switch r {
			case RuneWall:
				tiles = append(tiles, TileWall)
			case RunePellet:
				tiles = append(tiles, TilePellet)
			case RunePowerPellet:
				tiles = append(tiles, TilePowerPellet)
			case RuneFloor:
				tiles = append(tiles, TileFloor)
			case RuneEmpty:
				tiles = append(tiles, TileEmpty)
			case RunePlayer:
				tiles = append(tiles, TileFloor)
				m.PlayerSpawn = C(x, y)
				players++
			case RuneGhost:
				tiles = append(tiles, TileFloor)
				m.Ghosts = append(m.Ghosts, GhostSpec{Spawn: C(x, y), Home: C(x, y)})
			default:
				return nil, configErr(CodeBadTile, "maze %q has unknown rune %q at %s", id, r, C(x, y))
			}
		}
	}

	switch {
	case players == 0:
		return nil, configErr(CodeNoPlayer, "maze %q has no player spawn", id)
	case players > 1:
		return nil, configErr(CodeManyPlayers, "maze %q has %d player spawns", id, players)
	case len(m.Ghosts) == 0:
		return nil, configErr(CodeNoGhosts, "maze %q has no ghost spawns", id)
	}

	grid, err := NewGrid(w, h, tiles)
	if err != nil {
		return nil, err
	}
	m.Grid = grid

	corners := []Coord{C(w-1, 0), C(0, 0), C(w-1, h-1), C(0, h-1)}
	for i := range m.Ghosts {
		m.Ghosts[i].Name = ghostName(i)
		m.Ghosts[i].Corner = corners[i%len(corners)]
	}
	return m, nil
}

// trimLayout strips carriage returns and drops the empty leading and
// trailing rows left by block scalars. All-space rows are Floor and kept.
func trimLayout(rows []string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = strings.TrimRight(r, "\r")
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func ghostName(i int) string {
	if i < len(DefaultGhostNames) {
		return DefaultGhostNames[i]
	}
	return DefaultGhostNames[i%len(DefaultGhostNames)] + strings.Repeat("'", i/len(DefaultGhostNames))
}

// Rows renders the pristine layout back to maze runes.
func (m *Maze) Rows() []string {
	out := make([]string, m.Grid.H)
	spawns := make(map[Coord]rune, len(m.Ghosts)+1)
	spawns[m.PlayerSpawn] = RunePlayer
	for _, g := range m.Ghosts {
		spawns[g.Spawn] = RuneGhost
	}
	var sb strings.Builder
	for y := 0; y < m.Grid.H; y++ {
		sb.Reset()
		for x := 0; x < m.Grid.W; x++ {
			if r, ok := spawns[C(x, y)]; ok {
				sb.WriteRune(r)
				continue
			}
			t := m.Grid.At(C(x, y))
			if t == TileEmpty {
				sb.WriteRune(RuneEmpty)
				continue
			}
			sb.WriteRune(t.Char())
		}
		out[y] = sb.String()
	}
	return out
}
