package core

import "fmt"

// Grid represents the maze as a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*W + x.
// Columns wrap horizontally; rows do not.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Tiles []Tile // Flat array of tiles, length W*H

	exits   []uint8 // walkable-direction mask per tile, fixed at load
	pellets int     // remaining Pellet + PowerPellet tiles
}

// NewGrid creates a grid from row-major tiles.
// The tiles slice is copied; it must have length w*h.
func NewGrid(w, h int, tiles []Tile) (*Grid, error) {
	if w <= 0 || h <= 0 || len(tiles) != w*h {
		return nil, configErr(CodeNotRectangular, "grid %dx%d needs %d tiles, got %d", w, h, w*h, len(tiles))
	}
	g := &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, len(tiles)),
	}
	copy(g.Tiles, tiles)
	g.index()
	return g, nil
}

// NewFloorGrid creates a w x h grid with every tile set to Floor.
func NewFloorGrid(w, h int) *Grid {
	tiles := make([]Tile, w*h)
	for i := range tiles {
		tiles[i] = TileFloor
	}
	g, _ := NewGrid(w, h, tiles)
	return g
}

// index precomputes exit masks and the pellet count.
func (g *Grid) index() {
	g.exits = make([]uint8, len(g.Tiles))
	g.pellets = 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			t := g.Tiles[y*g.W+x]
			if t == TilePellet || t == TilePowerPellet {
				g.pellets++
			}
			if !t.Walkable() {
				continue
			}
			c := C(x, y)
			var mask uint8
			for _, d := range Priority {
				if g.walkable(g.Neighbor(c, d)) {
					mask |= d.bit()
				}
			}
			g.exits[y*g.W+x] = mask
		}
	}
}

// Reindex rebuilds the exit masks and pellet count from Tiles. Grids built
// with NewGrid or Set are indexed already; a Grid literal or a grid whose
// Tiles were edited in place needs Reindex before use.
func (g *Grid) Reindex() {
	g.index()
}

func (g *Grid) indexed() bool {
	return len(g.exits) == len(g.Tiles)
}

// Wrap normalizes the column of c into [0, W). Rows are left unchanged.
func (g *Grid) Wrap(c Coord) Coord {
	c.X %= g.W
	if c.X < 0 {
		c.X += g.W
	}
	return c
}

// InBounds returns true if the row of c is within the grid.
// Columns are always in bounds because they wrap.
func (g *Grid) InBounds(c Coord) bool {
	return c.Y >= 0 && c.Y < g.H
}

// Clamp wraps the column and clamps the row into the grid.
func (g *Grid) Clamp(c Coord) Coord {
	c = g.Wrap(c)
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y >= g.H {
		c.Y = g.H - 1
	}
	return c
}

// Neighbor returns the wrapped coordinate one step from c in direction d.
func (g *Grid) Neighbor(c Coord, d Dir) Coord {
	return g.Wrap(c.Step(d))
}

// TileAt returns the tile at (col, row). Columns wrap; rows outside
// [0, H) return ErrOutOfBounds.
func (g *Grid) TileAt(col, row int) (Tile, error) {
	c := g.Wrap(C(col, row))
	if !g.InBounds(c) {
		return TileWall, fmt.Errorf("tile %s: %w", C(col, row), ErrOutOfBounds)
	}
	return g.Tiles[c.Y*g.W+c.X], nil
}

// At returns the tile at c, treating out-of-bounds rows as Wall.
func (g *Grid) At(c Coord) Tile {
	t, err := g.TileAt(c.X, c.Y)
	if err != nil {
		return TileWall
	}
	return t
}

// IsWalkable returns false for walls and out-of-bounds rows.
func (g *Grid) IsWalkable(col, row int) bool {
	return g.walkable(C(col, row))
}

func (g *Grid) walkable(c Coord) bool {
	return g.At(c).Walkable()
}

// CanMove reports whether an entity standing on c can step in direction d.
func (g *Grid) CanMove(c Coord, d Dir) bool {
	if d == DirNone {
		return false
	}
	c = g.Wrap(c)
	if !g.InBounds(c) {
		return false
	}
	return g.exits[c.Y*g.W+c.X]&d.bit() != 0
}

// Exits returns the walkable directions from c in priority order.
func (g *Grid) Exits(c Coord) []Dir {
	dirs := make([]Dir, 0, 4)
	for _, d := range Priority {
		if g.CanMove(c, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// IsIntersection reports whether a ghost arriving at c from any direction
// has at least two non-reverse choices.
func (g *Grid) IsIntersection(c Coord) bool {
	return len(g.Exits(c)) >= 3
}

// ConsumePellet clears a Pellet or PowerPellet at (col, row) and reports
// what was there. Consuming the same tile again returns PelletNone.
func (g *Grid) ConsumePellet(col, row int) PelletKind {
	c := g.Wrap(C(col, row))
	if !g.InBounds(c) {
		return PelletNone
	}
	i := c.Y*g.W + c.X
	switch g.Tiles[i] {
	case TilePellet:
		g.Tiles[i] = TileEmpty
		g.pellets--
		return PelletNormal
	case TilePowerPellet:
		g.Tiles[i] = TileEmpty
		g.pellets--
		return PelletPower
	default:
		return PelletNone
	}
}

// PelletsLeft returns the number of unconsumed pellets.
func (g *Grid) PelletsLeft() int {
	return g.pellets
}

// Set replaces the tile at c and refreshes derived metadata.
// Intended for building grids; the simulation never calls it.
func (g *Grid) Set(c Coord, t Tile) {
	c = g.Wrap(c)
	if !g.InBounds(c) {
		return
	}
	g.Tiles[c.Y*g.W+c.X] = t
	g.index()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	exits := make([]uint8, len(g.exits))
	copy(exits, g.exits)
	return &Grid{
		W:       g.W,
		H:       g.H,
		Tiles:   tiles,
		exits:   exits,
		pellets: g.pellets,
	}
}

// Equal returns true if two grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.Tiles {
		if t != other.Tiles[i] {
			return false
		}
	}
	return true
}

// Reachable returns every walkable tile reachable from start, using
// horizontal wrap. The result is indexed like Tiles.
func (g *Grid) Reachable(start Coord) []bool {
	seen := make([]bool, len(g.Tiles))
	start = g.Wrap(start)
	if !g.walkable(start) {
		return seen
	}
	queue := []Coord{start}
	seen[start.Y*g.W+start.X] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range Priority {
			if !g.CanMove(c, d) {
				continue
			}
			n := g.Neighbor(c, d)
			i := n.Y*g.W + n.X
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}
