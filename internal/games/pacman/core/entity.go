package core

// epsilon absorbs float drift when an offset lands on a tile boundary.
const epsilon = 1e-9

// Position is a tile plus progress toward the neighbour in the entity's
// current direction. Offset is in [0, 1); Tile is always Floor-class.
type Position struct {
	Tile   Coord
	Offset float64
}

// AtCenter reports whether the entity stands exactly on its tile.
func (p Position) AtCenter() bool {
	return p.Offset < epsilon
}

// Entity is the movement state shared by the player and ghosts.
type Entity struct {
	Pos     Position
	Dir     Dir     // current heading
	Desired Dir     // buffered heading, applied when walkable
	Speed   float64 // tiles per tick
	Active  bool
}

// place resets the entity onto a tile centre with no heading.
func (e *Entity) place(c Coord) {
	e.Pos = Position{Tile: c}
	e.Dir = DirNone
	e.Desired = DirNone
	e.Active = true
}

// reverse turns the entity around. Mid-tile the position is mirrored so
// the entity keeps its on-screen location and heads back to where it came from.
func (e *Entity) reverse(g *Grid) {
	if e.Dir == DirNone {
		return
	}
	if !e.Pos.AtCenter() {
		e.Pos.Tile = g.Neighbor(e.Pos.Tile, e.Dir)
		e.Pos.Offset = 1 - e.Pos.Offset
	}
	e.Dir = e.Dir.Opposite()
}

// advance moves the entity up to dist tiles along its heading. At each tile
// centre, onCenter may change the heading; it returns false to stop.
// Returns the number of tile boundaries crossed.
func (e *Entity) advance(g *Grid, dist float64, onCenter func(e *Entity) bool) int {
	crossed := 0
	for dist > epsilon {
		if e.Pos.AtCenter() {
			e.Pos.Offset = 0
			if !onCenter(e) {
				return crossed
			}
			if e.Dir == DirNone || !g.CanMove(e.Pos.Tile, e.Dir) {
				return crossed
			}
		}
		step := 1 - e.Pos.Offset
		if dist < step {
			step = dist
		}
		e.Pos.Offset += step
		dist -= step
		if e.Pos.Offset >= 1-epsilon {
			e.Pos.Tile = g.Neighbor(e.Pos.Tile, e.Dir)
			e.Pos.Offset = 0
			crossed++
		}
	}
	return crossed
}

// View is the read-only projection of an entity exposed in snapshots.
type View struct {
	Tile   Coord
	Offset float64
	Dir    Dir
}

func (e *Entity) view() View {
	return View{Tile: e.Pos.Tile, Offset: e.Pos.Offset, Dir: e.Dir}
}
