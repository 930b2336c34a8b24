package core

// Rand is the random source used for Confused and Frightened choices.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Ghost is the simulation-owned state of one ghost.
type Ghost struct {
	Entity
	Spec GhostSpec
	Mode GhostMode

	prior     GhostMode // restored when Frightened ends
	flip      bool      // reverse at the next opportunity (mode transition)
	decided   bool      // a heading was chosen at decidedAt
	decidedAt Coord
	rejoin    int   // ticks a revived ghost scatters before rejoining the schedule
	prev      Coord // tile at the start of the tick
}

// GhostView is the read-only projection of a ghost.
type GhostView struct {
	View
	Name   string
	Mode   GhostMode
	Home   Coord
	Corner Coord
}

func (g *Ghost) view() GhostView {
	return GhostView{
		View:   g.Entity.view(),
		Name:   g.Spec.Name,
		Mode:   g.Mode,
		Home:   g.Spec.Home,
		Corner: g.Spec.Corner,
	}
}

// setMode switches the ghost to m and schedules a reversal.
func (g *Ghost) setMode(m GhostMode) {
	if g.Mode == m {
		return
	}
	g.Mode = m
	g.flip = true
}

// Brain chooses ghost headings. It holds no per-ghost state; the injected
// Rand is its only source of nondeterminism.
type Brain struct {
	rng Rand
}

// NewBrain creates a Brain drawing random choices from rng.
func NewBrain(rng Rand) *Brain {
	return &Brain{rng: rng}
}

// Candidates returns the directions a ghost on tile c heading h may take:
// every walkable exit except the reverse of h, or the reverse alone when
// nothing else is open. Order follows Priority.
func Candidates(g *Grid, c Coord, h Dir) []Dir {
	exits := g.Exits(c)
	if h == DirNone {
		return exits
	}
	back := h.Opposite()
	out := make([]Dir, 0, len(exits))
	for _, d := range exits {
		if d != back {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return exits
	}
	return out
}

// Target returns the tile a ghost steers toward in its current mode.
// The second result is false for the random modes.
func Target(v GhostView, player Coord) (Coord, bool) {
	switch v.Mode {
	case ModeChase:
		return player, true
	case ModeScatter:
		return v.Corner, true
	case ModeEaten:
		return v.Home, true
	default:
		return Coord{}, false
	}
}

// Decide picks the heading for a ghost standing on a tile centre.
// Target modes minimize squared distance from the next tile to the target,
// breaking ties by Priority. Confused and Frightened pick uniformly.
func (b *Brain) Decide(g *Grid, v GhostView, player Coord) (Dir, error) {
	cands := Candidates(g, v.Tile, v.Dir)
	if len(cands) == 0 {
		return DirNone, &StuckGhostError{Ghost: v.Name, At: v.Tile}
	}
	if len(cands) == 1 {
		return cands[0], nil
	}

	target, ok := Target(v, player)
	if !ok {
		return cands[b.rng.Intn(len(cands))], nil
	}

	best := cands[0]
	bestDist := g.Neighbor(v.Tile, best).DistSq(target)
	for _, d := range cands[1:] {
		if dist := g.Neighbor(v.Tile, d).DistSq(target); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, nil
}
