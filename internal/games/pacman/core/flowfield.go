package core

// Unreachable is the distance stored for cells a flow field cannot reach.
const Unreachable = -1

// FlowField stores, for every tile, the first step toward the nearest
// target and the number of steps it takes. It is built by a multi-source
// BFS outward from the targets, so one pass serves every start tile.
type FlowField struct {
	W, H      int
	Next      []Dir // heading toward the nearest target, DirNone at targets or when unreachable
	Distances []int // steps to the nearest target, Unreachable if none

	queue []Coord
}

// NewFlowField creates an empty field sized for g.
func NewFlowField(g *Grid) *FlowField {
	f := &FlowField{W: g.W, H: g.H}
	f.reset()
	return f
}

func (f *FlowField) reset() {
	n := f.W * f.H
	if cap(f.Next) < n {
		f.Next = make([]Dir, n)
		f.Distances = make([]int, n)
	}
	f.Next = f.Next[:n]
	f.Distances = f.Distances[:n]
	for i := range f.Next {
		f.Next[i] = DirNone
		f.Distances[i] = Unreachable
	}
	f.queue = f.queue[:0]
}

// Compute fills the field for grid g. target marks goal tiles; blocked
// marks tiles the path may not pass through. Either may be nil.
func (f *FlowField) Compute(g *Grid, target, blocked func(Coord) bool) {
	if f.W != g.W || f.H != g.H {
		f.W, f.H = g.W, g.H
	}
	f.reset()

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if !g.At(c).Walkable() || (blocked != nil && blocked(c)) {
				continue
			}
			if target != nil && target(c) {
				f.Distances[y*g.W+x] = 0
				f.queue = append(f.queue, c)
			}
		}
	}

	for head := 0; head < len(f.queue); head++ {
		c := f.queue[head]
		dist := f.Distances[c.Y*g.W+c.X]
		for _, d := range Priority {
			// Moving from n to c steps in direction d.Opposite().
			n := g.Neighbor(c, d)
			if !g.CanMove(n, d.Opposite()) {
				continue
			}
			i := n.Y*g.W + n.X
			if f.Distances[i] != Unreachable || (blocked != nil && blocked(n)) {
				continue
			}
			f.Distances[i] = dist + 1
			f.Next[i] = d.Opposite()
			f.queue = append(f.queue, n)
		}
	}
}

// Step returns the heading from c toward the nearest target.
func (f *FlowField) Step(c Coord) Dir {
	if c.Y < 0 || c.Y >= f.H || c.X < 0 || c.X >= f.W {
		return DirNone
	}
	return f.Next[c.Y*f.W+c.X]
}

// Distance returns the step count from c to the nearest target.
func (f *FlowField) Distance(c Coord) int {
	if c.Y < 0 || c.Y >= f.H || c.X < 0 || c.X >= f.W {
		return Unreachable
	}
	return f.Distances[c.Y*f.W+c.X]
}
