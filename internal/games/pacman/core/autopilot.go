package core

import (
	"context"
	"fmt"
)

// Pilot chooses the player's input for the next tick.
type Pilot interface {
	Next(s Snapshot) Dir
}

// PilotFunc adapts a function to Pilot.
type PilotFunc func(s Snapshot) Dir

// Next implements Pilot.
func (f PilotFunc) Next(s Snapshot) Dir {
	return f(s)
}

// Autopilot heads for the nearest pellet, routing around dangerous ghosts.
// Frightened ghosts are treated as targets.
type Autopilot struct {
	rng   Rand
	field *FlowField
}

// NewAutopilot creates an autopilot; rng breaks ties when no route exists.
func NewAutopilot(rng Rand) *Autopilot {
	return &Autopilot{rng: rng}
}

// Next implements Pilot.
func (a *Autopilot) Next(s Snapshot) Dir {
	if s.Grid == nil || (s.State != StatePlaying && s.State != StateReady) {
		return DirNone
	}
	g := s.Grid
	if a.field == nil {
		a.field = NewFlowField(g)
	}

	me := s.Player.Tile
	danger := make(map[Coord]bool)
	prey := make(map[Coord]bool)
	for _, gh := range s.Ghosts {
		switch gh.Mode {
		case ModeEaten:
		case ModeFrightened:
			prey[gh.Tile] = true
		default:
			danger[gh.Tile] = true
			for _, d := range Priority {
				danger[g.Neighbor(gh.Tile, d)] = true
			}
		}
	}

	target := func(c Coord) bool {
		t := g.At(c)
		return t == TilePellet || t == TilePowerPellet || prey[c]
	}
	blocked := func(c Coord) bool {
		return c != me && danger[c]
	}

	a.field.Compute(g, target, blocked)
	if d := a.field.Step(me); d != DirNone {
		return d
	}

	// No safe route: take any exit that does not lead onto a ghost.
	var safe []Dir
	for _, d := range g.Exits(me) {
		if !danger[g.Neighbor(me, d)] {
			safe = append(safe, d)
		}
	}
	if len(safe) == 0 {
		safe = g.Exits(me)
	}
	if len(safe) == 0 {
		return DirNone
	}
	return safe[a.rng.Intn(len(safe))]
}

// Run ticks sim with input from pilot until GameOver, maxTicks ticks
// (0 for no limit) or ctx is done. It returns the last snapshot.
func Run(ctx context.Context, sim *Sim, pilot Pilot, maxTicks int) (Snapshot, error) {
	snap := sim.Snapshot()
	for n := 0; maxTicks <= 0 || n < maxTicks; n++ {
		if err := ctx.Err(); err != nil {
			return snap, fmt.Errorf("run stopped at tick %d: %w", snap.Tick, err)
		}
		snap = sim.Tick(pilot.Next(snap))
		if snap.State == StateGameOver {
			break
		}
	}
	return snap, nil
}
