package core

import (
	"errors"
	"testing"
)

var corridor = []string{
	"#######",
	"#P...G#",
	"#######",
}

func corridorSim(t *testing.T, opts ...Option) *Sim {
	t.Helper()
	m, err := ParseMaze("corridor", "Corridor", corridor)
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}
	rules := DefaultRules()
	rules.ReadyTicks = 0
	sim, err := NewSim(LevelConfig{Mazes: []*Maze{m}, Rules: rules}, opts...)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	return sim
}

func TestStrictOutOfBoundsPanics(t *testing.T) {
	sim := corridorSim(t, WithStrict(true))
	sim.player.Pos.Tile = C(1, -4)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic in strict mode")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("panic value = %v, want ErrOutOfBounds", r)
		}
	}()
	sim.Tick(DirNone)
}

func TestOutOfBoundsClampsWhenLenient(t *testing.T) {
	sim := corridorSim(t)
	sim.player.Pos.Tile = C(2, 9)

	snap := sim.Tick(DirNone)
	if !snap.Grid.At(snap.Player.Tile).Walkable() {
		t.Fatalf("player left on wall at %v", snap.Player.Tile)
	}
	if snap.Player.Tile != C(1, 1) {
		t.Errorf("player at %v, want spawn (1,1) after clamping onto a wall", snap.Player.Tile)
	}
}

func TestAdvanceStopsAtWalls(t *testing.T) {
	m, err := ParseMaze("corridor", "Corridor", corridor)
	if err != nil {
		t.Fatal(err)
	}
	e := Entity{}
	e.place(C(1, 1))
	e.Dir = DirRight

	crossed := e.advance(m.Grid, 10, func(*Entity) bool { return true })
	if crossed != 4 || e.Pos.Tile != C(5, 1) || !e.Pos.AtCenter() {
		t.Errorf("advance crossed %d to %+v, want 4 to (5,1) centre", crossed, e.Pos)
	}
}

func TestReverseMirrorsMidTile(t *testing.T) {
	g := NewFloorGrid(5, 3)
	e := Entity{Pos: Position{Tile: C(1, 1), Offset: 0.25}, Dir: DirRight}
	e.reverse(g)
	if e.Pos.Tile != C(2, 1) || e.Pos.Offset != 0.75 || e.Dir != DirLeft {
		t.Errorf("reverse = %+v dir %v, want (2,1)+0.75 Left", e.Pos, e.Dir)
	}
}

func TestFrightenedTimerRestoresPriorMode(t *testing.T) {
	sim := corridorSim(t)
	sim.tuning.FrightenedTicks = 2
	sim.ghosts[0].Mode = ModeChase
	sim.frighten()
	if sim.ghosts[0].Mode != ModeFrightened || !sim.ghosts[0].flip {
		t.Fatalf("ghost mode = %v flip = %v after frighten", sim.ghosts[0].Mode, sim.ghosts[0].flip)
	}

	sim.timers()
	if sim.ghosts[0].Mode != ModeFrightened {
		t.Fatal("frightened ended early")
	}
	sim.timers()
	if sim.ghosts[0].Mode != ModeChase {
		t.Errorf("mode after frightened = %v, want chase", sim.ghosts[0].Mode)
	}
}

func TestScheduleHeldWhileFrightened(t *testing.T) {
	sim := corridorSim(t)
	before := sim.phaseLeft
	sim.frighten()
	for i := 0; i < 10; i++ {
		sim.timers()
	}
	if sim.phaseLeft != before {
		t.Errorf("phaseLeft = %d, want %d while frightened", sim.phaseLeft, before)
	}
}
