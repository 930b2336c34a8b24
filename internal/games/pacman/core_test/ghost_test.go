package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

func ghostAt(c core.Coord, heading core.Dir, mode core.GhostMode) core.GhostView {
	return core.GhostView{
		View:   core.View{Tile: c, Dir: heading},
		Name:   "blinky",
		Mode:   mode,
		Home:   core.C(5, 5),
		Corner: core.C(9, 0),
	}
}

func TestCandidatesExcludeReverse(t *testing.T) {
	g := core.NewFloorGrid(10, 10)

	got := core.Candidates(g, core.C(5, 5), core.DirRight)
	want := []core.Dir{core.DirUp, core.DirDown, core.DirRight}
	if len(got) != len(want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Candidates = %v, want %v", got, want)
		}
	}
}

func TestCandidatesDeadEndAllowsReverse(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#P G#",
		"#####",
	)
	got := core.Candidates(m.Grid, core.C(3, 1), core.DirRight)
	if len(got) != 1 || got[0] != core.DirLeft {
		t.Errorf("Candidates at dead end = %v, want [Left]", got)
	}
}

func TestDecideTargetModes(t *testing.T) {
	g := core.NewFloorGrid(10, 10)
	brain := core.NewBrain(rand.New(rand.NewSource(1)))

	tests := []struct {
		name   string
		ghost  core.GhostView
		player core.Coord
		want   core.Dir
	}{
		{"chase follows player", ghostAt(core.C(5, 5), core.DirDown, core.ModeChase), core.C(5, 9), core.DirDown},
		{"chase tie breaks by priority", ghostAt(core.C(5, 5), core.DirDown, core.ModeChase), core.C(5, 5), core.DirLeft},
		{"scatter heads to corner", ghostAt(core.C(5, 5), core.DirUp, core.ModeScatter), core.C(0, 9), core.DirUp},
		{"scatter never reverses", ghostAt(core.C(5, 5), core.DirDown, core.ModeScatter), core.C(0, 9), core.DirRight},
		{"eaten heads home", ghostAt(core.C(2, 5), core.DirRight, core.ModeEaten), core.C(0, 0), core.DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := brain.Decide(g, tt.ghost, tt.player)
			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decide = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfusedNeverReversesAtIntersections(t *testing.T) {
	g := core.NewFloorGrid(10, 10)
	brain := core.NewBrain(rand.New(rand.NewSource(42)))
	rng := rand.New(rand.NewSource(7))
	dirs := []core.Dir{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	for _, mode := range []core.GhostMode{core.ModeConfused, core.ModeFrightened} {
		seen := make(map[core.Dir]int)
		for i := 0; i < 10000; i++ {
			at := core.C(rng.Intn(10), 1+rng.Intn(8))
			heading := dirs[rng.Intn(len(dirs))]
			got, err := brain.Decide(g, ghostAt(at, heading, mode), core.C(0, 0))
			if err != nil {
				t.Fatalf("Decide: %v", err)
			}
			if got == heading.Opposite() {
				t.Fatalf("%v ghost at %v heading %v reversed", mode, at, heading)
			}
			if !g.CanMove(at, got) {
				t.Fatalf("%v ghost at %v chose blocked %v", mode, at, got)
			}
			seen[got]++
		}
		if len(seen) != 4 {
			t.Errorf("%v choices not spread over all directions: %v", mode, seen)
		}
	}
}

func TestDecideStuckGhost(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#P#G#",
		"#####",
	)
	brain := core.NewBrain(rand.New(rand.NewSource(1)))
	_, err := brain.Decide(m.Grid, ghostAt(core.C(3, 1), core.DirLeft, core.ModeChase), m.PlayerSpawn)
	if !errors.Is(err, core.ErrStuckGhost) {
		t.Fatalf("Decide error = %v, want ErrStuckGhost", err)
	}
	var stuck *core.StuckGhostError
	if !errors.As(err, &stuck) {
		t.Fatalf("error %T is not a *StuckGhostError", err)
	}
	if stuck.Ghost != "blinky" || stuck.At != core.C(3, 1) {
		t.Errorf("stuck = %+v, want blinky at (3,1)", stuck)
	}
}

func TestTargetPerMode(t *testing.T) {
	player := core.C(3, 3)
	tests := []struct {
		mode core.GhostMode
		want core.Coord
		ok   bool
	}{
		{core.ModeChase, player, true},
		{core.ModeScatter, core.C(9, 0), true},
		{core.ModeEaten, core.C(5, 5), true},
		{core.ModeConfused, core.Coord{}, false},
		{core.ModeFrightened, core.Coord{}, false},
	}
	for _, tt := range tests {
		got, ok := core.Target(ghostAt(core.C(1, 1), core.DirUp, tt.mode), player)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Target(%v) = %v, %v; want %v, %v", tt.mode, got, ok, tt.want, tt.ok)
		}
	}
}
