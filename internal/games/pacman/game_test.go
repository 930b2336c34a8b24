package pacman

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

func useSetup(t *testing.T, s Setup) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	prev := CurrentSetup()
	Configure(s)
	t.Cleanup(func() { Configure(prev) })
}

func newGame(t *testing.T, w, h, rate int) *Game {
	t.Helper()
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: rate, Seed: 7})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDAttract} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
	g, err := registry.Create(IDAttract)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if !g.(*Game).Demo() {
		t.Error("attract mode should be played by the autopilot")
	}
}

func TestResetStartsReady(t *testing.T) {
	useSetup(t, Setup{})
	g := newGame(t, 80, 30, 60)

	snap := g.Snapshot()
	if snap.State != core.StateReady || snap.Level != 1 || snap.Lives != 3 {
		t.Errorf("snapshot after reset: state=%s level=%d lives=%d", snap.State, snap.Level, snap.Lives)
	}
	if g.Board() != string(config.DifficultyNormal) {
		t.Errorf("Board() = %q, expected normal", g.Board())
	}
	st := g.State()
	if st.GameOver || st.Paused || st.Lives != 3 {
		t.Errorf("State() = %+v", st)
	}
}

func TestDifficultyChangesLives(t *testing.T) {
	useSetup(t, Setup{Difficulty: config.DifficultyEasy})
	g := newGame(t, 80, 30, 60)
	if g.State().Lives != 5 || g.Board() != "easy" {
		t.Errorf("easy game: lives=%d board=%q", g.State().Lives, g.Board())
	}
}

func TestFrameRateAccumulator(t *testing.T) {
	useSetup(t, Setup{})

	tests := []struct {
		rate  int
		ticks []int
	}{
		{60, []int{1, 1, 1, 1}},
		{30, []int{2, 2, 2, 2}},
		{120, []int{0, 1, 0, 1}},
		{1, []int{8, 8}},
	}

	for _, tc := range tests {
		g := newGame(t, 80, 30, tc.rate)
		for i, want := range tc.ticks {
			if got := g.Step(platformcore.NewInputFrame()).Ticks; got != want {
				t.Errorf("rate %d frame %d: ticks = %d, expected %d", tc.rate, i, got, want)
			}
		}
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	useSetup(t, Setup{})
	g := newGame(t, 80, 30, 60)

	res := g.Step(platformcore.NewInputFrame(platformcore.ActionPause))
	if !res.State.Paused || res.Ticks != 0 {
		t.Fatalf("pause frame: %+v", res)
	}
	tick := g.Snapshot().Tick
	for i := 0; i < 10; i++ {
		g.Step(platformcore.NewInputFrame())
	}
	if g.Snapshot().Tick != tick {
		t.Error("paused game should not tick")
	}

	res = g.Step(platformcore.NewInputFrame(platformcore.ActionPause))
	if res.State.Paused || res.Ticks != 1 {
		t.Errorf("unpause frame: %+v", res)
	}
}

func TestTooSmallScreen(t *testing.T) {
	useSetup(t, Setup{})
	g := newGame(t, 30, 10, 60)

	if res := g.Step(platformcore.NewInputFrame()); res.Ticks != 0 {
		t.Errorf("too small screen should not tick, got %d", res.Ticks)
	}
	screen := platformcore.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("missing too-small message:\n%s", screen.String())
	}

	g.Resize(80, 30)
	if res := g.Step(platformcore.NewInputFrame()); res.Ticks != 1 {
		t.Errorf("after resize ticks = %d, expected 1", res.Ticks)
	}
}

func TestRenderReady(t *testing.T) {
	useSetup(t, Setup{})
	g := newGame(t, 80, 30, 60)
	g.SetHighScore(4200)

	screen := platformcore.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SCORE 0", "HIGH 4200", "LEVEL 1", "READY!", "ᗧ", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestBadConfigReportsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	useSetup(t, Setup{ConfigPath: path})

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60})
	if g.Err() == nil {
		t.Fatal("Reset should fail on invalid rules")
	}
	if !g.State().GameOver {
		t.Error("a game that cannot start reports game over")
	}

	screen := platformcore.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start game") {
		t.Errorf("missing error overlay:\n%s", screen.String())
	}
}

func TestAttractScores(t *testing.T) {
	useSetup(t, Setup{})
	g := NewAttract()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 3})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	for i := 0; i < 1200 && !g.State().GameOver; i++ {
		g.Step(platformcore.NewInputFrame())
	}
	if g.State().Score == 0 {
		t.Error("autopilot should eat pellets")
	}
}

func TestActionToDir(t *testing.T) {
	tests := map[platformcore.Action]core.Dir{
		platformcore.ActionUp:    core.DirUp,
		platformcore.ActionDown:  core.DirDown,
		platformcore.ActionLeft:  core.DirLeft,
		platformcore.ActionRight: core.DirRight,
		platformcore.ActionPause: core.DirNone,
		platformcore.ActionNone:  core.DirNone,
	}
	for a, want := range tests {
		if got := actionToDir(a); got != want {
			t.Errorf("actionToDir(%v) = %v, expected %v", a, got, want)
		}
	}
}

func TestSetDifficultyOverridesSetup(t *testing.T) {
	useSetup(t, Setup{Difficulty: config.DifficultyEasy})
	g := New()
	g.SetDifficulty(config.DifficultyHard)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.Board() != "hard" || g.State().Lives != 2 {
		t.Errorf("override: board=%q lives=%d", g.Board(), g.State().Lives)
	}
	if CurrentSetup().Difficulty != config.DifficultyEasy {
		t.Error("SetDifficulty must not change the package setup")
	}
}
