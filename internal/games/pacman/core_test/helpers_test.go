package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// fastRules moves every entity one tile per tick and skips all holds.
func fastRules() core.Rules {
	r := core.DefaultRules()
	r.ReadyTicks = 0
	r.CaughtTicks = 0
	r.LevelClearTicks = 0
	r.RespawnConfusedTicks = 0
	r.Levels = []core.Tuning{{
		PlayerSpeed:     1,
		GhostSpeed:      1,
		FrightenedSpeed: 1,
		EatenSpeed:      1,
		FrightenedTicks: 60,
		Schedule:        []core.Phase{{Mode: core.ModeChase}},
	}}
	return r
}

func mustMaze(t *testing.T, rows ...string) *core.Maze {
	t.Helper()
	m, err := core.ParseMaze("test", "Test", rows)
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}
	return m
}

func newSim(t *testing.T, rules core.Rules, rows ...string) *core.Sim {
	t.Helper()
	sim, err := core.NewSim(core.LevelConfig{
		Mazes: []*core.Maze{mustMaze(t, rows...)},
		Rules: rules,
	}, core.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	return sim
}

// classicRows is a small symmetric maze with a wrapping tunnel row.
var classicRows = []string{
	"###########",
	"#o...#...o#",
	"#.##.#.##.#",
	"#.........#",
	"#.##.G.##.#",
	" ....G.... ",
	"#.##.#.##.#",
	"#o...P...o#",
	"###########",
}
