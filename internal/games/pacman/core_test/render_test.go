package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

func TestRenderASCII(t *testing.T) {
	rules := fastRules()
	rules.ReadyTicks = 5
	sim := newSim(t, rules,
		"#######",
		"#Po.GG#",
		"#######",
	)

	out := core.RenderASCII(sim.Snapshot())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Score: 0") || !strings.Contains(lines[0], "State: Ready") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "#Co.BP#" {
		t.Errorf("maze row = %q, want %q", lines[2], "#Co.BP#")
	}
}

func TestRenderASCIIFrightened(t *testing.T) {
	sim := newSim(t, fastRules(),
		"#########",
		"#Po    G#",
		"#.#######",
		"#########",
	)
	snap := sim.Tick(core.DirRight)
	out := core.RenderASCII(snap)
	board := out[strings.Index(out, "\n")+1:]
	if !strings.Contains(board, "w") {
		t.Errorf("frightened ghost not drawn as 'w':\n%s", out)
	}
	if strings.Contains(board, "o") {
		t.Errorf("eaten power pellet still drawn:\n%s", out)
	}
}
