package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded, err := parsePacman(defaultPacmanYAML, "embedded defaults")
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	embedded.Source = ""
	hard := DefaultPacmanConfig()
	hard.Source = ""

	if !reflect.DeepEqual(embedded, hard) {
		t.Errorf("embedded defaults differ from DefaultPacmanConfig:\n%+v\n%+v", embedded, hard)
	}
}

func TestToRulesRoundTrip(t *testing.T) {
	r, err := DefaultPacmanConfig().ToRules()
	if err != nil {
		t.Fatalf("ToRules() failed: %v", err)
	}
	if !reflect.DeepEqual(r, core.DefaultRules()) {
		t.Errorf("ToRules() = %+v, expected core.DefaultRules()", r)
	}
}

func TestToRulesRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PacmanConfig)
	}{
		{"unknown mode", func(c *PacmanConfig) { c.Levels[0].Schedule[0].Mode = "dance" }},
		{"frightened in schedule", func(c *PacmanConfig) { c.Levels[0].Schedule[0].Mode = "frightened" }},
		{"zero lives", func(c *PacmanConfig) { c.Rules.Lives = 0 }},
		{"speed above one", func(c *PacmanConfig) { c.Levels[0].PlayerSpeed = 1.5 }},
		{"empty table", func(c *PacmanConfig) { c.Levels = nil }},
		{"negative hold", func(c *PacmanConfig) { c.Timing.CaughtTicks = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultPacmanConfig()
			tc.mutate(&c)
			if _, err := c.ToRules(); err == nil {
				t.Error("ToRules() should fail")
			}
		})
	}
}

func TestToRulesWrapsConfigError(t *testing.T) {
	c := DefaultPacmanConfig()
	c.Rules.Lives = 0
	_, err := c.ToRules()
	if !errors.Is(err, core.ErrInvalidLevelConfig) {
		t.Errorf("error %v should wrap ErrInvalidLevelConfig", err)
	}
}

func TestLoadPacmanCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	data := []byte("rules:\n  lives: 7\ntiming:\n  ready_ticks: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}
	if cfg.Rules.Lives != 7 || cfg.Timing.ReadyTicks != 0 {
		t.Errorf("overrides not applied: lives=%d ready=%d", cfg.Rules.Lives, cfg.Timing.ReadyTicks)
	}
	if cfg.Rules.PelletPoints != 10 || len(cfg.Levels) != 4 {
		t.Error("missing keys should keep their defaults")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadPacmanCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPacman(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules:\n  livez: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPacman(bad); err == nil {
		t.Error("unknown keys should be rejected")
	}
}

func TestMarshalLoadsBack(t *testing.T) {
	want := DefaultPacmanConfig()
	ApplyPacmanPreset(&want, DifficultyHard)

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := parsePacman(data, want.Source)
	if err != nil {
		t.Fatalf("marshalled config does not parse: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", got, want)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	base := DefaultPacmanConfig()

	for _, p := range Presets {
		t.Run(string(p), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, p)
			r, err := cfg.ToRules()
			if err != nil {
				t.Fatalf("preset %s produces invalid rules: %v", p, err)
			}

			switch p {
			case DifficultyEasy:
				if r.Lives <= base.Rules.Lives || r.Levels[0].GhostSpeed >= base.Levels[0].GhostSpeed {
					t.Error("easy should add lives and slow ghosts")
				}
			case DifficultyHard:
				if r.Lives >= base.Rules.Lives || r.Levels[0].FrightenedTicks >= base.Levels[0].FrightenedTicks {
					t.Error("hard should remove lives and shorten frightened time")
				}
			case DifficultyFixed:
				if r.TuningFor(9).GhostSpeed != r.TuningFor(1).GhostSpeed {
					t.Error("fixed should not progress")
				}
			case DifficultyNormal:
				if !reflect.DeepEqual(cfg, base) {
					t.Error("normal should leave the config unchanged")
				}
			}
		})
	}
}
