// Package config provides YAML-based rules configuration loading and
// difficulty presets for Pacman.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// PacmanConfig contains all tunable rules for a Pacman campaign.
type PacmanConfig struct {
	Rules       PacmanRules       `yaml:"rules"`
	Timing      PacmanTiming      `yaml:"timing"`
	Levels      []PacmanLevel     `yaml:"levels"`
	Progression PacmanProgression `yaml:"progression"`

	// Source names where the config was read from.
	Source string `yaml:"-"`
}

// PacmanRules defines lives and scoring.
type PacmanRules struct {
	Lives          int `yaml:"lives"`
	PelletPoints   int `yaml:"pellet_points"`
	PowerPoints    int `yaml:"power_points"`
	GhostPoints    int `yaml:"ghost_points"`
	GhostPointsMax int `yaml:"ghost_points_max"` // 0 = no cap
}

// PacmanTiming defines state holds, in ticks.
type PacmanTiming struct {
	ReadyTicks           int `yaml:"ready_ticks"`
	CaughtTicks          int `yaml:"caught_ticks"`
	LevelClearTicks      int `yaml:"level_clear_ticks"`
	RespawnConfusedTicks int `yaml:"respawn_confused_ticks"`
	HomeScatterTicks     int `yaml:"home_scatter_ticks"`
}

// PacmanLevel is one row of the level table.
type PacmanLevel struct {
	PlayerSpeed     float64       `yaml:"player_speed"` // tiles per tick
	GhostSpeed      float64       `yaml:"ghost_speed"`
	FrightenedSpeed float64       `yaml:"frightened_speed"`
	EatenSpeed      float64       `yaml:"eaten_speed"`
	FrightenedTicks int           `yaml:"frightened_ticks"`
	Schedule        []PhaseConfig `yaml:"schedule"`
}

// PhaseConfig is one ghost mode phase; ticks 0 runs forever.
type PhaseConfig struct {
	Mode  string `yaml:"mode"` // scatter, chase or confused
	Ticks int    `yaml:"ticks"`
}

// PacmanProgression defines how levels past the table get harder.
type PacmanProgression struct {
	SpeedStep          float64 `yaml:"speed_step"`
	FrightenedStep     int     `yaml:"frightened_step"`
	MinFrightenedTicks int     `yaml:"min_frightened_ticks"`
}

// ToRules converts the config into validated simulation rules.
func (c PacmanConfig) ToRules() (core.Rules, error) {
	r := core.Rules{
		Lives:                c.Rules.Lives,
		PelletPoints:         c.Rules.PelletPoints,
		PowerPoints:          c.Rules.PowerPoints,
		GhostPoints:          c.Rules.GhostPoints,
		GhostPointsMax:       c.Rules.GhostPointsMax,
		ReadyTicks:           c.Timing.ReadyTicks,
		CaughtTicks:          c.Timing.CaughtTicks,
		LevelClearTicks:      c.Timing.LevelClearTicks,
		RespawnConfusedTicks: c.Timing.RespawnConfusedTicks,
		HomeScatterTicks:     c.Timing.HomeScatterTicks,
		Progression: core.Progression{
			SpeedStep:          c.Progression.SpeedStep,
			FrightenedStep:     c.Progression.FrightenedStep,
			MinFrightenedTicks: c.Progression.MinFrightenedTicks,
		},
	}

	for i, lvl := range c.Levels {
		t := core.Tuning{
			PlayerSpeed:     lvl.PlayerSpeed,
			GhostSpeed:      lvl.GhostSpeed,
			FrightenedSpeed: lvl.FrightenedSpeed,
			EatenSpeed:      lvl.EatenSpeed,
			FrightenedTicks: lvl.FrightenedTicks,
		}
		for j, p := range lvl.Schedule {
			mode, ok := core.ParseGhostMode(p.Mode)
			if !ok {
				return core.Rules{}, fmt.Errorf("level %d phase %d: unknown ghost mode %q", i+1, j, p.Mode)
			}
			t.Schedule = append(t.Schedule, core.Phase{Mode: mode, Ticks: p.Ticks})
		}
		r.Levels = append(r.Levels, t)
	}

	if err := core.ValidateRules(r); err != nil {
		return core.Rules{}, fmt.Errorf("invalid rules config %s: %w", c.sourceName(), err)
	}
	return r, nil
}

func (c PacmanConfig) sourceName() string {
	if c.Source == "" {
		return "(inline)"
	}
	return c.Source
}

// FromRules builds a config holding the given rules.
func FromRules(r core.Rules) PacmanConfig {
	c := PacmanConfig{
		Rules: PacmanRules{
			Lives:          r.Lives,
			PelletPoints:   r.PelletPoints,
			PowerPoints:    r.PowerPoints,
			GhostPoints:    r.GhostPoints,
			GhostPointsMax: r.GhostPointsMax,
		},
		Timing: PacmanTiming{
			ReadyTicks:           r.ReadyTicks,
			CaughtTicks:          r.CaughtTicks,
			LevelClearTicks:      r.LevelClearTicks,
			RespawnConfusedTicks: r.RespawnConfusedTicks,
			HomeScatterTicks:     r.HomeScatterTicks,
		},
		Progression: PacmanProgression{
			SpeedStep:          r.Progression.SpeedStep,
			FrightenedStep:     r.Progression.FrightenedStep,
			MinFrightenedTicks: r.Progression.MinFrightenedTicks,
		},
	}
	for _, t := range r.Levels {
		lvl := PacmanLevel{
			PlayerSpeed:     t.PlayerSpeed,
			GhostSpeed:      t.GhostSpeed,
			FrightenedSpeed: t.FrightenedSpeed,
			EatenSpeed:      t.EatenSpeed,
			FrightenedTicks: t.FrightenedTicks,
		}
		for _, p := range t.Schedule {
			lvl.Schedule = append(lvl.Schedule, PhaseConfig{Mode: p.Mode.String(), Ticks: p.Ticks})
		}
		c.Levels = append(c.Levels, lvl)
	}
	return c
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every difficulty preset in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty converts a flag value to a preset.
// An empty string selects the normal preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
