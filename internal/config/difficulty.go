package config

import "math"

// ApplyPacmanPreset modifies the config based on a difficulty preset.
// Speeds are scaled uniformly so the level table stays monotonic.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		scaleLevels(cfg, 0.9, 1.5)
	case DifficultyHard:
		cfg.Rules.Lives = 2
		scaleLevels(cfg, 1.1, 0.5)
	case DifficultyFixed:
		// Every level plays like the first one
		if len(cfg.Levels) > 1 {
			cfg.Levels = cfg.Levels[:1]
		}
		cfg.Progression = PacmanProgression{}
	}
}

// scaleLevels multiplies ghost speeds by speed and frightened time by fright.
func scaleLevels(cfg *PacmanConfig, speed, fright float64) {
	for i := range cfg.Levels {
		lvl := &cfg.Levels[i]
		lvl.GhostSpeed = clampSpeed(lvl.GhostSpeed * speed)
		lvl.FrightenedSpeed = clampSpeed(lvl.FrightenedSpeed * speed)
		lvl.FrightenedTicks = int(math.Round(float64(lvl.FrightenedTicks) * fright))
	}
	cfg.Progression.MinFrightenedTicks = int(math.Round(float64(cfg.Progression.MinFrightenedTicks) * fright))
}

// clampSpeed restricts a speed to (0, 1].
func clampSpeed(v float64) float64 {
	return math.Max(1.0/256, math.Min(1, v))
}
