package core

// LevelConfig is everything a simulation needs to run a campaign.
// Level n plays Mazes[(n-1) % len(Mazes)] with Rules.TuningFor(n).
type LevelConfig struct {
	Mazes []*Maze
	Rules Rules
}

// Validate checks a campaign. Every failure is a ConfigError, so
// errors.Is(err, ErrInvalidLevelConfig) holds.
func Validate(cfg LevelConfig) error {
	if len(cfg.Mazes) == 0 {
		return configErr(CodeNoMazes, "no mazes configured")
	}
	for _, m := range cfg.Mazes {
		if err := ValidateMaze(m); err != nil {
			return err
		}
	}
	return ValidateRules(cfg.Rules)
}

// ValidateMaze checks that a maze is playable:
//   - grid is rectangular and spawns are on Floor-class tiles
//   - at least one ghost and one pellet exist
//   - wrapping rows are open on both edges
//   - every pellet, ghost spawn and ghost home is reachable from the player
//   - ghost scatter corners lie inside the grid
//
// A Grid literal without its derived index is indexed first.
func ValidateMaze(m *Maze) error {
	if m == nil || m.Grid == nil {
		return configErr(CodeNotRectangular, "maze has no grid")
	}
	g := m.Grid
	if g.W <= 0 || g.H <= 0 || len(g.Tiles) != g.W*g.H {
		return configErr(CodeNotRectangular, "maze %q grid %dx%d has %d tiles", m.ID, g.W, g.H, len(g.Tiles))
	}
	if !g.indexed() {
		g.Reindex()
	}
	if !inside(g, m.PlayerSpawn) || !g.At(m.PlayerSpawn).Walkable() {
		return configErr(CodeNoPlayer, "maze %q player spawn %s is not on floor", m.ID, m.PlayerSpawn)
	}
	if len(m.Ghosts) == 0 {
		return configErr(CodeNoGhosts, "maze %q has no ghosts", m.ID)
	}
	if g.PelletsLeft() == 0 {
		return configErr(CodeNoPellets, "maze %q has no pellets", m.ID)
	}

	if err := validateWrap(m); err != nil {
		return err
	}

	reach := g.Reachable(m.PlayerSpawn)
	for i, t := range g.Tiles {
		if (t == TilePellet || t == TilePowerPellet) && !reach[i] {
			return configErr(CodeUnreachable, "maze %q pellet at %s is unreachable", m.ID, C(i%g.W, i/g.W))
		}
	}

	names := make(map[string]bool, len(m.Ghosts))
	for _, gh := range m.Ghosts {
		if names[gh.Name] {
			return configErr(CodeNoGhosts, "maze %q has duplicate ghost %q", m.ID, gh.Name)
		}
		names[gh.Name] = true
		for _, c := range []Coord{gh.Spawn, gh.Home} {
			if !inside(g, c) || !g.At(c).Walkable() {
				return configErr(CodeBadCoord, "maze %q ghost %s tile %s is not on floor", m.ID, gh.Name, c)
			}
			if !reach[c.Y*g.W+c.X] {
				return configErr(CodeUnreachable, "maze %q ghost %s tile %s is unreachable", m.ID, gh.Name, c)
			}
		}
		if !inside(g, gh.Corner) {
			return configErr(CodeBadCoord, "maze %q ghost %s corner %s is outside the grid", m.ID, gh.Name, gh.Corner)
		}
	}
	return nil
}

// validateWrap rejects rows open on one edge only: wrapping from them
// would step into a wall on the far side.
func validateWrap(m *Maze) error {
	g := m.Grid
	for y := 0; y < g.H; y++ {
		left := g.At(C(0, y)).Walkable()
		right := g.At(C(g.W-1, y)).Walkable()
		if left != right {
			return configErr(CodeBadWrap, "maze %q row %d is open on one edge only", m.ID, y)
		}
	}
	return nil
}

func inside(g *Grid, c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// ValidateRules checks scoring, timers and the level table. Frightened
// ghosts may never be faster than chasing ones.
func ValidateRules(r Rules) error {
	if r.Lives < 1 {
		return configErr(CodeBadTiming, "lives must be at least 1, got %d", r.Lives)
	}
	if r.PelletPoints < 0 || r.PowerPoints < 0 || r.GhostPoints < 0 || r.GhostPointsMax < 0 {
		return configErr(CodeBadTiming, "points must not be negative")
	}
	for name, v := range map[string]int{
		"ready_ticks":            r.ReadyTicks,
		"caught_ticks":           r.CaughtTicks,
		"level_clear_ticks":      r.LevelClearTicks,
		"respawn_confused_ticks": r.RespawnConfusedTicks,
		"home_scatter_ticks":     r.HomeScatterTicks,
	} {
		if v < 0 {
			return configErr(CodeBadTiming, "%s must not be negative, got %d", name, v)
		}
	}
	if len(r.Levels) == 0 {
		return configErr(CodeNoLevels, "level table is empty")
	}

	for i, t := range r.Levels {
		level := i + 1
		for name, s := range map[string]float64{
			"player_speed":     t.PlayerSpeed,
			"ghost_speed":      t.GhostSpeed,
			"frightened_speed": t.FrightenedSpeed,
			"eaten_speed":      t.EatenSpeed,
		} {
			if !(s > 0 && s <= 1) {
				return configErr(CodeBadSpeed, "level %d %s must be in (0,1], got %v", level, name, s)
			}
		}
		if t.FrightenedSpeed > t.GhostSpeed {
			return configErr(CodeBadSpeed, "level %d frightened_speed %v is faster than ghost_speed %v", level, t.FrightenedSpeed, t.GhostSpeed)
		}
		if t.FrightenedTicks < 0 {
			return configErr(CodeBadTiming, "level %d frightened_ticks must not be negative", level)
		}
		if len(t.Schedule) == 0 {
			return configErr(CodeBadSchedule, "level %d has an empty mode schedule", level)
		}
		for j, p := range t.Schedule {
			if !p.Mode.Scheduled() {
				return configErr(CodeBadSchedule, "level %d phase %d mode %s cannot be scheduled", level, j, p.Mode)
			}
			if p.Ticks < 0 {
				return configErr(CodeBadSchedule, "level %d phase %d has negative ticks", level, j)
			}
		}
		if i == 0 {
			continue
		}
		prev := r.Levels[i-1]
		if t.GhostSpeed < prev.GhostSpeed || t.FrightenedSpeed < prev.FrightenedSpeed {
			return configErr(CodeNotMonotonic, "level %d ghosts are slower than level %d", level, level-1)
		}
		if t.FrightenedTicks > prev.FrightenedTicks {
			return configErr(CodeNotMonotonic, "level %d frightened time is longer than level %d", level, level-1)
		}
	}

	p := r.Progression
	if p.SpeedStep < 0 || p.FrightenedStep < 0 || p.MinFrightenedTicks < 0 {
		return configErr(CodeNotMonotonic, "progression steps must not be negative")
	}
	return nil
}
