package core

import "math"

// Phase is one step of a level's ghost mode schedule.
type Phase struct {
	Mode  GhostMode // Scatter, Chase or Confused
	Ticks int       // 0 means the phase never ends
}

// Tuning holds the per-level speeds and timings.
// Speeds are in tiles per tick and must be in (0, 1].
type Tuning struct {
	PlayerSpeed     float64
	GhostSpeed      float64
	FrightenedSpeed float64
	EatenSpeed      float64
	FrightenedTicks int
	Schedule        []Phase
}

// Progression extends the tuning table past its last row.
// Each extra level adds SpeedStep to ghost speeds (capped at 1) and
// removes FrightenedStep ticks (floored at MinFrightenedTicks).
type Progression struct {
	SpeedStep          float64
	FrightenedStep     int
	MinFrightenedTicks int
}

// Rules holds scoring, lives, state timers and the level table.
// Timer values are counted in ticks.
type Rules struct {
	Lives           int
	PelletPoints    int
	PowerPoints     int
	GhostPoints     int // first ghost eaten in a frightened period
	GhostPointsMax  int // cap for the doubling combo, 0 means no cap
	ReadyTicks      int
	CaughtTicks     int
	LevelClearTicks int
	// RespawnConfusedTicks keeps ghosts Confused after a life is lost.
	RespawnConfusedTicks int
	// HomeScatterTicks is how long a ghost revived at home scatters
	// before taking the current scheduled mode.
	HomeScatterTicks int
	Levels           []Tuning
	Progression      Progression
}

// DefaultRules returns rules tuned for a 60 Hz tick.
func DefaultRules() Rules {
	schedule := []Phase{
		{Mode: ModeScatter, Ticks: 420},
		{Mode: ModeChase, Ticks: 1200},
		{Mode: ModeScatter, Ticks: 420},
		{Mode: ModeChase, Ticks: 1200},
		{Mode: ModeScatter, Ticks: 300},
		{Mode: ModeChase, Ticks: 0},
	}
	return Rules{
		Lives:                3,
		PelletPoints:         10,
		PowerPoints:          50,
		GhostPoints:          200,
		GhostPointsMax:       1600,
		ReadyTicks:           120,
		CaughtTicks:          90,
		LevelClearTicks:      120,
		RespawnConfusedTicks: 180,
		HomeScatterTicks:     180,
		Levels: []Tuning{
			{PlayerSpeed: 0.125, GhostSpeed: 0.109375, FrightenedSpeed: 0.0625, EatenSpeed: 0.25, FrightenedTicks: 360, Schedule: schedule},
			{PlayerSpeed: 0.125, GhostSpeed: 0.1171875, FrightenedSpeed: 0.0625, EatenSpeed: 0.25, FrightenedTicks: 300, Schedule: schedule},
			{PlayerSpeed: 0.140625, GhostSpeed: 0.125, FrightenedSpeed: 0.0703125, EatenSpeed: 0.25, FrightenedTicks: 240, Schedule: schedule},
			{PlayerSpeed: 0.140625, GhostSpeed: 0.1328125, FrightenedSpeed: 0.0703125, EatenSpeed: 0.25, FrightenedTicks: 180, Schedule: schedule},
		},
		Progression: Progression{
			SpeedStep:          0.0078125,
			FrightenedStep:     30,
			MinFrightenedTicks: 60,
		},
	}
}

// TuningFor returns the tuning for a 1-based level number.
// Levels past the table extrapolate from its last row and never get easier.
func (r Rules) TuningFor(level int) Tuning {
	if len(r.Levels) == 0 {
		return Tuning{}
	}
	if level < 1 {
		level = 1
	}
	if level <= len(r.Levels) {
		return r.Levels[level-1]
	}

	last := r.Levels[len(r.Levels)-1]
	extra := level - len(r.Levels)
	t := last
	step := r.Progression.SpeedStep * float64(extra)
	t.GhostSpeed = math.Min(1, last.GhostSpeed+step)
	t.FrightenedSpeed = math.Min(1, last.FrightenedSpeed+step)
	t.EatenSpeed = math.Min(1, last.EatenSpeed+step)

	t.FrightenedTicks = last.FrightenedTicks - r.Progression.FrightenedStep*extra
	floor := r.Progression.MinFrightenedTicks
	if floor > last.FrightenedTicks {
		floor = last.FrightenedTicks
	}
	if t.FrightenedTicks < floor {
		t.FrightenedTicks = floor
	}
	return t
}

// GhostScore returns the points for the k-th ghost (0-based) eaten in
// one frightened period: GhostPoints * 2^k, capped by GhostPointsMax.
func (r Rules) GhostScore(k int) int {
	if k < 0 {
		k = 0
	}
	if k > 30 {
		k = 30
	}
	pts := r.GhostPoints << k
	if r.GhostPointsMax > 0 && pts > r.GhostPointsMax {
		pts = r.GhostPointsMax
	}
	return pts
}
