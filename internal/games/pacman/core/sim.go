package core

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Option configures a Sim.
type Option func(*Sim)

// WithLogger routes simulation logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand injects the random source used by ghost decisions.
func WithRand(r Rand) Option {
	return func(s *Sim) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed seeds a private math/rand source.
func WithSeed(seed int64) Option {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStrict makes out-of-bounds positions panic instead of being clamped.
func WithStrict(strict bool) Option {
	return func(s *Sim) {
		s.strict = strict
	}
}

// Sim owns all mutable game state and advances it one tick at a time.
// It is not safe for concurrent use; Snapshots are.
type Sim struct {
	cfg     LevelConfig
	rules   Rules
	tuning  Tuning
	logger  *log.Logger
	rng     Rand
	brain   *Brain
	strict  bool
	machine *Machine

	maze   *Maze
	grid   *Grid
	player Entity
	ghosts []*Ghost

	tick         uint64
	level        int
	score        int
	lives        int
	hold         int // ticks left in Ready, PlayerCaught or LevelClear
	frightLeft   int
	combo        int // ghosts eaten in the current frightened period
	confusedLeft int // respawn confusion
	phase        int
	phaseLeft    int
	prevPlayer   Coord
	events       []Event
}

// NewSim validates cfg and creates a simulation at level 1 in StateReady.
func NewSim(cfg LevelConfig, opts ...Option) (*Sim, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	s := &Sim{
		cfg:     cfg,
		rules:   cfg.Rules,
		logger:  log.New(io.Discard),
		rng:     rand.New(rand.NewSource(1)),
		machine: NewMachine(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.brain = NewBrain(s.rng)
	s.newGame()
	return s, nil
}

// newGame resets score, lives and level and enters the Ready countdown.
func (s *Sim) newGame() {
	s.score = 0
	s.lives = s.rules.Lives
	s.level = 1
	s.startLevel()
	s.hold = s.rules.ReadyTicks
}

// startLevel loads the maze for the current level from its pristine copy.
func (s *Sim) startLevel() {
	s.maze = s.cfg.Mazes[(s.level-1)%len(s.cfg.Mazes)]
	s.grid = s.maze.Grid.Clone()
	s.tuning = s.rules.TuningFor(s.level)
	s.phase = 0
	s.phaseLeft = s.tuning.Schedule[0].Ticks
	s.frightLeft = 0
	s.combo = 0
	s.confusedLeft = 0

	s.ghosts = make([]*Ghost, len(s.maze.Ghosts))
	for i, spec := range s.maze.Ghosts {
		s.ghosts[i] = &Ghost{Spec: spec}
	}
	s.resetEntities(s.scheduledMode())

	s.emit(Event{Kind: EventLevelStart, At: s.maze.PlayerSpawn})
	s.logger.Info("level start", "level", s.level, "maze", s.maze.ID, "pellets", s.grid.PelletsLeft())
}

// resetEntities puts every entity back on its spawn tile.
func (s *Sim) resetEntities(mode GhostMode) {
	s.player.place(s.maze.PlayerSpawn)
	s.player.Speed = s.tuning.PlayerSpeed
	s.prevPlayer = s.player.Pos.Tile
	for _, g := range s.ghosts {
		g.place(g.Spec.Spawn)
		g.Mode = mode
		g.prior = mode
		g.flip = false
		g.decided = false
		g.rejoin = 0
	}
}

func (s *Sim) scheduledMode() GhostMode {
	return s.tuning.Schedule[s.phase].Mode
}

// Tick advances the simulation by one step and returns the resulting
// snapshot. input is the player's desired direction or DirNone.
func (s *Sim) Tick(input Dir) Snapshot {
	s.tick++
	s.events = s.events[:0]

	switch s.machine.State() {
	case StateReady:
		if input != DirNone {
			s.player.Desired = input
		}
		if s.hold > 0 {
			s.hold--
			break
		}
		s.fire(TriggerStart)
		s.play(input)

	case StatePlaying:
		s.play(input)

	case StatePlayerCaught:
		if s.hold > 0 {
			s.hold--
			break
		}
		if s.lives > 0 {
			s.fire(TriggerRespawn)
			s.respawn()
			s.play(input)
			break
		}
		s.fire(TriggerOutOfLives)
		s.emit(Event{Kind: EventGameOver, Points: s.score})
		s.logger.Info("game over", "score", s.score, "level", s.level)

	case StateLevelClear:
		if s.hold > 0 {
			s.hold--
			break
		}
		s.level++
		s.startLevel()
		s.fire(TriggerNextLevel)
		s.play(input)

	case StateGameOver:
	}

	return s.Snapshot()
}

// play runs one Playing tick in the fixed order: timers, player move,
// pellet, ghosts, collisions, level clear.
func (s *Sim) play(input Dir) {
	s.timers()
	s.movePlayer(input)
	s.eat()
	s.moveGhosts()
	if s.collide() {
		return
	}
	if s.grid.PelletsLeft() == 0 {
		s.fire(TriggerLevelCleared)
		s.hold = s.rules.LevelClearTicks
		s.emit(Event{Kind: EventLevelClear, At: s.player.Pos.Tile})
		s.logger.Info("level clear", "level", s.level, "score", s.score)
	}
}

// timers counts down frightened time, respawn confusion and the phase
// schedule. The schedule is paused while either override is running.
func (s *Sim) timers() {
	for _, g := range s.ghosts {
		if g.rejoin > 0 && g.Mode == ModeScatter {
			g.rejoin--
			if g.rejoin == 0 {
				g.setMode(s.currentMode())
			}
		}
	}

	if s.frightLeft > 0 {
		s.frightLeft--
		if s.frightLeft == 0 {
			for _, g := range s.ghosts {
				if g.Mode == ModeFrightened {
					g.Mode = g.prior
				}
			}
			s.emit(Event{Kind: EventFrightenedEnd})
		}
		return
	}

	if s.confusedLeft > 0 {
		s.confusedLeft--
		if s.confusedLeft == 0 {
			mode := s.scheduledMode()
			for _, g := range s.ghosts {
				if g.Mode == ModeConfused {
					g.setMode(mode)
				}
			}
			s.emit(Event{Kind: EventModeChange, Mode: mode})
		}
		return
	}

	sched := s.tuning.Schedule
	if sched[s.phase].Ticks == 0 || s.phase == len(sched)-1 {
		return
	}
	s.phaseLeft--
	if s.phaseLeft > 0 {
		return
	}
	s.phase++
	s.phaseLeft = sched[s.phase].Ticks
	mode := sched[s.phase].Mode
	for _, g := range s.ghosts {
		if g.Mode.Scheduled() {
			g.rejoin = 0
			g.setMode(mode)
		}
	}
	s.emit(Event{Kind: EventModeChange, Mode: mode})
	s.logger.Debug("mode change", "mode", mode, "phase", s.phase, "tick", s.tick)
}

// currentMode is the mode a ghost rejoining the schedule should take.
func (s *Sim) currentMode() GhostMode {
	if s.confusedLeft > 0 {
		return ModeConfused
	}
	return s.scheduledMode()
}

func (s *Sim) movePlayer(input Dir) {
	p := &s.player
	if input != DirNone {
		p.Desired = input
	}
	p.Speed = s.tuning.PlayerSpeed
	s.prevPlayer = p.Pos.Tile

	if p.Dir != DirNone && p.Desired == p.Dir.Opposite() && !p.Pos.AtCenter() {
		p.reverse(s.grid)
	}
	p.advance(s.grid, p.Speed, func(e *Entity) bool {
		if e.Desired != DirNone && e.Desired != e.Dir && s.grid.CanMove(e.Pos.Tile, e.Desired) {
			e.Dir = e.Desired
		}
		return true
	})
}

// eat resolves the pellet under the player.
func (s *Sim) eat() {
	c := s.player.Pos.Tile
	if _, err := s.grid.TileAt(c.X, c.Y); err != nil {
		s.outOfBounds(err, &s.player, s.maze.PlayerSpawn)
		c = s.player.Pos.Tile
	}

	switch s.grid.ConsumePellet(c.X, c.Y) {
	case PelletNormal:
		s.score += s.rules.PelletPoints
		s.emit(Event{Kind: EventPellet, At: c, Points: s.rules.PelletPoints})
	case PelletPower:
		s.score += s.rules.PowerPoints
		s.emit(Event{Kind: EventPowerPellet, At: c, Points: s.rules.PowerPoints})
		s.frighten()
	}
}

// frighten puts every non-Eaten ghost into Frightened and reverses it.
func (s *Sim) frighten() {
	ticks := s.tuning.FrightenedTicks
	s.combo = 0
	for _, g := range s.ghosts {
		if g.Mode == ModeEaten {
			continue
		}
		g.flip = true
		if ticks <= 0 {
			continue
		}
		if g.Mode != ModeFrightened {
			g.prior = g.Mode
		}
		g.Mode = ModeFrightened
	}
	if ticks > 0 {
		s.frightLeft = ticks
	}
}

// outOfBounds handles a corrupted position: panic in strict mode,
// otherwise clamp into the grid (or fall back to the spawn tile).
func (s *Sim) outOfBounds(err error, e *Entity, spawn Coord) {
	if s.strict {
		panic(err)
	}
	s.logger.Error("entity out of bounds", "tile", e.Pos.Tile, "err", err)
	c := s.grid.Clamp(e.Pos.Tile)
	if !s.grid.At(c).Walkable() {
		c = spawn
	}
	e.Pos = Position{Tile: c}
}

func (s *Sim) ghostSpeed(g *Ghost) float64 {
	switch g.Mode {
	case ModeFrightened:
		return s.tuning.FrightenedSpeed
	case ModeEaten:
		return s.tuning.EatenSpeed
	default:
		return s.tuning.GhostSpeed
	}
}

// moveGhosts advances each ghost in maze order.
func (s *Sim) moveGhosts() {
	target := s.player.Pos.Tile
	for _, g := range s.ghosts {
		g.prev = g.Pos.Tile
		if _, err := s.grid.TileAt(g.Pos.Tile.X, g.Pos.Tile.Y); err != nil {
			s.outOfBounds(err, &g.Entity, g.Spec.Spawn)
		}

		if g.flip {
			g.flip = false
			switch {
			case !g.Pos.AtCenter():
				g.reverse(s.grid)
				g.decided = false
			case g.Dir != DirNone && s.grid.CanMove(g.Pos.Tile, g.Dir.Opposite()):
				g.Dir = g.Dir.Opposite()
				g.decided, g.decidedAt = true, g.Pos.Tile
			}
		}

		g.Speed = s.ghostSpeed(g)
		g.advance(s.grid, g.Speed, func(e *Entity) bool {
			return s.onGhostCenter(g, target)
		})
	}
}

// onGhostCenter runs when a ghost stands on a tile centre. It returns
// false when the ghost must hold position for the rest of the tick.
func (s *Sim) onGhostCenter(g *Ghost, player Coord) bool {
	tile := g.Pos.Tile
	if g.Mode == ModeEaten && tile == g.Spec.Home {
		g.Mode = ModeScatter
		g.rejoin = s.rules.HomeScatterTicks
		g.decided = false
		s.emit(Event{Kind: EventGhostHome, At: tile, Ghost: g.Spec.Name})
	}
	if g.decided && g.decidedAt == tile && s.grid.CanMove(tile, g.Dir) {
		return true
	}

	dir, err := s.brain.Decide(s.grid, g.view(), player)
	if err != nil {
		s.logger.Warn("ghost stuck", "ghost", g.Spec.Name, "tile", tile, "err", err)
		s.emit(Event{Kind: EventGhostStuck, At: tile, Ghost: g.Spec.Name})
		return false
	}
	g.Dir = dir
	g.decided, g.decidedAt = true, tile
	return true
}

// collide checks the player against every non-Eaten ghost. A ghost and
// the player trading tiles in the same tick also counts as contact.
// Returns true if the player was caught.
func (s *Sim) collide() bool {
	p := s.player.Pos.Tile
	for _, g := range s.ghosts {
		if g.Mode == ModeEaten {
			continue
		}
		crossed := g.Pos.Tile == s.prevPlayer && g.prev == p
		if g.Pos.Tile != p && !crossed {
			continue
		}

		if g.Mode == ModeFrightened {
			pts := s.rules.GhostScore(s.combo)
			s.combo++
			s.score += pts
			g.Mode = ModeEaten
			g.decided = false
			s.emit(Event{Kind: EventGhostEaten, At: g.Pos.Tile, Ghost: g.Spec.Name, Points: pts})
			continue
		}

		s.lives--
		s.fire(TriggerCaught)
		s.hold = s.rules.CaughtTicks
		s.emit(Event{Kind: EventPlayerCaught, At: p, Ghost: g.Spec.Name})
		s.logger.Info("player caught", "ghost", g.Spec.Name, "lives", s.lives, "tick", s.tick)
		return true
	}
	return false
}

// respawn puts entities back on their spawns after a lost life.
// Pellets and the schedule position are kept.
func (s *Sim) respawn() {
	s.frightLeft = 0
	s.combo = 0
	mode := s.scheduledMode()
	if s.rules.RespawnConfusedTicks > 0 {
		mode = ModeConfused
		s.confusedLeft = s.rules.RespawnConfusedTicks
	}
	s.resetEntities(mode)
	s.emit(Event{Kind: EventRespawn, At: s.maze.PlayerSpawn})
}

// Restart begins a new game after GameOver. The snapshot that follows
// reports only the restart and the new level start.
func (s *Sim) Restart() error {
	if _, err := s.machine.Fire(TriggerRestart); err != nil {
		return err
	}
	s.events = s.events[:0]
	s.emit(Event{Kind: EventRestart})
	s.logger.Info("restart", "previous_score", s.score, "tick", s.tick)
	s.newGame()
	return nil
}

func (s *Sim) fire(t Trigger) {
	if _, err := s.machine.Fire(t); err != nil {
		s.logger.Error("state machine", "err", err)
	}
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

// Snapshot returns a deep copy of the current state.
func (s *Sim) Snapshot() Snapshot {
	ghosts := make([]GhostView, len(s.ghosts))
	for i, g := range s.ghosts {
		ghosts[i] = g.view()
	}
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return Snapshot{
		Tick:           s.tick,
		State:          s.machine.State(),
		Level:          s.level,
		Score:          s.score,
		Lives:          s.lives,
		MazeID:         s.maze.ID,
		Grid:           s.grid.Clone(),
		Player:         s.player.view(),
		Ghosts:         ghosts,
		FrightenedLeft: s.frightLeft,
		Events:         events,
	}
}

// State returns the current game state.
func (s *Sim) State() GameState {
	return s.machine.State()
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// Level returns the current 1-based level.
func (s *Sim) Level() int {
	return s.level
}

// Lives returns the remaining lives.
func (s *Sim) Lives() int {
	return s.lives
}

// Rules returns the rules the simulation was created with.
func (s *Sim) Rules() Rules {
	return s.rules
}
