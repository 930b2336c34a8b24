// Package pacman provides the Pacman game for the platform: it adapts
// the simulation in pacman/core to the frame-driven Game interface.
package pacman

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/config"
	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/logging"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

const (
	// SimRate is the simulation clock in ticks per second. Rules timings
	// are expressed in these ticks regardless of the platform frame rate.
	SimRate = 60

	// maxTicksPerFrame bounds catch-up work when the frame rate is very low.
	maxTicksPerFrame = 8
)

const (
	IDClassic = "pacman"
	IDAttract = "pacman_attract"
)

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDAttract, func() registry.Game {
		return NewAttract()
	})
}

// Game runs one Pacman campaign driven by keyboard input or a pilot.
type Game struct {
	id    string
	title string
	demo  bool // autopilot plays
	pilot core.Pilot

	setup      Setup
	difficulty config.DifficultyPreset // overrides setup when set
	campaign   Campaign
	sim        *core.Sim
	snap       core.Snapshot
	err        error
	logger     *log.Logger

	seed      int64
	tickRate  int
	acc       int
	frame     uint64
	paused    bool
	want      core.Dir // heading pressed since the last tick
	highScore int
	popups    []popup

	screenW  int
	screenH  int
	tooSmall bool
}

// popup is a short-lived score label drawn on the board.
type popup struct {
	at   core.Coord
	text string
	ttl  int // frames
}

// New creates a player-controlled game.
func New() *Game {
	return &Game{id: IDClassic, title: "Pac-Man"}
}

// NewAttract creates a game played by the autopilot.
func NewAttract() *Game {
	return &Game{id: IDAttract, title: "Pac-Man (attract)", demo: true}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Demo reports whether the autopilot is playing.
func (g *Game) Demo() bool {
	return g.demo
}

// Board returns the score board this game records to.
func (g *Game) Board() string {
	return string(g.campaign.Difficulty)
}

// SetDifficulty picks the preset used by the next Reset, independent of
// the package setup.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.difficulty = p
}

// Seed returns the seed of the running game.
func (g *Game) Seed() int64 {
	return g.seed
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Err returns the error that prevented the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Snapshot returns the snapshot of the last simulated tick.
func (g *Game) Snapshot() core.Snapshot {
	return g.snap
}

// Reset loads the configured campaign and starts a new game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = SimRate
	}
	g.seed = cfg.Seed
	g.acc = 0
	g.frame = 0
	g.paused = false
	g.want = core.DirNone
	g.popups = nil
	g.err = nil
	g.sim = nil
	g.snap = core.Snapshot{}

	g.setup = CurrentSetup()
	if g.difficulty != "" {
		g.setup.Difficulty = g.difficulty
	}
	g.logger = g.setup.Logger
	if g.logger == nil {
		g.logger = logging.Discard()
	}

	campaign, err := LoadCampaign(g.setup)
	if err != nil {
		g.fail(err)
		return
	}
	g.campaign = campaign

	sim, err := g.setup.NewSim(campaign, g.seed)
	if err != nil {
		g.fail(err)
		return
	}
	g.sim = sim
	g.snap = sim.Snapshot()
	if g.demo {
		g.pilot = core.NewAutopilot(rand.New(rand.NewSource(g.seed)))
	}
	g.layout()
}

func (g *Game) fail(err error) {
	g.err = err
	g.logger.Error("cannot start game", "err", err)
}

// layout checks whether the board, HUD and footer fit on screen.
func (g *Game) layout() {
	if g.snap.Grid == nil {
		g.tooSmall = false
		return
	}
	w, h := boardSize(g.snap.Grid)
	g.tooSmall = g.screenW < w || g.screenH < h+hudHeight+footerHeight
}

// Resize adapts the layout to a new screen without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// Step advances the game by one platform frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.frame++
	g.agePopups()

	if g.sim == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) && g.snap.State == core.StateGameOver {
		if err := g.sim.Restart(); err != nil {
			g.logger.Warn("restart rejected", "err", err)
		}
		g.snap = g.sim.Snapshot()
		g.acc = 0
		g.popups = nil
		g.layout()
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.snap.State != core.StateGameOver {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.snap.State == core.StateGameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if d := actionToDir(in.Direction()); d != core.DirNone {
		g.want = d
	}

	// Accumulate sim ticks owed for this frame at the platform rate.
	g.acc += SimRate
	ticks := 0
	for g.acc >= g.tickRate && ticks < maxTicksPerFrame {
		g.acc -= g.tickRate
		dir := g.want
		if g.pilot != nil {
			dir = g.pilot.Next(g.snap)
		}
		g.snap = g.sim.Tick(dir)
		g.want = core.DirNone // the sim buffers the heading
		ticks++
		g.collectPopups()
		if g.snap.Has(core.EventLevelStart) {
			g.layout()
		}
		if g.snap.State == core.StateGameOver {
			g.acc = 0
			break
		}
	}
	if ticks == maxTicksPerFrame {
		g.acc = 0
	}

	return platformcore.StepResult{State: g.State(), Ticks: ticks}
}

// collectPopups turns scoring ghost events into board labels.
func (g *Game) collectPopups() {
	for _, e := range g.snap.Events {
		if e.Kind == core.EventGhostEaten {
			g.popups = append(g.popups, popup{at: e.At, text: itoa(e.Points), ttl: g.tickRate})
		}
	}
}

func (g *Game) agePopups() {
	kept := g.popups[:0]
	for _, p := range g.popups {
		p.ttl--
		if p.ttl > 0 {
			kept = append(kept, p)
		}
	}
	g.popups = kept
}

// actionToDir maps a platform action to a simulation direction.
func actionToDir(a platformcore.Action) core.Dir {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp
	case platformcore.ActionDown:
		return core.DirDown
	case platformcore.ActionLeft:
		return core.DirLeft
	case platformcore.ActionRight:
		return core.DirRight
	default:
		return core.DirNone
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.snap.Score,
		Level:    g.snap.Level,
		Lives:    g.snap.Lives,
		GameOver: g.err != nil || g.snap.State == core.StateGameOver,
		Paused:   g.paused,
	}
}

// itoa is a simple int to string converter.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	negative := n < 0
	if negative {
		n = -n
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	if negative {
		return "-" + string(digits)
	}
	return string(digits)
}
