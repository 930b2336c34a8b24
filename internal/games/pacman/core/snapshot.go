package core

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// EventKind identifies something that happened during a tick.
type EventKind uint8

const (
	EventPellet EventKind = iota
	EventPowerPellet
	EventGhostEaten
	EventGhostHome
	EventPlayerCaught
	EventLevelClear
	EventLevelStart
	EventRespawn
	EventGameOver
	EventModeChange
	EventFrightenedEnd
	EventGhostStuck
	EventRestart
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventPellet:
		return "Pellet"
	case EventPowerPellet:
		return "PowerPellet"
	case EventGhostEaten:
		return "GhostEaten"
	case EventGhostHome:
		return "GhostHome"
	case EventPlayerCaught:
		return "PlayerCaught"
	case EventLevelClear:
		return "LevelClear"
	case EventLevelStart:
		return "LevelStart"
	case EventRespawn:
		return "Respawn"
	case EventGameOver:
		return "GameOver"
	case EventModeChange:
		return "ModeChange"
	case EventFrightenedEnd:
		return "FrightenedEnd"
	case EventGhostStuck:
		return "GhostStuck"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Event records one occurrence within a tick.
type Event struct {
	Kind   EventKind
	At     Coord
	Ghost  string    // set for ghost events
	Mode   GhostMode // set for EventModeChange
	Points int       // score awarded, if any
}

// Snapshot is an immutable copy of the simulation after a tick.
// It shares no memory with the simulation and is safe to hand to
// another goroutine.
type Snapshot struct {
	Tick           uint64
	State          GameState
	Level          int
	Score          int
	Lives          int
	MazeID         string
	Grid           *Grid
	Player         View
	Ghosts         []GhostView
	FrightenedLeft int
	Events         []Event
}

// Has reports whether an event of kind k occurred in this tick.
func (s Snapshot) Has(k EventKind) bool {
	for _, e := range s.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Ghost returns the view of the named ghost.
func (s Snapshot) Ghost(name string) (GhostView, bool) {
	for _, g := range s.Ghosts {
		if g.Name == name {
			return g, true
		}
	}
	return GhostView{}, false
}

// Hash returns a deterministic digest of the snapshot state, excluding events.
// Equal seeds and inputs yield equal hashes tick for tick.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putView := func(v View) {
		put(uint64(int64(v.Tile.X)))
		put(uint64(int64(v.Tile.Y)))
		put(math.Float64bits(v.Offset))
		put(uint64(v.Dir))
	}

	put(s.Tick)
	put(uint64(s.State))
	put(uint64(s.Level))
	put(uint64(s.Score))
	put(uint64(s.Lives))
	put(uint64(s.FrightenedLeft))
	if s.Grid != nil {
		for _, t := range s.Grid.Tiles {
			h.Write([]byte{byte(t)})
		}
	}
	putView(s.Player)
	for _, g := range s.Ghosts {
		putView(g.View)
		put(uint64(g.Mode))
	}
	return h.Sum64()
}
