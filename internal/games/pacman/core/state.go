package core

import "fmt"

// GameState is the top-level phase of a game.
type GameState uint8

const (
	StateReady GameState = iota
	StatePlaying
	StatePlayerCaught
	StateLevelClear
	StateGameOver
)

// String returns the string representation of a state.
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePlayerCaught:
		return "PlayerCaught"
	case StateLevelClear:
		return "LevelClear"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Trigger is an input to the state machine.
type Trigger uint8

const (
	TriggerStart Trigger = iota
	TriggerCaught
	TriggerRespawn
	TriggerOutOfLives
	TriggerLevelCleared
	TriggerNextLevel
	TriggerRestart
)

// String returns the string representation of a trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "Start"
	case TriggerCaught:
		return "Caught"
	case TriggerRespawn:
		return "Respawn"
	case TriggerOutOfLives:
		return "OutOfLives"
	case TriggerLevelCleared:
		return "LevelCleared"
	case TriggerNextLevel:
		return "NextLevel"
	case TriggerRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// transitions is the complete table of legal moves.
var transitions = map[GameState]map[Trigger]GameState{
	StateReady: {
		TriggerStart: StatePlaying,
	},
	StatePlaying: {
		TriggerCaught:       StatePlayerCaught,
		TriggerLevelCleared: StateLevelClear,
	},
	StatePlayerCaught: {
		TriggerRespawn:    StatePlaying,
		TriggerOutOfLives: StateGameOver,
	},
	StateLevelClear: {
		TriggerNextLevel: StatePlaying,
	},
	StateGameOver: {
		TriggerRestart: StateReady,
	},
}

// Machine tracks the current GameState. It knows only the transition
// table; deciding when to fire is the simulation's job.
type Machine struct {
	state GameState
}

// NewMachine creates a machine in StateReady.
func NewMachine() *Machine {
	return &Machine{state: StateReady}
}

// State returns the current state.
func (m *Machine) State() GameState {
	return m.state
}

// Can reports whether t is legal from the current state.
func (m *Machine) Can(t Trigger) bool {
	_, ok := transitions[m.state][t]
	return ok
}

// Fire applies t and returns the new state.
func (m *Machine) Fire(t Trigger) (GameState, error) {
	next, ok := transitions[m.state][t]
	if !ok {
		return m.state, fmt.Errorf("%s on %s: %w", t, m.state, ErrInvalidTransition)
	}
	m.state = next
	return next, nil
}

// Terminal reports whether the machine is in GameOver.
func (m *Machine) Terminal() bool {
	return m.state == StateGameOver
}
