package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for coordinates whose row lies outside the grid.
	// Valid maze data never produces it.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrStuckGhost is returned when a ghost has no walkable direction at all.
	ErrStuckGhost = errors.New("ghost has no walkable direction")

	// ErrInvalidLevelConfig marks every load-time validation failure.
	ErrInvalidLevelConfig = errors.New("invalid level config")

	// ErrInvalidTransition is returned by Machine.Fire for undefined transitions.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// Validation error codes.
const (
	CodeNotRectangular = "NOT_RECTANGULAR"
	CodeBadTile        = "BAD_TILE"
	CodeNoPlayer       = "NO_PLAYER"
	CodeManyPlayers    = "MANY_PLAYERS"
	CodeNoGhosts       = "NO_GHOSTS"
	CodeNoPellets      = "NO_PELLETS"
	CodeUnreachable    = "UNREACHABLE"
	CodeBadWrap        = "BAD_WRAP"
	CodeBadCoord       = "BAD_COORD"
	CodeBadSpeed       = "BAD_SPEED"
	CodeBadTiming      = "BAD_TIMING"
	CodeBadSchedule    = "BAD_SCHEDULE"
	CodeNotMonotonic   = "NOT_MONOTONIC"
	CodeNoLevels       = "NO_LEVELS"
	CodeNoMazes        = "NO_MAZES"
)

// ConfigError contains details about a level configuration failure.
type ConfigError struct {
	Code    string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrInvalidLevelConfig) true for every ConfigError.
func (e ConfigError) Is(target error) bool {
	return target == ErrInvalidLevelConfig
}

func configErr(code, format string, args ...any) ConfigError {
	return ConfigError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// StuckGhostError identifies the ghost that could not move.
type StuckGhostError struct {
	Ghost string
	At    Coord
}

func (e *StuckGhostError) Error() string {
	return fmt.Sprintf("ghost %s stuck at %s", e.Ghost, e.At)
}

func (e *StuckGhostError) Unwrap() error {
	return ErrStuckGhost
}
