// Package state holds the play session state machine.
package state

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CapturesCursor reports whether mouse look is live in this state
func (s GameState) CapturesCursor() bool {
	return s == StatePlaying
}

// TogglePause flips between playing and paused; game over is kept
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
