// Package scene defines the Scene interface for game screens.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game normally
var ErrQuit = errors.New("quit")

// Scene is one game screen. The game loop delegates Update and Draw to
// the current scene; returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Return ErrQuit to close the game, any other error to abort it.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current
	OnEnter()

	// OnExit runs when the scene is left or the game closes
	OnExit()
}
