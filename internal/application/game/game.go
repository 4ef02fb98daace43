// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/protozombie/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   uint64
}

// New creates a new Game stepping the scene at a fixed framerate.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, framerate int) *Game {
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// scene.ErrQuit becomes ebiten.Termination after the scene's OnExit.
func (g *Game) Update() error {
	g.ticks++
	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the fixed step passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}

// Ticks returns how many updates ran
func (g *Game) Ticks() uint64 {
	return g.ticks
}
