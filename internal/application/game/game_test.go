package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/protozombie/internal/application/scene"
)

// stubScene is a test double for the Scene interface
type stubScene struct {
	updates, draws int
	enters, exits  int
	lastDT         float64
	next           scene.Scene
	err            error
}

func (s *stubScene) Update(dt float64) (scene.Scene, error) {
	s.updates++
	s.lastDT = dt
	return s.next, s.err
}

func (s *stubScene) Draw(*ebiten.Image) { s.draws++ }
func (s *stubScene) OnEnter()           { s.enters++ }
func (s *stubScene) OnExit()            { s.exits++ }

func TestNew(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 480, 360, 30)

	assert.Equal(t, 1, initial.enters, "OnEnter runs on the initial scene")
	assert.InDelta(t, 1.0/30, g.DT(), 1e-12)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 480, w)
	assert.Equal(t, 360, h)
}

func TestNew_DefaultFramerate(t *testing.T) {
	g := New(&stubScene{}, 480, 360, 0)
	assert.InDelta(t, 1.0/60, g.DT(), 1e-12)
}

func TestGame_UpdateDelegates(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 480, 360, 60)

	for i := 0; i < 3; i++ {
		assert.NoError(t, g.Update())
	}
	assert.Equal(t, 3, initial.updates)
	assert.Equal(t, g.DT(), initial.lastDT)
	assert.Equal(t, uint64(3), g.Ticks())
	assert.Zero(t, initial.exits, "no transition when Update returns nil")
}

func TestGame_DrawDelegates(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 480, 360, 60)

	g.Draw(ebiten.NewImage(480, 360))
	assert.Equal(t, 1, initial.draws)
}

func TestGame_SceneTransition(t *testing.T) {
	second := &stubScene{}
	first := &stubScene{next: second}
	g := New(first, 480, 360, 60)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, first.exits)
	assert.Equal(t, 1, second.enters)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 1, second.updates)
}

func TestGame_Errors(t *testing.T) {
	t.Run("quit terminates cleanly", func(t *testing.T) {
		s := &stubScene{err: scene.ErrQuit}
		g := New(s, 480, 360, 60)

		assert.ErrorIs(t, g.Update(), ebiten.Termination)
		assert.Equal(t, 1, s.exits, "OnExit runs before closing")
	})

	t.Run("other errors propagate", func(t *testing.T) {
		s := &stubScene{err: assert.AnError}
		g := New(s, 480, 360, 60)

		assert.ErrorIs(t, g.Update(), assert.AnError)
		assert.Zero(t, s.exits)
	})
}
