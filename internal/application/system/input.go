package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the current input state
type InputState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Run     bool
	Crouch  bool
	Jump    bool

	Fire           bool // held
	Reload         bool
	Interact       bool
	Flashlight     bool
	NextWeapon     bool
	PreviousWeapon bool
	Slot           int // 1-based direct weapon slot, 0 for none

	// Mouse movement since the last tick, in pixels
	LookDX float64
	LookDY float64
}

var slotKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// InputSystem reads keyboard and mouse into an InputState
type InputSystem struct {
	lastX, lastY int
	tracking     bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	in := InputState{
		Forward:        ebiten.IsKeyPressed(ebiten.KeyW),
		Back:           ebiten.IsKeyPressed(ebiten.KeyS),
		Left:           ebiten.IsKeyPressed(ebiten.KeyA),
		Right:          ebiten.IsKeyPressed(ebiten.KeyD),
		Run:            ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		Crouch:         ebiten.IsKeyPressed(ebiten.KeyControlLeft),
		Jump:           inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Fire:           ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Reload:         inpututil.IsKeyJustPressed(ebiten.KeyR),
		Interact:       inpututil.IsKeyJustPressed(ebiten.KeyE),
		Flashlight:     inpututil.IsKeyJustPressed(ebiten.KeyF),
		NextWeapon:     inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	_, wheel := ebiten.Wheel()
	if wheel > 0 {
		in.NextWeapon = true
	} else if wheel < 0 {
		in.PreviousWeapon = true
	}

	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Slot = i + 1
			break
		}
	}

	if ebiten.CursorMode() == ebiten.CursorModeCaptured {
		in.LookDX, in.LookDY = s.lookDelta(ebiten.CursorPosition())
	} else {
		s.tracking = false
	}
	return in
}

// lookDelta returns how far the cursor moved since the previous call.
// The first call after tracking starts yields no movement.
func (s *InputSystem) lookDelta(x, y int) (float64, float64) {
	if !s.tracking {
		s.lastX, s.lastY = x, y
		s.tracking = true
		return 0, 0
	}
	dx, dy := x-s.lastX, y-s.lastY
	s.lastX, s.lastY = x, y
	return float64(dx), float64(dy)
}
