package replay

import (
	"time"

	"github.com/google/uuid"
)

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	Fw  bool    `json:"fw,omitempty"`  // Forward
	Bk  bool    `json:"bk,omitempty"`  // Back
	L   bool    `json:"l,omitempty"`   // Strafe left
	R   bool    `json:"r,omitempty"`   // Strafe right
	Run bool    `json:"run,omitempty"` // Run
	Cr  bool    `json:"cr,omitempty"`  // Crouch
	J   bool    `json:"j,omitempty"`   // Jump
	Fi  bool    `json:"fi,omitempty"`  // Fire held
	Rl  bool    `json:"rl,omitempty"`  // Reload
	In  bool    `json:"in,omitempty"`  // Interact
	Fl  bool    `json:"fl,omitempty"`  // Flashlight
	Nx  bool    `json:"nx,omitempty"`  // Next weapon
	Pv  bool    `json:"pv,omitempty"`  // Previous weapon
	Sl  int     `json:"sl,omitempty"`  // Weapon slot
	DX  float64 `json:"dx,omitempty"`  // Look delta X
	DY  float64 `json:"dy,omitempty"`  // Look delta Y
	Sn  float64 `json:"sn,omitempty"`  // Mouse sensitivity, only on frames where it changed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	SessionID string       `json:"sessionId"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	Framerate int          `json:"framerate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewSession starts an empty recording with a fresh session ID
func NewSession(seed int64, level string, framerate int) ReplayData {
	return ReplayData{
		Version:   FormatVersion,
		SessionID: uuid.NewString(),
		Seed:      seed,
		Level:     level,
		Framerate: framerate,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
	}
}
