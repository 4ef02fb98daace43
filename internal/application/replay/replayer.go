package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// ReplayInput is one frame of player input during replay.
// Its fields match system.InputState so it converts directly.
type ReplayInput struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Run     bool
	Crouch  bool
	Jump    bool

	Fire           bool
	Reload         bool
	Interact       bool
	Flashlight     bool
	NextWeapon     bool
	PreviousWeapon bool
	Slot           int

	LookDX float64
	LookDY float64
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data        ReplayData
	frame       int
	sensitivity float64
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file and checks its header
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("replay version %q, want %q", data.Version, FormatVersion)
	}
	if _, err := uuid.Parse(data.SessionID); err != nil {
		return nil, fmt.Errorf("replay session id: %w", err)
	}

	return &data, nil
}

// Save writes replay data as indented JSON
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	if fi.Sn > 0 {
		r.sensitivity = fi.Sn
	}

	return ReplayInput{
		Forward:        fi.Fw,
		Back:           fi.Bk,
		Left:           fi.L,
		Right:          fi.R,
		Run:            fi.Run,
		Crouch:         fi.Cr,
		Jump:           fi.J,
		Fire:           fi.Fi,
		Reload:         fi.Rl,
		Interact:       fi.In,
		Flashlight:     fi.Fl,
		NextWeapon:     fi.Nx,
		PreviousWeapon: fi.Pv,
		Slot:           fi.Sl,
		LookDX:         fi.DX,
		LookDY:         fi.DY,
	}, true
}

// Frame converts one frame of input into its recorded form
func Frame(n int, in ReplayInput) FrameInput {
	return FrameInput{
		F:   n,
		Fw:  in.Forward,
		Bk:  in.Back,
		L:   in.Left,
		R:   in.Right,
		Run: in.Run,
		Cr:  in.Crouch,
		J:   in.Jump,
		Fi:  in.Fire,
		Rl:  in.Reload,
		In:  in.Interact,
		Fl:  in.Flashlight,
		Nx:  in.NextWeapon,
		Pv:  in.PreviousWeapon,
		Sl:  in.Slot,
		DX:  in.LookDX,
		DY:  in.LookDY,
	}
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.sensitivity = 0
}

// Sensitivity returns the mouse sensitivity in effect for the last frame
// read, or 0 when the recording has not set one yet
func (r *Replayer) Sensitivity() float64 {
	return r.sensitivity
}

// CreateTestReplayData creates replay data for testing: the player turns
// by lookDX every frame and holds fire on every fireEvery-th frame
func CreateTestReplayData(frames int, lookDX float64, fireEvery int) ReplayData {
	data := NewSession(12345, "test", 60)
	for i := 0; i < frames; i++ {
		data.Frames = append(data.Frames, FrameInput{
			F:  i,
			DX: lookDX,
			Fi: fireEvery > 0 && i%fireEvery == 0,
		})
	}
	return data
}
