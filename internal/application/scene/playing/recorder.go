package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/protozombie/internal/application/replay"
	"github.com/younwookim/protozombie/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data        replay.ReplayData
	recording   bool
	sensitivity float64
}

// NewRecorder starts a recording session for a seeded level
func NewRecorder(seed int64, level string, framerate int) *Recorder {
	return &Recorder{
		data:      replay.NewSession(seed, level, framerate),
		recording: true,
	}
}

// RecordFrame records a single frame's input along with the mouse
// sensitivity it is turned by. The sensitivity is written only when it
// differs from the previous frame.
func (r *Recorder) RecordFrame(input system.InputState, sensitivity float64) {
	if !r.recording {
		return
	}
	frame := replay.Frame(len(r.data.Frames), replay.ReplayInput(input))
	if sensitivity != r.sensitivity {
		frame.Sn = sensitivity
		r.sensitivity = sensitivity
	}
	r.data.Frames = append(r.data.Frames, frame)
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	return replay.Save(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// SessionID returns the id written into the recording
func (r *Recorder) SessionID() string {
	return r.data.SessionID
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
