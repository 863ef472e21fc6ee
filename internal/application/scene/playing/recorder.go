package playing

import (
	"fmt"
	"os"
	"time"

	"github.com/younwookim/skyraid/internal/application/replay"
	"github.com/younwookim/skyraid/internal/application/system"
)

// framesPerMinute sizes the initial frame buffer
const framesPerMinute = 60 * 60

// Recorder captures the pointer input of one run
type Recorder struct {
	data   replay.ReplayData
	active bool
}

// NewRecorder starts a recording for a session seeded with seed whose
// frames each advance the simulation by frame.
func NewRecorder(seed int64, frame time.Duration) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.FormatVersion,
			Seed:      seed,
			FrameUs:   int(frame / time.Microsecond),
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, framesPerMinute),
		},
		active: true,
	}
}

// RecordFrame appends one frame. It is a no-op after Stop.
func (r *Recorder) RecordFrame(in system.InputState) {
	if !r.active {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F: len(r.data.Frames),
		X: in.PointerX,
		Y: in.PointerY,
		P: in.Pressed,
		R: in.Released,
		M: in.Moved,
	})
}

// Save writes the frames recorded so far. Saving twice overwrites the file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}
	if err := r.data.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Stop ends the recording; saved data is kept
func (r *Recorder) Stop() { r.active = false }

// IsRecording reports whether frames are still being captured
func (r *Recorder) IsRecording() bool { return r.active }

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int { return len(r.data.Frames) }

// Data returns the recording
func (r *Recorder) Data() replay.ReplayData { return r.data }

// GenerateFilename names a recording after the current time
func GenerateFilename() string {
	return "replay_" + time.Now().Format("20060102_150405") + ".json"
}
