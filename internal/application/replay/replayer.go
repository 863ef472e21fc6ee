package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/younwookim/skyraid/internal/application/system"
)

// Replayer feeds recorded input back one frame at a time
type Replayer struct {
	data ReplayData
	next int
}

// NewReplayer creates a replayer positioned at the first frame
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay reads a recording written by Encode
func LoadReplay(filename string) (*ReplayData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// GetInput returns the next frame's input. ok is false once every frame
// has been consumed.
func (r *Replayer) GetInput() (in system.InputState, ok bool) {
	if r.next >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.next]
	r.next++

	return system.InputState{
		PointerX: fi.X,
		PointerY: fi.Y,
		Pressed:  fi.P,
		Released: fi.R,
		Moved:    fi.M,
	}, true
}

// CurrentFrame is the number of frames consumed so far
func (r *Replayer) CurrentFrame() int { return r.next }

// TotalFrames is the recording length in frames
func (r *Replayer) TotalFrames() int { return len(r.data.Frames) }

// Seed is the RNG seed the recording was made with
func (r *Replayer) Seed() int64 { return r.data.Seed }

// FrameDuration is the simulated time each frame advances
func (r *Replayer) FrameDuration() time.Duration { return r.data.Frame() }

// Reset rewinds to the first frame
func (r *Replayer) Reset() { r.next = 0 }

// CreateTestReplayData builds a recording where the pointer is pressed at
// (x, y) on the first frame and held there.
func CreateTestReplayData(frames int, x, y float64) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		FrameUs:   16000,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i, X: x, Y: y, P: i == 0}
	}
	return data
}
