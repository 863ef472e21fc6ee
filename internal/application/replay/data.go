package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// FormatVersion is written into every recording. Readers accept any 1.x file.
const FormatVersion = "1.0"

// ErrUnsupportedVersion is returned for recordings from an incompatible format
var ErrUnsupportedVersion = errors.New("replay: unsupported format version")

// FrameInput records pointer input for a single frame
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	X float64 `json:"x"`           // PointerX
	Y float64 `json:"y"`           // PointerY
	P bool    `json:"p,omitempty"` // Pressed
	R bool    `json:"r,omitempty"` // Released
	M bool    `json:"m,omitempty"` // Moved
}

// ReplayData is a seed plus the per-frame input of one run
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	FrameUs   int          `json:"frameUs"` // simulated microseconds per frame
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Frame returns the simulated time of one frame
func (d ReplayData) Frame() time.Duration {
	return time.Duration(d.FrameUs) * time.Microsecond
}

// Duration returns the simulated length of the whole recording
func (d ReplayData) Duration() time.Duration {
	return time.Duration(len(d.Frames)) * d.Frame()
}

// Validate checks the header and that frames are numbered 0..n-1
func (d ReplayData) Validate() error {
	if major, _, _ := strings.Cut(d.Version, "."); major != "1" {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, d.Version)
	}
	if d.FrameUs <= 0 {
		return fmt.Errorf("invalid frame duration %dus", d.FrameUs)
	}
	for i, f := range d.Frames {
		if f.F != i {
			return fmt.Errorf("frame %d out of sequence (got %d)", i, f.F)
		}
	}
	return nil
}

// Encode writes the recording as indented JSON
func (d ReplayData) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads and validates a recording
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}
