// Package replay defines the JSON-lines recording format shared by the arena
// recorder and the terminal viewer: one header object, then one frame object
// per tick.
package replay

import (
	"encoding/json"
	"io"

	"github.com/strikepod/strikepod/serror"
)

// Header describes the course a replay was recorded on.
type Header struct {
	Laps        int          `json:"laps"`
	Checkpoints [][2]float64 `json:"checkpoints"`
	Fingerprint uint64       `json:"fingerprint"`
}

// FramePod is one pod's state in one frame.
type FramePod struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	AngleDegrees float64 `json:"angle"`
	Next         int     `json:"next"`
	Command      string  `json:"cmd"`
}

// Frame is one recorded tick.
type Frame struct {
	Tick int         `json:"tick"`
	Pods [4]FramePod `json:"pods"`
}

// Writer streams a replay to an io.Writer.
type Writer struct {
	enc *json.Encoder
}

func NewWriter(w io.Writer, h Header) (*Writer, error) {
	enc := json.NewEncoder(w)
	if err := enc.Encode(h); err != nil {
		return nil, err
	}
	return &Writer{enc: enc}, nil
}

// WriteFrame appends one tick to the replay.
func (w *Writer) WriteFrame(f Frame) error {
	return w.enc.Encode(f)
}

// Read loads an entire replay.
func Read(r io.Reader) (Header, []Frame, error) {
	dec := json.NewDecoder(r)

	var h Header
	if err := dec.Decode(&h); err != nil {
		return h, nil, serror.New("replay: bad header: %v", err)
	}

	var frames []Frame
	for {
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if err == io.EOF {
				return h, frames, nil
			}
			return h, frames, serror.New("replay: bad frame %d: %v", len(frames), err)
		}
		frames = append(frames, f)
	}
}
