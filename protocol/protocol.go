// Package protocol implements the line-oriented transport between the race
// simulator and the decision core. The core itself never touches raw lines;
// it receives parsed telemetry and hands back outputs to encode.
package protocol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/serror"
	"github.com/strikepod/strikepod/session"
)

// Reader parses the simulator's input feed. A malformed or truncated feed is
// a fatal precondition failure: Reader surfaces it as an error and never
// fabricates telemetry.
type Reader struct {
	s *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

func (r *Reader) line() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.s.Text(), nil
}

// ReadSetup parses the one-time setup block: lap count, checkpoint count and
// the checkpoint coordinates.
func (r *Reader) ReadSetup() (laps int, checkpoints []mgl64.Vec2, err error) {
	ln, err := r.line()
	if err != nil {
		return 0, nil, err
	}
	if _, err := fmt.Sscan(ln, &laps); err != nil {
		return 0, nil, serror.New("protocol: bad lap count line %q: %v", ln, err)
	}

	ln, err = r.line()
	if err != nil {
		return 0, nil, err
	}
	var count int
	if _, err := fmt.Sscan(ln, &count); err != nil {
		return 0, nil, serror.New("protocol: bad checkpoint count line %q: %v", ln, err)
	}
	if count < 0 {
		return 0, nil, serror.New("protocol: negative checkpoint count %d", count)
	}

	checkpoints = make([]mgl64.Vec2, 0, count)
	for i := 0; i < count; i++ {
		ln, err = r.line()
		if err != nil {
			return 0, nil, err
		}
		var x, y int
		if _, err := fmt.Sscan(ln, &x, &y); err != nil {
			return 0, nil, serror.New("protocol: bad checkpoint line %q: %v", ln, err)
		}
		checkpoints = append(checkpoints, mgl64.Vec2{float64(x), float64(y)})
	}
	return laps, checkpoints, nil
}

// ReadTick parses one tick's four telemetry lines in protocol order: the two
// owned pods first, then the two opponents.
func (r *Reader) ReadTick() ([session.PodCount]pod.Telemetry, error) {
	var tel [session.PodCount]pod.Telemetry
	for i := range tel {
		ln, err := r.line()
		if err != nil {
			return tel, err
		}
		t := &tel[i]
		if _, err := fmt.Sscan(ln, &t.X, &t.Y, &t.VX, &t.VY, &t.AngleDegrees, &t.NextCheckpoint); err != nil {
			return tel, serror.New("protocol: bad telemetry line %q: %v", ln, err)
		}
	}
	return tel, nil
}

// Writer encodes the per-tick outputs. Both lines are buffered and flushed
// together so a tick is emitted atomically.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteOutputs emits both command tuples in the order given, which is the
// fixed protocol order.
func (w *Writer) WriteOutputs(out [2]session.Output) error {
	for _, o := range out {
		if _, err := fmt.Fprintf(w.w, "%d %d %s\n", int(o.Target.X()), int(o.Target.Y()), o.Command); err != nil {
			return err
		}
	}
	return w.w.Flush()
}
