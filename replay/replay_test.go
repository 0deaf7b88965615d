package replay

import (
	"strings"
	"testing"
)

func TestWriteRead(t *testing.T) {
	var sb strings.Builder
	w, err := NewWriter(&sb, Header{Laps: 3, Checkpoints: [][2]float64{{0, 0}, {10000, 0}}, Fingerprint: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		f := Frame{Tick: i}
		f.Pods[0] = FramePod{X: float64(i * 100), Command: "100"}
		if err := w.WriteFrame(f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	h, frames, err := Read(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Laps != 3 || h.Fingerprint != 42 {
		t.Fatalf("header mangled: %+v", h)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if frames[2].Pods[0].X != 200 {
		t.Fatalf("frame data mangled: %+v", frames[2].Pods[0])
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, _, err := Read(strings.NewReader("not json\n")); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}
