package course

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/zeebo/xxh3"

	"github.com/strikepod/strikepod/serror"
	"github.com/strikepod/strikepod/smath"
)

// Course is the immutable description of one match: the lap count and the
// ordered ring of checkpoints. It is built once from the setup block and
// shared read-only by everything else.
type Course struct {
	laps        int
	checkpoints []mgl64.Vec2

	boostCheckpoint int
	fingerprint     uint64
}

// New builds a Course and precomputes the boost checkpoint and layout
// fingerprint. The checkpoint slice is copied; callers may reuse theirs.
func New(laps int, checkpoints []mgl64.Vec2) (*Course, error) {
	if laps < 1 {
		return nil, serror.New("course: invalid lap count %d", laps)
	}
	if len(checkpoints) < 2 {
		return nil, serror.New("course: need at least 2 checkpoints, got %d", len(checkpoints))
	}

	c := &Course{
		laps:        laps,
		checkpoints: append([]mgl64.Vec2(nil), checkpoints...),
	}
	c.boostCheckpoint = longestEdgeTarget(c.checkpoints)
	c.fingerprint = fingerprint(laps, c.checkpoints)
	return c, nil
}

// Laps returns the configured lap count.
func (c *Course) Laps() int {
	return c.laps
}

// Count returns the number of checkpoints in the ring.
func (c *Course) Count() int {
	return len(c.checkpoints)
}

// Checkpoint returns the position of checkpoint id, wrapping id around the
// ring.
func (c *Course) Checkpoint(id int) mgl64.Vec2 {
	return c.checkpoints[((id%len(c.checkpoints))+len(c.checkpoints))%len(c.checkpoints)]
}

// Next returns the checkpoint id following id on the ring.
func (c *Course) Next(id int) int {
	return (id + 1) % len(c.checkpoints)
}

// BoostCheckpoint returns the id of the checkpoint that ends the longest
// straight of the circuit. A pod targeting this checkpoint with a clean
// bearing is the best spender of its one boost.
func (c *Course) BoostCheckpoint() int {
	return c.boostCheckpoint
}

// Fingerprint returns a stable hash of the course layout, used to correlate
// logs and replays of the same circuit across runs.
func (c *Course) Fingerprint() uint64 {
	return c.fingerprint
}

// longestEdgeTarget finds the longest edge between consecutive listed
// checkpoints and returns the id of the checkpoint that edge leads to. The
// closing edge back to checkpoint 0 is not considered: the race starts at
// checkpoint 0, so the first pass down the closing straight happens with a
// cold velocity and standings already decided by then rarely reward a boost.
func longestEdgeTarget(checkpoints []mgl64.Vec2) int {
	best := 0
	bestLen := 0.0
	for i := 0; i < len(checkpoints)-1; i++ {
		l := smath.Distance(checkpoints[i], checkpoints[i+1])
		if l > bestLen {
			bestLen = l
			best = i
		}
	}
	return (best + 1) % len(checkpoints)
}

func fingerprint(laps int, checkpoints []mgl64.Vec2) uint64 {
	buf := make([]byte, 0, 8+len(checkpoints)*16)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(laps))
	for _, cp := range checkpoints {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(cp.X())))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(cp.Y())))
	}
	return xxh3.Hash(buf)
}
