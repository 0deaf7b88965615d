package pod

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/course"
	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/smath"
)

// Role marks whether a pod is controlled by this agent or by the opponent.
type Role uint8

const (
	RoleOwned Role = iota
	RoleOpponent
)

// Resource is the state of a one-shot resource. A resource moves from
// Available to Consumed exactly once per match and never back.
type Resource uint8

const (
	ResourceAvailable Resource = iota
	ResourceConsumed
)

// Pod is the tracked state of one vehicle, carried across ticks. Kinematics
// are overwritten from telemetry every tick; the agent never integrates
// position or velocity itself, the simulator is the single source of truth.
type Pod struct {
	ID   int
	Role Role

	Position mgl64.Vec2
	Velocity mgl64.Vec2
	// PrevVelocity is last tick's velocity, kept for collision heuristics
	// that need the pre-impact motion.
	PrevVelocity   mgl64.Vec2
	Speed          float64
	HeadingDegrees float64

	NextCheckpoint   int
	CheckpointPos    mgl64.Vec2
	DistanceToTarget float64
	BearingToTarget  float64

	Lap int
	// lastTelemetryCheckpoint is the checkpoint id as last reported by the
	// simulator. Lap wraps are detected against it rather than against
	// NextCheckpoint, which the planner retargets ahead of the simulator's
	// confirmation.
	lastTelemetryCheckpoint int

	Boost  Resource
	Shield Resource
	// ShieldThisTick is set when this tick's command is SHIELD. It is
	// per-tick scratch, cleared by the next telemetry fold; Shield above is
	// the one-shot ledger.
	ShieldThisTick bool

	// AimPoint is this tick's computed steering target.
	AimPoint mgl64.Vec2
	// Planned is this tick's computed propulsion command.
	Planned game.Command
}

// Telemetry is one pod line of a tick's input block.
type Telemetry struct {
	X, Y           int
	VX, VY         int
	AngleDegrees   int
	NextCheckpoint int
}

// New returns a pod in its pre-first-tick state: all kinematics zero, both
// one-shot resources available.
func New(id int, role Role) *Pod {
	return &Pod{ID: id, Role: role}
}

// ApplyTelemetry folds one tick of raw telemetry into the pod. This is the
// single place speed, bearing and distance-to-target are derived; downstream
// components read these fields and never recompute them from raw input.
func (p *Pod) ApplyTelemetry(t Telemetry, c *course.Course) {
	p.PrevVelocity = p.Velocity

	p.Position = mgl64.Vec2{float64(t.X), float64(t.Y)}
	p.Velocity = mgl64.Vec2{float64(t.VX), float64(t.VY)}
	p.Speed = p.Velocity.Len()
	p.HeadingDegrees = float64(t.AngleDegrees)

	if t.NextCheckpoint == 0 && p.lastTelemetryCheckpoint != 0 {
		p.Lap++
	}
	p.lastTelemetryCheckpoint = t.NextCheckpoint
	p.NextCheckpoint = t.NextCheckpoint
	p.CheckpointPos = c.Checkpoint(t.NextCheckpoint)
	p.DistanceToTarget = smath.Distance(p.Position, p.CheckpointPos)
	p.BearingToTarget = smath.Bearing(p.Position, p.CheckpointPos, p.HeadingDegrees)

	p.ShieldThisTick = false
	p.Planned = game.Command{}
	p.AimPoint = p.CheckpointPos
}

// Retarget points the pod's navigation fields at checkpoint id. It is used
// when the progress tracker advances the target ahead of the simulator.
func (p *Pod) Retarget(id int, c *course.Course) {
	p.NextCheckpoint = id % c.Count()
	p.CheckpointPos = c.Checkpoint(p.NextCheckpoint)
	p.DistanceToTarget = smath.Distance(p.Position, p.CheckpointPos)
	p.BearingToTarget = smath.Bearing(p.Position, p.CheckpointPos, p.HeadingDegrees)
}

// ConsumeBoost marks the pod's boost as spent. It reports whether the boost
// was available; a second call in the same match returns false and changes
// nothing, which makes double spending structurally impossible for callers
// that branch on the return value.
func (p *Pod) ConsumeBoost() bool {
	if p.Boost == ResourceConsumed {
		return false
	}
	p.Boost = ResourceConsumed
	return true
}

// ConsumeShield marks the one-shot shield ledger. Like ConsumeBoost it is
// idempotent: only the first call in a match reports a fresh consumption.
// The SHIELD command itself may still be issued again later if policy allows;
// only the bookkeeping is one-shot.
func (p *Pod) ConsumeShield() bool {
	if p.Shield == ResourceConsumed {
		return false
	}
	p.Shield = ResourceConsumed
	return true
}
