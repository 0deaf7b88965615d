// Package planner turns a pod's derived state into a steering target and a
// propulsion command. It owns the drift-compensated aim point, the
// closing-distance checkpoint advancement and the thrust/boost decision.
package planner

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/config"
	"github.com/strikepod/strikepod/course"
	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/smath"
)

// Planner is a pure-computation component; its only write side effect is
// consuming a pod's boost ledger when it decides to spend it.
type Planner struct {
	course *course.Course
	tuning config.Tuning
}

func New(c *course.Course, t config.Tuning) *Planner {
	return &Planner{course: c, tuning: t}
}

// Aim computes the pod's steering target for this tick and advances the
// target checkpoint when the aim point shows it has been passed. The
// advancement test compares the pod's distance-to-target against the aim
// offset instead of testing a capture radius: the agent cannot rely on its
// radius constant matching the simulator's, but it can tell when the
// checkpoint sits inside the drift offset. Evaluating it again on an
// unchanged state is a no-op.
func (pl *Planner) Aim(p *pod.Pod) mgl64.Vec2 {
	aim := pl.aimFor(p)

	if p.DistanceToTarget < smath.Distance(aim, p.CheckpointPos) {
		p.Retarget(pl.course.Next(p.NextCheckpoint), pl.course)
		aim = pl.aimFor(p)
	}

	p.AimPoint = smath.RoundVec(aim)
	return p.AimPoint
}

// aimFor offsets the raw checkpoint target opposite the current velocity to
// counteract drift. Below the drift speed the raw target is used as-is.
func (pl *Planner) aimFor(p *pod.Pod) mgl64.Vec2 {
	if p.Speed <= pl.tuning.MinDriftSpeed {
		return p.CheckpointPos
	}
	return p.CheckpointPos.Sub(p.Velocity.Mul(pl.tuning.DriftFactor))
}

// Plan maps the pod's bearing error and braking distance to a propulsion
// command. Boost is spent only on the longest straight, inside the bearing
// window, and only once per match; the ledger guard makes a double spend
// structurally impossible.
func (pl *Planner) Plan(p *pod.Pod) game.Command {
	absBearing := math.Abs(p.BearingToTarget)

	if absBearing < pl.tuning.MaxBoostAngle &&
		p.NextCheckpoint == pl.course.BoostCheckpoint() &&
		p.ConsumeBoost() {
		p.Planned = game.Boost()
		return p.Planned
	}

	thrust := float64(game.MaxThrust)

	if absBearing < 90 {
		thrust *= 1 - absBearing/90
	} else {
		thrust = 0
	}

	brakeDistance := pl.tuning.BrakeDistanceFactor * game.CheckpointRadius
	if p.DistanceToTarget < brakeDistance {
		thrust *= p.DistanceToTarget / brakeDistance
	}

	p.Planned = game.Thrust(int(math.Round(thrust)))
	return p.Planned
}
