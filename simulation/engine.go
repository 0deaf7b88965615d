package simulation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/course"
	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/smath"
)

// EnginePod is one pod inside the offline engine.
type EnginePod struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2
	// AngleDegrees is the pod's heading in [0,360).
	AngleDegrees float64
	// Next is the id of the pod's next checkpoint.
	Next int
	// Passed counts checkpoints passed since the start, laps included.
	Passed int
	// ShieldTimer is the remaining thrust lockout from a SHIELD command.
	ShieldTimer int
	// Boosted is set once the pod has spent its boost.
	Boosted bool
}

// Move is one pod's command for an engine step.
type Move struct {
	Target  mgl64.Vec2
	Command game.Command
}

// Engine replicates the race simulator's turn resolution: rotation clamping,
// thrust along the heading, continuous collision resolution with the minimum
// impulse floor, end-of-turn friction truncation and position rounding. The
// arena harness races agents on it; tests use it as physics ground truth.
type Engine struct {
	Course *course.Course
	Pods   [4]EnginePod
}

// NewEngine places the four pods on the start line, perpendicular to the
// first leg, all targeting checkpoint 1.
func NewEngine(c *course.Course) *Engine {
	e := &Engine{Course: c}

	dir := c.Checkpoint(1).Sub(c.Checkpoint(0))
	dir = dir.Mul(1 / dir.Len())
	offsets := [4]float64{500, -500, 1500, -1500}

	for i := range e.Pods {
		p := &e.Pods[i]
		p.Pos = c.Checkpoint(0).Add(mgl64.Vec2{dir.Y(), -dir.X()}.Mul(offsets[i]))
		p.Next = 1
		p.AngleDegrees = smath.WorldAngle(p.Pos, c.Checkpoint(1))
	}
	return e
}

// Step advances the engine one tick with the given four moves, in pod order.
func (e *Engine) Step(moves [4]Move) {
	for i := range e.Pods {
		p := &e.Pods[i]
		m := moves[i]

		thrust := 0
		switch m.Command.Kind {
		case game.CommandShield:
			p.ShieldTimer = game.ShieldLockTicks
		case game.CommandBoost:
			if !p.Boosted {
				p.Boosted = true
				thrust = game.BoostThrust
			} else {
				thrust = 200
			}
		default:
			thrust = m.Command.Power
		}
		if p.ShieldTimer > 0 {
			thrust = 0
		}

		p.rotateToward(m.Target)
		rad := p.AngleDegrees * (math.Pi / 180)
		p.Vel = p.Vel.Add(mgl64.Vec2{math.Cos(rad), math.Sin(rad)}.Mul(float64(thrust)))
	}

	e.resolveTurn()

	for i := range e.Pods {
		p := &e.Pods[i]
		p.Vel = mgl64.Vec2{math.Trunc(p.Vel.X() * game.FrictionFactor), math.Trunc(p.Vel.Y() * game.FrictionFactor)}
		p.Pos = smath.RoundVec(p.Pos)
		if p.ShieldTimer > 0 {
			p.ShieldTimer--
		}
	}
}

// rotateToward turns the pod toward target, clamped to the per-tick limit.
func (p *EnginePod) rotateToward(target mgl64.Vec2) {
	diff := smath.Bearing(p.Pos, target, p.AngleDegrees)
	diff = game.ClampFloat(diff, -game.MaxRotationDegrees, game.MaxRotationDegrees)
	p.AngleDegrees = math.Mod(p.AngleDegrees+diff+360, 360)
}

// resolveTurn moves all pods through one tick of continuous time, resolving
// pod-pod bounces in impact order and checkpoint passes along the way.
func (e *Engine) resolveTurn() {
	t := 0.0
	for t < 1.0 {
		first := 1.0 - t
		ci, cj := -1, -1
		for i := range e.Pods {
			for j := i + 1; j < len(e.Pods); j++ {
				tx := timeOfImpact(e.Pods[i].Pos, e.Pods[j].Pos, e.Pods[i].Vel, e.Pods[j].Vel)
				if tx > 0 && tx < first {
					first = tx
					ci, cj = i, j
				}
			}
		}

		e.forward(first)
		t += first
		if ci >= 0 {
			a, b := &e.Pods[ci], &e.Pods[cj]
			a.Vel, b.Vel = Bounce(a.Pos, b.Pos, a.Vel, b.Vel, a.mass(), b.mass())
		}
	}
}

// forward advances every pod dt of a tick and credits checkpoint passes.
func (e *Engine) forward(dt float64) {
	for i := range e.Pods {
		p := &e.Pods[i]
		cp := e.Course.Checkpoint(p.Next)
		if hitsCheckpoint(p.Pos, p.Vel, cp, dt) {
			p.Next = e.Course.Next(p.Next)
			p.Passed++
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	}
}

func (p *EnginePod) mass() float64 {
	if p.ShieldTimer == game.ShieldLockTicks {
		return game.ShieldMass
	}
	return 1
}

// hitsCheckpoint reports whether a pod moving at vel crosses into the
// checkpoint disc within dt of a tick.
func hitsCheckpoint(pos, vel, cp mgl64.Vec2, dt float64) bool {
	rsq := (game.CheckpointRadius - 1) * (game.CheckpointRadius - 1)

	p := cp.Sub(pos)
	if p.Dot(p) <= rsq {
		return true
	}
	dot := p.Dot(vel.Mul(-1))
	if dot > 0 {
		return false
	}
	vLenSq := vel.Dot(vel)
	disc := dot*dot - vLenSq*(p.Dot(p)-rsq)
	if disc < 0 || vLenSq == 0 {
		return false
	}
	tx := (-dot - math.Sqrt(disc)) / vLenSq
	return tx >= 0 && tx < dt
}
