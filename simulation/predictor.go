package simulation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/smath"
)

// Options define predictor behavior.
type Options struct {
	// LookaheadTicks is how many ticks ahead positions are projected. 1 is
	// the normal mode; 2 trades earlier warnings for more false positives.
	LookaheadTicks int

	// Debugf receives internal prediction trace logs for callers that need
	// deep diagnostics.
	Debugf func(format string, args ...any)
}

// Prediction is the outcome of projecting two pods forward.
type Prediction struct {
	// Collides is true when the projected discs overlap within the lookahead.
	Collides bool
	// Distance is the projected center distance at the lookahead horizon.
	Distance float64
	// TimeOfImpact is the continuous time within the next tick at which the
	// discs first touch, in [0,1), or -1 when they do not touch this tick.
	TimeOfImpact float64
}

// Predictor projects pod pairs one or two ticks ahead under the simulator's
// velocity decay and flags impending overlaps. It is a pure reader of pod
// state.
type Predictor struct {
	Options Options
}

// NewPredictor returns a predictor with the given lookahead.
func NewPredictor(lookahead int) *Predictor {
	if lookahead < 1 {
		lookahead = 1
	}
	return &Predictor{Options: Options{LookaheadTicks: lookahead}}
}

// Predict projects a and b forward and reports whether their discs are
// expected to overlap.
func (pr *Predictor) Predict(a, b *pod.Pod) Prediction {
	posA, velA := a.Position, a.Velocity
	posB, velB := b.Position, b.Velocity

	for i := 0; i < pr.Options.LookaheadTicks; i++ {
		posA = posA.Add(velA.Mul(game.FrictionFactor))
		posB = posB.Add(velB.Mul(game.FrictionFactor))
		velA = velA.Mul(game.FrictionFactor)
		velB = velB.Mul(game.FrictionFactor)
	}

	p := Prediction{
		Distance:     smath.Distance(posA, posB),
		TimeOfImpact: timeOfImpact(a.Position, b.Position, a.Velocity, b.Velocity),
	}
	p.Collides = p.Distance <= 2*game.PodRadius

	if pr.Options.Debugf != nil {
		pr.Options.Debugf("predict %d-%d: dist=%.1f toi=%.3f collides=%v", a.ID, b.ID, p.Distance, p.TimeOfImpact, p.Collides)
	}
	return p
}

// timeOfImpact solves for the first t in [0,1) at which the two discs touch
// under constant velocities, the same quadratic the simulator resolves
// collisions with. Returns -1 when they do not touch this tick.
func timeOfImpact(posA, posB, velA, velB mgl64.Vec2) float64 {
	rsq := (2 * game.PodRadius) * (2 * game.PodRadius)

	p := posB.Sub(posA)
	if p.Dot(p) <= rsq {
		return 0
	}

	v := velB.Sub(velA)
	dot := p.Dot(v)
	if dot > 0 {
		return -1
	}

	vLenSq := v.Dot(v)
	disc := dot*dot - vLenSq*(p.Dot(p)-rsq)
	if disc < 0 || vLenSq == 0 {
		return -1
	}

	t := (-dot - math.Sqrt(disc)) / vLenSq
	if t >= 0 && t < 1 {
		return t
	}
	return -1
}
