package simulation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/smath"
)

// Resolve computes the post-collision velocities of an equal-mass elastic
// collision between two pods. Velocities are rotated into the line-of-impact
// frame, the along-axis components are swapped and the perpendicular
// components kept, then rotated back. The transform is symmetric in its
// arguments.
func Resolve(posA, posB, velA, velB mgl64.Vec2) (mgl64.Vec2, mgl64.Vec2) {
	d := posB.Sub(posA)
	impact := math.Atan2(d.Y(), d.X())

	la := smath.Rotate(velA, -impact)
	lb := smath.Rotate(velB, -impact)

	// Equal masses: each pod leaves with the other's along-axis velocity.
	la[0], lb[0] = lb[0], la[0]

	return smath.Rotate(la, impact), smath.Rotate(lb, impact)
}

// Bounce applies the simulator's full impulse exchange, including unequal
// masses for shielded pods and the minimum impulse floor, and returns the
// post-collision velocities. The arena runner uses it as ground truth; the
// benefit shield policy uses it to project how hard an impact moves a pod off
// its route.
func Bounce(posA, posB, velA, velB mgl64.Vec2, massA, massB float64) (mgl64.Vec2, mgl64.Vec2) {
	n := posA.Sub(posB)
	nLenSq := n.Dot(n)
	if nLenSq == 0 {
		return velA, velB
	}

	mcoeff := (massA + massB) / (massA * massB)
	dv := velA.Sub(velB)
	product := n.Dot(dv)

	f := n.Mul(product / (nLenSq * mcoeff))

	velA = velA.Sub(f.Mul(1 / massA))
	velB = velB.Add(f.Mul(1 / massB))

	impulse := f.Len()
	if impulse < game.MinImpulse && impulse > 0 {
		f = f.Mul(game.MinImpulse / impulse)
	}

	velA = velA.Sub(f.Mul(1 / massA))
	velB = velB.Add(f.Mul(1 / massB))
	return velA, velB
}
