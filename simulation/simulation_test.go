package simulation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/game"
	"github.com/strikepod/strikepod/pod"
)

func TestPredictFlagsClosingPair(t *testing.T) {
	a := pod.New(0, pod.RoleOwned)
	a.Position = mgl64.Vec2{0, 0}
	a.Velocity = mgl64.Vec2{500, 0}

	b := pod.New(2, pod.RoleOpponent)
	b.Position = mgl64.Vec2{1500, 0}
	b.Velocity = mgl64.Vec2{-500, 0}

	p := NewPredictor(1).Predict(a, b)
	if !p.Collides {
		t.Fatalf("expected collision flag, projected distance %v", p.Distance)
	}
	if p.TimeOfImpact < 0 || p.TimeOfImpact >= 1 {
		t.Fatalf("expected time of impact within the tick, got %v", p.TimeOfImpact)
	}
}

func TestPredictIgnoresSeparatingPair(t *testing.T) {
	a := pod.New(0, pod.RoleOwned)
	a.Position = mgl64.Vec2{0, 0}
	a.Velocity = mgl64.Vec2{-300, 0}

	b := pod.New(2, pod.RoleOpponent)
	b.Position = mgl64.Vec2{3000, 0}
	b.Velocity = mgl64.Vec2{300, 0}

	p := NewPredictor(2).Predict(a, b)
	if p.Collides {
		t.Fatalf("separating pods flagged as colliding at distance %v", p.Distance)
	}
	if p.TimeOfImpact != -1 {
		t.Fatalf("expected no time of impact, got %v", p.TimeOfImpact)
	}
}

func TestResolveSwapsAlongImpactAxis(t *testing.T) {
	// Head-on along the x axis: the along-axis components must swap exactly,
	// the perpendicular components must survive untouched.
	posA := mgl64.Vec2{0, 0}
	posB := mgl64.Vec2{800, 0}
	velA := mgl64.Vec2{400, 70}
	velB := mgl64.Vec2{-400, -30}

	outA, outB := Resolve(posA, posB, velA, velB)

	approx := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	if !approx(outA.X(), -400) || !approx(outB.X(), 400) {
		t.Fatalf("along-axis velocities not swapped: %v %v", outA, outB)
	}
	if !approx(outA.Y(), 70) || !approx(outB.Y(), -30) {
		t.Fatalf("perpendicular velocities changed: %v %v", outA, outB)
	}
}

func TestResolveSymmetric(t *testing.T) {
	posA := mgl64.Vec2{100, 250}
	posB := mgl64.Vec2{700, 600}
	velA := mgl64.Vec2{320, -40}
	velB := mgl64.Vec2{-150, 90}

	a1, b1 := Resolve(posA, posB, velA, velB)
	b2, a2 := Resolve(posB, posA, velB, velA)

	approx := func(a, b mgl64.Vec2) bool {
		return math.Abs(a.X()-b.X()) < 1e-9 && math.Abs(a.Y()-b.Y()) < 1e-9
	}
	if !approx(a1, a2) || !approx(b1, b2) {
		t.Fatalf("resolution depends on argument order: %v/%v vs %v/%v", a1, b1, a2, b2)
	}
}

func TestBounceMinimumImpulse(t *testing.T) {
	// A barely-moving graze still transfers at least the minimum impulse.
	posA := mgl64.Vec2{0, 0}
	posB := mgl64.Vec2{799, 0}
	velA := mgl64.Vec2{1, 0}
	velB := mgl64.Vec2{0, 0}

	outA, outB := Bounce(posA, posB, velA, velB, 1, 1)
	transfer := outB.Sub(velB).Len()
	if transfer < game.MinImpulse {
		t.Fatalf("expected at least the minimum impulse %v, got %v", game.MinImpulse, transfer)
	}
	if outA.X() >= velA.X() {
		t.Fatalf("impacting pod should have been pushed back, got %v", outA)
	}
}

func TestBounceShieldMass(t *testing.T) {
	posA := mgl64.Vec2{0, 0}
	posB := mgl64.Vec2{800, 0}
	velA := mgl64.Vec2{500, 0}
	velB := mgl64.Vec2{0, 0}

	_, lightHit := Bounce(posA, posB, velA, velB, 1, 1)
	_, heavyHit := Bounce(posA, posB, velA, velB, game.ShieldMass, 1)

	if heavyHit.Len() <= lightHit.Len() {
		t.Fatalf("a shielded impactor should transfer more momentum: %v vs %v", heavyHit.Len(), lightHit.Len())
	}
}
