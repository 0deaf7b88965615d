package policy

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/config"
	"github.com/strikepod/strikepod/pod"
	"github.com/strikepod/strikepod/simulation"
)

func closingPair() (*pod.Pod, *pod.Pod, simulation.Prediction) {
	self := pod.New(0, pod.RoleOwned)
	self.Position = mgl64.Vec2{0, 0}
	self.Velocity = mgl64.Vec2{400, 0}
	self.HeadingDegrees = 0
	self.CheckpointPos = mgl64.Vec2{5000, 0}

	other := pod.New(2, pod.RoleOpponent)
	other.Position = mgl64.Vec2{1200, 0}
	other.Velocity = mgl64.Vec2{-400, 0}
	other.HeadingDegrees = 180

	pred := simulation.NewPredictor(1).Predict(self, other)
	return self, other, pred
}

func TestHeadOnShieldsFrontalImpact(t *testing.T) {
	self, other, pred := closingPair()
	if !pred.Collides {
		t.Fatalf("fixture pair should collide, projected distance %v", pred.Distance)
	}

	d := NewHeadOn(75, 120).Evaluate(self, other, pred)
	if !d.Shield {
		t.Fatalf("expected shield against a fast head-on impact")
	}
}

func TestHeadOnIgnoresGlancingImpact(t *testing.T) {
	self, other, pred := closingPair()
	// Same course, but the opponent travels nearly parallel to us.
	other.HeadingDegrees = 20
	other.Velocity = mgl64.Vec2{380, 80}

	d := NewHeadOn(75, 120).Evaluate(self, other, pred)
	if d.Shield {
		t.Fatalf("glancing impact should not trigger a shield")
	}
}

func TestHeadOnIgnoresSlowImpact(t *testing.T) {
	self, other, pred := closingPair()
	self.Velocity = mgl64.Vec2{30, 0}
	other.Velocity = mgl64.Vec2{-40, 0}

	d := NewHeadOn(75, 120).Evaluate(self, other, pred)
	if d.Shield {
		t.Fatalf("slow impact should not trigger a shield")
	}
}

func TestBenefitShieldsSetback(t *testing.T) {
	self, other, pred := closingPair()
	// The opponent rams us head-on while we head for the checkpoint: the
	// impulse exchange reverses our along-route velocity.
	d := NewBenefit(10).Evaluate(self, other, pred)
	if !d.Shield {
		t.Fatalf("expected shield against a collision that reverses route progress")
	}
}

func TestBenefitIgnoresPushForward(t *testing.T) {
	self, other, pred := closingPair()
	// A faster opponent rear-ends us toward the checkpoint.
	self.Velocity = mgl64.Vec2{100, 0}
	other.Position = mgl64.Vec2{-900, 0}
	other.Velocity = mgl64.Vec2{600, 0}
	pred = simulation.NewPredictor(1).Predict(self, other)
	if !pred.Collides {
		t.Fatalf("fixture pair should collide, projected distance %v", pred.Distance)
	}

	d := NewBenefit(10).Evaluate(self, other, pred)
	if d.Shield {
		t.Fatalf("a shove toward the checkpoint should not trigger a shield")
	}
}

func TestNoShieldWithoutPredictedCollision(t *testing.T) {
	self, other, _ := closingPair()
	d := NewHeadOn(75, 120).Evaluate(self, other, simulation.Prediction{})
	if d.Shield {
		t.Fatalf("no predicted collision must never shield")
	}
}

func TestForName(t *testing.T) {
	for _, name := range []string{"headon", "benefit", "none"} {
		if _, err := ForName(config.Tuning{ShieldPolicy: name}); err != nil {
			t.Fatalf("expected policy for %q, got error %v", name, err)
		}
	}
	if _, err := ForName(config.Tuning{ShieldPolicy: "aggressive"}); err == nil {
		t.Fatalf("expected error for unknown policy name")
	}
}
