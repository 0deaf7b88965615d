package simulation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/strikepod/strikepod/course"
	"github.com/strikepod/strikepod/game"
)

func engineCourse(t *testing.T) *course.Course {
	t.Helper()
	c, err := course.New(3, []mgl64.Vec2{{0, 0}, {10000, 0}, {10000, 5000}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestEngineThrustAndFriction(t *testing.T) {
	eng := NewEngine(engineCourse(t))
	p := &eng.Pods[0]
	p.Pos = mgl64.Vec2{0, 2000}
	p.Vel = mgl64.Vec2{}
	p.AngleDegrees = 0

	var moves [4]Move
	for i := range moves {
		moves[i].Target = eng.Pods[i].Pos // no rotation
	}
	moves[0] = Move{Target: mgl64.Vec2{20000, 2000}, Command: game.Thrust(100)}
	eng.Step(moves)

	if p.Pos != (mgl64.Vec2{100, 2000}) {
		t.Fatalf("expected position (100,2000), got %v", p.Pos)
	}
	if p.Vel != (mgl64.Vec2{85, 0}) {
		t.Fatalf("expected friction-truncated velocity (85,0), got %v", p.Vel)
	}
}

func TestEngineRotationClamp(t *testing.T) {
	eng := NewEngine(engineCourse(t))
	p := &eng.Pods[0]
	p.Pos = mgl64.Vec2{0, 2000}
	p.AngleDegrees = 0

	var moves [4]Move
	for i := range moves {
		moves[i].Target = eng.Pods[i].Pos
	}
	// Target straight up: a 90 degree turn request.
	moves[0] = Move{Target: mgl64.Vec2{0, 20000}, Command: game.Thrust(0)}
	eng.Step(moves)

	if math.Abs(p.AngleDegrees-game.MaxRotationDegrees) > 1e-9 {
		t.Fatalf("expected heading clamped to %v, got %v", game.MaxRotationDegrees, p.AngleDegrees)
	}
}

func TestEngineShieldLocksThrust(t *testing.T) {
	eng := NewEngine(engineCourse(t))
	p := &eng.Pods[0]
	p.Pos = mgl64.Vec2{0, 2000}
	p.Vel = mgl64.Vec2{}
	p.AngleDegrees = 0

	var moves [4]Move
	for i := range moves {
		moves[i].Target = eng.Pods[i].Pos
	}
	moves[0] = Move{Target: mgl64.Vec2{20000, 2000}, Command: game.Shield()}
	eng.Step(moves)

	if p.Vel != (mgl64.Vec2{}) {
		t.Fatalf("shielded pod should not thrust, got velocity %v", p.Vel)
	}

	// Thrust stays locked while the timer runs down.
	moves[0].Command = game.Thrust(100)
	eng.Step(moves)
	if p.Vel != (mgl64.Vec2{}) {
		t.Fatalf("thrust should stay locked after a shield, got velocity %v", p.Vel)
	}
}

func TestEngineCheckpointPass(t *testing.T) {
	eng := NewEngine(engineCourse(t))
	p := &eng.Pods[0]
	p.Pos = mgl64.Vec2{9000, 0}
	p.Vel = mgl64.Vec2{1500, 0}
	p.AngleDegrees = 0

	var moves [4]Move
	for i := range moves {
		moves[i].Target = eng.Pods[i].Pos
	}
	moves[0] = Move{Target: mgl64.Vec2{20000, 0}, Command: game.Thrust(0)}
	eng.Step(moves)

	if p.Next != 2 {
		t.Fatalf("expected pod to pass checkpoint 1, next is %d", p.Next)
	}
	if p.Passed != 1 {
		t.Fatalf("expected 1 checkpoint passed, got %d", p.Passed)
	}
}

func TestEngineStartLine(t *testing.T) {
	eng := NewEngine(engineCourse(t))
	for i := range eng.Pods {
		p := eng.Pods[i]
		if p.Next != 1 {
			t.Fatalf("pod %d should target checkpoint 1, got %d", i, p.Next)
		}
		if d := p.Pos.Sub(mgl64.Vec2{0, 0}).Len(); d < 400 || d > 1600 {
			t.Fatalf("pod %d starts %v from checkpoint 0", i, d)
		}
	}
}
