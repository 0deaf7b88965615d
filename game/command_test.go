package game

import "testing"

func TestThrustClamped(t *testing.T) {
	if c := Thrust(-20); c.Power != 0 {
		t.Fatalf("expected negative thrust to clamp to 0, got %d", c.Power)
	}
	if c := Thrust(250); c.Power != MaxThrust {
		t.Fatalf("expected thrust to clamp to %d, got %d", MaxThrust, c.Power)
	}
}

func TestCommandString(t *testing.T) {
	if s := Thrust(73).String(); s != "73" {
		t.Fatalf("unexpected thrust encoding %q", s)
	}
	if s := Boost().String(); s != "BOOST" {
		t.Fatalf("unexpected boost encoding %q", s)
	}
	if s := Shield().String(); s != "SHIELD" {
		t.Fatalf("unexpected shield encoding %q", s)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	cases := []struct {
		in, out float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{360, 0},
		{-90, -90},
		{540, 180},
		{-541, 179},
	}
	for _, c := range cases {
		if got := NormalizeDegrees(c.in); got != c.out {
			t.Fatalf("NormalizeDegrees(%v) = %v, expected %v", c.in, got, c.out)
		}
	}
}
