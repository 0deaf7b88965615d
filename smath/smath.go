package smath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Distance returns the Euclidean distance between two points.
func Distance(a, b mgl64.Vec2) float64 {
	return b.Sub(a).Len()
}

// WorldAngle returns the angle of the vector origin->target in degrees, in
// [0, 360). The simulator reports pod headings in the same frame.
func WorldAngle(origin, target mgl64.Vec2) float64 {
	d := target.Sub(origin)
	a := math.Atan2(d.Y(), d.X()) * (180.0 / math.Pi)
	if a < 0 {
		a += 360.0
	}
	return a
}

// Bearing returns the signed angle from a heading (degrees, world frame) to
// the direction origin->target, normalized into (-180, 180]. When origin and
// target coincide the bearing is defined to be 0; atan2(0, 0) already yields
// 0, and callers rely on that instead of treating it as an error.
func Bearing(origin, target mgl64.Vec2, headingDeg float64) float64 {
	return normalize(WorldAngle(origin, target) - headingDeg)
}

// Rotate rotates v by rad radians.
func Rotate(v mgl64.Vec2, rad float64) mgl64.Vec2 {
	sin, cos := math.Sincos(rad)
	return mgl64.Vec2{v.X()*cos - v.Y()*sin, v.X()*sin + v.Y()*cos}
}

// RoundVec rounds both components of v to the nearest integer.
func RoundVec(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{math.Round(v.X()), math.Round(v.Y())}
}

func normalize(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a <= -180.0 {
		a += 360.0
	} else if a > 180.0 {
		a -= 360.0
	}
	return a
}
