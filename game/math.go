package game

import "math"

// NormalizeDegrees reduces an angle in degrees into (-180, 180].
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a <= -180.0 {
		a += 360.0
	} else if a > 180.0 {
		a -= 360.0
	}
	return a
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}

// ClampFloat restricts num into [min, max].
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}
