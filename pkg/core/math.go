package core

import "math"

// Clamp restricts x to the range [minVal, maxVal]
func Clamp(x, minVal, maxVal float64) float64 {
	return max(minVal, min(maxVal, x))
}

// Saturate restricts x to the range [0, 1]
func Saturate(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Lerp linearly interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SolveQuadratic solves a*t² + b*t + c = 0 and returns the two real roots in
// ascending order. Both roots are NaN when the discriminant is negative.
// NaN is the library-wide miss sentinel, so the result feeds directly into
// intersection code without branching on a separate "no roots" flag.
func SolveQuadratic(a, b, c float64) (float64, float64) {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return math.NaN(), math.NaN()
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1
}
