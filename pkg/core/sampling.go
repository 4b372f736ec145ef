package core

import (
	"math"
	"math/rand"
)

// Sampler provides uniform random samples for sampling algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere maps a uniform sample pair to a uniform direction on the
// unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// SampleCone maps a uniform sample pair to a direction inside the cone of
// half-angle acos(cosThetaMax) around the local +Z axis. Transform the result
// through an OrthonormalBasis to orient the cone in world space.
func SampleCone(cosThetaMax float64, sample Vec2) Vec3 {
	cosTheta := 1.0 - sample.X*(1.0-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)
	z := cosTheta
	return NewVec3(x, y, z)
}

// SampleTriangleUniform maps a uniform sample pair to barycentric weights
// (b0, b1) distributed uniformly by area over a triangle. The third weight is
// 1 - b0 - b1. Uses the square-root transform.
func SampleTriangleUniform(sample Vec2) (float64, float64) {
	su := math.Sqrt(sample.X)
	b0 := 1.0 - su
	b1 := sample.Y * su
	return b0, b1
}
