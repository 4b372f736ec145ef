package geometry

import (
	"github.com/macroing/go-geometry-kernel/pkg/core"
)

const (
	// tEpsilon rejects parametric distances so small that the hit would be
	// the surface the ray just left (shadow acne).
	tEpsilon = 1e-4

	// parallelEpsilon guards determinants and denominators of nearly
	// parallel configurations.
	parallelEpsilon = 1e-8
)

// Shape is the contract for ray-intersectable primitives.
//
// IntersectionT is the hot path: it returns only the parametric distance and
// signals a miss with NaN, so shadow rays pay for nothing they do not need.
// The differential-geometry queries re-derive their results from the ray and
// distance on demand; Intersection memoizes them.
//
// All implementations are immutable after construction and safe for
// unrestricted concurrent use.
type Shape interface {
	// IntersectionT returns the smallest admissible parametric distance at
	// which ray hits the shape, or NaN if there is no hit.
	IntersectionT(ray core.Ray) float64

	// SurfaceNormal returns the unit surface normal at the hit ray.At(t).
	// With faceForward set, the normal is flipped to oppose the ray
	// direction.
	SurfaceNormal(ray core.Ray, t float64, faceForward bool) core.Vec3

	// TextureCoordinates returns the (u, v) texture coordinates at the hit
	// ray.At(t).
	TextureCoordinates(ray core.Ray, t float64) core.Vec2

	// Sample picks a point on the shape's surface for area-light
	// integration, as seen from a reference point and its surface normal.
	// The sample pair drives the stochastic choice; the PDF of the returned
	// sample is measured per unit solid angle at the reference point.
	// Returns false when the shape does not support sampling or the
	// configuration is degenerate.
	Sample(refPoint, refNormal core.Vec3, sample core.Vec2) (SurfaceSample, bool)

	// SolidAnglePDF returns the probability density, per unit solid angle at
	// the reference point, of Sample having produced the given surface point
	// and normal. Zero when the shape does not support sampling.
	SolidAnglePDF(refPoint, refNormal, point, normal core.Vec3) float64

	// BoundingVolume returns a volume enclosing the shape.
	BoundingVolume() BoundingVolume
}
