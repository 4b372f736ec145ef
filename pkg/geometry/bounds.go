package geometry

import (
	"math"

	"github.com/macroing/go-geometry-kernel/pkg/core"
)

// BoundingVolume is the shared contract of the bounding shapes (the
// axis-aligned box and the sphere). Implementations are immutable.
type BoundingVolume interface {
	// Minimum returns the componentwise minimum corner of the volume
	Minimum() core.Vec3

	// Maximum returns the componentwise maximum corner of the volume
	Maximum() core.Vec3

	// Midpoint returns the center of the volume
	Midpoint() core.Vec3

	// SurfaceArea returns the surface area of the volume
	SurfaceArea() float64

	// Volume returns the enclosed volume
	Volume() float64

	// ClosestPointTo returns the point of the volume closest to p.
	// A point inside the volume is returned unchanged.
	ClosestPointTo(p core.Vec3) core.Vec3

	// Contains reports whether p lies inside the volume, boundary included
	Contains(p core.Vec3) bool

	// IntersectionT returns the parametric distance at which ray enters the
	// volume, or NaN on a miss
	IntersectionT(ray core.Ray) float64
}

// Intersects reports whether ray hits the volume at a finite distance
func Intersects(v BoundingVolume, ray core.Ray) bool {
	t := v.IntersectionT(ray)
	return !math.IsNaN(t) && !math.IsInf(t, 0)
}

// VolumesIntersect reports whether a overlaps b, tested as "does a's closest
// point to b's midpoint lie inside b".
//
// This is a deliberately approximate one-sided test, not a separating-axis
// overlap test. It can report false negatives for some overlapping
// configurations, and callers relying on it inherit that behavior.
func VolumesIntersect(a, b BoundingVolume) bool {
	return b.Contains(a.ClosestPointTo(b.Midpoint()))
}
