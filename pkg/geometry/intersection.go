package geometry

import (
	"sync"

	"github.com/macroing/go-geometry-kernel/pkg/core"
)

// Intersection bundles a ray/shape hit. The parametric distance is the only
// eagerly known value; the derived differential geometry (world point, shaded
// normal, texture coordinates, shading frame) duplicates work between the
// intersection test and shading and is not always needed, so each value is
// computed at most once on first access. Shadow rays construct nothing.
//
// Concurrent first access to the same Intersection is safe; each field is
// guarded by its own sync.Once.
type Intersection struct {
	shape Shape
	ray   core.Ray
	t     float64

	pointOnce sync.Once
	point     core.Vec3

	normalOnce sync.Once
	normal     core.Vec3

	uvOnce sync.Once
	uv     core.Vec2

	basisOnce sync.Once
	basis     core.OrthonormalBasis
}

// NewIntersection creates an intersection record for a hit at parametric
// distance t. The shape is referenced, not copied.
func NewIntersection(shape Shape, ray core.Ray, t float64) *Intersection {
	return &Intersection{shape: shape, ray: ray, t: t}
}

// Shape returns the shape that was hit
func (i *Intersection) Shape() Shape {
	return i.shape
}

// Ray returns the ray that produced the hit
func (i *Intersection) Ray() core.Ray {
	return i.ray
}

// T returns the parametric distance of the hit
func (i *Intersection) T() float64 {
	return i.t
}

// Point returns the world-space hit point
func (i *Intersection) Point() core.Vec3 {
	i.pointOnce.Do(func() {
		i.point = i.ray.At(i.t)
	})
	return i.point
}

// SurfaceNormal returns the unit shading normal, oriented to oppose the ray
func (i *Intersection) SurfaceNormal() core.Vec3 {
	i.normalOnce.Do(func() {
		i.normal = i.shape.SurfaceNormal(i.ray, i.t, true)
	})
	return i.normal
}

// TextureCoordinates returns the (u, v) texture coordinates at the hit
func (i *Intersection) TextureCoordinates() core.Vec2 {
	i.uvOnce.Do(func() {
		i.uv = i.shape.TextureCoordinates(i.ray, i.t)
	})
	return i.uv
}

// OrthonormalBasis returns a shading frame whose W axis is the surface normal
func (i *Intersection) OrthonormalBasis() core.OrthonormalBasis {
	i.basisOnce.Do(func() {
		i.basis = core.NewOrthonormalBasisW(i.SurfaceNormal())
	})
	return i.basis
}
