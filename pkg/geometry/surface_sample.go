package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/macroing/go-geometry-kernel/pkg/core"
)

// SurfaceSample is a stochastically chosen point on a shape's surface,
// together with the surface normal there and the probability density of the
// choice, measured per unit solid angle at the reference point it was sampled
// from. Immutable.
type SurfaceSample struct {
	Point  core.Vec3
	Normal core.Vec3
	PDF    float64
}

// Transformed maps the sample between object and world space through a
// matched forward/inverse matrix pair. The point follows objectToWorld, the
// normal follows the inverse transpose, and the PDF is a frame-invariant
// scalar copied through unchanged.
func (s SurfaceSample) Transformed(objectToWorld, worldToObject mgl64.Mat4) SurfaceSample {
	p := mgl64.TransformCoordinate(mgl64.Vec3{s.Point.X, s.Point.Y, s.Point.Z}, objectToWorld)
	n := mgl64.TransformNormal(mgl64.Vec3{s.Normal.X, s.Normal.Y, s.Normal.Z}, worldToObject.Transpose())

	return SurfaceSample{
		Point:  core.NewVec3(p.X(), p.Y(), p.Z()),
		Normal: core.NewVec3(n.X(), n.Y(), n.Z()).Normalize(),
		PDF:    s.PDF,
	}
}
