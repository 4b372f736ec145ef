package geometry

import (
	"math"

	"github.com/macroing/go-geometry-kernel/pkg/core"
)

// Vertex is one corner of a triangle: a position, a shading normal and a pair
// of texture coordinates. Per-vertex normals allow smooth shading distinct
// from the flat face normal.
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
	UV       core.Vec2
}

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	A, B, C Vertex

	bounds *AxisAlignedBox // cached
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c Vertex) *Triangle {
	return &Triangle{
		A:      a,
		B:      b,
		C:      c,
		bounds: NewAxisAlignedBoxFromPoints(a.Position, b.Position, c.Position),
	}
}

// intersection runs the Möller-Trumbore test and returns the parametric
// distance together with the barycentric weights of B and C. The weight of A
// is 1-u-v. Reports false for parallel rays, hits outside the triangle and
// distances below tEpsilon.
func (t *Triangle) intersection(ray core.Ray) (tHit, u, v float64, ok bool) {
	ab := t.B.Position.Subtract(t.A.Position)
	ac := t.C.Position.Subtract(t.A.Position)

	v0 := ray.Direction.Cross(ac)
	determinant := ab.Dot(v0)

	// Near-zero determinant means the ray lies in the triangle plane
	if determinant > -parallelEpsilon && determinant < parallelEpsilon {
		return 0, 0, 0, false
	}

	inv := 1.0 / determinant
	v1 := ray.Origin.Subtract(t.A.Position)
	u = inv * v1.Dot(v0)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	v2 := v1.Cross(ab)
	v = inv * ray.Direction.Dot(v2)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	tHit = inv * ac.Dot(v2)
	if tHit < tEpsilon {
		return 0, 0, 0, false
	}

	return tHit, u, v, true
}

// IntersectionT returns the parametric distance to the triangle, or NaN if
// the ray misses
func (t *Triangle) IntersectionT(ray core.Ray) float64 {
	tHit, _, _, ok := t.intersection(ray)
	if !ok {
		return math.NaN()
	}
	return tHit
}

// FaceNormal returns the flat geometric normal of the triangle plane,
// following the winding order of the vertices
func (t *Triangle) FaceNormal() core.Vec3 {
	ab := t.B.Position.Subtract(t.A.Position)
	ac := t.C.Position.Subtract(t.A.Position)
	return ab.Cross(ac).Normalize()
}

// SurfaceNormal interpolates the three vertex normals by the barycentric
// weights of the hit and re-normalizes. With faceForward set, the result is
// flipped when it does not oppose the ray direction. Falls back to the face
// normal when the vertex normals cancel out.
func (t *Triangle) SurfaceNormal(ray core.Ray, _ float64, faceForward bool) core.Vec3 {
	_, u, v, ok := t.intersection(ray)
	if !ok {
		return t.FaceNormal()
	}

	w := 1.0 - u - v
	normal := t.A.Normal.Multiply(w).
		Add(t.B.Normal.Multiply(u)).
		Add(t.C.Normal.Multiply(v))
	if normal.LengthSquared() == 0 {
		normal = t.FaceNormal()
	} else {
		normal = normal.Normalize()
	}

	if faceForward && normal.Dot(ray.Direction) >= 0 {
		normal = normal.Negate()
	}
	return normal
}

// TextureCoordinates interpolates the per-vertex texture coordinates by the
// barycentric weights of the hit
func (t *Triangle) TextureCoordinates(ray core.Ray, _ float64) core.Vec2 {
	_, u, v, ok := t.intersection(ray)
	if !ok {
		return core.NewVec2(0, 0)
	}

	w := 1.0 - u - v
	return t.A.UV.Multiply(w).
		Add(t.B.UV.Multiply(u)).
		Add(t.C.UV.Multiply(v))
}

// Area returns the surface area of the triangle
func (t *Triangle) Area() float64 {
	ab := t.B.Position.Subtract(t.A.Position)
	ac := t.C.Position.Subtract(t.A.Position)
	return 0.5 * ab.Cross(ac).Length()
}

// BoundingVolume returns the axis-aligned box enclosing the three vertices
func (t *Triangle) BoundingVolume() BoundingVolume {
	return t.bounds
}

// Sample picks a point uniformly by area on the triangle via the square-root
// barycentric transform and converts the area PDF to solid-angle measure at
// the reference point. Returns false for degenerate triangles and grazing
// connections.
func (t *Triangle) Sample(refPoint, refNormal core.Vec3, sample core.Vec2) (SurfaceSample, bool) {
	area := t.Area()
	if area == 0 {
		return SurfaceSample{}, false
	}

	b0, b1 := core.SampleTriangleUniform(sample)
	b2 := 1.0 - b0 - b1

	point := t.A.Position.Multiply(b0).
		Add(t.B.Position.Multiply(b1)).
		Add(t.C.Position.Multiply(b2))

	normal := t.A.Normal.Multiply(b0).
		Add(t.B.Normal.Multiply(b1)).
		Add(t.C.Normal.Multiply(b2))
	if normal.LengthSquared() == 0 {
		normal = t.FaceNormal()
	} else {
		normal = normal.Normalize()
	}

	direction := point.Subtract(refPoint)
	distanceSquared := direction.LengthSquared()
	if distanceSquared == 0 {
		return SurfaceSample{}, false
	}

	cosTheta := math.Abs(direction.Normalize().Dot(normal))
	if cosTheta < parallelEpsilon {
		return SurfaceSample{}, false
	}

	pdf := distanceSquared / (cosTheta * area)
	return SurfaceSample{Point: point, Normal: normal, PDF: pdf}, true
}

// SolidAnglePDF returns the solid-angle probability density of Sample having
// produced the given surface point. The density is the uniform area PDF 1/area
// converted by the Jacobian distance²/|cosθ|; directions that do not actually
// reach the triangle have zero density.
func (t *Triangle) SolidAnglePDF(refPoint, refNormal, point, normal core.Vec3) float64 {
	area := t.Area()
	if area == 0 {
		return 0
	}

	direction := point.Subtract(refPoint)
	distanceSquared := direction.LengthSquared()
	if distanceSquared == 0 {
		return 0
	}
	direction = direction.Normalize()

	if math.IsNaN(t.IntersectionT(core.NewRay(refPoint, direction))) {
		return 0
	}

	cosTheta := math.Abs(direction.Dot(normal))
	if cosTheta < parallelEpsilon {
		return 0
	}

	return distanceSquared / (cosTheta * area)
}
