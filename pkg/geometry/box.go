package geometry

import (
	"math"

	"github.com/macroing/go-geometry-kernel/pkg/core"
)

// boxFace identifies one of the six faces of an axis-aligned box
type boxFace int

const (
	faceNone boxFace = iota
	faceNegX
	facePosX
	faceNegY
	facePosY
	faceNegZ
	facePosZ
)

var boxFaceNormals = [...]core.Vec3{
	faceNegX: {X: -1},
	facePosX: {X: 1},
	faceNegY: {Y: -1},
	facePosY: {Y: 1},
	faceNegZ: {Z: -1},
	facePosZ: {Z: 1},
}

// AxisAlignedBox represents a box whose faces are aligned with the coordinate
// axes. It implements both Shape and BoundingVolume.
type AxisAlignedBox struct {
	Min, Max core.Vec3
}

// NewAxisAlignedBox creates a box from two opposite corners, which may be
// given in any order; the corners are re-ordered so Min <= Max componentwise.
func NewAxisAlignedBox(a, b core.Vec3) *AxisAlignedBox {
	return &AxisAlignedBox{
		Min: core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// NewAxisAlignedBoxFromPoints creates the smallest box that bounds all given
// points
func NewAxisAlignedBoxFromPoints(points ...core.Vec3) *AxisAlignedBox {
	if len(points) == 0 {
		return &AxisAlignedBox{}
	}

	minCorner := points[0]
	maxCorner := points[0]
	for _, point := range points[1:] {
		minCorner.X = math.Min(minCorner.X, point.X)
		minCorner.Y = math.Min(minCorner.Y, point.Y)
		minCorner.Z = math.Min(minCorner.Z, point.Z)

		maxCorner.X = math.Max(maxCorner.X, point.X)
		maxCorner.Y = math.Max(maxCorner.Y, point.Y)
		maxCorner.Z = math.Max(maxCorner.Z, point.Z)
	}

	return &AxisAlignedBox{Min: minCorner, Max: maxCorner}
}

// intersection runs the slab test and returns the parametric distance along
// with the face that produced it. The sign of the reciprocal direction
// component selects which corner is the near plane, so there is no branching
// on the direction itself.
//
// A ray that runs exactly in a face plane produces 0·∞ = NaN in that slab;
// such rays must miss, so NaN slabs are rejected explicitly rather than left
// to comparison order.
func (b *AxisAlignedBox) intersection(ray core.Ray) (float64, boxFace) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	nearFace := faceNone
	farFace := faceNone

	for axis := 0; axis < 3; axis++ {
		var minC, maxC, origin, direction float64
		var negFace, posFace boxFace

		switch axis {
		case 0:
			minC, maxC = b.Min.X, b.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
			negFace, posFace = faceNegX, facePosX
		case 1:
			minC, maxC = b.Min.Y, b.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
			negFace, posFace = faceNegY, facePosY
		case 2:
			minC, maxC = b.Min.Z, b.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
			negFace, posFace = faceNegZ, facePosZ
		}

		inv := 1.0 / direction
		t0 := (minC - origin) * inv
		t1 := (maxC - origin) * inv
		f0, f1 := negFace, posFace
		if inv < 0 {
			t0, t1 = t1, t0
			f0, f1 = f1, f0
		}

		if math.IsNaN(t0) || math.IsNaN(t1) {
			return math.NaN(), faceNone
		}

		if t0 > tNear {
			tNear = t0
			nearFace = f0
		}
		if t1 < tFar {
			tFar = t1
			farFace = f1
		}
		if tNear > tFar {
			return math.NaN(), faceNone
		}
	}

	if tFar < tEpsilon {
		return math.NaN(), faceNone
	}
	if tNear > tEpsilon {
		return tNear, nearFace
	}
	// origin inside the box, exit through the far face
	return tFar, farFace
}

// IntersectionT returns the parametric distance at which the ray enters the
// box (or exits it, for an origin inside), or NaN on a miss
func (b *AxisAlignedBox) IntersectionT(ray core.Ray) float64 {
	t, _ := b.intersection(ray)
	return t
}

// SurfaceNormal returns the outward unit normal of the face hit by the ray.
// With faceForward set, the normal is flipped when it does not oppose the ray
// direction.
func (b *AxisAlignedBox) SurfaceNormal(ray core.Ray, _ float64, faceForward bool) core.Vec3 {
	_, face := b.intersection(ray)
	if face == faceNone {
		return core.NewVec3(0, 0, 0)
	}

	normal := boxFaceNormals[face]
	if faceForward && normal.Dot(ray.Direction) >= 0 {
		normal = normal.Negate()
	}
	return normal
}

// TextureCoordinates maps the hit point onto the hit face, each face covering
// [0,1]² in the plane of its two free axes
func (b *AxisAlignedBox) TextureCoordinates(ray core.Ray, _ float64) core.Vec2 {
	t, face := b.intersection(ray)
	if face == faceNone {
		return core.NewVec2(0, 0)
	}

	p := ray.At(t)
	size := b.Max.Subtract(b.Min)

	switch face {
	case faceNegX, facePosX:
		return core.NewVec2(
			core.Saturate((p.Z-b.Min.Z)/size.Z),
			core.Saturate((p.Y-b.Min.Y)/size.Y),
		)
	case faceNegY, facePosY:
		return core.NewVec2(
			core.Saturate((p.X-b.Min.X)/size.X),
			core.Saturate((p.Z-b.Min.Z)/size.Z),
		)
	default:
		return core.NewVec2(
			core.Saturate((p.X-b.Min.X)/size.X),
			core.Saturate((p.Y-b.Min.Y)/size.Y),
		)
	}
}

// Contains reports whether p lies inside the box, boundary included
func (b *AxisAlignedBox) Contains(p core.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ClosestPointTo clamps p into the box componentwise
func (b *AxisAlignedBox) ClosestPointTo(p core.Vec3) core.Vec3 {
	return core.NewVec3(
		core.Clamp(p.X, b.Min.X, b.Max.X),
		core.Clamp(p.Y, b.Min.Y, b.Max.Y),
		core.Clamp(p.Z, b.Min.Z, b.Max.Z),
	)
}

// Minimum returns the minimum corner
func (b *AxisAlignedBox) Minimum() core.Vec3 {
	return b.Min
}

// Maximum returns the maximum corner
func (b *AxisAlignedBox) Maximum() core.Vec3 {
	return b.Max
}

// Midpoint returns the center of the box
func (b *AxisAlignedBox) Midpoint() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// SurfaceArea returns the total area of the six faces
func (b *AxisAlignedBox) SurfaceArea() float64 {
	size := b.Max.Subtract(b.Min)
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// Volume returns the enclosed volume
func (b *AxisAlignedBox) Volume() float64 {
	size := b.Max.Subtract(b.Min)
	return size.X * size.Y * size.Z
}

// BoundingVolume returns the box itself
func (b *AxisAlignedBox) BoundingVolume() BoundingVolume {
	return b
}

// Sample is not supported for boxes; only the sphere carries a full
// importance sampler
func (b *AxisAlignedBox) Sample(refPoint, refNormal core.Vec3, sample core.Vec2) (SurfaceSample, bool) {
	return SurfaceSample{}, false
}

// SolidAnglePDF is not supported for boxes and always returns zero
func (b *AxisAlignedBox) SolidAnglePDF(refPoint, refNormal, point, normal core.Vec3) float64 {
	return 0
}
