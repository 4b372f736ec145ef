package geometry

import (
	"math"

	"github.com/macroing/go-geometry-kernel/pkg/core"
)

// insideThreshold widens the "reference point is inside" test slightly so that
// points sitting numerically on the surface use the uniform branch instead of
// a nearly degenerate cone.
const insideThreshold = 1.00001

// Sphere represents a sphere defined by its center and radius.
// It implements both Shape and BoundingVolume.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// IntersectionT returns the smallest root of the ray/sphere quadratic above
// tEpsilon, or NaN if the ray misses. The quadratic uses the actual length of
// the ray direction, so unnormalized directions are handled correctly.
func (s *Sphere) IntersectionT(ray core.Ray) float64 {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	t0, t1 := core.SolveQuadratic(a, b, c)

	// NaN roots fail both comparisons and fall through to the miss sentinel
	if t0 > tEpsilon {
		return t0
	}
	if t1 > tEpsilon {
		return t1
	}
	return math.NaN()
}

// SurfaceNormal returns the unit normal at ray.At(t), pointing from the
// center through the surface. With faceForward set, the normal is flipped
// when it does not oppose the ray direction.
func (s *Sphere) SurfaceNormal(ray core.Ray, t float64, faceForward bool) core.Vec3 {
	normal := ray.At(t).Subtract(s.Center).Normalize()
	if faceForward && normal.Dot(ray.Direction) >= 0 {
		normal = normal.Negate()
	}
	return normal
}

// TextureCoordinates returns spherical coordinates mapped to [0,1]²:
// u from the azimuthal angle, v from the polar angle.
func (s *Sphere) TextureCoordinates(ray core.Ray, t float64) core.Vec2 {
	d := ray.At(t).Subtract(s.Center).Normalize()

	phi := math.Atan2(d.Z, d.X)
	theta := math.Acos(core.Clamp(d.Y, -1, 1))

	u := 0.5 + phi/(2*math.Pi)
	v := theta / math.Pi
	return core.NewVec2(u, v)
}

// ClosestPointTo projects p onto the sphere surface along the direction from
// the center to p. Points inside the sphere are returned unchanged.
func (s *Sphere) ClosestPointTo(p core.Vec3) core.Vec3 {
	dir := p.Subtract(s.Center)
	surface := s.Center.Add(dir.Normalize().Multiply(s.Radius))
	if surface.Subtract(s.Center).LengthSquared() > dir.LengthSquared() {
		return p
	}
	return surface
}

// Contains reports whether p lies inside or on the sphere
func (s *Sphere) Contains(p core.Vec3) bool {
	return p.Subtract(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// Minimum returns the minimum corner of the sphere's bounds
func (s *Sphere) Minimum() core.Vec3 {
	return s.Center.Subtract(core.NewVec3(s.Radius, s.Radius, s.Radius))
}

// Maximum returns the maximum corner of the sphere's bounds
func (s *Sphere) Maximum() core.Vec3 {
	return s.Center.Add(core.NewVec3(s.Radius, s.Radius, s.Radius))
}

// Midpoint returns the sphere center
func (s *Sphere) Midpoint() core.Vec3 {
	return s.Center
}

// SurfaceArea returns 4πr²
func (s *Sphere) SurfaceArea() float64 {
	return 4.0 * math.Pi * s.Radius * s.Radius
}

// Volume returns 4/3πr³
func (s *Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

// BoundingVolume returns the sphere itself
func (s *Sphere) BoundingVolume() BoundingVolume {
	return s
}

// Sample picks a point on the sphere as seen from a reference point.
//
// Two strategies are used. A reference point inside (or numerically on) the
// sphere samples the full surface uniformly and converts the area PDF to
// solid-angle measure. A reference point outside importance-samples only the
// cone of directions subtended by the sphere, which is where all the visible
// solid angle lives.
func (s *Sphere) Sample(refPoint, refNormal core.Vec3, sample core.Vec2) (SurfaceSample, bool) {
	distanceSquared := s.Center.Subtract(refPoint).LengthSquared()
	if distanceSquared < s.Radius*s.Radius*insideThreshold {
		return s.sampleUniform(refPoint, sample)
	}
	return s.sampleCone(refPoint, sample)
}

// sampleUniform samples uniformly on the entire sphere surface and converts
// the area PDF to solid-angle measure with the Jacobian distance²/|cosθ|.
func (s *Sphere) sampleUniform(refPoint core.Vec3, sample core.Vec2) (SurfaceSample, bool) {
	local := core.SampleOnUnitSphere(sample)
	point := s.Center.Add(local.Multiply(s.Radius))
	normal := local

	direction := point.Subtract(refPoint)
	distanceSquared := direction.LengthSquared()
	if distanceSquared == 0 {
		return SurfaceSample{}, false
	}

	cosTheta := math.Abs(direction.Normalize().Dot(normal))
	if cosTheta < parallelEpsilon {
		// grazing connection, the measure conversion blows up
		return SurfaceSample{}, false
	}

	areaPDF := 1.0 / s.SurfaceArea()
	pdf := areaPDF * distanceSquared / cosTheta

	return SurfaceSample{Point: point, Normal: normal, PDF: pdf}, true
}

// sampleCone samples a direction inside the cone subtended by the sphere and
// resolves it to a surface point by intersection.
func (s *Sphere) sampleCone(refPoint core.Vec3, sample core.Vec2) (SurfaceSample, bool) {
	toCenter := s.Center.Subtract(refPoint)
	distanceSquared := toCenter.LengthSquared()

	cosThetaMax := math.Sqrt(math.Max(0, 1.0-s.Radius*s.Radius/distanceSquared))

	basis := core.NewOrthonormalBasisW(toCenter)
	direction := basis.Transform(core.SampleCone(cosThetaMax, sample))

	ray := core.NewRay(refPoint, direction)
	t := s.IntersectionT(ray)

	var point core.Vec3
	if math.IsNaN(t) {
		// A direction at the very rim of the cone can graze past the
		// surface numerically. Project the closest approach back onto
		// the sphere instead of discarding the sample.
		point = s.ClosestPointTo(ray.At(math.Sqrt(distanceSquared)))
	} else {
		point = ray.At(t)
	}

	normal := point.Subtract(s.Center).Normalize()
	pdf := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	return SurfaceSample{Point: point, Normal: normal, PDF: pdf}, true
}

// SolidAnglePDF returns the solid-angle probability density of Sample having
// produced the given surface point, using the same two-branch split as Sample.
func (s *Sphere) SolidAnglePDF(refPoint, refNormal, point, normal core.Vec3) float64 {
	distanceSquared := s.Center.Subtract(refPoint).LengthSquared()

	if distanceSquared < s.Radius*s.Radius*insideThreshold {
		direction := point.Subtract(refPoint)
		d2 := direction.LengthSquared()
		if d2 == 0 {
			return 0
		}
		cosTheta := math.Abs(direction.Normalize().Dot(normal))
		if cosTheta < parallelEpsilon {
			return 0
		}
		return d2 / (cosTheta * s.SurfaceArea())
	}

	cosThetaMax := math.Sqrt(math.Max(0, 1.0-s.Radius*s.Radius/distanceSquared))
	return 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
}
