package geometry

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/macroing/go-geometry-kernel/pkg/core"
)

// countingShape wraps a shape and counts differential-geometry evaluations
type countingShape struct {
	*Sphere
	normalCalls atomic.Int32
	uvCalls     atomic.Int32
}

func (c *countingShape) SurfaceNormal(ray core.Ray, t float64, faceForward bool) core.Vec3 {
	c.normalCalls.Add(1)
	return c.Sphere.SurfaceNormal(ray, t, faceForward)
}

func (c *countingShape) TextureCoordinates(ray core.Ray, t float64) core.Vec2 {
	c.uvCalls.Add(1)
	return c.Sphere.TextureCoordinates(ray, t)
}

func TestIntersection_DerivedValues(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	tHit := sphere.IntersectionT(ray)
	if math.Abs(tHit-4.0) > 1e-9 {
		t.Fatalf("Expected t=4, got %f", tHit)
	}

	isect := NewIntersection(sphere, ray, tHit)

	if isect.Shape() != Shape(sphere) {
		t.Error("Expected intersection to reference the shape")
	}
	if isect.T() != tHit {
		t.Errorf("Expected t=%f, got %f", tHit, isect.T())
	}
	if isect.Ray() != ray {
		t.Error("Expected intersection to keep the ray")
	}

	if got := isect.Point(); got.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected point (0,0,-1), got %v", got)
	}
	if got := isect.SurfaceNormal(); got.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,-1), got %v", got)
	}

	basis := isect.OrthonormalBasis()
	if basis.W.Subtract(isect.SurfaceNormal()).Length() > 1e-9 {
		t.Errorf("Expected basis W along the normal, got %v", basis.W)
	}
}

func TestIntersection_ComputesAtMostOnce(t *testing.T) {
	shape := &countingShape{Sphere: NewSphere(core.NewVec3(0, 0, 0), 1.0)}
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	isect := NewIntersection(shape, ray, 4.0)

	first := isect.SurfaceNormal()
	for i := 0; i < 10; i++ {
		if got := isect.SurfaceNormal(); got != first {
			t.Fatalf("Expected memoized normal %v, got %v", first, got)
		}
		isect.TextureCoordinates()
	}

	if got := shape.normalCalls.Load(); got != 1 {
		t.Errorf("Expected one normal evaluation, got %d", got)
	}
	if got := shape.uvCalls.Load(); got != 1 {
		t.Errorf("Expected one texture evaluation, got %d", got)
	}
}

func TestIntersection_ConcurrentFirstAccess(t *testing.T) {
	shape := &countingShape{Sphere: NewSphere(core.NewVec3(0, 0, 0), 1.0)}
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	isect := NewIntersection(shape, ray, 4.0)

	const goroutines = 32
	results := make([]core.Vec3, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			results[g] = isect.SurfaceNormal()
		}(g)
	}
	wg.Wait()

	if got := shape.normalCalls.Load(); got != 1 {
		t.Errorf("Expected exactly one normal evaluation under contention, got %d", got)
	}
	for g := 1; g < goroutines; g++ {
		if results[g] != results[0] {
			t.Fatalf("Expected identical results, got %v and %v", results[0], results[g])
		}
	}
}

func TestIntersection_ShadowRayTouchesNothing(t *testing.T) {
	shape := &countingShape{Sphere: NewSphere(core.NewVec3(0, 0, 0), 1.0)}
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	isect := NewIntersection(shape, ray, 4.0)
	_ = isect.T()

	if got := shape.normalCalls.Load(); got != 0 {
		t.Errorf("Expected no normal evaluation for a distance-only consumer, got %d", got)
	}
	if got := shape.uvCalls.Load(); got != 0 {
		t.Errorf("Expected no texture evaluation for a distance-only consumer, got %d", got)
	}
}
