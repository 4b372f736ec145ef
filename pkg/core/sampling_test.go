package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	sawUpper, sawLower := false, false
	for i := 0; i < 1000; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-12 {
			t.Fatalf("Expected unit direction, got length %f", d.Length())
		}
		if d.Z > 0.5 {
			sawUpper = true
		}
		if d.Z < -0.5 {
			sawLower = true
		}
	}
	if !sawUpper || !sawLower {
		t.Error("Expected samples on both hemispheres")
	}
}

func TestSampleCone(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	cosThetaMax := 0.9

	for i := 0; i < 1000; i++ {
		d := SampleCone(cosThetaMax, sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-12 {
			t.Fatalf("Expected unit direction, got length %f", d.Length())
		}
		if d.Z < cosThetaMax-1e-12 {
			t.Fatalf("Expected direction inside cone, got z=%f < %f", d.Z, cosThetaMax)
		}
	}

	// Degenerate cone collapses to the axis
	d := SampleCone(1.0, NewVec2(0.7, 0.3))
	if d.Subtract(NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected +z for a zero-width cone, got %v", d)
	}
}

func TestSampleTriangleUniform(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		b0, b1 := SampleTriangleUniform(sampler.Get2D())
		if b0 < 0 || b1 < 0 || b0+b1 > 1+1e-12 {
			t.Fatalf("Expected valid barycentric weights, got b0=%f b1=%f", b0, b1)
		}
	}

	b0, b1 := SampleTriangleUniform(NewVec2(0, 0.5))
	if b0 != 1 || b1 != 0 {
		t.Errorf("Expected corner weights (1, 0), got (%f, %f)", b0, b1)
	}
	b0, b1 = SampleTriangleUniform(NewVec2(1, 1))
	if math.Abs(b0) > 1e-12 || math.Abs(b1-1) > 1e-12 {
		t.Errorf("Expected corner weights (0, 1), got (%f, %f)", b0, b1)
	}
}

func TestRandomSampler(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 100; i++ {
		u := sampler.Get1D()
		if u < 0 || u >= 1 {
			t.Fatalf("Expected sample in [0,1), got %f", u)
		}
		s := sampler.Get2D()
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("Expected sample pair in [0,1), got %v", s)
		}
	}
}
