package core

import (
	"math"
	"testing"
)

func checkOrthonormal(t *testing.T, basis OrthonormalBasis) {
	t.Helper()
	tolerance := 1e-6

	if math.Abs(basis.U.Length()-1) > tolerance ||
		math.Abs(basis.V.Length()-1) > tolerance ||
		math.Abs(basis.W.Length()-1) > tolerance {
		t.Errorf("Expected unit axes, got |u|=%f |v|=%f |w|=%f",
			basis.U.Length(), basis.V.Length(), basis.W.Length())
	}

	if math.Abs(basis.U.Dot(basis.V)) > tolerance ||
		math.Abs(basis.U.Dot(basis.W)) > tolerance ||
		math.Abs(basis.V.Dot(basis.W)) > tolerance {
		t.Errorf("Expected orthogonal axes, got dots %e %e %e",
			basis.U.Dot(basis.V), basis.U.Dot(basis.W), basis.V.Dot(basis.W))
	}

	// Right-handed: u × v = w
	cross := basis.U.Cross(basis.V)
	if cross.Subtract(basis.W).Length() > tolerance {
		t.Errorf("Expected right-handed basis, u×v=%v but w=%v", cross, basis.W)
	}
}

func TestNewOrthonormalBasisW(t *testing.T) {
	tests := []struct {
		name string
		w    Vec3
	}{
		{"z axis", NewVec3(0, 0, 1)},
		{"y axis", NewVec3(0, 1, 0)},
		{"negative x axis", NewVec3(-1, 0, 0)},
		{"arbitrary", NewVec3(1, 2, 3)},
		{"near axis", NewVec3(1e-8, -1, 2e-8)},
		{"unnormalized", NewVec3(5, -3, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basis := NewOrthonormalBasisW(tt.w)
			checkOrthonormal(t, basis)

			expected := tt.w.Normalize()
			if basis.W.Subtract(expected).Length() > 1e-6 {
				t.Errorf("Expected w=%v, got %v", expected, basis.W)
			}
		})
	}
}

func TestNewOrthonormalBasisWV(t *testing.T) {
	basis := NewOrthonormalBasisWV(NewVec3(0, 0, 1), NewVec3(0, 1, 0))
	checkOrthonormal(t, basis)

	if basis.U.Subtract(NewVec3(1, 0, 0)).Length() > 1e-12 {
		t.Errorf("Expected u=(1,0,0), got %v", basis.U)
	}
	if basis.V.Subtract(NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected v=(0,1,0), got %v", basis.V)
	}

	basis = NewOrthonormalBasisWV(NewVec3(1, 2, -1), NewVec3(0.3, 0.9, 0.1))
	checkOrthonormal(t, basis)
}

func TestOrthonormalBasis_Transform(t *testing.T) {
	basis := NewOrthonormalBasisWV(NewVec3(0, 0, 1), NewVec3(0, 1, 0))

	got := basis.Transform(NewVec3(1, 2, 3))
	expected := NewVec3(1, 2, 3)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// W mapped to an arbitrary axis: local +z follows w
	basis = NewOrthonormalBasisW(NewVec3(3, -1, 2))
	got = basis.Transform(NewVec3(0, 0, 1))
	if got.Subtract(NewVec3(3, -1, 2).Normalize()).Length() > 1e-12 {
		t.Errorf("Expected local +z to map onto w, got %v", got)
	}
}
