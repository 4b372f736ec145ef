package core

import "math"

// OrthonormalBasis is a right-handed coordinate frame of three mutually
// orthogonal unit vectors. W is the principal axis, usually a surface normal
// or the direction toward a sampling target.
type OrthonormalBasis struct {
	U, V, W Vec3
}

// NewOrthonormalBasisW builds a basis from a single direction.
// The companion axis is the coordinate axis with the smallest absolute
// component of w, which keeps the cross product well away from degeneracy.
func NewOrthonormalBasisW(w Vec3) OrthonormalBasis {
	wn := w.Normalize()

	ax, ay, az := math.Abs(wn.X), math.Abs(wn.Y), math.Abs(wn.Z)
	var axis Vec3
	switch {
	case ax <= ay && ax <= az:
		axis = NewVec3(1, 0, 0)
	case ay <= az:
		axis = NewVec3(0, 1, 0)
	default:
		axis = NewVec3(0, 0, 1)
	}

	v := axis.Cross(wn).Normalize()
	u := v.Cross(wn)
	return OrthonormalBasis{U: u, V: v, W: wn}
}

// NewOrthonormalBasisWV builds a basis from a direction and a hint vector.
// The hint must not be parallel to w; that is the caller's responsibility.
func NewOrthonormalBasisWV(w, hint Vec3) OrthonormalBasis {
	wn := w.Normalize()
	u := hint.Cross(wn).Normalize()
	v := wn.Cross(u)
	return OrthonormalBasis{U: u, V: v, W: wn}
}

// Transform maps a vector expressed in the local frame into world space
func (b OrthonormalBasis) Transform(local Vec3) Vec3 {
	return b.U.Multiply(local.X).Add(b.V.Multiply(local.Y)).Add(b.W.Multiply(local.Z))
}
