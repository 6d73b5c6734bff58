package numerics

// Quat represents a quaternion (x, y, z, w). A unit quaternion is a rotation;
// q and -q represent the same one.
type Quat[T Float] struct {
	X, Y, Z, W T
}

func QuatIdentity[T Float]() Quat[T] { return Quat[T]{0, 0, 0, 1} }

// IsIdentity reports whether q is exactly (0, 0, 0, 1).
func (q Quat[T]) IsIdentity() bool { return q == QuatIdentity[T]() }

// QuatFromAxisAngle rotates by angle radians about a unit axis.
func QuatFromAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	half := angle * 0.5
	s, c := sin(half), cos(half)
	return Quat[T]{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuatFromYawPitchRoll builds the rotation that applies roll about Z, then
// pitch about X, then yaw about Y. Angles in radians.
func QuatFromYawPitchRoll[T Float](yaw, pitch, roll T) Quat[T] {
	sr, cr := sin(roll*0.5), cos(roll*0.5)
	sp, cp := sin(pitch*0.5), cos(pitch*0.5)
	sy, cy := sin(yaw*0.5), cos(yaw*0.5)

	return Quat[T]{
		cy*sp*cr + sy*cp*sr, // x
		sy*cp*cr - cy*sp*sr, // y
		cy*cp*sr - sy*sp*cr, // z
		cy*cp*cr + sy*sp*sr, // w
	}
}

// rotationBranch selects the extraction formula in QuatFromRotationMatrix.
type rotationBranch uint8

const (
	branchTrace rotationBranch = iota
	branchX
	branchY
	branchZ
)

func selectRotationBranch[T Float](m Mat4[T]) rotationBranch {
	switch {
	case m.M11+m.M22+m.M33 > 0:
		return branchTrace
	case m.M11 >= m.M22 && m.M11 >= m.M33:
		return branchX
	case m.M22 > m.M33:
		return branchY
	}
	return branchZ
}

// QuatFromRotationMatrix extracts the rotation from the upper 3x3 of m,
// which must be orthonormal. The component with the largest magnitude is
// derived from the diagonal and the rest from off-diagonal sums, so no
// division by a near-zero term occurs.
func QuatFromRotationMatrix[T Float](m Mat4[T]) Quat[T] {
	var q Quat[T]
	switch selectRotationBranch(m) {
	case branchTrace:
		s := sqrt(m.M11 + m.M22 + m.M33 + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m.M23 - m.M32) * s
		q.Y = (m.M31 - m.M13) * s
		q.Z = (m.M12 - m.M21) * s
	case branchX:
		s := sqrt(1 + m.M11 - m.M22 - m.M33)
		inv := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m.M12 + m.M21) * inv
		q.Z = (m.M13 + m.M31) * inv
		q.W = (m.M23 - m.M32) * inv
	case branchY:
		s := sqrt(1 + m.M22 - m.M11 - m.M33)
		inv := 0.5 / s
		q.X = (m.M21 + m.M12) * inv
		q.Y = 0.5 * s
		q.Z = (m.M32 + m.M23) * inv
		q.W = (m.M31 - m.M13) * inv
	case branchZ:
		s := sqrt(1 + m.M33 - m.M11 - m.M22)
		inv := 0.5 / s
		q.X = (m.M31 + m.M13) * inv
		q.Y = (m.M32 + m.M23) * inv
		q.Z = 0.5 * s
		q.W = (m.M12 - m.M21) * inv
	}
	return q
}

// rotationBasis holds the 3x3 rotation matrix of a quaternion in row-vector
// convention.
type rotationBasis[T Float] struct {
	m11, m12, m13 T
	m21, m22, m23 T
	m31, m32, m33 T
}

func (q Quat[T]) basis() rotationBasis[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	wx2, wy2, wz2 := q.W*x2, q.W*y2, q.W*z2
	xx2, xy2, xz2 := q.X*x2, q.X*y2, q.X*z2
	yy2, yz2, zz2 := q.Y*y2, q.Y*z2, q.Z*z2

	return rotationBasis[T]{
		1 - yy2 - zz2, xy2 + wz2, xz2 - wy2,
		xy2 - wz2, 1 - xx2 - zz2, yz2 + wx2,
		xz2 + wy2, yz2 - wx2, 1 - xx2 - yy2,
	}
}

func (q Quat[T]) LengthSquared() T { return q.Dot(q) }
func (q Quat[T]) Length() T        { return sqrt(q.LengthSquared()) }

// Normalize scales q to unit length. The zero quaternion yields NaNs.
func (q Quat[T]) Normalize() Quat[T] {
	return q.Scale(1 / q.Length())
}

func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{-q.X, -q.Y, -q.Z, q.W} }

// Inverse returns conj(q) / |q|². The zero quaternion yields NaNs or Infs.
func (q Quat[T]) Inverse() Quat[T] {
	inv := 1 / q.LengthSquared()
	return Quat[T]{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

func (q Quat[T]) Dot(b Quat[T]) T {
	return q.X*b.X + q.Y*b.Y + q.Z*b.Z + q.W*b.W
}

func (q Quat[T]) Add(b Quat[T]) Quat[T] {
	return Quat[T]{q.X + b.X, q.Y + b.Y, q.Z + b.Z, q.W + b.W}
}

func (q Quat[T]) Sub(b Quat[T]) Quat[T] {
	return Quat[T]{q.X - b.X, q.Y - b.Y, q.Z - b.Z, q.W - b.W}
}

func (q Quat[T]) Neg() Quat[T] { return Quat[T]{-q.X, -q.Y, -q.Z, -q.W} }

func (q Quat[T]) Scale(s T) Quat[T] { return Quat[T]{q.X * s, q.Y * s, q.Z * s, q.W * s} }

// Mul returns the Hamilton product q·b.
func (q Quat[T]) Mul(b Quat[T]) Quat[T] {
	cx := q.Y*b.Z - q.Z*b.Y
	cy := q.Z*b.X - q.X*b.Z
	cz := q.X*b.Y - q.Y*b.X
	dot := q.X*b.X + q.Y*b.Y + q.Z*b.Z

	return Quat[T]{
		q.X*b.W + b.X*q.W + cx,
		q.Y*b.W + b.Y*q.W + cy,
		q.Z*b.W + b.Z*q.W + cz,
		q.W*b.W - dot,
	}
}

// Concatenate returns the rotation that applies q first and then b, which
// is the product b·q.
func (q Quat[T]) Concatenate(b Quat[T]) Quat[T] {
	return b.Mul(q)
}

// Div returns q·b⁻¹.
func (q Quat[T]) Div(b Quat[T]) Quat[T] {
	return q.Mul(b.Inverse())
}

// Lerp interpolates as q + (b'-q)*t, where b' is b negated when the two lie
// in opposite hemispheres, and normalizes the result.
func (q Quat[T]) Lerp(b Quat[T], t T) Quat[T] {
	if q.Dot(b) < 0 {
		b = b.Neg()
	}
	r := Quat[T]{
		q.X + (b.X-q.X)*t,
		q.Y + (b.Y-q.Y)*t,
		q.Z + (b.Z-q.Z)*t,
		q.W + (b.W-q.W)*t,
	}
	return r.Normalize()
}

// slerpEpsilon bounds how close |cos ω| may get to 1 before Slerp falls back
// to the linear blend.
const slerpEpsilon = 1e-6

// Slerp interpolates along the shorter great arc between q and b. When the
// two are nearly parallel it blends linearly and renormalizes; t of exactly
// 0 or 1 returns q or ±b unchanged.
func (q Quat[T]) Slerp(b Quat[T], t T) Quat[T] {
	cosOmega := q.Dot(b)
	flip := false
	if cosOmega < 0 {
		flip = true
		cosOmega = -cosOmega
	}

	var s1, s2 T
	linear := cosOmega > 1-slerpEpsilon
	if linear {
		s1 = 1 - t
		s2 = t
	} else {
		omega := acos(cosOmega)
		invSin := 1 / sin(omega)
		s1 = sin((1-t)*omega) * invSin
		s2 = sin(t*omega) * invSin
	}
	if flip {
		s2 = -s2
	}

	r := Quat[T]{
		s1*q.X + s2*b.X,
		s1*q.Y + s2*b.Y,
		s1*q.Z + s2*b.Z,
		s1*q.W + s2*b.W,
	}
	if linear && t != 0 && t != 1 {
		r = r.Normalize()
	}
	return r
}

// Equal compares exactly; NaN components never compare equal.
func (q Quat[T]) Equal(b Quat[T]) bool { return q == b }

// SameRotation reports whether q and b are exactly equal up to sign.
func (q Quat[T]) SameRotation(b Quat[T]) bool {
	return q == b || q == b.Neg()
}
