package numerics

// decomposeEpsilon bounds both the collapsed-axis test and the tolerated
// squared deviation of the basis determinant from 1.
const decomposeEpsilon = 1e-4

// axisRank orders the three basis rows by scale: rank[0] is the largest.
type axisRank [3]int

func rankAxes[T Float](s [3]T) axisRank {
	if s[0] < s[1] {
		if s[1] < s[2] {
			return axisRank{2, 1, 0}
		}
		if s[0] < s[2] {
			return axisRank{1, 2, 0}
		}
		return axisRank{1, 0, 2}
	}
	if s[0] < s[2] {
		return axisRank{2, 0, 1}
	}
	if s[1] < s[2] {
		return axisRank{0, 2, 1}
	}
	return axisRank{0, 1, 2}
}

// leastAlignedAxis returns the canonical axis on which v has the smallest
// absolute component.
func leastAlignedAxis[T Float](v Vec3[T]) int {
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	if ax < ay {
		if ay < az || ax < az {
			return 0
		}
		return 2
	}
	if ax < az || ay < az {
		return 1
	}
	return 2
}

func canonicalAxis[T Float](i int) Vec3[T] {
	var v Vec3[T]
	switch i {
	case 0:
		v.X = 1
	case 1:
		v.Y = 1
	default:
		v.Z = 1
	}
	return v
}

// Decompose factors an affine m as Scale × Rotation × Translation.
//
// The basis rows are ranked by length. Collapsed axes (length < 1e-4) are
// rebuilt: the largest from its canonical axis, the middle one from a cross
// product with the canonical axis least aligned with the largest, and the
// smallest as the cross product of the other two. A reflection is reported
// as a negative scale on the largest axis. ok is false when the rebuilt
// basis is not orthonormal (shear, projection); the returned rotation is
// then the identity and scale is unreliable.
func (m Mat4[T]) Decompose() (scale Vec3[T], rotation Quat[T], translation Vec3[T], ok bool) {
	translation = m.Translation()

	basis := [3]Vec3[T]{
		{m.M11, m.M12, m.M13},
		{m.M21, m.M22, m.M23},
		{m.M31, m.M32, m.M33},
	}
	s := [3]T{basis[0].Length(), basis[1].Length(), basis[2].Length()}

	r := rankAxes(s)
	a, b, c := r[0], r[1], r[2]

	if s[a] < decomposeEpsilon {
		basis[a] = canonicalAxis[T](a)
	}
	basis[a] = basis[a].Normalize()

	if s[b] < decomposeEpsilon {
		basis[b] = basis[a].Cross(canonicalAxis[T](leastAlignedAxis(basis[a])))
	}
	basis[b] = basis[b].Normalize()

	if s[c] < decomposeEpsilon {
		basis[c] = basis[a].Cross(basis[b])
	}
	basis[c] = basis[c].Normalize()

	rot := Mat4FromRows(
		Vec4FromVec3(basis[0], 0),
		Vec4FromVec3(basis[1], 0),
		Vec4FromVec3(basis[2], 0),
		Vec4[T]{0, 0, 0, 1},
	)
	det := rot.Determinant()
	if det < 0 {
		s[a] = -s[a]
		basis[a] = basis[a].Neg()
		rot = Mat4FromRows(
			Vec4FromVec3(basis[0], 0),
			Vec4FromVec3(basis[1], 0),
			Vec4FromVec3(basis[2], 0),
			Vec4[T]{0, 0, 0, 1},
		)
		det = -det
	}

	scale = Vec3[T]{s[0], s[1], s[2]}

	det -= 1
	det *= det
	if det > decomposeEpsilon {
		return scale, QuatIdentity[T](), translation, false
	}
	return scale, QuatFromRotationMatrix(rot), translation, true
}
