package numerics

// Mat4 is a 3D homogeneous transform applied to row vectors: [x y z w] * M.
// Translation lives in the fourth row.
type Mat4[T Float] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

func Mat4Identity[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat4[T]) IsIdentity() bool {
	return m == Mat4Identity[T]()
}

// Translation returns (M41, M42, M43).
func (m Mat4[T]) Translation() Vec3[T] { return Vec3[T]{m.M41, m.M42, m.M43} }

// WithTranslation returns m with (M41, M42, M43) replaced.
func (m Mat4[T]) WithTranslation(t Vec3[T]) Mat4[T] {
	m.M41, m.M42, m.M43 = t.X, t.Y, t.Z
	return m
}

// Row returns row i (0-based) as a vector.
func (m Mat4[T]) Row(i int) Vec4[T] {
	switch i {
	case 0:
		return Vec4[T]{m.M11, m.M12, m.M13, m.M14}
	case 1:
		return Vec4[T]{m.M21, m.M22, m.M23, m.M24}
	case 2:
		return Vec4[T]{m.M31, m.M32, m.M33, m.M34}
	case 3:
		return Vec4[T]{m.M41, m.M42, m.M43, m.M44}
	}
	panic(&ArgumentOutOfRangeError{Param: "i", Value: float64(i), Reason: "row index must be 0..3"})
}

// Mat4FromRows assembles a matrix from four row vectors.
func Mat4FromRows[T Float](r1, r2, r3, r4 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
		r4.X, r4.Y, r4.Z, r4.W,
	}
}

// Determinant expands along the first row, sharing the six 2x2 minors of the
// bottom two rows between the four cofactors.
func (m Mat4[T]) Determinant() T {
	a, b, c, d := m.M11, m.M12, m.M13, m.M14
	e, f, g, h := m.M21, m.M22, m.M23, m.M24
	i, j, k, l := m.M31, m.M32, m.M33, m.M34
	mm, n, o, p := m.M41, m.M42, m.M43, m.M44

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	return a*(f*kpLo-g*jpLn+h*joKn) -
		b*(e*kpLo-g*ipLm+h*ioKm) +
		c*(e*jpLn-f*ipLm+h*inJm) -
		d*(e*joKn-f*ioKm+g*inJm)
}

// Invert returns the inverse via the adjugate. When |det| is below the
// smallest subnormal of T it returns a matrix of NaNs and false; callers
// must check the flag.
func (m Mat4[T]) Invert() (Mat4[T], bool) {
	a, b, c, d := m.M11, m.M12, m.M13, m.M14
	e, f, g, h := m.M21, m.M22, m.M23, m.M24
	i, j, k, l := m.M31, m.M32, m.M33, m.M34
	mm, n, o, p := m.M41, m.M42, m.M43, m.M44

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	a11 := +(f*kpLo - g*jpLn + h*joKn)
	a12 := -(e*kpLo - g*ipLm + h*ioKm)
	a13 := +(e*jpLn - f*ipLm + h*inJm)
	a14 := -(e*joKn - f*ioKm + g*inJm)

	det := a*a11 + b*a12 + c*a13 + d*a14
	if abs(det) < tiny[T]() {
		return mat4NaN[T](), false
	}
	inv := 1 / det

	var r Mat4[T]
	r.M11 = a11 * inv
	r.M21 = a12 * inv
	r.M31 = a13 * inv
	r.M41 = a14 * inv

	r.M12 = -(b*kpLo - c*jpLn + d*joKn) * inv
	r.M22 = +(a*kpLo - c*ipLm + d*ioKm) * inv
	r.M32 = -(a*jpLn - b*ipLm + d*inJm) * inv
	r.M42 = +(a*joKn - b*ioKm + c*inJm) * inv

	gpHo := g*p - h*o
	fpHn := f*p - h*n
	foGn := f*o - g*n
	epHm := e*p - h*mm
	eoGm := e*o - g*mm
	enFm := e*n - f*mm

	r.M13 = +(b*gpHo - c*fpHn + d*foGn) * inv
	r.M23 = -(a*gpHo - c*epHm + d*eoGm) * inv
	r.M33 = +(a*fpHn - b*epHm + d*enFm) * inv
	r.M43 = -(a*foGn - b*eoGm + c*enFm) * inv

	glHk := g*l - h*k
	flHj := f*l - h*j
	fkGj := f*k - g*j
	elHi := e*l - h*i
	ekGi := e*k - g*i
	ejFi := e*j - f*i

	r.M14 = -(b*glHk - c*flHj + d*fkGj) * inv
	r.M24 = +(a*glHk - c*elHi + d*ekGi) * inv
	r.M34 = -(a*flHj - b*elHi + d*ejFi) * inv
	r.M44 = +(a*fkGj - b*ekGi + c*ejFi) * inv

	return r, true
}

func mat4NaN[T Float]() Mat4[T] {
	n := nan[T]()
	return Mat4[T]{
		n, n, n, n,
		n, n, n, n,
		n, n, n, n,
		n, n, n, n,
	}
}

func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// Mul returns m × b: m is applied first.
func (m Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	return Mat4[T]{
		m.M11*b.M11 + m.M12*b.M21 + m.M13*b.M31 + m.M14*b.M41,
		m.M11*b.M12 + m.M12*b.M22 + m.M13*b.M32 + m.M14*b.M42,
		m.M11*b.M13 + m.M12*b.M23 + m.M13*b.M33 + m.M14*b.M43,
		m.M11*b.M14 + m.M12*b.M24 + m.M13*b.M34 + m.M14*b.M44,

		m.M21*b.M11 + m.M22*b.M21 + m.M23*b.M31 + m.M24*b.M41,
		m.M21*b.M12 + m.M22*b.M22 + m.M23*b.M32 + m.M24*b.M42,
		m.M21*b.M13 + m.M22*b.M23 + m.M23*b.M33 + m.M24*b.M43,
		m.M21*b.M14 + m.M22*b.M24 + m.M23*b.M34 + m.M24*b.M44,

		m.M31*b.M11 + m.M32*b.M21 + m.M33*b.M31 + m.M34*b.M41,
		m.M31*b.M12 + m.M32*b.M22 + m.M33*b.M32 + m.M34*b.M42,
		m.M31*b.M13 + m.M32*b.M23 + m.M33*b.M33 + m.M34*b.M43,
		m.M31*b.M14 + m.M32*b.M24 + m.M33*b.M34 + m.M34*b.M44,

		m.M41*b.M11 + m.M42*b.M21 + m.M43*b.M31 + m.M44*b.M41,
		m.M41*b.M12 + m.M42*b.M22 + m.M43*b.M32 + m.M44*b.M42,
		m.M41*b.M13 + m.M42*b.M23 + m.M43*b.M33 + m.M44*b.M43,
		m.M41*b.M14 + m.M42*b.M24 + m.M43*b.M34 + m.M44*b.M44,
	}
}

func (m Mat4[T]) Add(b Mat4[T]) Mat4[T] {
	return Mat4[T]{
		m.M11 + b.M11, m.M12 + b.M12, m.M13 + b.M13, m.M14 + b.M14,
		m.M21 + b.M21, m.M22 + b.M22, m.M23 + b.M23, m.M24 + b.M24,
		m.M31 + b.M31, m.M32 + b.M32, m.M33 + b.M33, m.M34 + b.M34,
		m.M41 + b.M41, m.M42 + b.M42, m.M43 + b.M43, m.M44 + b.M44,
	}
}

func (m Mat4[T]) Sub(b Mat4[T]) Mat4[T] {
	return Mat4[T]{
		m.M11 - b.M11, m.M12 - b.M12, m.M13 - b.M13, m.M14 - b.M14,
		m.M21 - b.M21, m.M22 - b.M22, m.M23 - b.M23, m.M24 - b.M24,
		m.M31 - b.M31, m.M32 - b.M32, m.M33 - b.M33, m.M34 - b.M34,
		m.M41 - b.M41, m.M42 - b.M42, m.M43 - b.M43, m.M44 - b.M44,
	}
}

func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	return Mat4[T]{
		m.M11 * s, m.M12 * s, m.M13 * s, m.M14 * s,
		m.M21 * s, m.M22 * s, m.M23 * s, m.M24 * s,
		m.M31 * s, m.M32 * s, m.M33 * s, m.M34 * s,
		m.M41 * s, m.M42 * s, m.M43 * s, m.M44 * s,
	}
}

func (m Mat4[T]) Neg() Mat4[T] {
	return m.MulScalar(-1)
}

// Lerp interpolates each component as m + (b-m)*t.
func (m Mat4[T]) Lerp(b Mat4[T], t T) Mat4[T] {
	return m.Add(b.Sub(m).MulScalar(t))
}

// Rotate returns m followed by the rotation q, i.e. m × Mat4FromQuat(q)
// restricted to the upper 3x3 columns; the fourth column is kept.
func (m Mat4[T]) Rotate(q Quat[T]) Mat4[T] {
	r := q.basis()
	row := func(x, y, z T) (T, T, T) {
		return x*r.m11 + y*r.m21 + z*r.m31,
			x*r.m12 + y*r.m22 + z*r.m32,
			x*r.m13 + y*r.m23 + z*r.m33
	}
	out := m
	out.M11, out.M12, out.M13 = row(m.M11, m.M12, m.M13)
	out.M21, out.M22, out.M23 = row(m.M21, m.M22, m.M23)
	out.M31, out.M32, out.M33 = row(m.M31, m.M32, m.M33)
	out.M41, out.M42, out.M43 = row(m.M41, m.M42, m.M43)
	return out
}

// Equal compares exactly; NaN components never compare equal.
func (m Mat4[T]) Equal(b Mat4[T]) bool { return m == b }
