package numerics

import "math"

// Mat3x2 is a 2D affine transform applied to row vectors: [x y 1] * M.
// The third column is implicitly (0, 0, 1).
type Mat3x2[T Float] struct {
	M11, M12 T
	M21, M22 T
	M31, M32 T
}

func Mat3x2Identity[T Float]() Mat3x2[T] {
	return Mat3x2[T]{
		1, 0,
		0, 1,
		0, 0,
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat3x2[T]) IsIdentity() bool {
	return m == Mat3x2Identity[T]()
}

// Translation returns the (M31, M32) row.
func (m Mat3x2[T]) Translation() Vec2[T] { return Vec2[T]{m.M31, m.M32} }

// WithTranslation returns m with (M31, M32) replaced.
func (m Mat3x2[T]) WithTranslation(t Vec2[T]) Mat3x2[T] {
	m.M31, m.M32 = t.X, t.Y
	return m
}

func Mat3x2Translation[T Float](t Vec2[T]) Mat3x2[T] {
	return Mat3x2Identity[T]().WithTranslation(t)
}

func Mat3x2Scale[T Float](s Vec2[T]) Mat3x2[T] {
	return Mat3x2[T]{M11: s.X, M22: s.Y}
}

func Mat3x2ScaleUniform[T Float](s T) Mat3x2[T] {
	return Mat3x2Scale(Vec2[T]{s, s})
}

// Mat3x2ScaleAt scales about center instead of the origin.
func Mat3x2ScaleAt[T Float](s, center Vec2[T]) Mat3x2[T] {
	m := Mat3x2Scale(s)
	m.M31 = center.X * (1 - s.X)
	m.M32 = center.Y * (1 - s.Y)
	return m
}

// Mat3x2Skew builds a skew with angles (radians) measured from the Y and X axes.
func Mat3x2Skew[T Float](radiansX, radiansY T) Mat3x2[T] {
	return Mat3x2[T]{
		1, tan(radiansY),
		tan(radiansX), 1,
		0, 0,
	}
}

// Mat3x2SkewAt skews about center.
func Mat3x2SkewAt[T Float](radiansX, radiansY T, center Vec2[T]) Mat3x2[T] {
	m := Mat3x2Skew(radiansX, radiansY)
	m.M31 = -center.Y * m.M21
	m.M32 = -center.X * m.M12
	return m
}

// Mat3x2Rotation rotates counter-clockwise by radians. Angles within 0.001°
// of a multiple of 90° produce exact 0/±1 entries.
func Mat3x2Rotation[T Float](radians T) Mat3x2[T] {
	c, s := exactSinCos(radians)
	return Mat3x2[T]{
		c, s,
		-s, c,
		0, 0,
	}
}

// Mat3x2RotationAt rotates about center.
func Mat3x2RotationAt[T Float](radians T, center Vec2[T]) Mat3x2[T] {
	m := Mat3x2Rotation(radians)
	c, s := m.M11, m.M12
	m.M31 = center.X*(1-c) + center.Y*s
	m.M32 = center.Y*(1-c) - center.X*s
	return m
}

func exactSinCos[T Float](radians T) (c, s T) {
	const eps = 0.001 * math.Pi / 180
	r := math.Remainder(float64(radians), 2*math.Pi)
	switch {
	case r > -eps && r < eps:
		return 1, 0
	case r > math.Pi/2-eps && r < math.Pi/2+eps:
		return 0, 1
	case r < -math.Pi+eps || r > math.Pi-eps:
		return -1, 0
	case r > -math.Pi/2-eps && r < -math.Pi/2+eps:
		return 0, -1
	}
	return T(math.Cos(r)), T(math.Sin(r))
}

// Determinant of the 2x2 linear part.
func (m Mat3x2[T]) Determinant() T {
	return m.M11*m.M22 - m.M21*m.M12
}

// Invert returns the inverse transform. If m is singular it returns a matrix
// of NaNs and false.
func (m Mat3x2[T]) Invert() (Mat3x2[T], bool) {
	det := m.Determinant()
	if abs(det) < tiny[T]() {
		n := nan[T]()
		return Mat3x2[T]{n, n, n, n, n, n}, false
	}
	inv := 1 / det
	return Mat3x2[T]{
		M11: m.M22 * inv,
		M12: -m.M12 * inv,
		M21: -m.M21 * inv,
		M22: m.M11 * inv,
		M31: (m.M21*m.M32 - m.M31*m.M22) * inv,
		M32: (m.M31*m.M12 - m.M11*m.M32) * inv,
	}, true
}

func (m Mat3x2[T]) Add(b Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11 + b.M11, m.M12 + b.M12,
		m.M21 + b.M21, m.M22 + b.M22,
		m.M31 + b.M31, m.M32 + b.M32,
	}
}

func (m Mat3x2[T]) Sub(b Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11 - b.M11, m.M12 - b.M12,
		m.M21 - b.M21, m.M22 - b.M22,
		m.M31 - b.M31, m.M32 - b.M32,
	}
}

// Mul returns m × b: m is applied first.
func (m Mat3x2[T]) Mul(b Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11*b.M11 + m.M12*b.M21,
		m.M11*b.M12 + m.M12*b.M22,
		m.M21*b.M11 + m.M22*b.M21,
		m.M21*b.M12 + m.M22*b.M22,
		m.M31*b.M11 + m.M32*b.M21 + b.M31,
		m.M31*b.M12 + m.M32*b.M22 + b.M32,
	}
}

func (m Mat3x2[T]) MulScalar(s T) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11 * s, m.M12 * s,
		m.M21 * s, m.M22 * s,
		m.M31 * s, m.M32 * s,
	}
}

func (m Mat3x2[T]) Neg() Mat3x2[T] {
	return Mat3x2[T]{-m.M11, -m.M12, -m.M21, -m.M22, -m.M31, -m.M32}
}

// Lerp interpolates each component as m + (b-m)*t.
func (m Mat3x2[T]) Lerp(b Mat3x2[T], t T) Mat3x2[T] {
	return Mat3x2[T]{
		m.M11 + (b.M11-m.M11)*t, m.M12 + (b.M12-m.M12)*t,
		m.M21 + (b.M21-m.M21)*t, m.M22 + (b.M22-m.M22)*t,
		m.M31 + (b.M31-m.M31)*t, m.M32 + (b.M32-m.M32)*t,
	}
}

// Equal compares exactly; NaN components never compare equal.
func (m Mat3x2[T]) Equal(b Mat3x2[T]) bool { return m == b }
