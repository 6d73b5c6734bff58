package numerics

// Vec2 is a 2-component vector.
type Vec2[T Float] struct {
	X, Y T
}

// V2 returns Vec2{x, y}.
func V2[T Float](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// Vec2Splat returns a vector with both components set to v.
func Vec2Splat[T Float](v T) Vec2[T] { return Vec2[T]{v, v} }

func Vec2One[T Float]() Vec2[T]   { return Vec2[T]{1, 1} }
func Vec2UnitX[T Float]() Vec2[T] { return Vec2[T]{1, 0} }
func Vec2UnitY[T Float]() Vec2[T] { return Vec2[T]{0, 1} }

// Vec2FromSlice reads the first two elements of s. It panics with an
// *ArgumentOutOfRangeError if s is shorter.
func Vec2FromSlice[T Float](s []T) Vec2[T] {
	checkLen("values", len(s), 2)
	return Vec2[T]{s[0], s[1]}
}

// CopyTo writes the components into dst[0:2].
func (v Vec2[T]) CopyTo(dst []T) {
	checkLen("dst", len(dst), 2)
	dst[0], dst[1] = v.X, v.Y
}

func (v Vec2[T]) WithX(x T) Vec2[T] {
	v.X = x
	return v
}

func (v Vec2[T]) WithY(y T) Vec2[T] {
	v.Y = y
	return v
}

func (v Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{v.X + b.X, v.Y + b.Y} }
func (v Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{v.X - b.X, v.Y - b.Y} }

// Mul multiplies component-wise.
func (v Vec2[T]) Mul(b Vec2[T]) Vec2[T] { return Vec2[T]{v.X * b.X, v.Y * b.Y} }

// Div divides component-wise.
func (v Vec2[T]) Div(b Vec2[T]) Vec2[T]       { return Vec2[T]{v.X / b.X, v.Y / b.Y} }
func (v Vec2[T]) Scale(s T) Vec2[T]           { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) DivScalar(d T) Vec2[T]       { return Vec2[T]{v.X / d, v.Y / d} }
func (v Vec2[T]) Neg() Vec2[T]                { return Vec2[T]{-v.X, -v.Y} }
func (v Vec2[T]) Dot(b Vec2[T]) T             { return v.X*b.X + v.Y*b.Y }
func (v Vec2[T]) LengthSquared() T            { return v.Dot(v) }
func (v Vec2[T]) Length() T                   { return sqrt(v.LengthSquared()) }
func (v Vec2[T]) DistanceSquared(b Vec2[T]) T { return v.Sub(b).LengthSquared() }
func (v Vec2[T]) Distance(b Vec2[T]) T        { return sqrt(v.DistanceSquared(b)) }

// Normalize divides by the length. A zero vector yields NaN components.
func (v Vec2[T]) Normalize() Vec2[T] { return v.DivScalar(v.Length()) }

func (v Vec2[T]) Abs() Vec2[T]  { return Vec2[T]{abs(v.X), abs(v.Y)} }
func (v Vec2[T]) Sqrt() Vec2[T] { return Vec2[T]{sqrt(v.X), sqrt(v.Y)} }

func (v Vec2[T]) Min(b Vec2[T]) Vec2[T] { return Vec2[T]{minf(v.X, b.X), minf(v.Y, b.Y)} }
func (v Vec2[T]) Max(b Vec2[T]) Vec2[T] { return Vec2[T]{maxf(v.X, b.X), maxf(v.Y, b.Y)} }

// Clamp restricts each component to [lo, hi]. lo wins when lo > hi.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return Vec2[T]{clampf(v.X, lo.X, hi.X), clampf(v.Y, lo.Y, hi.Y)}
}

// Lerp returns v + (b-v)*t.
func (v Vec2[T]) Lerp(b Vec2[T], t T) Vec2[T] {
	return Vec2[T]{v.X + (b.X-v.X)*t, v.Y + (b.Y-v.Y)*t}
}

// Reflect mirrors v about the plane with the given unit normal.
func (v Vec2[T]) Reflect(normal Vec2[T]) Vec2[T] {
	d := v.Dot(normal)
	return Vec2[T]{v.X - 2*d*normal.X, v.Y - 2*d*normal.Y}
}

// Transform3x2 maps a position through an affine 2D matrix.
func (v Vec2[T]) Transform3x2(m Mat3x2[T]) Vec2[T] {
	return Vec2[T]{
		v.X*m.M11 + v.Y*m.M21 + m.M31,
		v.X*m.M12 + v.Y*m.M22 + m.M32,
	}
}

// TransformNormal3x2 maps a direction, ignoring translation.
func (v Vec2[T]) TransformNormal3x2(m Mat3x2[T]) Vec2[T] {
	return Vec2[T]{
		v.X*m.M11 + v.Y*m.M21,
		v.X*m.M12 + v.Y*m.M22,
	}
}

// Transform maps the point (X, Y, 0, 1) through m and keeps X and Y.
func (v Vec2[T]) Transform(m Mat4[T]) Vec2[T] {
	return Vec2[T]{
		v.X*m.M11 + v.Y*m.M21 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// TransformNormal maps the direction (X, Y, 0, 0) through m.
func (v Vec2[T]) TransformNormal(m Mat4[T]) Vec2[T] {
	return Vec2[T]{
		v.X*m.M11 + v.Y*m.M21,
		v.X*m.M12 + v.Y*m.M22,
	}
}

// Rotate rotates (X, Y, 0) by q and drops Z.
func (v Vec2[T]) Rotate(q Quat[T]) Vec2[T] {
	r := q.basis()
	return Vec2[T]{
		v.X*r.m11 + v.Y*r.m21,
		v.X*r.m12 + v.Y*r.m22,
	}
}

// Equal compares exactly; NaN components never compare equal.
func (v Vec2[T]) Equal(b Vec2[T]) bool { return v == b }

func minf[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxf[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func clampf[T Float](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
