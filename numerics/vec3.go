package numerics

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 returns Vec3{x, y, z}.
func V3[T Float](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// Vec3Splat returns a vector with every component set to v.
func Vec3Splat[T Float](v T) Vec3[T] { return Vec3[T]{v, v, v} }

// Vec3FromVec2 extends v with z.
func Vec3FromVec2[T Float](v Vec2[T], z T) Vec3[T] { return Vec3[T]{v.X, v.Y, z} }

func Vec3One[T Float]() Vec3[T]   { return Vec3[T]{1, 1, 1} }
func Vec3UnitX[T Float]() Vec3[T] { return Vec3[T]{1, 0, 0} }
func Vec3UnitY[T Float]() Vec3[T] { return Vec3[T]{0, 1, 0} }
func Vec3UnitZ[T Float]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Vec3FromSlice reads the first three elements of s. It panics with an
// *ArgumentOutOfRangeError if s is shorter.
func Vec3FromSlice[T Float](s []T) Vec3[T] {
	checkLen("values", len(s), 3)
	return Vec3[T]{s[0], s[1], s[2]}
}

// CopyTo writes the components into dst[0:3].
func (v Vec3[T]) CopyTo(dst []T) {
	checkLen("dst", len(dst), 3)
	dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
}

func (v Vec3[T]) WithX(x T) Vec3[T] {
	v.X = x
	return v
}

func (v Vec3[T]) WithY(y T) Vec3[T] {
	v.Y = y
	return v
}

func (v Vec3[T]) WithZ(z T) Vec3[T] {
	v.Z = z
	return v
}

// XY drops Z.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

func (v Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{v.X + b.X, v.Y + b.Y, v.Z + b.Z} }
func (v Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{v.X - b.X, v.Y - b.Y, v.Z - b.Z} }

// Mul multiplies component-wise.
func (v Vec3[T]) Mul(b Vec3[T]) Vec3[T] { return Vec3[T]{v.X * b.X, v.Y * b.Y, v.Z * b.Z} }

// Div divides component-wise.
func (v Vec3[T]) Div(b Vec3[T]) Vec3[T] { return Vec3[T]{v.X / b.X, v.Y / b.Y, v.Z / b.Z} }

func (v Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) DivScalar(d T) Vec3[T] { return Vec3[T]{v.X / d, v.Y / d, v.Z / d} }
func (v Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{-v.X, -v.Y, -v.Z} }

func (v Vec3[T]) Dot(b Vec3[T]) T {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

func (v Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }
func (v Vec3[T]) Length() T        { return sqrt(v.LengthSquared()) }

func (v Vec3[T]) DistanceSquared(b Vec3[T]) T { return v.Sub(b).LengthSquared() }
func (v Vec3[T]) Distance(b Vec3[T]) T        { return sqrt(v.DistanceSquared(b)) }

// Normalize divides by the length. A zero vector yields NaN components.
func (v Vec3[T]) Normalize() Vec3[T] {
	return v.DivScalar(v.Length())
}

func (v Vec3[T]) Abs() Vec3[T]  { return Vec3[T]{abs(v.X), abs(v.Y), abs(v.Z)} }
func (v Vec3[T]) Sqrt() Vec3[T] { return Vec3[T]{sqrt(v.X), sqrt(v.Y), sqrt(v.Z)} }

func (v Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{minf(v.X, b.X), minf(v.Y, b.Y), minf(v.Z, b.Z)}
}

func (v Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{maxf(v.X, b.X), maxf(v.Y, b.Y), maxf(v.Z, b.Z)}
}

// Clamp restricts each component to [lo, hi]. lo wins when lo > hi.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return Vec3[T]{clampf(v.X, lo.X, hi.X), clampf(v.Y, lo.Y, hi.Y), clampf(v.Z, lo.Z, hi.Z)}
}

// Lerp returns v + (b-v)*t.
func (v Vec3[T]) Lerp(b Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		v.X + (b.X-v.X)*t,
		v.Y + (b.Y-v.Y)*t,
		v.Z + (b.Z-v.Z)*t,
	}
}

// Reflect mirrors v about the plane with the given unit normal.
func (v Vec3[T]) Reflect(normal Vec3[T]) Vec3[T] {
	d := v.Dot(normal)
	return Vec3[T]{
		v.X - 2*d*normal.X,
		v.Y - 2*d*normal.Y,
		v.Z - 2*d*normal.Z,
	}
}

// Transform maps the point (X, Y, Z, 1) through m and drops W.
func (v Vec3[T]) Transform(m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformNormal maps the direction (X, Y, Z, 0) through m.
func (v Vec3[T]) TransformNormal(m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// Rotate rotates v by q.
func (v Vec3[T]) Rotate(q Quat[T]) Vec3[T] {
	r := q.basis()
	return Vec3[T]{
		v.X*r.m11 + v.Y*r.m21 + v.Z*r.m31,
		v.X*r.m12 + v.Y*r.m22 + v.Z*r.m32,
		v.X*r.m13 + v.Y*r.m23 + v.Z*r.m33,
	}
}

// Equal compares exactly; NaN components never compare equal.
func (v Vec3[T]) Equal(b Vec3[T]) bool { return v == b }
