package numerics

// Vec4 is a 4-component vector.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// V4 returns Vec4{x, y, z, w}.
func V4[T Float](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

func Vec4Splat[T Float](v T) Vec4[T] { return Vec4[T]{v, v, v, v} }

func Vec4FromVec2[T Float](v Vec2[T], z, w T) Vec4[T] { return Vec4[T]{v.X, v.Y, z, w} }
func Vec4FromVec3[T Float](v Vec3[T], w T) Vec4[T]    { return Vec4[T]{v.X, v.Y, v.Z, w} }

func Vec4One[T Float]() Vec4[T]   { return Vec4[T]{1, 1, 1, 1} }
func Vec4UnitX[T Float]() Vec4[T] { return Vec4[T]{1, 0, 0, 0} }
func Vec4UnitY[T Float]() Vec4[T] { return Vec4[T]{0, 1, 0, 0} }
func Vec4UnitZ[T Float]() Vec4[T] { return Vec4[T]{0, 0, 1, 0} }
func Vec4UnitW[T Float]() Vec4[T] { return Vec4[T]{0, 0, 0, 1} }

// Vec4FromSlice reads the first four elements of s. It panics with an
// *ArgumentOutOfRangeError if s is shorter.
func Vec4FromSlice[T Float](s []T) Vec4[T] {
	checkLen("values", len(s), 4)
	return Vec4[T]{s[0], s[1], s[2], s[3]}
}

// CopyTo writes the components into dst[0:4].
func (v Vec4[T]) CopyTo(dst []T) {
	checkLen("dst", len(dst), 4)
	dst[0], dst[1], dst[2], dst[3] = v.X, v.Y, v.Z, v.W
}

func (v Vec4[T]) WithX(x T) Vec4[T] {
	v.X = x
	return v
}

func (v Vec4[T]) WithY(y T) Vec4[T] {
	v.Y = y
	return v
}

func (v Vec4[T]) WithZ(z T) Vec4[T] {
	v.Z = z
	return v
}

func (v Vec4[T]) WithW(w T) Vec4[T] {
	v.W = w
	return v
}

// XYZ drops W.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

func (v Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + b.X, v.Y + b.Y, v.Z + b.Z, v.W + b.W}
}

func (v Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - b.X, v.Y - b.Y, v.Z - b.Z, v.W - b.W}
}

// Mul multiplies component-wise.
func (v Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * b.X, v.Y * b.Y, v.Z * b.Z, v.W * b.W}
}

// Div divides component-wise.
func (v Vec4[T]) Div(b Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X / b.X, v.Y / b.Y, v.Z / b.Z, v.W / b.W}
}

func (v Vec4[T]) Scale(s T) Vec4[T]     { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vec4[T]) DivScalar(d T) Vec4[T] { return Vec4[T]{v.X / d, v.Y / d, v.Z / d, v.W / d} }
func (v Vec4[T]) Neg() Vec4[T]          { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vec4[T]) Dot(b Vec4[T]) T {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z + v.W*b.W
}

func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }
func (v Vec4[T]) Length() T        { return sqrt(v.LengthSquared()) }

func (v Vec4[T]) DistanceSquared(b Vec4[T]) T { return v.Sub(b).LengthSquared() }
func (v Vec4[T]) Distance(b Vec4[T]) T        { return sqrt(v.DistanceSquared(b)) }

// Normalize divides by the length. A zero vector yields NaN components.
func (v Vec4[T]) Normalize() Vec4[T] { return v.DivScalar(v.Length()) }

func (v Vec4[T]) Abs() Vec4[T]  { return Vec4[T]{abs(v.X), abs(v.Y), abs(v.Z), abs(v.W)} }
func (v Vec4[T]) Sqrt() Vec4[T] { return Vec4[T]{sqrt(v.X), sqrt(v.Y), sqrt(v.Z), sqrt(v.W)} }

func (v Vec4[T]) Min(b Vec4[T]) Vec4[T] {
	return Vec4[T]{minf(v.X, b.X), minf(v.Y, b.Y), minf(v.Z, b.Z), minf(v.W, b.W)}
}

func (v Vec4[T]) Max(b Vec4[T]) Vec4[T] {
	return Vec4[T]{maxf(v.X, b.X), maxf(v.Y, b.Y), maxf(v.Z, b.Z), maxf(v.W, b.W)}
}

// Clamp restricts each component to [lo, hi]. lo wins when lo > hi.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return Vec4[T]{
		clampf(v.X, lo.X, hi.X),
		clampf(v.Y, lo.Y, hi.Y),
		clampf(v.Z, lo.Z, hi.Z),
		clampf(v.W, lo.W, hi.W),
	}
}

// Lerp returns v + (b-v)*t.
func (v Vec4[T]) Lerp(b Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		v.X + (b.X-v.X)*t,
		v.Y + (b.Y-v.Y)*t,
		v.Z + (b.Z-v.Z)*t,
		v.W + (b.W-v.W)*t,
	}
}

// Transform returns v * m.
func (v Vec4[T]) Transform(m Mat4[T]) Vec4[T] {
	return Vec4[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// Rotate rotates the XYZ part by q and keeps W.
func (v Vec4[T]) Rotate(q Quat[T]) Vec4[T] {
	return Vec4FromVec3(v.XYZ().Rotate(q), v.W)
}

// Equal compares exactly; NaN components never compare equal.
func (v Vec4[T]) Equal(b Vec4[T]) bool { return v == b }
