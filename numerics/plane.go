package numerics

// Plane is the surface dot(Normal, P) + D = 0. It is not normalized on
// construction.
type Plane[T Float] struct {
	Normal Vec3[T]
	D      T
}

func NewPlane[T Float](x, y, z, d T) Plane[T] {
	return Plane[T]{Vec3[T]{x, y, z}, d}
}

func PlaneFromVec4[T Float](v Vec4[T]) Plane[T] {
	return Plane[T]{v.XYZ(), v.W}
}

// PlaneFromVertices returns the normalized plane through three points, with
// the normal following the counter-clockwise winding a, b, c.
func PlaneFromVertices[T Float](a, b, c Vec3[T]) Plane[T] {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane[T]{n, -n.Dot(a)}
}

// AsVec4 returns (Normal, D).
func (p Plane[T]) AsVec4() Vec4[T] { return Vec4FromVec3(p.Normal, p.D) }

func (p Plane[T]) WithNormal(n Vec3[T]) Plane[T] {
	p.Normal = n
	return p
}

func (p Plane[T]) WithD(d T) Plane[T] {
	p.D = d
	return p
}

// Normalize scales the plane so the normal has unit length. Planes already
// within machine epsilon of unit length are returned unchanged.
func (p Plane[T]) Normalize() Plane[T] {
	f := p.Normal.LengthSquared()
	if abs(f-1) < machineEpsilon[T]() {
		return p
	}
	inv := 1 / sqrt(f)
	return Plane[T]{p.Normal.Scale(inv), p.D * inv}
}

// Dot returns dot(Normal, v.XYZ) + D*v.W.
func (p Plane[T]) Dot(v Vec4[T]) T {
	return p.Normal.Dot(v.XYZ()) + p.D*v.W
}

// DotCoordinate is the signed distance of point v scaled by |Normal|.
func (p Plane[T]) DotCoordinate(v Vec3[T]) T {
	return p.Normal.Dot(v) + p.D
}

// DotNormal is dot(Normal, v).
func (p Plane[T]) DotNormal(v Vec3[T]) T {
	return p.Normal.Dot(v)
}

// Transform maps the plane through m. Planes transform by the inverse
// transpose, so m is inverted here; a singular m yields a NaN plane.
func (p Plane[T]) Transform(m Mat4[T]) Plane[T] {
	inv, _ := m.Invert()
	x, y, z, w := p.Normal.X, p.Normal.Y, p.Normal.Z, p.D
	return Plane[T]{
		Normal: Vec3[T]{
			x*inv.M11 + y*inv.M12 + z*inv.M13 + w*inv.M14,
			x*inv.M21 + y*inv.M22 + z*inv.M23 + w*inv.M24,
			x*inv.M31 + y*inv.M32 + z*inv.M33 + w*inv.M34,
		},
		D: x*inv.M41 + y*inv.M42 + z*inv.M43 + w*inv.M44,
	}
}

// Rotate rotates the normal by q; D is unchanged.
func (p Plane[T]) Rotate(q Quat[T]) Plane[T] {
	return Plane[T]{p.Normal.Rotate(q), p.D}
}

// Equal compares exactly; NaN components never compare equal.
func (p Plane[T]) Equal(b Plane[T]) bool { return p == b }
