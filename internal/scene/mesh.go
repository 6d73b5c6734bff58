package scene

import (
	"math"

	"vecmath/numerics"
)

// Triangle indexes three vertices and their texture coordinates.
type Triangle struct {
	VI [3]int
	TI [3]int
}

// Mesh holds geometry in object space.
type Mesh struct {
	Verts []numerics.Vec3[float32]
	UVs   []numerics.Vec2[float32]
	Tris  []Triangle
}

// Primitive returns a fresh copy of a built-in mesh: "cube", "quad" or
// "tetrahedron".
func Primitive(name string) (*Mesh, bool) {
	switch name {
	case "cube":
		return Cube(), true
	case "quad":
		return Quad(), true
	case "tetrahedron", "tetra":
		return Tetrahedron(), true
	}
	return nil, false
}

// Quad is a unit square in the XY plane centered on the origin.
func Quad() *Mesh {
	return &Mesh{
		Verts: []numerics.Vec3[float32]{
			{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5},
		},
		UVs: []numerics.Vec2[float32]{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		Tris: []Triangle{
			{VI: [3]int{0, 1, 2}, TI: [3]int{0, 1, 2}},
			{VI: [3]int{0, 2, 3}, TI: [3]int{0, 2, 3}},
		},
	}
}

// Cube is a unit cube centered on the origin, each face mapped to the full
// texture.
func Cube() *Mesh {
	m := &Mesh{
		UVs: []numerics.Vec2[float32]{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
	}
	// Each face: outward normal, and two in-plane axes u, v with u x v = normal.
	faces := [6][3]numerics.Vec3[float32]{
		{{Z: 1}, {X: 1}, {Y: 1}},
		{{Z: -1}, {X: -1}, {Y: 1}},
		{{X: 1}, {Z: -1}, {Y: 1}},
		{{X: -1}, {Z: 1}, {Y: 1}},
		{{Y: 1}, {X: 1}, {Z: -1}},
		{{Y: -1}, {X: 1}, {Z: 1}},
	}
	for _, f := range faces {
		n, u, v := f[0].Scale(0.5), f[1].Scale(0.5), f[2].Scale(0.5)
		base := len(m.Verts)
		m.Verts = append(m.Verts,
			n.Sub(u).Sub(v),
			n.Add(u).Sub(v),
			n.Add(u).Add(v),
			n.Sub(u).Add(v),
		)
		m.Tris = append(m.Tris,
			Triangle{VI: [3]int{base, base + 1, base + 2}, TI: [3]int{0, 1, 2}},
			Triangle{VI: [3]int{base, base + 2, base + 3}, TI: [3]int{0, 2, 3}},
		)
	}
	return m
}

// Tetrahedron is a regular tetrahedron inscribed in the unit cube.
func Tetrahedron() *Mesh {
	const s = 0.5
	return &Mesh{
		Verts: []numerics.Vec3[float32]{
			{X: s, Y: s, Z: s}, {X: -s, Y: -s, Z: s}, {X: -s, Y: s, Z: -s}, {X: s, Y: -s, Z: -s},
		},
		UVs: []numerics.Vec2[float32]{{X: 0.5, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		Tris: []Triangle{
			{VI: [3]int{0, 1, 3}, TI: [3]int{0, 1, 2}},
			{VI: [3]int{0, 2, 1}, TI: [3]int{0, 1, 2}},
			{VI: [3]int{0, 3, 2}, TI: [3]int{0, 1, 2}},
			{VI: [3]int{1, 2, 3}, TI: [3]int{0, 1, 2}},
		},
	}
}

// GroundMesh builds a square of the given side length lying in plane,
// centered on the point of the plane closest to the origin.
func GroundMesh(plane numerics.Plane[float64], size float64) *Mesh {
	n := plane.Normal
	origin := n.Scale(-plane.D)

	// Pick the world axis least aligned with the normal to build a basis.
	ref := numerics.Vec3UnitX[float64]()
	if math.Abs(n.X) > math.Abs(n.Y) {
		ref = numerics.Vec3UnitY[float64]()
	}
	u := ref.Cross(n).Normalize().Scale(size / 2)
	v := n.Cross(u)

	corner := func(a, b float64) numerics.Vec3[float32] {
		p := origin.Add(u.Scale(a)).Add(v.Scale(b))
		return numerics.V3(float32(p.X), float32(p.Y), float32(p.Z))
	}
	reps := float32(math.Max(1, size/2))
	return &Mesh{
		Verts: []numerics.Vec3[float32]{corner(-1, -1), corner(1, -1), corner(1, 1), corner(-1, 1)},
		UVs:   []numerics.Vec2[float32]{{X: 0, Y: reps}, {X: reps, Y: reps}, {X: reps, Y: 0}, {X: 0, Y: 0}},
		Tris: []Triangle{
			{VI: [3]int{0, 1, 2}, TI: [3]int{0, 1, 2}},
			{VI: [3]int{0, 2, 3}, TI: [3]int{0, 2, 3}},
		},
	}
}

// Bounds returns the component-wise minimum and maximum vertex.
func (m *Mesh) Bounds() (lo, hi numerics.Vec3[float32]) {
	if len(m.Verts) == 0 {
		return
	}
	lo, hi = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}
