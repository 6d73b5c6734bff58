package scene

import (
	"math"
	"testing"

	"vecmath/numerics"
)

func TestPrimitives(t *testing.T) {
	for _, tc := range []struct {
		name  string
		verts int
		tris  int
	}{
		{"cube", 24, 12},
		{"quad", 4, 2},
		{"tetrahedron", 4, 4},
		{"tetra", 4, 4},
	} {
		m, ok := Primitive(tc.name)
		if !ok {
			t.Errorf("%s: not found", tc.name)
			continue
		}
		if len(m.Verts) != tc.verts || len(m.Tris) != tc.tris {
			t.Errorf("%s: %d verts %d tris", tc.name, len(m.Verts), len(m.Tris))
		}
		for _, tri := range m.Tris {
			for k := range 3 {
				if tri.VI[k] >= len(m.Verts) || tri.TI[k] >= len(m.UVs) {
					t.Fatalf("%s: triangle %v out of range", tc.name, tri)
				}
			}
		}
	}
	if _, ok := Primitive("teapot"); ok {
		t.Error("unknown primitive resolved")
	}
}

func TestCubeFacesPointOutward(t *testing.T) {
	m := Cube()
	for i, tri := range m.Tris {
		a, b, c := m.Verts[tri.VI[0]], m.Verts[tri.VI[1]], m.Verts[tri.VI[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		center := a.Add(b).Add(c).Scale(1.0 / 3)
		if n.Dot(center) <= 0 {
			t.Errorf("triangle %d faces inward", i)
		}
	}
	lo, hi := m.Bounds()
	if lo != numerics.Vec3Splat[float32](-0.5) || hi != numerics.Vec3Splat[float32](0.5) {
		t.Errorf("bounds %v %v", lo, hi)
	}
}

func TestGroundMeshLiesInPlane(t *testing.T) {
	for _, p := range []numerics.Plane[float64]{
		numerics.NewPlane(0.0, 1.0, 0.0, 0.0),
		numerics.NewPlane(0.0, 1.0, 0.0, 2.0),
		numerics.NewPlane(1.0, 1.0, 0.0, -1.0).Normalize(),
	} {
		m := GroundMesh(p, 6)
		for _, v := range m.Verts {
			w := numerics.V3(float64(v.X), float64(v.Y), float64(v.Z))
			if d := p.DotCoordinate(w); math.Abs(d) > 1e-5 {
				t.Errorf("plane %v: vertex %v is %v off", p, v, d)
			}
		}
		d := m.Verts[0].Distance(m.Verts[1])
		if math.Abs(float64(d)-6) > 1e-5 {
			t.Errorf("plane %v: side %v", p, d)
		}
	}
}
