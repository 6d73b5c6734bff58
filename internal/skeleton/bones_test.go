package skeleton

import (
	"math"
	"testing"

	"vecmath/internal/scene"
	"vecmath/numerics"
)

func near(a, b scene.Vec3) bool { return a.Sub(b).Length() < 1e-9 }

func TestBuildWorldMatricesChainsParents(t *testing.T) {
	root := scene.Identity()
	root.Position = numerics.V3(10.0, 0.0, 0.0)
	root.Rotation = numerics.QuatFromAxisAngle(numerics.Vec3UnitY[float64](), math.Pi/2)

	child := scene.Identity()
	child.Position = numerics.V3(1.0, 0.0, 0.0)

	objects := []scene.Object{
		{Name: "root", Local: root, Parent: -1},
		{Name: "child", Local: child, Parent: 0},
		{Name: "free", Local: child, Parent: -1},
	}
	worlds := BuildWorldMatrices(objects)

	origin := numerics.V3(0.0, 0.0, 0.0)
	if got := origin.Transform(worlds[0]); !near(got, numerics.V3(10.0, 0.0, 0.0)) {
		t.Errorf("root origin = %v", got)
	}
	// The child offset is rotated by the parent (+X -> -Z) then translated.
	if got := origin.Transform(worlds[1]); !near(got, numerics.V3(10.0, 0.0, -1.0)) {
		t.Errorf("child origin = %v", got)
	}
	if got := origin.Transform(worlds[2]); !near(got, numerics.V3(1.0, 0.0, 0.0)) {
		t.Errorf("unparented origin = %v", got)
	}
}

func TestBlendPoseEndpointsAndMidpoint(t *testing.T) {
	a := scene.Identity()
	b := scene.Transform{
		Scale:    numerics.V3(3.0, 3.0, 3.0),
		Rotation: numerics.QuatFromAxisAngle(numerics.Vec3UnitZ[float64](), math.Pi/2),
		Position: numerics.V3(4.0, 0.0, 0.0),
	}

	p := numerics.V3(1.0, 2.0, 3.0)
	m0, ok := BlendPose(a.Matrix(), b.Matrix(), 0)
	if got := p.Transform(m0); !ok || !near(got, p) {
		t.Fatalf("t=0 maps %v to %v", p, got)
	}

	m1, ok := BlendPose(a.Matrix(), b.Matrix(), 1)
	if got, want := p.Transform(m1), p.Transform(b.Matrix()); !ok || !near(got, want) {
		t.Fatalf("t=1 maps %v to %v, want %v", p, got, want)
	}

	mid, ok := BlendPose(a.Matrix(), b.Matrix(), 0.5)
	if !ok {
		t.Fatal("midpoint failed to decompose")
	}
	s, r, tr, ok := mid.Decompose()
	if !ok {
		t.Fatal("blended pose is not decomposable")
	}
	if !near(s, numerics.V3(2.0, 2.0, 2.0)) || !near(tr, numerics.V3(2.0, 0.0, 0.0)) {
		t.Errorf("midpoint scale %v translation %v", s, tr)
	}
	want := numerics.QuatFromAxisAngle(numerics.Vec3UnitZ[float64](), math.Pi/4)
	if math.Abs(math.Abs(r.Dot(want))-1) > 1e-9 {
		t.Errorf("midpoint rotation %v, want %v", r, want)
	}
}

func TestBlendPoseFallsBackOnShear(t *testing.T) {
	shear := numerics.Mat4Identity[float64]()
	shear.M21 = 1
	got, ok := BlendPose(numerics.Mat4Identity[float64](), shear, 0.5)
	if ok {
		t.Fatal("sheared pose decomposed")
	}
	if got.M21 != 0.5 {
		t.Fatalf("fallback M21 = %v", got.M21)
	}
}

func TestLocalMatrixAnimation(t *testing.T) {
	target := scene.Identity()
	target.Position = numerics.V3(0.0, 8.0, 0.0)
	obj := scene.Object{Local: scene.Identity(), Animation: &scene.Animation{Target: target, Time: 0.25}}
	if got := LocalMatrix(obj).Translation(); !near(got, numerics.V3(0.0, 2.0, 0.0)) {
		t.Fatalf("animated translation = %v", got)
	}
	obj.Animation.Time = 0
	if !LocalMatrix(obj).IsIdentity() {
		t.Fatal("time 0 should be the rest pose")
	}
}

func TestTransformVertices(t *testing.T) {
	mesh := scene.Quad()
	world := numerics.Mat4ScaleUniform(2.0).Mul(numerics.Mat4TranslationXYZ(0.0, 0.0, -5.0))
	out := TransformVertices(mesh, world)
	if len(out) != 4 {
		t.Fatalf("%d vertices", len(out))
	}
	if !near(out[0], numerics.V3(-1.0, -1.0, -5.0)) || !near(out[2], numerics.V3(1.0, 1.0, -5.0)) {
		t.Fatalf("vertices = %v", out)
	}
}
