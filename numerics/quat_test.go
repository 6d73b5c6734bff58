package numerics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestQuatFromAxisAngleMatchesMathgl(t *testing.T) {
	axes := []Vec3[float64]{
		V3(1.0, 0.0, 0.0),
		V3(0.0, 1.0, 0.0),
		V3(1.0, 2.0, 3.0).Normalize(),
		V3(-0.3, 0.2, 0.9).Normalize(),
	}
	for _, axis := range axes {
		for _, angle := range []float64{0.1, 1.0, 2.5, -1.7} {
			got := Mat4FromQuat(QuatFromAxisAngle(axis, angle)).array()
			// mathgl is column-major with column vectors, which has the same
			// memory order as a row-major matrix for row vectors.
			want := mgl64.QuatRotate(angle, mgl64.Vec3{axis.X, axis.Y, axis.Z}).Mat4()
			for i := range got {
				if !approx(got[i], want[i], tol) {
					t.Fatalf("axis %v angle %v: element %d = %v, want %v", axis, angle, i, got[i], want[i])
				}
			}
			if a := Mat4FromAxisAngle(axis, angle); !mat4Approx(a, Mat4FromQuat(QuatFromAxisAngle(axis, angle)), tol) {
				t.Fatalf("axis %v angle %v: Mat4FromAxisAngle disagrees with quaternion", axis, angle)
			}
		}
	}
}

func TestQuatFromYawPitchRollOrder(t *testing.T) {
	yaw, pitch, roll := 0.3, -0.7, 1.1
	got := Mat4FromYawPitchRoll(yaw, pitch, roll)
	want := Mat4RotationZ(roll).Mul(Mat4RotationX(pitch)).Mul(Mat4RotationY(yaw))
	if !mat4Approx(got, want, tol) {
		t.Fatalf("ypr = %v, want %v", got, want)
	}
}

func TestSelectRotationBranch(t *testing.T) {
	cases := []struct {
		name string
		m    Mat4[float64]
		want rotationBranch
		q    Quat[float64]
	}{
		{"trace", Mat4Identity[float64](), branchTrace, QuatIdentity[float64]()},
		{"x", Mat4RotationX(math.Pi), branchX, Quat[float64]{1, 0, 0, 0}},
		{"y", Mat4RotationY(math.Pi), branchY, Quat[float64]{0, 1, 0, 0}},
		{"z", Mat4RotationZ(math.Pi), branchZ, Quat[float64]{0, 0, 1, 0}},
	}
	for _, c := range cases {
		if got := selectRotationBranch(c.m); got != c.want {
			t.Errorf("%s: branch %d, want %d", c.name, got, c.want)
		}
		if got := QuatFromRotationMatrix(c.m); !rotationApprox(got, c.q, tol) {
			t.Errorf("%s: quat %v, want ±%v", c.name, got, c.q)
		}
	}
}

func TestQuatMatrixRoundTrip(t *testing.T) {
	for _, q := range []Quat[float64]{
		QuatFromYawPitchRoll(0.1, 0.2, 0.3),
		QuatFromYawPitchRoll(3.0, -0.2, 2.9),
		QuatFromAxisAngle(V3(0.0, 0.6, 0.8), 3.1),
		QuatFromAxisAngle(V3(0.8, 0.0, 0.6), -3.0),
		QuatFromAxisAngle(V3(0.0, 0.0, 1.0), 2.9),
	} {
		got := QuatFromRotationMatrix(Mat4FromQuat(q))
		if !rotationApprox(got, q, tol) {
			t.Errorf("round trip of %v = %v", q, got)
		}
	}
}

func TestQuatFromRotationMatrixIgnoresTranslation(t *testing.T) {
	q := QuatFromYawPitchRoll[float32](0.5, 0.5, 0.5)
	m := Mat4FromQuat(q).WithTranslation(V3[float32](100, 200, 300))
	if got := QuatFromRotationMatrix(m); !rotationApprox(got, q, 1e-6) {
		t.Fatalf("got %v, want ±%v", got, q)
	}
}

func TestSlerpOppositeHemisphere(t *testing.T) {
	a := QuatFromAxisAngle(V3(1.0, 2.0, 3.0).Normalize(), Deg2Rad(10.0))
	if got := a.Slerp(a.Neg(), 1); got != a {
		t.Fatalf("Slerp(a, -a, 1) = %v, want %v", got, a)
	}

	a32 := QuatFromAxisAngle(V3[float32](0, 0, 1), 0.4)
	if got := a32.Slerp(a32.Neg(), 1); got != a32 {
		t.Fatalf("float32 Slerp(a, -a, 1) = %v, want %v", got, a32)
	}
}

func TestSlerp(t *testing.T) {
	a := QuatIdentity[float64]()
	b := QuatFromAxisAngle(V3(0.0, 0.0, 1.0), math.Pi/2)

	if got := a.Slerp(b, 0); !quatApprox(got, a, tol) {
		t.Errorf("t=0: %v", got)
	}
	if got := a.Slerp(b, 1); !quatApprox(got, b, tol) {
		t.Errorf("t=1: %v", got)
	}
	want := QuatFromAxisAngle(V3(0.0, 0.0, 1.0), math.Pi/4)
	if got := a.Slerp(b, 0.5); !quatApprox(got, want, tol) {
		t.Errorf("t=0.5: %v, want %v", got, want)
	}
	// Interpolating towards -b takes the same short path.
	if got := a.Slerp(b.Neg(), 0.5); !rotationApprox(got, want, tol) {
		t.Errorf("t=0.5 towards -b: %v, want ±%v", got, want)
	}
}

func TestSlerpNearParallel(t *testing.T) {
	a := QuatFromAxisAngle(V3(0.0, 1.0, 0.0), 0.5)
	b := QuatFromAxisAngle(V3(0.0, 1.0, 0.0), 0.5+1e-9)
	got := a.Slerp(b, 0.5)
	if math.IsNaN(got.X) || math.IsNaN(got.W) {
		t.Fatalf("near-parallel slerp produced NaN: %v", got)
	}
	if !quatApprox(got, a, 1e-8) {
		t.Fatalf("near-parallel slerp = %v", got)
	}
}

func TestSlerpNearParallelRenormalizes(t *testing.T) {
	a := QuatFromAxisAngle(V3(1.0, 2.0, 3.0).Normalize(), 0.7)
	b := a.Scale(2)
	got := a.Slerp(b, 0.5)
	if l := got.Length(); math.Abs(l-1) > 1e-14 {
		t.Fatalf("|Slerp| = %v, want 1", l)
	}
	if !quatApprox(got, a, 1e-14) {
		t.Fatalf("Slerp(a, 2a, 0.5) = %v, want %v", got, a)
	}
	// Endpoints come back untouched.
	if got := a.Slerp(b, 0); got != a {
		t.Fatalf("t=0: %v", got)
	}
}

func TestQuatLerp(t *testing.T) {
	a := QuatIdentity[float64]()
	b := QuatFromAxisAngle(V3(1.0, 0.0, 0.0), 1.0)

	got := a.Lerp(b, 0.5)
	if !approx(got.Length(), 1, tol) {
		t.Fatalf("lerp not normalized: %v", got)
	}
	if flipped := a.Lerp(b.Neg(), 0.5); !quatApprox(flipped, got, tol) {
		t.Fatalf("lerp across hemisphere = %v, want %v", flipped, got)
	}
	if end := a.Lerp(b, 1); !quatApprox(end, b, tol) {
		t.Fatalf("lerp t=1 = %v", end)
	}
}

func TestQuatConcatenate(t *testing.T) {
	a := QuatFromAxisAngle(V3(1.0, 0.0, 0.0), 0.7)
	b := QuatFromAxisAngle(V3(0.0, 1.0, 0.0), -0.4)
	v := V3(1.0, 2.0, 3.0)

	got := v.Rotate(a.Concatenate(b))
	want := v.Rotate(a).Rotate(b)
	if !vec3Approx(got, want, tol) {
		t.Fatalf("concatenate: %v, want %v", got, want)
	}
	if m := Mat4FromQuat(a).Mul(Mat4FromQuat(b)); !mat4Approx(m, Mat4FromQuat(a.Concatenate(b)), tol) {
		t.Fatalf("concatenate disagrees with matrix product")
	}
	if c := a.Concatenate(b); c != b.Mul(a) {
		t.Fatalf("concatenate %v != b*a %v", c, b.Mul(a))
	}
}

func TestQuatInverseAndDiv(t *testing.T) {
	q := Quat[float64]{1, 2, 3, 4}
	if got := q.Mul(q.Inverse()); !quatApprox(got, QuatIdentity[float64](), tol) {
		t.Fatalf("q*q⁻¹ = %v", got)
	}
	if got := q.Div(q); !quatApprox(got, QuatIdentity[float64](), tol) {
		t.Fatalf("q/q = %v", got)
	}
	u := q.Normalize()
	if got := u.Inverse(); !quatApprox(got, u.Conjugate(), tol) {
		t.Fatalf("unit inverse %v != conjugate %v", got, u.Conjugate())
	}
}

func TestQuatZeroDoesNotPanic(t *testing.T) {
	var z Quat[float64]
	n := z.Normalize()
	inv := z.Inverse()
	if !math.IsNaN(n.X) {
		t.Errorf("normalize(0) = %v, want NaN", n)
	}
	if !math.IsNaN(inv.X) {
		t.Errorf("inverse(0) = %v, want NaN", inv)
	}
	_ = Mat4FromQuat(z)
	_ = V3(1.0, 1.0, 1.0).Rotate(z)
}

func TestQuatNaNEquality(t *testing.T) {
	q := Quat[float32]{0, 0, 0, float32(math.NaN())}
	if q == q || q.Equal(q) || !(q != q) {
		t.Fatal("NaN quaternion compared equal to itself")
	}
	if q.IsIdentity() {
		t.Fatal("NaN quaternion is identity")
	}
}

func TestQuatSameRotation(t *testing.T) {
	q := QuatFromYawPitchRoll(0.1, 0.2, 0.3)
	if !q.SameRotation(q.Neg()) || !q.SameRotation(q) {
		t.Fatal("q and -q should be the same rotation")
	}
	if q.SameRotation(q.Conjugate()) {
		t.Fatal("conjugate is a different rotation")
	}
}
