package numerics

import (
	"math"
	"testing"
)

func TestPerspectiveValidation(t *testing.T) {
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4Perspective(10.0, 10.0, 0.0, 0.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4Perspective(10.0, 10.0, -1.0, 10.0) })
	expectRangePanic(t, "farPlaneDistance", func() { Mat4Perspective(10.0, 10.0, 1.0, -10.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4Perspective(10.0, 10.0, 10.0, 1.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4Perspective(10.0, 10.0, 5.0, 5.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4Perspective(10.0, 10.0, math.NaN(), 5.0) })

	expectRangePanic(t, "nearPlaneDistance", func() { Mat4PerspectiveOffCenter(-1.0, 1.0, -1.0, 1.0, 0.0, 10.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4PerspectiveOffCenter(-1.0, 1.0, -1.0, 1.0, 20.0, 10.0) })

	expectRangePanic(t, "fieldOfView", func() { Mat4PerspectiveFov(0.0, 1.0, 1.0, 10.0) })
	expectRangePanic(t, "fieldOfView", func() { Mat4PerspectiveFov(-1.0, 1.0, 1.0, 10.0) })
	expectRangePanic(t, "fieldOfView", func() { Mat4PerspectiveFov(math.Pi, 1.0, 1.0, 10.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4PerspectiveFov[float32](1, 1, 0, 10) })
	expectRangePanic(t, "farPlaneDistance", func() { Mat4PerspectiveFov[float32](1, 1, 1, 0) })
}

func TestPerspectiveInfiniteFar(t *testing.T) {
	const near = 0.125
	inf := math.Inf(1)
	for name, m := range map[string]Mat4[float64]{
		"perspective": Mat4Perspective(2.0, 1.0, near, inf),
		"fov":         Mat4PerspectiveFov(1.0, 1.5, near, inf),
		"off center":  Mat4PerspectiveOffCenter(-1.0, 2.0, -1.0, 3.0, near, inf),
	} {
		if m.M33 != -1 || m.M43 != -near {
			t.Errorf("%s: M33=%v M43=%v, want -1 and %v", name, m.M33, m.M43, -near)
		}
		if m.M34 != -1 || m.M44 != 0 {
			t.Errorf("%s: M34=%v M44=%v", name, m.M34, m.M44)
		}
	}

	m32 := Mat4PerspectiveFov[float32](1, 1, near, float32(inf))
	if m32.M33 != -1 || m32.M43 != -near {
		t.Errorf("float32: M33=%v M43=%v", m32.M33, m32.M43)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := 1.0, 100.0
	m := Mat4PerspectiveFov(math.Pi/2, 1.0, near, far)
	if !approx(m.M11, 1, tol) || !approx(m.M22, 1, tol) {
		t.Fatalf("90° fov scale = %v, %v", m.M11, m.M22)
	}
	ndc := func(z float64) float64 {
		v := Vec4[float64]{0, 0, -z, 1}.Transform(m)
		return v.Z / v.W
	}
	if got := ndc(near); !approx(got, 0, tol) {
		t.Errorf("near maps to %v", got)
	}
	if got := ndc(far); !approx(got, 1, tol) {
		t.Errorf("far maps to %v", got)
	}

	w := Mat4Perspective(2.0, 2.0, near, far)
	if !mat4Approx(w, m, tol) {
		t.Errorf("width/height form %v differs from fov form %v", w, m)
	}
	if oc := Mat4PerspectiveOffCenter(-1.0, 1.0, -1.0, 1.0, near, far); !mat4Approx(oc, m, tol) {
		t.Errorf("symmetric off-center %v differs from %v", oc, m)
	}
}

func TestOrthographic(t *testing.T) {
	m := Mat4Orthographic(4.0, 2.0, 1.0, 11.0)
	if got := V3(2.0, 1.0, -1.0).Transform(m); !vec3Approx(got, V3(1.0, 1.0, 0.0), tol) {
		t.Errorf("corner at near = %v", got)
	}
	if got := V3(-2.0, -1.0, -11.0).Transform(m); !vec3Approx(got, V3(-1.0, -1.0, 1.0), tol) {
		t.Errorf("corner at far = %v", got)
	}

	oc := Mat4OrthographicOffCenter(0.0, 4.0, 0.0, 2.0, 1.0, 11.0)
	if got := V3(4.0, 2.0, -1.0).Transform(oc); !vec3Approx(got, V3(1.0, 1.0, 0.0), tol) {
		t.Errorf("off-center corner = %v", got)
	}
	if sym := Mat4OrthographicOffCenter(-2.0, 2.0, -1.0, 1.0, 1.0, 11.0); !mat4Approx(sym, m, tol) {
		t.Errorf("symmetric off-center %v differs from %v", sym, m)
	}

	expectRangePanic(t, "zFarPlane", func() { Mat4Orthographic(1.0, 1.0, 5.0, 5.0) })
	expectRangePanic(t, "zFarPlane", func() { Mat4OrthographicOffCenter(0.0, 1.0, 0.0, 1.0, 5.0, 1.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4Orthographic(2.0, 2.0, 0.0, 10.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4Orthographic(2.0, 2.0, -1.0, 10.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4OrthographicOffCenter(0.0, 1.0, 0.0, 1.0, 0.0, 1.0) })
	expectRangePanic(t, "nearPlaneDistance", func() { Mat4OrthographicOffCenter[float32](0, 1, 0, 1, -2, 1) })
}
