package numerics

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

func approx[T Float](a, b T, eps float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), eps, eps)
}

func (m Mat4[T]) array() [16]T {
	return [16]T{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

func mat4Approx[T Float](a, b Mat4[T], eps float64) bool {
	x, y := a.array(), b.array()
	for i := range x {
		if !approx(x[i], y[i], eps) {
			return false
		}
	}
	return true
}

func vec3Approx[T Float](a, b Vec3[T], eps float64) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}

func quatApprox[T Float](a, b Quat[T], eps float64) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) &&
		approx(a.Z, b.Z, eps) && approx(a.W, b.W, eps)
}

// rotationApprox treats q and -q as the same rotation.
func rotationApprox[T Float](a, b Quat[T], eps float64) bool {
	return quatApprox(a, b, eps) || quatApprox(a, b.Neg(), eps)
}

func dense[T Float](m Mat4[T]) *mat.Dense {
	a := m.array()
	data := make([]float64, 16)
	for i, v := range a {
		data[i] = float64(v)
	}
	return mat.NewDense(4, 4, data)
}

func allNaN[T Float](m Mat4[T]) bool {
	for _, v := range m.array() {
		if !math.IsNaN(float64(v)) {
			return false
		}
	}
	return true
}

// expectRangePanic runs f and checks it panics with an *ArgumentOutOfRangeError
// naming param.
func expectRangePanic(t *testing.T, param string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic for %s", param)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, ErrArgumentOutOfRange) {
			t.Fatalf("panic %v does not wrap ErrArgumentOutOfRange", err)
		}
		var rerr *ArgumentOutOfRangeError
		if !errors.As(err, &rerr) || rerr.Param != param {
			t.Fatalf("panic %v: want param %q", err, param)
		}
	}()
	f()
}

// sample is a general invertible matrix used across tests.
func sample() Mat4[float64] {
	return Mat4[float64]{
		2, 0.5, -1, 0,
		1, 3, 0.25, 0,
		-0.5, 2, 4, 0,
		10, -20, 30, 1,
	}
}
