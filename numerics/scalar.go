package numerics

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the set of scalar precisions the arithmetic types are generic over.
type Float interface {
	constraints.Float
}

func sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }
func sin[T Float](x T) T  { return T(math.Sin(float64(x))) }
func cos[T Float](x T) T  { return T(math.Cos(float64(x))) }
func tan[T Float](x T) T  { return T(math.Tan(float64(x))) }
func acos[T Float](x T) T { return T(math.Acos(float64(x))) }

func abs[T Float](x T) T { return T(math.Abs(float64(x))) }

func nan[T Float]() T { return T(math.NaN()) }

func isPosInf[T Float](x T) bool { return math.IsInf(float64(x), 1) }

func is32[T Float]() bool {
	var x T
	return unsafe.Sizeof(x) == 4
}

// tiny is the smallest positive subnormal of T. Determinants below it are
// treated as singular.
func tiny[T Float]() T {
	if is32[T]() {
		return T(math.SmallestNonzeroFloat32)
	}
	return T(math.SmallestNonzeroFloat64)
}

// machineEpsilon is the gap between 1 and the next representable T.
func machineEpsilon[T Float]() T {
	if is32[T]() {
		return T(1.0 / (1 << 23))
	}
	return T(1.0 / (1 << 52))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[T Float](d T) T {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg[T Float](r T) T {
	return r * 180 / math.Pi
}
