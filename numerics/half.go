package numerics

import "github.com/x448/float16"

// Half-precision types are storage formats: they keep the component layout
// of their float32 counterparts in 2 bytes per component. Arithmetic happens
// after widening to float32.

type Vec2Half struct {
	X, Y float16.Float16
}

type Vec3Half struct {
	X, Y, Z float16.Float16
}

type Vec4Half struct {
	X, Y, Z, W float16.Float16
}

type QuatHalf struct {
	X, Y, Z, W float16.Float16
}

func half(x float32) float16.Float16 { return float16.Fromfloat32(x) }

// NarrowVec2 rounds v to half precision (round-to-nearest-even).
func NarrowVec2(v Vec2[float32]) Vec2Half {
	return Vec2Half{half(v.X), half(v.Y)}
}

func NarrowVec3(v Vec3[float32]) Vec3Half {
	return Vec3Half{half(v.X), half(v.Y), half(v.Z)}
}

func NarrowVec4(v Vec4[float32]) Vec4Half {
	return Vec4Half{half(v.X), half(v.Y), half(v.Z), half(v.W)}
}

func NarrowQuat(q Quat[float32]) QuatHalf {
	return QuatHalf{half(q.X), half(q.Y), half(q.Z), half(q.W)}
}

// Widen converts to float32 exactly.
func (h Vec2Half) Widen() Vec2[float32] {
	return Vec2[float32]{h.X.Float32(), h.Y.Float32()}
}

func (h Vec3Half) Widen() Vec3[float32] {
	return Vec3[float32]{h.X.Float32(), h.Y.Float32(), h.Z.Float32()}
}

func (h Vec4Half) Widen() Vec4[float32] {
	return Vec4[float32]{h.X.Float32(), h.Y.Float32(), h.Z.Float32(), h.W.Float32()}
}

func (h QuatHalf) Widen() Quat[float32] {
	return Quat[float32]{h.X.Float32(), h.Y.Float32(), h.Z.Float32(), h.W.Float32()}
}

// Equal compares the widened values, so NaN components never compare equal
// and +0 equals -0.
func (h Vec4Half) Equal(b Vec4Half) bool { return h.Widen() == b.Widen() }

func (h Vec3Half) Equal(b Vec3Half) bool { return h.Widen() == b.Widen() }

func (h Vec2Half) Equal(b Vec2Half) bool { return h.Widen() == b.Widen() }

func (h QuatHalf) Equal(b QuatHalf) bool { return h.Widen() == b.Widen() }
