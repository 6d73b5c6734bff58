package numerics

import "math"

func checkNearFar[T Float](near, far T) {
	if !(near > 0) {
		outOfRange("nearPlaneDistance", near, "must be > 0")
	}
	if !(far > 0) {
		outOfRange("farPlaneDistance", far, "must be > 0")
	}
	if near >= far {
		outOfRange("nearPlaneDistance", near, "must be < farPlaneDistance")
	}
}

// negFarRange is far/(near-far), or -1 for an infinite far plane.
func negFarRange[T Float](near, far T) T {
	if isPosInf(far) {
		return -1
	}
	return far / (near - far)
}

// Mat4Perspective builds a right-handed perspective projection for a view
// volume of the given width and height at the near plane, mapping depth to
// [0, 1]. far may be +Inf. Invalid distances panic with
// *ArgumentOutOfRangeError.
func Mat4Perspective[T Float](width, height, near, far T) Mat4[T] {
	checkNearFar(near, far)
	r := negFarRange(near, far)
	return Mat4[T]{
		M11: 2 * near / width,
		M22: 2 * near / height,
		M33: r, M34: -1,
		M43: near * r,
	}
}

// Mat4PerspectiveFov builds a perspective projection from a vertical field
// of view in radians, which must lie in (0, π).
func Mat4PerspectiveFov[T Float](fieldOfView, aspectRatio, near, far T) Mat4[T] {
	if !(fieldOfView > 0) || !(fieldOfView < math.Pi) {
		outOfRange("fieldOfView", fieldOfView, "must be in (0, π)")
	}
	checkNearFar(near, far)

	yScale := 1 / tan(fieldOfView*0.5)
	xScale := yScale / aspectRatio
	r := negFarRange(near, far)
	return Mat4[T]{
		M11: xScale,
		M22: yScale,
		M33: r, M34: -1,
		M43: near * r,
	}
}

// Mat4PerspectiveOffCenter builds a perspective projection for an
// asymmetric view volume.
func Mat4PerspectiveOffCenter[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	checkNearFar(near, far)
	r := negFarRange(near, far)
	return Mat4[T]{
		M11: 2 * near / (right - left),
		M22: 2 * near / (top - bottom),
		M31: (left + right) / (right - left),
		M32: (top + bottom) / (top - bottom),
		M33: r, M34: -1,
		M43: near * r,
	}
}

func checkOrthoDepth[T Float](near, far T) {
	if !(near > 0) {
		outOfRange("nearPlaneDistance", near, "must be > 0")
	}
	if !(far > near) {
		outOfRange("zFarPlane", far, "must be > zNearPlane")
	}
}

// Mat4Orthographic builds an orthographic projection centered on the view
// axis. Depth maps [near, far] to [0, 1]; near must be positive and far
// must exceed it.
func Mat4Orthographic[T Float](width, height, near, far T) Mat4[T] {
	checkOrthoDepth(near, far)
	return Mat4[T]{
		M11: 2 / width,
		M22: 2 / height,
		M33: 1 / (near - far),
		M43: near / (near - far),
		M44: 1,
	}
}

// Mat4OrthographicOffCenter builds an orthographic projection for an
// asymmetric view volume.
func Mat4OrthographicOffCenter[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	checkOrthoDepth(near, far)
	return Mat4[T]{
		M11: 2 / (right - left),
		M22: 2 / (top - bottom),
		M33: 1 / (near - far),
		M41: (left + right) / (left - right),
		M42: (top + bottom) / (bottom - top),
		M43: near / (near - far),
		M44: 1,
	}
}
