package numerics

import "math"

func Mat4Translation[T Float](t Vec3[T]) Mat4[T] {
	return Mat4Identity[T]().WithTranslation(t)
}

func Mat4TranslationXYZ[T Float](x, y, z T) Mat4[T] {
	return Mat4Translation(Vec3[T]{x, y, z})
}

func Mat4Scale[T Float](s Vec3[T]) Mat4[T] {
	return Mat4[T]{M11: s.X, M22: s.Y, M33: s.Z, M44: 1}
}

func Mat4ScaleXYZ[T Float](x, y, z T) Mat4[T] {
	return Mat4Scale(Vec3[T]{x, y, z})
}

func Mat4ScaleUniform[T Float](s T) Mat4[T] {
	return Mat4Scale(Vec3[T]{s, s, s})
}

// Mat4ScaleAt scales about center instead of the origin.
func Mat4ScaleAt[T Float](s, center Vec3[T]) Mat4[T] {
	m := Mat4Scale(s)
	m.M41 = center.X * (1 - s.X)
	m.M42 = center.Y * (1 - s.Y)
	m.M43 = center.Z * (1 - s.Z)
	return m
}

// Mat4RotationX rotates about the X axis. Angle in radians.
func Mat4RotationX[T Float](radians T) Mat4[T] {
	c, s := cos(radians), sin(radians)
	return Mat4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationXAt rotates about the X axis through center.
func Mat4RotationXAt[T Float](radians T, center Vec3[T]) Mat4[T] {
	m := Mat4RotationX(radians)
	c, s := m.M22, m.M23
	m.M42 = center.Y*(1-c) + center.Z*s
	m.M43 = center.Z*(1-c) - center.Y*s
	return m
}

// Mat4RotationY rotates about the Y axis. Angle in radians.
func Mat4RotationY[T Float](radians T) Mat4[T] {
	c, s := cos(radians), sin(radians)
	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationYAt rotates about the Y axis through center.
func Mat4RotationYAt[T Float](radians T, center Vec3[T]) Mat4[T] {
	m := Mat4RotationY(radians)
	c, s := m.M11, m.M31
	m.M41 = center.X*(1-c) - center.Z*s
	m.M43 = center.Z*(1-c) + center.X*s
	return m
}

// Mat4RotationZ rotates about the Z axis. Angle in radians.
func Mat4RotationZ[T Float](radians T) Mat4[T] {
	c, s := cos(radians), sin(radians)
	return Mat4[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationZAt rotates about the Z axis through center.
func Mat4RotationZAt[T Float](radians T, center Vec3[T]) Mat4[T] {
	m := Mat4RotationZ(radians)
	c, s := m.M11, m.M12
	m.M41 = center.X*(1-c) + center.Y*s
	m.M42 = center.Y*(1-c) - center.X*s
	return m
}

// Mat4FromAxisAngle rotates by angle radians about a unit axis.
func Mat4FromAxisAngle[T Float](axis Vec3[T], angle T) Mat4[T] {
	x, y, z := axis.X, axis.Y, axis.Z
	sa, ca := sin(angle), cos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	return Mat4[T]{
		xx + ca*(1-xx), xy - ca*xy + sa*z, xz - ca*xz - sa*y, 0,
		xy - ca*xy - sa*z, yy + ca*(1-yy), yz - ca*yz + sa*x, 0,
		xz - ca*xz + sa*y, yz - ca*yz - sa*x, zz + ca*(1-zz), 0,
		0, 0, 0, 1,
	}
}

// Mat4FromQuat expands a unit quaternion into a rotation matrix.
func Mat4FromQuat[T Float](q Quat[T]) Mat4[T] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, wz := q.X*q.Y, q.Z*q.W
	xz, wy := q.Z*q.X, q.Y*q.W
	yz, wx := q.Y*q.Z, q.X*q.W

	return Mat4[T]{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(zz+xx), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(yy+xx), 0,
		0, 0, 0, 1,
	}
}

// Mat4FromYawPitchRoll is Mat4FromQuat(QuatFromYawPitchRoll(...)).
func Mat4FromYawPitchRoll[T Float](yaw, pitch, roll T) Mat4[T] {
	return Mat4FromQuat(QuatFromYawPitchRoll(yaw, pitch, roll))
}

// Mat4LookAt builds a right-handed view matrix.
func Mat4LookAt[T Float](cameraPosition, target, up Vec3[T]) Mat4[T] {
	z := cameraPosition.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4[T]{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(cameraPosition), -y.Dot(cameraPosition), -z.Dot(cameraPosition), 1,
	}
}

// Mat4World places an object at position facing forward.
func Mat4World[T Float](position, forward, up Vec3[T]) Mat4[T] {
	z := forward.Neg().Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4FromRows(
		Vec4FromVec3(x, 0),
		Vec4FromVec3(y, 0),
		Vec4FromVec3(z, 0),
		Vec4FromVec3(position, 1),
	)
}

// Mat4Shadow flattens geometry onto plane along the directional light
// lightDirection. The plane is normalized first.
func Mat4Shadow[T Float](lightDirection Vec3[T], plane Plane[T]) Mat4[T] {
	p := plane.Normalize()
	dot := p.Normal.Dot(lightDirection)
	a, b, c, d := -p.Normal.X, -p.Normal.Y, -p.Normal.Z, -p.D
	l := lightDirection

	return Mat4[T]{
		a*l.X + dot, a * l.Y, a * l.Z, 0,
		b * l.X, b*l.Y + dot, b * l.Z, 0,
		c * l.X, c * l.Y, c*l.Z + dot, 0,
		d * l.X, d * l.Y, d * l.Z, dot,
	}
}

// Mat4Reflection mirrors geometry across plane. The plane is normalized first.
func Mat4Reflection[T Float](plane Plane[T]) Mat4[T] {
	p := plane.Normalize()
	a, b, c := p.Normal.X, p.Normal.Y, p.Normal.Z
	fa, fb, fc := -2*a, -2*b, -2*c

	return Mat4[T]{
		fa*a + 1, fb * a, fc * a, 0,
		fa * b, fb*b + 1, fc * b, 0,
		fa * c, fb * c, fc*c + 1, 0,
		fa * p.D, fb * p.D, fc * p.D, 1,
	}
}

// billboardEpsilon is the squared distance below which object and camera
// are treated as coincident.
const billboardEpsilon = 1e-4

// billboardMinAngle is cos(0.1°): axes closer than that are parallel.
const billboardMinAngle = 1 - 0.1*math.Pi/180

func faceDirection[T Float](objectPosition, cameraPosition, cameraForward Vec3[T]) Vec3[T] {
	d := objectPosition.Sub(cameraPosition)
	norm := d.LengthSquared()
	if norm < billboardEpsilon {
		return cameraForward.Neg()
	}
	return d.Scale(1 / sqrt(norm))
}

// Mat4Billboard rotates an object at objectPosition to face the camera.
// When the two positions coincide, -cameraForward is used as the facing.
func Mat4Billboard[T Float](objectPosition, cameraPosition, cameraUp, cameraForward Vec3[T]) Mat4[T] {
	z := faceDirection(objectPosition, cameraPosition, cameraForward)
	x := cameraUp.Cross(z).Normalize()
	y := z.Cross(x)

	return Mat4FromRows(
		Vec4FromVec3(x, 0),
		Vec4FromVec3(y, 0),
		Vec4FromVec3(z, 0),
		Vec4FromVec3(objectPosition, 1),
	)
}

// Mat4ConstrainedBillboard faces the camera while rotating only about
// rotateAxis. If the view direction is parallel to the axis, objectForward
// is used instead; if that is parallel too, a canonical axis is chosen.
func Mat4ConstrainedBillboard[T Float](objectPosition, cameraPosition, rotateAxis, cameraForward, objectForward Vec3[T]) Mat4[T] {
	face := faceDirection(objectPosition, cameraPosition, cameraForward)
	y := rotateAxis

	var x, z Vec3[T]
	if abs(rotateAxis.Dot(face)) > billboardMinAngle {
		z = objectForward
		if abs(rotateAxis.Dot(z)) > billboardMinAngle {
			if abs(rotateAxis.Z) > billboardMinAngle {
				z = Vec3[T]{1, 0, 0}
			} else {
				z = Vec3[T]{0, 0, -1}
			}
		}
		x = rotateAxis.Cross(z).Normalize()
		z = x.Cross(rotateAxis).Normalize()
	} else {
		x = rotateAxis.Cross(face).Normalize()
		z = x.Cross(y).Normalize()
	}

	return Mat4FromRows(
		Vec4FromVec3(x, 0),
		Vec4FromVec3(y, 0),
		Vec4FromVec3(z, 0),
		Vec4FromVec3(objectPosition, 1),
	)
}
