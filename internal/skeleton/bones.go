package skeleton

import (
	"vecmath/internal/scene"
	"vecmath/numerics"
)

// BuildWorldMatrices computes the world transform of every object in the
// hierarchy at its animation time. Parents always precede their children,
// so one forward pass is enough.
func BuildWorldMatrices(objects []scene.Object) []scene.Mat4 {
	worlds := make([]scene.Mat4, len(objects))
	for i, obj := range objects {
		local := LocalMatrix(obj)

		// Chain with parent: the child pose is applied first.
		if obj.Parent >= 0 && obj.Parent < i {
			worlds[i] = local.Mul(worlds[obj.Parent])
		} else {
			worlds[i] = local
		}
	}
	return worlds
}

// LocalMatrix returns the object's pose relative to its parent, blended
// toward the animation target when one is set.
func LocalMatrix(obj scene.Object) scene.Mat4 {
	rest := obj.Local.Matrix()
	if obj.Animation == nil || obj.Animation.Time == 0 {
		return rest
	}
	m, _ := BlendPose(rest, obj.Animation.Target.Matrix(), obj.Animation.Time)
	return m
}

// BlendPose interpolates two affine poses at t in [0, 1]. Both are split into
// scale, rotation and translation; scale and translation are interpolated
// linearly and rotation spherically. If either pose carries shear or
// projection it cannot be split, and BlendPose falls back to blending the
// matrices element-wise and reports false.
func BlendPose(a, b scene.Mat4, t float64) (scene.Mat4, bool) {
	sa, ra, ta, okA := a.Decompose()
	sb, rb, tb, okB := b.Decompose()
	if !okA || !okB {
		return a.Lerp(b, t), false
	}

	pose := scene.Transform{
		Scale:    sa.Lerp(sb, t),
		Rotation: ra.Slerp(rb, t),
		Position: ta.Lerp(tb, t),
	}
	return pose.Matrix(), true
}

// TransformVertices maps mesh vertices into world space.
func TransformVertices(mesh *scene.Mesh, world scene.Mat4) []scene.Vec3 {
	out := make([]scene.Vec3, len(mesh.Verts))
	for i, v := range mesh.Verts {
		p := numerics.V3(float64(v.X), float64(v.Y), float64(v.Z))
		out[i] = p.Transform(world)
	}
	return out
}
