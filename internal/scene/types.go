package scene

import (
	"image/color"

	"vecmath/numerics"
)

// Vec3 and Mat4 are the double-precision types the renderer works in.
type (
	Vec3 = numerics.Vec3[float64]
	Mat4 = numerics.Mat4[float64]
	Quat = numerics.Quat[float64]
)

// Projection selects how the camera maps view space to clip space.
type Projection string

const (
	Perspective  Projection = "perspective"
	Orthographic Projection = "orthographic"
)

// Camera is a right-handed look-at camera.
type Camera struct {
	Position   Vec3
	Target     Vec3
	Up         Vec3
	Projection Projection
	FOV        float64 // vertical field of view in degrees (perspective)
	Height     float64 // view volume height in world units (orthographic)
	Near, Far  float64 // Far is +Inf for an unbounded perspective camera
}

// Forward returns the unit view direction.
func (c Camera) Forward() Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Light is a single directional light plus ambient fill.
type Light struct {
	Direction Vec3 // unit vector pointing toward the light
	Ambient   float64
	Direct    float64
}

// Ground is an optional plane the scene stands on. It can receive shadows
// and show mirrored copies of the objects above it.
type Ground struct {
	Plane   numerics.Plane[float64] // normalized
	Size    float64
	Color   color.NRGBA
	Texture string
	Opacity float64 // 1 is opaque; lower values let the mirror image through
	Shadows bool
	Mirror  bool
}

// Transform is a scale-rotate-translate pose, applied in that order.
type Transform struct {
	Scale    Vec3
	Rotation Quat
	Position Vec3
}

// Identity is the rest pose.
func Identity() Transform {
	return Transform{
		Scale:    numerics.Vec3One[float64](),
		Rotation: numerics.QuatIdentity[float64](),
	}
}

// Matrix returns Scale * Rotation * Translation.
func (t Transform) Matrix() Mat4 {
	return numerics.Mat4Scale(t.Scale).
		Mul(numerics.Mat4FromQuat(t.Rotation)).
		Mul(numerics.Mat4Translation(t.Position))
}

// Animation blends an object's local pose toward Target.
type Animation struct {
	Target Transform
	Time   float64 // 0 is the rest pose, 1 is Target
}

// Object is one mesh instance in the hierarchy.
type Object struct {
	Name      string
	MeshName  string
	Mesh      *Mesh
	Texture   string
	Color     color.NRGBA
	Local     Transform
	Animation *Animation
	Parent    int // index into Scene.Objects, -1 for a root; always less than the object's own index
	Additive  bool
	NoShadow  bool
}

// Sprite is a camera-facing textured quad.
type Sprite struct {
	Name     string
	Position Vec3
	Width    float64
	Height   float64
	Texture  string
	Color    color.NRGBA
	Axis     *Vec3 // rotate only about this axis when set
	Forward  Vec3  // fallback facing for constrained sprites
	Additive bool
}

// Scene is a fully resolved, validated scene.
type Scene struct {
	Name       string
	Path       string
	Background color.NRGBA
	Camera     Camera
	Light      Light
	Ground     *Ground
	Objects    []Object
	Sprites    []Sprite
}
