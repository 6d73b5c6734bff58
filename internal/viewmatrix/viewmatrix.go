package viewmatrix

import (
	"vecmath/internal/scene"
	"vecmath/numerics"
)

// shadowLift raises projected shadows off the ground plane so they win the
// depth test against it.
const shadowLift = 1e-3

// View returns the camera's world-to-view matrix.
func View(cam scene.Camera) scene.Mat4 {
	return numerics.Mat4LookAt(cam.Position, cam.Target, cam.Up)
}

// Projection returns the camera's view-to-clip matrix for a viewport with
// the given width/height ratio.
func Projection(cam scene.Camera, aspect float64) scene.Mat4 {
	if cam.Projection == scene.Orthographic {
		return numerics.Mat4Orthographic(cam.Height*aspect, cam.Height, cam.Near, cam.Far)
	}
	return numerics.Mat4PerspectiveFov(numerics.Deg2Rad(cam.FOV), aspect, cam.Near, cam.Far)
}

// ViewProjection returns View * Projection for a width x height viewport.
func ViewProjection(cam scene.Camera, width, height int) scene.Mat4 {
	return View(cam).Mul(Projection(cam, float64(width)/float64(height)))
}

// ClipVertex is a clip-space triangle corner with its texture coordinate.
type ClipVertex struct {
	Pos numerics.Vec4[float64]
	UV  numerics.Vec2[float32]
}

// ToClip transforms object-space vertices through mvp into clip space.
func ToClip(verts []numerics.Vec3[float32], mvp scene.Mat4) []numerics.Vec4[float64] {
	out := make([]numerics.Vec4[float64], len(verts))
	for i, v := range verts {
		out[i] = numerics.V4(float64(v.X), float64(v.Y), float64(v.Z), 1).Transform(mvp)
	}
	return out
}

// InFront reports whether a clip-space point lies on the visible side of
// the near plane. Both projections map the near plane to clip z = 0.
func InFront(p numerics.Vec4[float64]) bool {
	return p.Z >= 0 && p.W > 0
}

// ClipNear clips the convex polygon poly against the near plane and
// appends the visible part to dst[:0]. A triangle comes back with 0, 3 or
// 4 corners; new corners interpolate position and UV linearly.
func ClipNear(poly, dst []ClipVertex) []ClipVertex {
	dst = dst[:0]
	for i, cur := range poly {
		next := poly[(i+1)%len(poly)]
		curIn, nextIn := cur.Pos.Z >= 0, next.Pos.Z >= 0
		if curIn {
			dst = append(dst, cur)
		}
		if curIn != nextIn {
			t := cur.Pos.Z / (cur.Pos.Z - next.Pos.Z)
			dst = append(dst, ClipVertex{
				Pos: cur.Pos.Lerp(next.Pos, t),
				UV:  cur.UV.Lerp(next.UV, float32(t)),
			})
		}
	}
	return dst
}

// ToScreen divides a clip-space point by W and maps it to pixels: x, y
// with y down, and depth z where larger is closer.
func ToScreen(p numerics.Vec4[float64], width, height int) (x, y, z float64) {
	ndc := p.XYZ().DivScalar(p.W)
	x = (ndc.X + 1) * float64(width) / 2
	y = (1 - ndc.Y) * float64(height) / 2
	return x, y, 1 - ndc.Z
}

// ProjectVertices transforms object-space vertices through mvp and maps them
// to pixel coordinates. Returns px, py (pixels, y down), pz (depth, larger is
// closer) and whether each vertex lies beyond the near plane.
func ProjectVertices(verts []numerics.Vec3[float32], mvp scene.Mat4, width, height int) (px, py, pz []float64, visible []bool) {
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)
	visible = make([]bool, n)

	for i, clip := range ToClip(verts, mvp) {
		if !InFront(clip) {
			continue
		}
		px[i], py[i], pz[i] = ToScreen(clip, width, height)
		visible[i] = true
	}
	return px, py, pz, visible
}

// ScreenRay returns the world-space ray through pixel (x, y). It reports
// false if the view-projection matrix cannot be inverted.
func ScreenRay(cam scene.Camera, x, y float64, width, height int) (origin, dir scene.Vec3, ok bool) {
	inv, ok := ViewProjection(cam, width, height).Invert()
	if !ok {
		return scene.Vec3{}, scene.Vec3{}, false
	}
	nx := 2*x/float64(width) - 1
	ny := 1 - 2*y/float64(height)

	unproject := func(z float64) scene.Vec3 {
		p := numerics.V4(nx, ny, z, 1).Transform(inv)
		return p.XYZ().DivScalar(p.W)
	}
	near := unproject(0)
	far := unproject(0.5)
	return near, far.Sub(near).Normalize(), true
}

// SpriteWorld returns the world matrix that places a unit quad as the
// sprite, facing the camera. Sprites with an axis only turn about it.
func SpriteWorld(sp scene.Sprite, cam scene.Camera) scene.Mat4 {
	var face scene.Mat4
	if sp.Axis != nil {
		face = numerics.Mat4ConstrainedBillboard(sp.Position, cam.Position, *sp.Axis, cam.Forward(), sp.Forward)
	} else {
		face = numerics.Mat4Billboard(sp.Position, cam.Position, cam.Up, cam.Forward())
	}
	return numerics.Mat4ScaleXYZ(sp.Width, sp.Height, 1).Mul(face)
}

// CastsShadows reports whether light reaches the ground from above.
func CastsShadows(light scene.Light, g *scene.Ground) bool {
	return g != nil && g.Shadows && g.Plane.DotNormal(light.Direction) > 0
}

// ShadowMatrix flattens world-space geometry onto the ground along the light.
// The result is homogeneous: W is not 1.
func ShadowMatrix(light scene.Light, g *scene.Ground) scene.Mat4 {
	lift := g.Plane.Normal.Scale(shadowLift)
	return numerics.Mat4Shadow(light.Direction, g.Plane).Mul(numerics.Mat4Translation(lift))
}

// MirrorMatrix reflects world-space geometry through the ground.
func MirrorMatrix(g *scene.Ground) scene.Mat4 {
	return numerics.Mat4Reflection(g.Plane)
}
