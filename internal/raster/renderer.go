package raster

import (
	"image"

	"vecmath/internal/scene"
	"vecmath/internal/skeleton"
	"vecmath/internal/texture"
	"vecmath/internal/viewmatrix"
	"vecmath/numerics"
)

// shadowOpacity is how much a shadowed ground pixel is darkened.
const shadowOpacity = 0.45

// RenderScene renders sc at (width*supersample) x (height*supersample).
// Draw order: mirror images, ground, shadows, opaque objects, then
// additive objects and sprites. Triangles are clipped against the near
// plane.
func RenderScene(sc *scene.Scene, texResolver texture.Resolver, width, height, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	w, h := width*supersample, height*supersample

	r := &renderer{
		fb:  NewFrameBuffer(w, h, sc.Background),
		vp:  viewmatrix.ViewProjection(sc.Camera, w, h),
		lc:  NewLightConfig(sc.Light, sc.Camera.Forward()),
		tex: texResolver,
	}
	worlds := skeleton.BuildWorldMatrices(sc.Objects)
	g := sc.Ground

	if g != nil && g.Mirror {
		mirror := viewmatrix.MirrorMatrix(g)
		for i := range sc.Objects {
			obj := &sc.Objects[i]
			if obj.Additive {
				continue
			}
			r.drawMesh(obj.Mesh, worlds[i].Mul(mirror), r.objectMaterial(obj), Opaque)
		}
	}

	if g != nil {
		mat := Material{Tex: r.resolve(g.Texture), Color: g.Color, Opacity: g.Opacity}
		mode := Opaque
		if g.Opacity < 1 {
			mode = Blend
		}
		r.drawMesh(scene.GroundMesh(g.Plane, g.Size), numerics.Mat4Identity[float64](), mat, mode)
	}

	if viewmatrix.CastsShadows(sc.Light, g) {
		shadow := viewmatrix.ShadowMatrix(sc.Light, g)
		for i, obj := range sc.Objects {
			if obj.Additive || obj.NoShadow {
				continue
			}
			r.drawMesh(obj.Mesh, worlds[i].Mul(shadow), Material{}, MaskOnly)
		}
		r.fb.ApplyMask(shadowOpacity)
	}

	for i := range sc.Objects {
		if obj := &sc.Objects[i]; !obj.Additive {
			r.drawMesh(obj.Mesh, worlds[i], r.objectMaterial(obj), Opaque)
		}
	}
	for i := range sc.Objects {
		if obj := &sc.Objects[i]; obj.Additive {
			r.drawMesh(obj.Mesh, worlds[i], r.objectMaterial(obj), Additive)
		}
	}

	quad := scene.Quad()
	for _, sp := range sc.Sprites {
		mode := Opaque
		if sp.Additive {
			mode = Additive
		}
		mat := Material{Tex: r.resolve(sp.Texture), Color: sp.Color}
		r.drawMesh(quad, viewmatrix.SpriteWorld(sp, sc.Camera), mat, mode)
	}

	return r.fb.Image()
}

type renderer struct {
	fb  *FrameBuffer
	vp  scene.Mat4
	lc  LightConfig
	tex texture.Resolver
}

func (r *renderer) resolve(name string) *image.NRGBA {
	if name == "" || r.tex == nil {
		return nil
	}
	return r.tex.Resolve(name)
}

func (r *renderer) objectMaterial(obj *scene.Object) Material {
	return Material{Tex: r.resolve(obj.Texture), Color: obj.Color, Opacity: 1}
}

// drawMesh projects mesh through world, clips each triangle against the
// near plane and rasterizes the rest with flat shading from its world-space
// normal.
func (r *renderer) drawMesh(mesh *scene.Mesh, world scene.Mat4, mat Material, mode Mode) {
	if mesh == nil || len(mesh.Verts) == 0 {
		return
	}
	clip := viewmatrix.ToClip(mesh.Verts, world.Mul(r.vp))

	var worldVerts []scene.Vec3
	if mode != MaskOnly {
		worldVerts = skeleton.TransformVertices(mesh, world)
	}

	poly := make([]viewmatrix.ClipVertex, 3)
	var clipped []viewmatrix.ClipVertex
	var screen [4]Vertex

	for _, tri := range mesh.Tris {
		ok := true
		for k, vi := range tri.VI {
			if vi < 0 || vi >= len(clip) {
				ok = false
				break
			}
			poly[k] = viewmatrix.ClipVertex{Pos: clip[vi]}
			if ti := tri.TI[k]; ti >= 0 && ti < len(mesh.UVs) {
				poly[k].UV = mesh.UVs[ti]
			}
		}
		if !ok {
			continue
		}

		clipped = viewmatrix.ClipNear(poly, clipped)
		if len(clipped) < 3 {
			continue
		}
		for k, cv := range clipped {
			if cv.Pos.W <= 0 {
				ok = false
				break
			}
			x, y, z := viewmatrix.ToScreen(cv.Pos, r.fb.Width, r.fb.Height)
			screen[k] = Vertex{X: x, Y: y, Z: z, UV: cv.UV}
		}
		if !ok {
			continue
		}

		m := mat
		if mode != MaskOnly {
			n, ok := FaceNormal(worldVerts[tri.VI[0]], worldVerts[tri.VI[1]], worldVerts[tri.VI[2]])
			if !ok {
				continue
			}
			m.Shade = r.lc.ComputeShade(n)
		}
		// Fan-triangulate the clipped polygon.
		for k := 1; k+1 < len(clipped); k++ {
			RasterizeTriangle(r.fb, [3]Vertex{screen[0], screen[k], screen[k+1]}, &m, &r.lc, mode)
		}
	}
}
