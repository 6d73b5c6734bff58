package raster

import (
	"image"
	"image/color"
	"math"

	"vecmath/numerics"
)

// Vertex is a projected triangle corner.
type Vertex struct {
	X, Y float64 // pixels, y down
	Z    float64 // depth, larger is closer
	UV   numerics.Vec2[float32]
}

// Mode selects how fragments combine with the framebuffer.
type Mode int

const (
	// Opaque replaces color and writes depth.
	Opaque Mode = iota
	// Blend mixes by Material.Opacity and writes depth.
	Blend
	// Additive adds color without writing depth.
	Additive
	// MaskOnly marks FrameBuffer.Mask where the triangle is not occluded.
	MaskOnly
)

// maskBias lets mask triangles lying on a surface pass the depth test.
const maskBias = 1e-4

// Material is the per-triangle surface.
type Material struct {
	Tex     *image.NRGBA // nil uses Color
	Color   color.NRGBA
	Shade   float64 // flat lighting scalar
	Opacity float64 // Blend only
}

// RasterizeTriangle scan-converts one triangle with barycentric coverage,
// perspective-unaware UV interpolation and flat shading.
//
// This is the hot path: no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, v [3]Vertex, mat *Material, lc *LightConfig, mode Mode) {
	x0, y0, z0 := v[0].X, v[0].Y, v[0].Z
	x1, y1, z1 := v[1].X, v[1].Y, v[1].Z
	x2, y2, z2 := v[2].X, v[2].Y, v[2].Z

	// Bounding box
	minX := max(int(math.Floor(min(x0, x1, x2))), 0)
	maxX := min(int(math.Ceil(max(x0, x1, x2))), fb.Width-1)
	minY := max(int(math.Floor(min(y0, y1, y2))), 0)
	maxY := min(int(math.Ceil(max(y0, y1, y2))), fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	uv0, uv1, uv2 := v[0].UV, v[1].UV, v[2].UV

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			idx := rowOff + sx

			if mode == MaskOnly {
				if z+maskBias >= fb.ZBuf[idx] {
					fb.Mask[idx] = true
				}
				continue
			}
			if z <= fb.ZBuf[idx] {
				continue
			}

			c := mat.Color
			if mat.Tex != nil {
				uv := uv0.Scale(float32(w0)).Add(uv1.Scale(float32(w1))).Add(uv2.Scale(float32(w2)))
				c = SampleTexture(mat.Tex, uv)
			}
			// Skip transparent texels
			if c.A < 8 {
				continue
			}

			r, g, b := lc.Shade(c, mat.Shade)
			px := fb.Color[idx*4 : idx*4+4]

			switch mode {
			case Opaque:
				fb.ZBuf[idx] = z
				px[0], px[1], px[2], px[3] = clamp255(r), clamp255(g), clamp255(b), c.A
			case Blend:
				fb.ZBuf[idx] = z
				a := mat.Opacity * float64(c.A) / 255
				px[0] = clamp255(r*a + float64(px[0])*(1-a))
				px[1] = clamp255(g*a + float64(px[1])*(1-a))
				px[2] = clamp255(b*a + float64(px[2])*(1-a))
				px[3] = clamp255(255*a + float64(px[3])*(1-a))
			case Additive:
				k := float64(c.A) / 255
				px[0] = clamp255(float64(px[0]) + r*k)
				px[1] = clamp255(float64(px[1]) + g*k)
				px[2] = clamp255(float64(px[2]) + b*k)
				// Alpha: brightness of the added color, so dark pixels stay transparent
				lum := (r*0.299 + g*0.587 + b*0.114) * k
				px[3] = max(px[3], clamp255(lum))
			}
		}
	}
}

// FaceNormal returns the unit normal of a world-space triangle, or false if
// the triangle is degenerate.
func FaceNormal(a, b, c numerics.Vec3[float64]) (numerics.Vec3[float64], bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Length()
	if l < 1e-12 {
		return n, false
	}
	return n.DivScalar(l), true
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
