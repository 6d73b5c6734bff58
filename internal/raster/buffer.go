package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, larger is closer, initialized to -inf
	Mask   []bool    // pixels covered by the current mask pass
}

// NewFrameBuffer allocates a buffer cleared to bg and a -inf z-buffer.
func NewFrameBuffer(w, h int, bg color.NRGBA) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
		Mask:   make([]bool, n),
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
		c := fb.Color[i*4 : i*4+4]
		c[0], c[1], c[2], c[3] = bg.R, bg.G, bg.B, bg.A
	}
	return fb
}

// ApplyMask darkens every masked pixel by opacity and clears the mask.
// Overlapping mask triangles darken a pixel only once.
func (fb *FrameBuffer) ApplyMask(opacity float64) {
	keep := 1 - opacity
	for i, m := range fb.Mask {
		if !m {
			continue
		}
		c := fb.Color[i*4 : i*4+3]
		for k := range c {
			c[k] = clamp255(float64(c[k]) * keep)
		}
		fb.Mask[i] = false
	}
}

// Image copies the color buffer into a new image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
