package raster

import (
	"image/color"
	"math"

	"vecmath/internal/scene"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir  scene.Vec3
	RimDir    scene.Vec3
	HalfMain  scene.Vec3 // half-vector for Blinn-Phong
	Ambient   float64
	Hemi      float64
	Direct    float64
	Rim       float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

// NewLightConfig derives lighting for a scene light seen along viewDir.
func NewLightConfig(light scene.Light, viewDir scene.Vec3) LightConfig {
	lightDir := light.Direction.Normalize()
	viewDir = viewDir.Normalize()

	// Rim light comes from behind the subject, opposite the key light.
	rimDir := direction(viewDir.Sub(lightDir), viewDir)

	return LightConfig{
		LightDir:  lightDir,
		RimDir:    rimDir,
		HalfMain:  direction(lightDir.Sub(viewDir), lightDir),
		Ambient:   light.Ambient,
		Hemi:      0.50,
		Direct:    light.Direct,
		Rim:       0.60,
		SpecInt:   0.45,
		SpecPow:   12.0,
		Exposure:  1.05,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// direction normalizes d, or returns fallback when d is degenerate.
func direction(d, fallback scene.Vec3) scene.Vec3 {
	if d.LengthSquared() < 1e-12 {
		return fallback
	}
	return d.Normalize()
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal scene.Vec3) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-math.Abs(normal.Y))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := math.Max(normal.Dot(lc.HalfMain), 0)
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Shade lights an sRGB color: decode to linear, scale, ACES tone map and
// re-encode. Components are returned in [0, 255].
func (lc *LightConfig) Shade(c color.NRGBA, shade float64) (r, g, b float64) {
	k := shade * lc.Exposure
	enc := func(v uint8) float64 {
		return math.Pow(ACESTonemap(srgbToLinear[v]*k), lc.InvGamma) * 255
	}
	return enc(c.R), enc(c.G), enc(c.B)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
