package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"vecmath/numerics"
)

// Defaults applied to fields a scene file leaves out.
const (
	DefaultFOV        = 60.0
	DefaultNear       = 0.1
	DefaultOrthoSize  = 4.0
	DefaultAmbient    = 0.55
	DefaultDirect     = 1.50
	DefaultGroundSize = 10.0
)

// sceneFile matches the JSON schema of a scene file.
type sceneFile struct {
	Name       string       `json:"name"`
	Background *[4]uint8    `json:"background"`
	Camera     cameraFile   `json:"camera"`
	Light      *lightFile   `json:"light"`
	Ground     *groundFile  `json:"ground"`
	Objects    []objectFile `json:"objects"`
	Sprites    []spriteFile `json:"sprites"`
}

type cameraFile struct {
	Position   [3]float64  `json:"position"`
	Target     [3]float64  `json:"target"`
	Up         *[3]float64 `json:"up"`
	Projection string      `json:"projection"`
	FOV        float64     `json:"fov"`
	Height     float64     `json:"height"`
	Near       float64     `json:"near"`
	Far        float64     `json:"far"`
}

type lightFile struct {
	Direction *[3]float64 `json:"direction"`
	Ambient   *float64    `json:"ambient"`
	Direct    *float64    `json:"direct"`
}

type groundFile struct {
	Plane   [4]float64 `json:"plane"`
	Size    float64    `json:"size"`
	Color   *[4]uint8  `json:"color"`
	Texture string     `json:"texture"`
	Opacity *float64   `json:"opacity"`
	Shadows bool       `json:"shadows"`
	Mirror  bool       `json:"mirror"`
}

type transformFile struct {
	Scale    *[3]float64 `json:"scale"`
	Rotation [3]float64  `json:"rotation"` // yaw, pitch, roll in degrees
	Position [3]float64  `json:"position"`
}

type objectFile struct {
	Name      string         `json:"name"`
	Mesh      string         `json:"mesh"`
	Texture   string         `json:"texture"`
	Color     *[4]uint8      `json:"color"`
	Parent    string         `json:"parent"`
	Additive  bool           `json:"additive"`
	NoShadow  bool           `json:"no_shadow"`
	Animation *animationFile `json:"animation"`
	transformFile
}

type animationFile struct {
	Time float64 `json:"time"`
	transformFile
}

type spriteFile struct {
	Name     string      `json:"name"`
	Position [3]float64  `json:"position"`
	Size     [2]float64  `json:"size"`
	Texture  string      `json:"texture"`
	Color    *[4]uint8   `json:"color"`
	Axis     *[3]float64 `json:"axis"`
	Forward  *[3]float64 `json:"forward"`
	Additive *bool       `json:"additive"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	sc.Path = path
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes a scene from JSON. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var f sceneFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	sc := &Scene{
		Name:       f.Name,
		Background: colorOr(f.Background, color.NRGBA{}),
	}

	cam, err := resolveCamera(f.Camera)
	if err != nil {
		return nil, err
	}
	sc.Camera = cam

	if sc.Light, err = resolveLight(f.Light); err != nil {
		return nil, err
	}

	if f.Ground != nil {
		if sc.Ground, err = resolveGround(*f.Ground); err != nil {
			return nil, err
		}
	}

	index := make(map[string]int, len(f.Objects))
	for i, of := range f.Objects {
		obj, err := resolveObject(of, index)
		if err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", i, of.Name, err)
		}
		if of.Name != "" {
			if _, dup := index[of.Name]; dup {
				return nil, fmt.Errorf("object %d: duplicate name %q", i, of.Name)
			}
			index[of.Name] = i
		}
		sc.Objects = append(sc.Objects, obj)
	}

	for i, sf := range f.Sprites {
		sp, err := resolveSprite(sf)
		if err != nil {
			return nil, fmt.Errorf("sprite %d (%q): %w", i, sf.Name, err)
		}
		sc.Sprites = append(sc.Sprites, sp)
	}

	return sc, nil
}

func resolveCamera(f cameraFile) (Camera, error) {
	c := Camera{
		Position:   vec(f.Position),
		Target:     vec(f.Target),
		Up:         vecOr(f.Up, numerics.Vec3UnitY[float64]()),
		Projection: Projection(f.Projection),
		FOV:        f.FOV,
		Height:     f.Height,
		Near:       f.Near,
		Far:        f.Far,
	}
	if c.Projection == "" {
		c.Projection = Perspective
	}
	if c.Position.DistanceSquared(c.Target) == 0 {
		return Camera{}, fmt.Errorf("camera: position and target coincide")
	}
	if c.Up.Cross(c.Forward()).LengthSquared() < 1e-12 {
		return Camera{}, fmt.Errorf("camera: up is parallel to the view direction")
	}
	if c.Near == 0 {
		c.Near = DefaultNear
	}
	if c.Near < 0 {
		return Camera{}, fmt.Errorf("camera: near %v must be positive", c.Near)
	}

	switch c.Projection {
	case Perspective:
		if c.FOV == 0 {
			c.FOV = DefaultFOV
		}
		if c.FOV <= 0 || c.FOV >= 180 {
			return Camera{}, fmt.Errorf("camera: fov %v outside (0, 180)", c.FOV)
		}
		if c.Far == 0 {
			c.Far = math.Inf(1)
		}
		if c.Far <= c.Near {
			return Camera{}, fmt.Errorf("camera: far %v must exceed near %v", c.Far, c.Near)
		}
	case Orthographic:
		if c.Height == 0 {
			c.Height = DefaultOrthoSize
		}
		if c.Height < 0 {
			return Camera{}, fmt.Errorf("camera: height %v must be positive", c.Height)
		}
		if c.Far == 0 {
			c.Far = c.Near + 1000
		}
		if c.Far <= c.Near || math.IsInf(c.Far, 0) {
			return Camera{}, fmt.Errorf("camera: orthographic far %v must be finite and exceed near %v", c.Far, c.Near)
		}
	default:
		return Camera{}, fmt.Errorf("camera: unknown projection %q", c.Projection)
	}
	return c, nil
}

func resolveLight(f *lightFile) (Light, error) {
	l := Light{
		Direction: numerics.V3(180.0, 260.0, 140.0).Normalize(),
		Ambient:   DefaultAmbient,
		Direct:    DefaultDirect,
	}
	if f == nil {
		return l, nil
	}
	if f.Direction != nil {
		d := vec(*f.Direction)
		if d.LengthSquared() == 0 {
			return Light{}, fmt.Errorf("light: zero direction")
		}
		l.Direction = d.Normalize()
	}
	if f.Ambient != nil {
		l.Ambient = *f.Ambient
	}
	if f.Direct != nil {
		l.Direct = *f.Direct
	}
	return l, nil
}

func resolveGround(f groundFile) (*Ground, error) {
	p := numerics.PlaneFromVec4(numerics.V4(f.Plane[0], f.Plane[1], f.Plane[2], f.Plane[3]))
	if p.Normal.LengthSquared() == 0 {
		return nil, fmt.Errorf("ground: plane normal is zero")
	}
	g := &Ground{
		Plane:   p.Normalize(),
		Size:    f.Size,
		Color:   colorOr(f.Color, color.NRGBA{R: 128, G: 128, B: 128, A: 255}),
		Texture: f.Texture,
		Opacity: 1,
		Shadows: f.Shadows,
		Mirror:  f.Mirror,
	}
	if g.Size <= 0 {
		g.Size = DefaultGroundSize
	}
	if f.Opacity != nil {
		g.Opacity = *f.Opacity
	} else if g.Mirror {
		g.Opacity = 0.6
	}
	if g.Opacity < 0 || g.Opacity > 1 {
		return nil, fmt.Errorf("ground: opacity %v outside [0, 1]", g.Opacity)
	}
	return g, nil
}

func resolveTransform(f transformFile) Transform {
	return Transform{
		Scale: vecOr(f.Scale, numerics.Vec3One[float64]()),
		Rotation: numerics.QuatFromYawPitchRoll(
			numerics.Deg2Rad(f.Rotation[0]),
			numerics.Deg2Rad(f.Rotation[1]),
			numerics.Deg2Rad(f.Rotation[2]),
		),
		Position: vec(f.Position),
	}
}

func resolveObject(f objectFile, index map[string]int) (Object, error) {
	mesh, ok := Primitive(f.Mesh)
	if !ok {
		return Object{}, fmt.Errorf("unknown mesh %q", f.Mesh)
	}
	obj := Object{
		Name:     f.Name,
		MeshName: f.Mesh,
		Mesh:     mesh,
		Texture:  f.Texture,
		Color:    colorOr(f.Color, color.NRGBA{R: 160, G: 160, B: 170, A: 255}),
		Local:    resolveTransform(f.transformFile),
		Parent:   -1,
		Additive: f.Additive,
		NoShadow: f.NoShadow,
	}
	if f.Parent != "" {
		p, ok := index[f.Parent]
		if !ok {
			return Object{}, fmt.Errorf("parent %q must be declared before its children", f.Parent)
		}
		obj.Parent = p
	}
	if a := f.Animation; a != nil {
		if a.Time < 0 || a.Time > 1 {
			return Object{}, fmt.Errorf("animation time %v outside [0, 1]", a.Time)
		}
		obj.Animation = &Animation{Target: resolveTransform(a.transformFile), Time: a.Time}
	}
	return obj, nil
}

func resolveSprite(f spriteFile) (Sprite, error) {
	sp := Sprite{
		Name:     f.Name,
		Position: vec(f.Position),
		Width:    f.Size[0],
		Height:   f.Size[1],
		Texture:  f.Texture,
		Color:    colorOr(f.Color, color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Forward:  vecOr(f.Forward, numerics.V3(0.0, 0.0, -1.0)),
		Additive: f.Additive == nil || *f.Additive,
	}
	if sp.Width <= 0 || sp.Height <= 0 {
		return Sprite{}, fmt.Errorf("size %vx%v must be positive", sp.Width, sp.Height)
	}
	if f.Axis != nil {
		a := vec(*f.Axis)
		if a.LengthSquared() == 0 {
			return Sprite{}, fmt.Errorf("zero rotation axis")
		}
		a = a.Normalize()
		sp.Axis = &a
	}
	return sp, nil
}

func vec(a [3]float64) Vec3 { return numerics.Vec3FromSlice(a[:]) }

func vecOr(a *[3]float64, def Vec3) Vec3 {
	if a == nil {
		return def
	}
	return vec(*a)
}

func colorOr(c *[4]uint8, def color.NRGBA) color.NRGBA {
	if c == nil {
		return def
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
