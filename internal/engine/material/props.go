package material

import (
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

// Flat is a constant albedo.
type Flat struct {
	Albedo math.Vec3
}

func (Flat) Mode() Mode { return ModeFlat }

func (m Flat) Shade(s Surface, env *Env) math.Vec3 {
	return Lit(m.Albedo, s, env)
}

// Wood draws growth rings around the local Y axis, stretched by grain.
type Wood struct {
	Light, Dark math.Vec3
	Rings       float32 // rings per local unit
}

// DefaultWood is warm pine.
func DefaultWood() Wood {
	return Wood{
		Light: math.Vec3{X: 0.62, Y: 0.42, Z: 0.24},
		Dark:  math.Vec3{X: 0.38, Y: 0.23, Z: 0.12},
		Rings: 9,
	}
}

func (Wood) Mode() Mode { return ModeWood }

func (m Wood) Shade(s Surface, env *Env) math.Vec3 {
	p := s.Local
	grain := noise.FBM(math.Vec2{X: p.X * 2, Y: p.Y * 18})
	r := math.Vec2{X: p.X, Y: p.Z}.Length()*m.Rings + grain*1.5
	ring := math.Smoothstep(0.3, 0.7, math.Fract(r))
	return Lit(m.Light.Mix(m.Dark, ring), s, env)
}

// Fabric is a two-color weave of crossed sine threads.
type Fabric struct {
	Warp, Weft math.Vec3
	Threads    float32 // threads per uv unit
}

// DefaultFabric is a red and cream tablecloth.
func DefaultFabric() Fabric {
	return Fabric{
		Warp:    math.Vec3{X: 0.70, Y: 0.16, Z: 0.14},
		Weft:    math.Vec3{X: 0.90, Y: 0.85, Z: 0.74},
		Threads: 24,
	}
}

func (Fabric) Mode() Mode { return ModeFabric }

func (m Fabric) Shade(s Surface, env *Env) math.Vec3 {
	u := math.Sin(s.UV.X * m.Threads * 2 * math.Pi)
	v := math.Sin(s.UV.Y * m.Threads * 2 * math.Pi)
	weave := math.Step(0, u*v)
	checks := math.Step(0.5, math.Fract(s.UV.X*4)) * math.Step(0.5, math.Fract(s.UV.Y*4))
	albedo := m.Weft.Mix(m.Warp, math.Saturate(weave*0.35+checks*0.65))
	return Lit(albedo, s, env)
}

// Ceramic is glazed clay with speckles and a sun highlight.
type Ceramic struct {
	Glaze    math.Vec3
	Speckle  math.Vec3
	Shine    float32 // specular exponent
	Strength float32 // specular weight at full daylight
}

// DefaultCeramic is a terracotta pot.
func DefaultCeramic() Ceramic {
	return Ceramic{
		Glaze:    math.Vec3{X: 0.72, Y: 0.36, Z: 0.20},
		Speckle:  math.Vec3{X: 0.30, Y: 0.16, Z: 0.10},
		Shine:    32,
		Strength: 0.6,
	}
}

func (Ceramic) Mode() Mode { return ModeCeramic }

func (m Ceramic) Shade(s Surface, env *Env) math.Vec3 {
	p := math.Vec2{X: s.Local.X + s.Local.Z, Y: s.Local.Y}.Scale(24)
	speck := math.Smoothstep(0.62, 0.75, noise.FBM(p))
	col := Lit(m.Glaze.Mix(m.Speckle, speck), s, env)

	r := s.ViewDir.Reflect(s.Normal)
	spec := math.Pow(math.Saturate(r.Dot(env.Sun.Direction)), m.Shine)
	return col.Add(math.Splat(spec * m.Strength * math.Saturate(env.Sun.Visibility)))
}
