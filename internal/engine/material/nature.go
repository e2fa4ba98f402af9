package material

import (
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

var (
	leafDark  = math.Vec3{X: 0.10, Y: 0.28, Z: 0.08}
	leafLight = math.Vec3{X: 0.30, Y: 0.52, Z: 0.16}
	stemGreen = math.Vec3{X: 0.22, Y: 0.42, Z: 0.14}
	pollen    = math.Vec3{X: 0.95, Y: 0.78, Z: 0.15}
	seedBrown = math.Vec3{X: 0.35, Y: 0.20, Z: 0.08}
)

var up = math.Vec3{Y: 1}

// Foliage is leafy ground cover, lit as if facing straight up.
type Foliage struct{}

func (Foliage) Mode() Mode { return ModeFoliage }

func (Foliage) Shade(s Surface, env *Env) math.Vec3 {
	v := noise.FBM(s.Position.XZ().Scale(3))
	s.Normal = up
	return Lit(leafDark.Mix(leafLight, v), s, env)
}

// FlowerStem is plain stem green.
type FlowerStem struct{}

func (FlowerStem) Mode() Mode { return ModeFlowerStem }

func (FlowerStem) Shade(s Surface, env *Env) math.Vec3 {
	return Lit(stemGreen, s, env)
}

// FlowerPetal fades from a pale base to Tint towards the petal edge.
type FlowerPetal struct {
	Base, Tint math.Vec3
}

// DefaultFlowerPetal is a marigold.
func DefaultFlowerPetal() FlowerPetal {
	return FlowerPetal{
		Base: math.Vec3{X: 1.00, Y: 0.85, Z: 0.40},
		Tint: math.Vec3{X: 0.95, Y: 0.42, Z: 0.05},
	}
}

func (FlowerPetal) Mode() Mode { return ModeFlowerPetal }

func (m FlowerPetal) Shade(s Surface, env *Env) math.Vec3 {
	r := math.Saturate(math.Vec2{X: s.Local.X, Y: s.Local.Z}.Length() * 2)
	return Lit(m.Base.Mix(m.Tint, math.Smoothstep(0.2, 1, r)), s, env)
}

// FlowerCenter is speckled pollen over seed brown.
type FlowerCenter struct{}

func (FlowerCenter) Mode() Mode { return ModeFlowerCenter }

func (FlowerCenter) Shade(s Surface, env *Env) math.Vec3 {
	cell := math.Vec2{X: s.Local.X, Y: s.Local.Z}.Scale(20).Floor()
	speck := math.Step(0.55, noise.Hash(cell))
	return Lit(seedBrown.Mix(pollen, speck), s, env)
}
