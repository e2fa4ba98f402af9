// Package material implements the tagged surface shading modes used by the
// campsite props, the ground and the sky.
package material

import (
	"fmt"

	"github.com/Faultbox/tianguis/internal/engine/lighting"
	"github.com/Faultbox/tianguis/internal/engine/sky"
	"github.com/Faultbox/tianguis/internal/engine/terrain"
	"github.com/Faultbox/tianguis/pkg/math"
)

// Mode is the shading tag of a surface.
type Mode int

const (
	ModeFlat Mode = iota
	ModeWood
	ModeFire
	ModeFabric
	ModeCeramic
	ModeSky
	ModeFoliage
	ModeFlowerStem
	ModeFlowerPetal
	ModeFlowerCenter
	ModeGroundProcedural
	ModeGroundTextured
	ModeMaskTile
)

var modeNames = [...]string{
	ModeFlat:             "flat",
	ModeWood:             "wood",
	ModeFire:             "fire",
	ModeFabric:           "fabric",
	ModeCeramic:          "ceramic",
	ModeSky:              "sky",
	ModeFoliage:          "foliage",
	ModeFlowerStem:       "flower-stem",
	ModeFlowerPetal:      "flower-petal",
	ModeFlowerCenter:     "flower-center",
	ModeGroundProcedural: "ground-procedural",
	ModeGroundTextured:   "ground-textured",
	ModeMaskTile:         "mask-tile",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Surface is one shaded sample.
type Surface struct {
	Position math.Vec3 // world space
	Normal   math.Vec3 // world space, unit length
	Local    math.Vec3 // object space hit point, roughly in [-0.5,0.5]
	UV       math.Vec2
	ViewDir  math.Vec3 // camera to surface, unit length
}

// Env is the per-frame lighting environment shared by all materials.
// It is read-only while a frame is shaded.
type Env struct {
	Sun     lighting.SunState
	Fire    lighting.FireState
	Elapsed float64
	Sky     sky.Params
	Ground  *terrain.Ground
}

// Material shades a surface sample.
type Material interface {
	Mode() Mode
	Shade(s Surface, env *Env) math.Vec3
}

// Lit applies the shared lighting to an albedo: sun ambient and Lambert
// terms plus the additive campfire.
func Lit(albedo math.Vec3, s Surface, env *Env) math.Vec3 {
	col := albedo.Scale(env.Sun.Irradiance(s.Normal))
	return col.Add(lighting.FireLight(s.Position, s.Normal, albedo, env.Fire))
}

// ForMode returns the stock material for mode. variant selects the palette
// of ModeMaskTile and is ignored otherwise.
func ForMode(mode Mode, variant int) (Material, error) {
	switch mode {
	case ModeFlat:
		return Flat{Albedo: math.Splat(0.6)}, nil
	case ModeWood:
		return DefaultWood(), nil
	case ModeFire:
		return Fire{}, nil
	case ModeFabric:
		return DefaultFabric(), nil
	case ModeCeramic:
		return DefaultCeramic(), nil
	case ModeSky:
		return Sky{}, nil
	case ModeFoliage:
		return Foliage{}, nil
	case ModeFlowerStem:
		return FlowerStem{}, nil
	case ModeFlowerPetal:
		return DefaultFlowerPetal(), nil
	case ModeFlowerCenter:
		return FlowerCenter{}, nil
	case ModeGroundProcedural:
		return GroundProcedural{}, nil
	case ModeGroundTextured:
		return GroundTextured{}, nil
	case ModeMaskTile:
		return MaskTile{Variant: variant}, nil
	}
	return nil, fmt.Errorf("unknown material mode %d", int(mode))
}
