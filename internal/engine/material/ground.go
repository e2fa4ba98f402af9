package material

import (
	"github.com/Faultbox/tianguis/internal/engine/terrain"
	"github.com/Faultbox/tianguis/pkg/math"
)

// GroundProcedural is the untextured ground.
type GroundProcedural struct{}

func (GroundProcedural) Mode() Mode { return ModeGroundProcedural }

func (GroundProcedural) Shade(s Surface, env *Env) math.Vec3 {
	s.Normal = terrain.Up
	return Lit(terrain.ProceduralAlbedo(s.Position.XZ()), s, env)
}

// GroundTextured is the anti-tiled ground. It falls back to the procedural
// ground when no texture is bound.
type GroundTextured struct{}

func (GroundTextured) Mode() Mode { return ModeGroundTextured }

func (GroundTextured) Shade(s Surface, env *Env) math.Vec3 {
	if env.Ground == nil || !env.Ground.Textured() {
		return GroundProcedural{}.Shade(s, env)
	}
	return env.Ground.ShadeLit(s.Position.XZ(), env.Sun, env.Fire)
}

// Sky shades a surface as the sky seen along the view ray.
type Sky struct{}

func (Sky) Mode() Mode { return ModeSky }

func (Sky) Shade(s Surface, env *Env) math.Vec3 {
	return env.Sky.Shade(s.ViewDir, env.Sun, env.Elapsed)
}
