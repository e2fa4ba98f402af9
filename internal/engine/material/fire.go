package material

import (
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

var (
	flameCore = math.Vec3{X: 1.00, Y: 0.90, Z: 0.55}
	flameTip  = math.Vec3{X: 0.90, Y: 0.25, Z: 0.05}
	emberDark = math.Vec3{X: 0.12, Y: 0.04, Z: 0.02}
)

// Fire is the emissive flame. It is unlit and fades to embers when the
// campfire is off.
type Fire struct{}

func (Fire) Mode() Mode { return ModeFire }

func (Fire) Shade(s Surface, env *Env) math.Vec3 {
	h := math.Saturate(s.Local.Y + 0.5)
	t := float32(env.Elapsed)
	turb := noise.FBM(math.Vec2{X: s.Local.X*4 + s.Local.Z*3, Y: s.Local.Y*3 - t*2.2})

	heat := math.Saturate((1 - h) * (0.6 + 0.8*turb))
	col := flameTip.Mix(flameCore, math.Smoothstep(0.35, 0.9, heat))
	if !env.Fire.Enabled {
		return emberDark.Scale(0.5 + 0.5*turb)
	}
	return col.Scale(heat * env.Fire.Flicker * 1.6)
}
