// Package sky computes the procedural sky dome color: day/dusk gradient,
// drifting clouds, sun and moon disks, stars and a ridged mountain horizon.
package sky

import (
	"github.com/Faultbox/tianguis/internal/engine/lighting"
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

// Params holds the tunable sky constants.
type Params struct {
	DayHorizon  math.Vec3
	DayZenith   math.Vec3
	DuskHorizon math.Vec3
	DuskZenith  math.Vec3
	DawnColor   math.Vec3

	CloudScale float32 // view.xz multiplier for cloud lookup
	CloudSpeed float32 // drift along x per second
	CloudColor math.Vec3

	SunColor  math.Vec3
	MoonColor math.Vec3

	Mountains MountainParams
}

// DefaultParams returns the stock palette.
func DefaultParams() Params {
	return Params{
		DayHorizon:  math.Vec3{X: 0.70, Y: 0.82, Z: 0.95},
		DayZenith:   math.Vec3{X: 0.22, Y: 0.45, Z: 0.85},
		DuskHorizon: math.Vec3{X: 0.10, Y: 0.09, Z: 0.16},
		DuskZenith:  math.Vec3{X: 0.01, Y: 0.02, Z: 0.07},
		DawnColor:   math.Vec3{X: 0.95, Y: 0.50, Z: 0.25},

		CloudScale: 0.7,
		CloudSpeed: 0.06,
		CloudColor: math.Vec3{X: 0.96, Y: 0.96, Z: 0.98},

		SunColor:  math.Vec3{X: 1.00, Y: 0.95, Z: 0.85},
		MoonColor: math.Vec3{X: 0.75, Y: 0.82, Z: 1.00},

		Mountains: DefaultMountainParams(),
	}
}

// Shade returns the sky color seen along viewDir (unit length).
func Shade(viewDir math.Vec3, sun lighting.SunState, elapsedSeconds float64) math.Vec3 {
	return DefaultParams().Shade(viewDir, sun, elapsedSeconds)
}

// Shade returns the sky color seen along viewDir (unit length).
func (p Params) Shade(viewDir math.Vec3, sun lighting.SunState, elapsedSeconds float64) math.Vec3 {
	vis := math.Saturate(sun.Visibility)
	t := float32(elapsedSeconds)

	col := p.Gradient(viewDir, vis)
	col = p.Clouds(col, viewDir, vis, t)

	col = col.Add(p.SunDisk(viewDir, sun.Direction, vis))
	col = col.Add(p.MoonDisk(viewDir, sun.Direction, vis))
	col = col.Add(Stars(viewDir, vis, t))

	mask, mountain := p.Mountains.Silhouette(viewDir, vis)
	return col.Mix(mountain, mask)
}

// Gradient blends the dusk and day two-stop gradients by visibility, then
// warms the horizon around sunrise and sunset.
func (p Params) Gradient(viewDir math.Vec3, vis float32) math.Vec3 {
	h := math.Saturate(viewDir.Y*0.5 + 0.5)

	day := p.DayHorizon.Mix(p.DayZenith, h)
	dusk := p.DuskHorizon.Mix(p.DuskZenith, h)
	col := dusk.Mix(day, vis)

	dawn := DawnWeight(vis)
	return col.Mix(p.DawnColor, dawn*(1-h)*0.6)
}

// DawnWeight peaks at the two visibility values where the sun crosses the
// horizon band, 0.3 and 0.5, and is zero elsewhere.
func DawnWeight(vis float32) float32 {
	return max(window(vis, 0.3, 0.1), window(vis, 0.5, 0.1))
}

func window(x, center, halfWidth float32) float32 {
	return math.Smoothstep(center-halfWidth, center, x) * (1 - math.Smoothstep(center, center+halfWidth, x))
}

// Clouds blends the fbm cloud layer over col. Coverage fades out towards
// the horizon and the cloud tint darkens with visibility.
func (p Params) Clouds(col, viewDir math.Vec3, vis, t float32) math.Vec3 {
	cov := CloudCoverage(viewDir, t, p.CloudScale, p.CloudSpeed)
	if cov <= 0 {
		return col
	}
	tint := p.CloudColor.Scale(0.25 + 0.75*vis)
	return col.Mix(tint, cov*0.85)
}

// CloudCoverage returns the cloud density in [0,1] along viewDir.
func CloudCoverage(viewDir math.Vec3, t, scale, speed float32) float32 {
	if viewDir.Y <= 0 {
		return 0
	}
	uv := viewDir.XZ().Scale(scale).Add(math.Vec2{X: speed * t})
	c := math.Smoothstep(0.52, 0.70, noise.FBM(uv))
	return c * math.Smoothstep(0.0, 0.15, viewDir.Y)
}
