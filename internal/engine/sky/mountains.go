package sky

import (
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

// MountainParams shapes the horizon silhouette.
type MountainParams struct {
	Base     float32 // elevation (view.y) at ridge height 0
	Peak     float32 // elevation at ridge height 1; 0.18 or 0.24 for the tall range
	Edge     float32 // half width of the anti-aliased silhouette edge
	Textured bool    // rock and snow variation

	Night math.Vec3
	Dusk  math.Vec3
	Day   math.Vec3
	Snow  math.Vec3
}

// DefaultMountainParams returns the low, untextured range.
func DefaultMountainParams() MountainParams {
	return MountainParams{
		Base:  -0.10,
		Peak:  0.18,
		Edge:  0.008,
		Night: math.Vec3{X: 0.03, Y: 0.04, Z: 0.07},
		Dusk:  math.Vec3{X: 0.20, Y: 0.13, Z: 0.15},
		Day:   math.Vec3{X: 0.30, Y: 0.36, Z: 0.33},
		Snow:  math.Vec3{X: 0.92, Y: 0.94, Z: 0.97},
	}
}

// Azimuth returns the horizontal angle of dir in radians.
func Azimuth(dir math.Vec3) float32 {
	return math.Atan2(dir.Z, dir.X)
}

// Ridge returns the combined ridge height in [0,1] for an azimuth, built
// from two ridged-fbm octave sets at different frequency and phase.
func Ridge(azimuth float32) float32 {
	far := noise.FBMRidged(math.Vec2{X: azimuth*1.7 + 3.1, Y: 0.5})
	near := noise.FBMRidged(math.Vec2{X: azimuth*4.3 + 11.3, Y: 4.7})
	r := (0.65*far + 0.35*near) / noise.FBMMax
	return math.Saturate(r)
}

// Elevation returns the horizon profile height for an azimuth.
func (m MountainParams) Elevation(azimuth float32) float32 {
	return math.Mix(m.Base, m.Peak, Ridge(azimuth))
}

// Silhouette returns the mountain mask for viewDir (1 inside the range, 0 in
// open sky) and the mountain color to blend towards.
func (m MountainParams) Silhouette(viewDir math.Vec3, vis float32) (float32, math.Vec3) {
	if viewDir.Y >= 0.35 {
		return 0, math.Vec3{}
	}
	az := Azimuth(viewDir)
	elev := m.Elevation(az)

	mask := 1 - math.Smoothstep(elev-m.Edge, elev+m.Edge, viewDir.Y)
	mask *= 1 - math.Smoothstep(0.10, 0.35, viewDir.Y)
	if mask <= 0 {
		return 0, math.Vec3{}
	}
	return mask, m.color(viewDir, az, elev, vis)
}

func (m MountainParams) color(viewDir math.Vec3, az, elev, vis float32) math.Vec3 {
	col := m.Night.Mix(m.Dusk, math.Smoothstep(0.0, 0.4, vis))
	col = col.Mix(m.Day, math.Smoothstep(0.4, 0.8, vis))
	if !m.Textured {
		return col
	}

	rock := noise.FBM(math.Vec2{X: az * 20, Y: viewDir.Y * 40})
	col = col.Scale(math.Mix(0.75, 1.15, rock))

	// snow caps only on the upper part of the taller peaks
	snow := math.Smoothstep(elev-0.035, elev-0.005, viewDir.Y) * math.Smoothstep(0.08, 0.16, elev)
	snowCol := m.Snow.Scale(math.Mix(0.15, 1.0, vis))
	return col.Mix(snowCol, snow*0.8)
}
