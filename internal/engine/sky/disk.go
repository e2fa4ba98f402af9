package sky

import "github.com/Faultbox/tianguis/pkg/math"

// Celestial disk radii in radians.
const (
	SunCoreRadius  = 0.020
	SunHaloRadius  = 0.090
	MoonCoreRadius = 0.016
	MoonHaloRadius = 0.060

	haloWeight = 0.35
	moonScale  = 0.75
	sunScale   = 1.2
)

// DiskHalo renders a glowing disk: a sharp core of coreRadius plus a
// Gaussian halo exp(-(angle/haloRadius)^2) weighted by 0.35. mu is the
// cosine between the view and light directions.
func DiskHalo(mu, coreRadius, haloRadius float32) float32 {
	angle := math.Acos(mu)
	core := 1 - math.Smoothstep(coreRadius*0.85, coreRadius, angle)
	r := angle / haloRadius
	halo := math.Exp(-r * r)
	return core + haloWeight*halo
}

// SunDisk returns the sun contribution, fading with visibility.
func (p Params) SunDisk(viewDir, sunDir math.Vec3, vis float32) math.Vec3 {
	k := math.Saturate(vis * sunScale)
	if k == 0 {
		return math.Vec3{}
	}
	d := DiskHalo(viewDir.Dot(sunDir), SunCoreRadius, SunHaloRadius)
	return p.SunColor.Scale(d * k)
}

// MoonDisk returns the moon contribution; the moon sits opposite the sun.
func (p Params) MoonDisk(viewDir, sunDir math.Vec3, vis float32) math.Vec3 {
	k := (1 - vis) * moonScale
	if k <= 0 {
		return math.Vec3{}
	}
	d := DiskHalo(viewDir.Dot(sunDir.Neg()), MoonCoreRadius, MoonHaloRadius)
	return p.MoonColor.Scale(d * k)
}
