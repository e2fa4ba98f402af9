// Package lighting provides the day/night sun driver and the campfire point
// light that every shaded surface consumes.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/tianguis/pkg/math"
)

// DefaultCycleLength is the length of one full day/night cycle in seconds.
const DefaultCycleLength = 60.0

// ElevationAmplitude scales sin(azimuth) into the sun elevation in radians.
const ElevationAmplitude = 0.8

// SunState is the per-frame sun derived from elapsed time. It is recomputed
// every frame and never stored between frames.
type SunState struct {
	TimeOfDay  float32   // Position in the cycle, [0,1)
	Azimuth    float32   // TimeOfDay * 2pi
	Elevation  float32   // sin(Azimuth) * ElevationAmplitude, radians
	Direction  math.Vec3 // Unit vector pointing towards the sun
	Visibility float32   // 0.5 + 0.5*sin(Elevation), clamped to [0,1]
}

// TimeOfDay maps elapsed seconds onto the repeating [0,1) cycle.
// Non-positive or non-finite cycle lengths fall back to DefaultCycleLength;
// non-finite elapsed times count as 0.
func TimeOfDay(elapsedSeconds, cycleLength float64) float64 {
	if cycleLength <= 0 || gomath.IsNaN(cycleLength) || gomath.IsInf(cycleLength, 0) {
		cycleLength = DefaultCycleLength
	}
	if gomath.IsNaN(elapsedSeconds) || gomath.IsInf(elapsedSeconds, 0) {
		elapsedSeconds = 0
	}
	t := gomath.Mod(elapsedSeconds, cycleLength) / cycleLength
	if t < 0 {
		t += 1
	}
	if t >= 1 {
		t = 0
	}
	return t
}

// SunAt computes the sun for the given elapsed time. Call it once per frame
// before any shading.
func SunAt(elapsedSeconds, cycleLength float64) SunState {
	t := TimeOfDay(elapsedSeconds, cycleLength)

	azimuth := t * 2 * gomath.Pi
	elevation := gomath.Sin(azimuth) * ElevationAmplitude

	cosEl := gomath.Cos(elevation)
	dir := math.Vec3{
		X: float32(cosEl * gomath.Cos(azimuth)),
		Y: float32(gomath.Sin(elevation)),
		Z: float32(cosEl * gomath.Sin(azimuth)),
	}.Normalize()
	if dir == (math.Vec3{}) {
		dir = math.Vec3{Y: 1}
	}

	return SunState{
		TimeOfDay:  float32(t),
		Azimuth:    float32(azimuth),
		Elevation:  float32(elevation),
		Direction:  dir,
		Visibility: math.Saturate(float32(0.5 + 0.5*gomath.Sin(elevation))),
	}
}

// Ambient returns the ambient light term mix(0.40, 0.62, visibility).
func (s SunState) Ambient() float32 {
	return math.Mix(0.40, 0.62, math.Saturate(s.Visibility))
}

// SunMix returns the direct sun weight mix(0.55, 1.00, visibility).
func (s SunState) SunMix() float32 {
	return math.Mix(0.55, 1.00, math.Saturate(s.Visibility))
}

// Lambert returns clamp(dot(normal, sunDirection), 0, 1).
func (s SunState) Lambert(normal math.Vec3) float32 {
	return math.Saturate(normal.Dot(s.Direction))
}

// Irradiance is the scalar sun + ambient factor applied to albedo:
// ambient + lambert*sunMix.
func (s SunState) Irradiance(normal math.Vec3) float32 {
	return s.Ambient() + s.Lambert(normal)*s.SunMix()
}
