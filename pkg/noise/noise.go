// Package noise implements the hash-based value noise and fractal Brownian
// motion used by every procedural shading function.
//
// All functions are pure: the same coordinate always yields the same value.
package noise

import (
	gomath "math"

	"github.com/Faultbox/tianguis/pkg/math"
)

// Hash constants. HashK is the dot-product kernel, HashScale the multiplier
// applied to its sine before taking the fractional part.
var HashK = math.Vec2{X: 127.1, Y: 311.7}

const HashScale = 43758.5453123

// Octave structure shared by FBM and FBMRidged.
const (
	Octaves          = 5
	OctaveAmplitude  = 0.5
	OctaveGain       = 0.55
	FBMLacunarity    = 2.02
	RidgedLacunarity = 2.03
)

// FBMMax is the largest value FBM can return: the sum of the octave
// amplitudes, 0.5 * (1 - 0.55^5) / (1 - 0.55).
var FBMMax = float32(OctaveAmplitude * (1 - gomath.Pow(OctaveGain, Octaves)) / (1 - OctaveGain))

// Hash returns a deterministic pseudo-random value in [0,1) for p,
// computed as fract(sin(dot(p, k)) * 43758.5453123).
func Hash(p math.Vec2) float32 {
	d := float64(p.X)*float64(HashK.X) + float64(p.Y)*float64(HashK.Y)
	v := gomath.Sin(d) * HashScale
	f := float32(v - gomath.Floor(v))
	if f >= 1 {
		return gomath.Nextafter32(1, 0)
	}
	return f
}

// ValueNoise bilinearly interpolates Hash at the four lattice corners around
// p, weighted by f*f*(3-2f) on the fractional part. Result is in [0,1].
func ValueNoise(p math.Vec2) float32 {
	i := p.Floor()
	f := p.Fract()

	a := Hash(i)
	b := Hash(i.Add(math.Vec2{X: 1}))
	c := Hash(i.Add(math.Vec2{Y: 1}))
	d := Hash(i.Add(math.Vec2{X: 1, Y: 1}))

	wx := f.X * f.X * (3 - 2*f.X)
	wy := f.Y * f.Y * (3 - 2*f.Y)

	return math.Mix(math.Mix(a, b, wx), math.Mix(c, d, wx), wy)
}

// FBM sums five octaves of ValueNoise. Result is in [0, FBMMax].
func FBM(p math.Vec2) float32 {
	var sum float32
	amp := float32(OctaveAmplitude)
	for range Octaves {
		sum += amp * ValueNoise(p)
		p = p.Scale(FBMLacunarity)
		amp *= OctaveGain
	}
	return sum
}

// FBMRidged is FBM with every octave folded by 1 - |2n - 1|, so ridges
// form where the underlying noise crosses 0.5.
func FBMRidged(p math.Vec2) float32 {
	var sum float32
	amp := float32(OctaveAmplitude)
	for range Octaves {
		n := ValueNoise(p)
		n = 1 - math.Abs(2*n-1)
		sum += amp * n
		p = p.Scale(RidgedLacunarity)
		amp *= OctaveGain
	}
	return sum
}
