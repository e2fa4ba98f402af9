package sky

import (
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

// starLayer is one lattice of point stars.
type starLayer struct {
	cells      float32 // cells per uv axis
	threshold  float32 // hash percentile a cell must exceed
	brightness float32
	offset     math.Vec2 // decorrelates layers sharing cell indices
}

var starLayers = [...]starLayer{
	{cells: 600, threshold: 0.9965, brightness: 0.55, offset: math.Vec2{X: 0.0, Y: 0.0}},
	{cells: 1200, threshold: 0.9990, brightness: 0.80, offset: math.Vec2{X: 17.0, Y: 59.0}},
	{cells: 2200, threshold: 0.9997, brightness: 1.00, offset: math.Vec2{X: 131.0, Y: 7.0}},
}

// EquirectUV maps a unit direction to equirectangular coordinates in [0,1].
func EquirectUV(dir math.Vec3) math.Vec2 {
	u := math.Atan2(dir.Z, dir.X)/(2*math.Pi) + 0.5
	v := math.Asin(dir.Y)/math.Pi + 0.5
	return math.Vec2{X: u, Y: v}
}

// Stars returns the twinkling star field. Stars only show at night and fade
// out near the horizon.
func Stars(viewDir math.Vec3, vis, t float32) math.Vec3 {
	gate := (1 - vis) * math.Smoothstep(0.0, 0.25, viewDir.Y)
	if gate <= 0 {
		return math.Vec3{}
	}

	uv := EquirectUV(viewDir)
	var s float32
	for _, l := range starLayers {
		cell := uv.Scale(l.cells).Floor().Add(l.offset)
		s += math.Step(l.threshold, noise.Hash(cell)) * l.brightness
	}
	if s == 0 {
		return math.Vec3{}
	}

	twinkle := 0.6 + 0.4*math.Sin(5*t+55*uv.X+37*uv.Y)
	return math.Splat(s * twinkle * gate)
}
