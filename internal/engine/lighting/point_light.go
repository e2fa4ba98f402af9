package lighting

import "github.com/Faultbox/tianguis/pkg/math"

// Default falloff coefficients for the campfire. They were tuned by eye and
// are kept for behavioural parity rather than physical accuracy.
const (
	FireLinear    = 0.05
	FireQuadratic = 0.015
)

// Falloff holds the linear and quadratic attenuation coefficients.
type Falloff struct {
	Linear    float32
	Quadratic float32
}

// DefaultFalloff returns the campfire falloff.
func DefaultFalloff() Falloff {
	return Falloff{Linear: FireLinear, Quadratic: FireQuadratic}
}

// Attenuation returns 1 / (1 + linear*d + quadratic*d^2). The denominator is
// at least 1 for non-negative coefficients and distances.
func (f Falloff) Attenuation(dist float32) float32 {
	if dist < 0 {
		dist = 0
	}
	return 1 / (1 + f.Linear*dist + f.Quadratic*dist*dist)
}

// PointLight is an omni light with inverse-quadratic falloff.
type PointLight struct {
	Position math.Vec3 // World position
	Color    math.Vec3 // Linear RGB, already scaled by intensity
	Falloff  Falloff
}

// Contribution returns albedo * color * max(dot(n, l), 0) * attenuation for
// a surface at pos. The result is meant to be added to other lighting.
func (p PointLight) Contribution(pos, normal, albedo math.Vec3) math.Vec3 {
	if p.Color.MaxComponent() <= colorEpsilon {
		return math.Vec3{}
	}
	toLight := p.Position.Sub(pos)
	dist := toLight.Length()
	lightDir := toLight.Normalize()
	diffuse := max(normal.Dot(lightDir), 0)
	if diffuse == 0 {
		return math.Vec3{}
	}
	return albedo.Mul(p.Color).Scale(diffuse * p.Falloff.Attenuation(dist))
}

// colorEpsilon treats colors at or below this value as "off".
const colorEpsilon = 1e-6
