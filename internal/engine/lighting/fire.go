package lighting

import (
	gomath "math"

	"github.com/Faultbox/tianguis/pkg/math"
)

// Campfire defaults.
var (
	DefaultFirePosition = math.Vec3{X: 0, Y: 0.3, Z: 0}
	DefaultFireColor    = math.Vec3{X: 1.0, Y: 0.55, Z: 0.20}
)

// DefaultFireIntensity scales the flickering fire color.
const DefaultFireIntensity = 2.5

// Flicker wave parameters: two sines of elapsed time at different
// frequencies and phases around a fixed base.
const (
	flickerBase   = 0.85
	flickerAmpA   = 0.10
	flickerFreqA  = 11.0
	flickerAmpB   = 0.05
	flickerFreqB  = 23.0
	flickerPhaseB = 1.7
)

// FireState is the per-frame snapshot of the campfire consumed by shading.
// Color is zero whenever the fire is disabled.
type FireState struct {
	Enabled  bool
	Position math.Vec3
	Color    math.Vec3
	Flicker  float32
	Falloff  Falloff
}

// Light returns the fire as a point light.
func (s FireState) Light() PointLight {
	return PointLight{Position: s.Position, Color: s.Color, Falloff: s.Falloff}
}

// FireLight is the additive campfire contribution for a surface.
// It is exactly zero when the fire is off.
func FireLight(surfacePos, normal, albedo math.Vec3, fire FireState) math.Vec3 {
	if !fire.Enabled {
		return math.Vec3{}
	}
	return fire.Light().Contribution(surfacePos, normal, albedo)
}

// Flicker returns the flicker factor at the given elapsed time.
func Flicker(elapsedSeconds float64) float32 {
	a := flickerAmpA * gomath.Sin(elapsedSeconds*flickerFreqA)
	b := flickerAmpB * gomath.Sin(elapsedSeconds*flickerFreqB+flickerPhaseB)
	return float32(flickerBase + a + b)
}

// Fire is the two-state (OFF/ON) campfire. Toggle flips the state on a single
// input edge; Update recomputes flicker and color while ON.
type Fire struct {
	enabled   bool
	position  math.Vec3
	baseColor math.Vec3
	intensity float32
	falloff   Falloff

	state FireState
}

// FireConfig configures a Fire.
type FireConfig struct {
	Enabled   bool
	Position  math.Vec3
	Color     math.Vec3
	Intensity float32
	Falloff   Falloff
}

// DefaultFireConfig returns the campfire defaults, starting OFF.
func DefaultFireConfig() FireConfig {
	return FireConfig{
		Position:  DefaultFirePosition,
		Color:     DefaultFireColor,
		Intensity: DefaultFireIntensity,
		Falloff:   DefaultFalloff(),
	}
}

// NewFire creates a fire from cfg. The state is valid for elapsed time 0
// until the first Update.
func NewFire(cfg FireConfig) *Fire {
	f := &Fire{
		enabled:   cfg.Enabled,
		position:  cfg.Position,
		baseColor: cfg.Color,
		intensity: cfg.Intensity,
		falloff:   cfg.Falloff,
	}
	f.Update(0)
	return f
}

// Enabled reports whether the fire is ON.
func (f *Fire) Enabled() bool {
	return f.enabled
}

// Toggle flips between OFF and ON and returns the new state. The color
// follows on the next Update.
func (f *Fire) Toggle() bool {
	f.SetEnabled(!f.enabled)
	return f.enabled
}

// SetEnabled forces the state.
func (f *Fire) SetEnabled(on bool) {
	f.enabled = on
	if !on {
		f.state.Enabled = false
		f.state.Color = math.Vec3{}
		f.state.Flicker = 0
	}
}

// Update recomputes the fire for this frame.
func (f *Fire) Update(elapsedSeconds float64) FireState {
	f.state = FireState{
		Enabled:  f.enabled,
		Position: f.position,
		Falloff:  f.falloff,
	}
	if f.enabled {
		f.state.Flicker = Flicker(elapsedSeconds)
		f.state.Color = f.baseColor.Scale(f.state.Flicker * f.intensity)
	}
	return f.state
}

// State returns the state from the last Update.
func (f *Fire) State() FireState {
	return f.state
}
