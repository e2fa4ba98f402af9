// Package scene composes the campsite: it owns the per-frame lighting state
// and the draw list, and ray casts them into an image on the CPU.
package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tianguis/internal/engine/camera"
	"github.com/Faultbox/tianguis/internal/engine/lighting"
	"github.com/Faultbox/tianguis/internal/engine/material"
	"github.com/Faultbox/tianguis/internal/engine/sky"
	"github.com/Faultbox/tianguis/internal/engine/terrain"
	"github.com/Faultbox/tianguis/internal/engine/texture"
)

// Config contains scene configuration options.
type Config struct {
	CycleLength float64 // seconds per day/night cycle
	Fire        lighting.FireConfig
	Sky         sky.Params
	Ground      texture.Sampler // nil selects the procedural ground
	TexScale    float32
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		CycleLength: lighting.DefaultCycleLength,
		Fire:        lighting.DefaultFireConfig(),
		Sky:         sky.DefaultParams(),
		TexScale:    terrain.DefaultTexScale,
	}
}

// Draw is one submitted primitive.
type Draw struct {
	Material  material.Material
	Transform mgl32.Mat4
	Mesh      Mesh

	inverse mgl32.Mat4
	normal  mgl32.Mat3 // inverse transpose of the upper 3x3
}

// State is everything a frame needs. The viewer mutates it between frames
// only; rendering treats it as read-only.
type State struct {
	Camera *camera.FlyCamera
	Fire   *lighting.Fire
	Ground *terrain.Ground

	CycleLength float64

	env   material.Env
	draws []Draw
}

// New creates a scene from cfg with an empty draw list.
func New(cfg Config) *State {
	if cfg.CycleLength <= 0 {
		cfg.CycleLength = lighting.DefaultCycleLength
	}
	s := &State{
		Camera:      camera.NewFlyCamera(),
		Fire:        lighting.NewFire(cfg.Fire),
		Ground:      terrain.New(cfg.Ground, cfg.TexScale),
		CycleLength: cfg.CycleLength,
	}
	s.env.Sky = cfg.Sky
	s.Update(0)
	return s
}

// Update recomputes the sun and then the fire for this frame. It must run
// once per frame before rendering.
func (s *State) Update(elapsedSeconds float64) {
	if elapsedSeconds < 0 || gomath.IsNaN(elapsedSeconds) || gomath.IsInf(elapsedSeconds, 0) {
		elapsedSeconds = 0
	}
	s.env.Elapsed = elapsedSeconds
	s.env.Sun = lighting.SunAt(elapsedSeconds, s.CycleLength)
	s.env.Fire = s.Fire.Update(elapsedSeconds)
	s.env.Ground = s.Ground
}

// Env returns the lighting environment of the last Update.
func (s *State) Env() *material.Env {
	return &s.env
}

// Sun returns the sun of the last Update.
func (s *State) Sun() lighting.SunState {
	return s.env.Sun
}

// ToggleFire flips the campfire. The new color takes effect on the next
// Update.
func (s *State) ToggleFire() bool {
	return s.Fire.Toggle()
}

// SetGroundTexture binds a new ground texture, or the procedural ground when
// tex is nil.
func (s *State) SetGroundTexture(tex texture.Sampler) {
	s.Ground = terrain.New(tex, s.Ground.TexScale)
	s.env.Ground = s.Ground
}

// SubmitDraw appends a primitive to the draw list. Degenerate transforms are
// dropped.
func (s *State) SubmitDraw(mat material.Material, transform mgl32.Mat4, mesh Mesh) bool {
	if mat == nil || transform.Det() == 0 {
		return false
	}
	inv := transform.Inv()
	s.draws = append(s.draws, Draw{
		Material:  mat,
		Transform: transform,
		Mesh:      mesh,
		inverse:   inv,
		normal:    inv.Transpose().Mat3(),
	})
	return true
}

// ClearDraws empties the draw list.
func (s *State) ClearDraws() {
	s.draws = s.draws[:0]
}

// Draws returns the current draw list.
func (s *State) Draws() []Draw {
	return s.draws
}
