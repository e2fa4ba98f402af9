// Package terrain shades the ground plane: an anti-tiling blend of two
// randomly rotated and jittered texture layers, lit by the sun and the
// campfire.
package terrain

import (
	"github.com/Faultbox/tianguis/internal/engine/lighting"
	"github.com/Faultbox/tianguis/internal/engine/texture"
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

// DefaultTexScale is the world-to-uv scale of the primary texture layer.
const DefaultTexScale = 0.25

// Anti-tiling constants.
const (
	secondLayerScale = 0.57 // second layer frequency relative to the first
	warpAmount       = 0.18 // max uv warp
	warpFrequency    = 0.35
	jitterAmount     = 0.18 // max per-cell offset
	maskFrequency    = 0.05 // low-frequency layer selection mask
	microFrequency   = 1.2
)

// Up is the ground normal.
var Up = math.Vec3{Y: 1}

// layer describes one tiling layer. seed offsets every hash and fbm lookup
// so the two layers decorrelate.
type layer struct {
	scale float32
	seed  math.Vec2
}

// Ground shades points on the y=0 plane.
type Ground struct {
	// Texture is the albedo image. When nil the procedural ground is used.
	Texture  texture.Sampler
	TexScale float32
}

// New creates a ground using tex (may be nil) at the given scale.
// Non-positive scales fall back to DefaultTexScale.
func New(tex texture.Sampler, texScale float32) *Ground {
	if texScale <= 0 {
		texScale = DefaultTexScale
	}
	if t, ok := tex.(*texture.Texture2D); ok && t == nil {
		tex = nil
	}
	return &Ground{Texture: tex, TexScale: texScale}
}

// Textured reports whether an albedo texture is bound.
func (g *Ground) Textured() bool {
	return g.Texture != nil
}

// Albedo returns the ground albedo at worldXZ, textured when possible and
// procedural otherwise.
func (g *Ground) Albedo(worldXZ math.Vec2) math.Vec3 {
	if g.Texture == nil {
		return ProceduralAlbedo(worldXZ)
	}
	return AntiTiledAlbedo(worldXZ, g.Texture, g.TexScale)
}

// Shade returns sun-lit ground radiance without the campfire term.
func (g *Ground) Shade(worldXZ math.Vec2, sun lighting.SunState) math.Vec3 {
	return g.Albedo(worldXZ).Scale(sun.Irradiance(Up))
}

// ShadeLit adds the campfire contribution on top of Shade.
func (g *Ground) ShadeLit(worldXZ math.Vec2, sun lighting.SunState, fire lighting.FireState) math.Vec3 {
	albedo := g.Albedo(worldXZ)
	col := albedo.Scale(sun.Irradiance(Up))
	pos := math.Vec3{X: worldXZ.X, Z: worldXZ.Y}
	return col.Add(lighting.FireLight(pos, Up, albedo, fire))
}

// ShadeGround is the functional form of Ground.Shade. A nil albedoTexture
// selects the procedural ground.
func ShadeGround(worldXZ math.Vec2, sun lighting.SunState, albedoTexture texture.Sampler, texScale float32) math.Vec3 {
	return New(albedoTexture, texScale).Shade(worldXZ, sun)
}

// AntiTiledAlbedo samples tex through two decorrelated layers blended by a
// slow fbm mask, then applies micro-contrast. Every random choice is made
// per unit cell, so the result is stable over unbounded extents.
func AntiTiledAlbedo(worldXZ math.Vec2, tex texture.Sampler, texScale float32) math.Vec3 {
	a := sampleLayer(worldXZ, tex, layer{scale: texScale})
	b := sampleLayer(worldXZ, tex, layer{scale: texScale * secondLayerScale, seed: math.Vec2{X: 41.3, Y: 17.9}})

	mask := math.Smoothstep(0.40, 0.70, noise.FBM(worldXZ.Scale(maskFrequency)))
	albedo := a.Mix(b, mask)

	micro := math.Mix(0.96, 1.06, math.Saturate(noise.FBM(worldXZ.Scale(microFrequency))))
	return albedo.Scale(micro)
}

// sampleLayer warps the layer uv, then rotates and jitters the in-cell
// coordinate by hashes of the cell index before sampling.
func sampleLayer(worldXZ math.Vec2, tex texture.Sampler, l layer) math.Vec3 {
	uv := worldXZ.Scale(l.scale)

	wp := uv.Scale(warpFrequency).Add(l.seed)
	warp := math.Vec2{
		X: noise.FBM(wp) - 0.5,
		Y: noise.FBM(wp.Add(math.Vec2{X: 5.2, Y: 1.3})) - 0.5,
	}
	uv = uv.Add(warp.Scale(2 * warpAmount / noise.FBMMax))

	cell := uv.Floor()
	local := uv.Fract()

	key := cell.Add(l.seed)
	angle := noise.Hash(key) * 2 * math.Pi
	jitter := math.Vec2{
		X: noise.Hash(key.Add(math.Vec2{X: 3.1, Y: 7.7})) - 0.5,
		Y: noise.Hash(key.Add(math.Vec2{X: 11.5, Y: 2.9})) - 0.5,
	}.Scale(2 * jitterAmount)

	p := local.AddScalar(-0.5).Rotate(angle).AddScalar(0.5).Add(jitter)
	return tex.Sample(p)
}
