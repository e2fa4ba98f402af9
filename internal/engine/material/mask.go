package material

import (
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

// maskPalettes are the tile colors per mosaic variant.
var maskPalettes = [][]math.Vec3{
	{ // turquoise and coral
		{X: 0.10, Y: 0.62, Z: 0.60},
		{X: 0.95, Y: 0.45, Z: 0.35},
		{X: 0.95, Y: 0.90, Z: 0.80},
	},
	{ // jade and obsidian
		{X: 0.15, Y: 0.45, Z: 0.25},
		{X: 0.08, Y: 0.08, Z: 0.10},
		{X: 0.70, Y: 0.78, Z: 0.55},
	},
	{ // ochre and cinnabar
		{X: 0.80, Y: 0.55, Z: 0.15},
		{X: 0.70, Y: 0.12, Z: 0.08},
		{X: 0.20, Y: 0.15, Z: 0.12},
	},
}

const (
	maskTiles = 10   // tiles per uv unit
	groutSize = 0.08 // fraction of a tile taken by grout
)

var grout = math.Vec3{X: 0.25, Y: 0.24, Z: 0.22}

// MaskTile is a mosaic of small tiles. Variant picks the palette and wraps
// around the number of palettes.
type MaskTile struct {
	Variant int
}

func (MaskTile) Mode() Mode { return ModeMaskTile }

// Palette returns the palette for the variant.
func (m MaskTile) Palette() []math.Vec3 {
	n := len(maskPalettes)
	return maskPalettes[((m.Variant%n)+n)%n]
}

func (m MaskTile) Shade(s Surface, env *Env) math.Vec3 {
	pal := m.Palette()
	uv := s.UV.Scale(maskTiles)
	cell := uv.Floor()
	local := uv.Fract()

	h := noise.Hash(cell.Add(math.Vec2{X: float32(m.Variant) * 13.7}))
	idx := int(h * float32(len(pal)))
	if idx >= len(pal) {
		idx = len(pal) - 1
	}
	col := pal[idx].Scale(math.Mix(0.85, 1.1, noise.Hash(cell.AddScalar(91.3))))

	edge := min(min(local.X, 1-local.X), min(local.Y, 1-local.Y))
	col = grout.Mix(col, math.Smoothstep(0, groutSize, edge))
	return Lit(col, s, env)
}
