package terrain

import (
	"github.com/Faultbox/tianguis/pkg/math"
	"github.com/Faultbox/tianguis/pkg/noise"
)

// Procedural ground palette.
var (
	dirtDark  = math.Vec3{X: 0.30, Y: 0.22, Z: 0.15}
	dirtLight = math.Vec3{X: 0.48, Y: 0.38, Z: 0.26}
	grass     = math.Vec3{X: 0.26, Y: 0.36, Z: 0.16}
	pebble    = math.Vec3{X: 0.55, Y: 0.52, Z: 0.48}
)

// ProceduralAlbedo is the untextured ground: packed dirt with grass patches
// and sparse pebbles.
func ProceduralAlbedo(worldXZ math.Vec2) math.Vec3 {
	base := noise.FBM(worldXZ.Scale(0.8))
	col := dirtDark.Mix(dirtLight, math.Saturate(base))

	patches := math.Smoothstep(0.55, 0.75, noise.FBM(worldXZ.Scale(0.12).Add(math.Vec2{X: 9.1, Y: 3.7})))
	col = col.Mix(grass, patches*0.7)

	cell := worldXZ.Scale(6).Floor()
	if noise.Hash(cell) > 0.97 {
		col = col.Mix(pebble, 0.6)
	}

	micro := math.Mix(0.96, 1.06, math.Saturate(noise.FBM(worldXZ.Scale(microFrequency))))
	return col.Scale(micro)
}
