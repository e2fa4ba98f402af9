package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tianguis/internal/engine/material"
	"github.com/Faultbox/tianguis/internal/engine/picking"
	"github.com/Faultbox/tianguis/internal/engine/terrain"
	"github.com/Faultbox/tianguis/pkg/math"
)

// maxGroundDistance bounds the ground plane so grazing rays near the
// horizon fall through to the sky.
const maxGroundDistance = 400

var (
	groundMaterial = material.GroundTextured{}
	skyMaterial    = material.Sky{}
)

// Hit is the nearest surface along a ray.
type Hit struct {
	T        float32
	Surface  material.Surface
	Material material.Material
}

// Intersect finds the nearest surface along r: the ground plane y=0 or any
// submitted draw. ok is false when the ray escapes to the sky.
func (s *State) Intersect(r picking.Ray) (hit Hit, ok bool) {
	best := float32(gomath.MaxFloat32)

	if t, found := r.IntersectPlaneY(0); found && t < maxGroundDistance {
		best = t
		p := r.At(t)
		p.Y = 0
		hit = Hit{
			T:        t,
			Material: groundMaterial,
			Surface: material.Surface{
				Position: p,
				Normal:   terrain.Up,
				Local:    p,
				UV:       p.XZ(),
			},
		}
		ok = true
	}

	for i := range s.draws {
		d := &s.draws[i]
		lh, found := d.Mesh.intersect(r.Transform(d.inverse))
		if !found || lh.t >= best {
			continue
		}
		best = lh.t
		n := d.normal.Mul3x1(mgl32.Vec3{lh.normal.X, lh.normal.Y, lh.normal.Z})
		hit = Hit{
			T:        lh.t,
			Material: d.Material,
			Surface: material.Surface{
				Position: r.At(lh.t),
				Normal:   math.Vec3{X: n.X(), Y: n.Y(), Z: n.Z()}.Normalize(),
				Local:    lh.point,
				UV:       lh.uv,
			},
		}
		ok = true
	}
	return hit, ok
}

// Trace shades the ray with the environment of the last Update. dir must be
// unit length.
func (s *State) Trace(origin, dir math.Vec3) math.Vec3 {
	r := picking.Ray{Origin: origin, Direction: dir}
	hit, ok := s.Intersect(r)
	if !ok {
		return skyMaterial.Shade(material.Surface{ViewDir: dir}, &s.env)
	}
	hit.Surface.ViewDir = dir
	return hit.Material.Shade(hit.Surface, &s.env)
}
