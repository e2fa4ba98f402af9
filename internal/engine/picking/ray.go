// Package picking provides ray casting against the scene primitives.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tianguis/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform maps the ray through m. The direction is not renormalized, so a
// hit parameter found in the transformed space is valid for the original ray.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	o := m.Mul4x1(mgl32.Vec4{r.Origin.X, r.Origin.Y, r.Origin.Z, 1})
	d := m.Mul4x1(mgl32.Vec4{r.Direction.X, r.Direction.Y, r.Direction.Z, 0})
	return Ray{
		Origin:    math.Vec3{X: o.X(), Y: o.Y(), Z: o.Z()},
		Direction: math.Vec3{X: d.X(), Y: d.Y(), Z: d.Z()},
	}
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the hit parameter and whether it lies in front of the origin.
func (r Ray) IntersectPlaneY(planeY float32) (t float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 1e-6 {
		return 0, false // parallel
	}
	t = (planeY - r.Origin.Y) / r.Direction.Y
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// UnitBox is the cube [-0.5,0.5]^3.
var UnitBox = AABB{
	Min: math.Splat(-0.5),
	Max: math.Splat(0.5),
}

// NewAABB creates an AABB from two corners, handling swapped coordinates.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// It returns the entry distance and the outward normal of the entry face. If
// the ray starts inside the box the exit distance and face are returned.
func (r Ray) IntersectAABB(box AABB) (t float32, normal math.Vec3, hit bool) {
	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)
	var inAxis, outAxis int
	var inSign, outSign float32

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, math.Vec3{}, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		sign := float32(-1) // entering through the low face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin, inAxis, inSign = t1, axis, sign
		}
		if t2 < tmax {
			tmax, outAxis, outSign = t2, axis, -sign
		}
	}

	if tmax < tmin || tmax <= 0 {
		return 0, math.Vec3{}, false
	}
	if tmin <= 0 {
		return tmax, axisNormal(outAxis, outSign), true
	}
	return tmin, axisNormal(inAxis, inSign), true
}

// IntersectSphere intersects the ray with a sphere. The direction need not
// be unit length.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return 0, false
	}
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t = (-b - sq) / a
	if t <= 0 {
		t = (-b + sq) / a
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}

func axisNormal(axis int, sign float32) math.Vec3 {
	switch axis {
	case 0:
		return math.Vec3{X: sign}
	case 1:
		return math.Vec3{Y: sign}
	}
	return math.Vec3{Z: sign}
}
