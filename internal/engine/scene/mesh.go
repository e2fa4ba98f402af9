package scene

import (
	"github.com/Faultbox/tianguis/internal/engine/picking"
	"github.com/Faultbox/tianguis/pkg/math"
)

// Mesh is a handle to one of the unit primitives the ray caster knows.
// Every primitive fits in [-0.5,0.5]^3 before its transform is applied.
type Mesh int

const (
	MeshCube   Mesh = iota // unit cube
	MeshSphere             // sphere of radius 0.5
	MeshQuad               // XZ square at y=0, facing +Y
)

func (m Mesh) String() string {
	switch m {
	case MeshCube:
		return "cube"
	case MeshSphere:
		return "sphere"
	case MeshQuad:
		return "quad"
	}
	return "mesh(?)"
}

// localHit is an intersection in object space.
type localHit struct {
	t      float32
	point  math.Vec3
	normal math.Vec3
	uv     math.Vec2
}

// intersect tests an object-space ray against the primitive.
func (m Mesh) intersect(r picking.Ray) (localHit, bool) {
	switch m {
	case MeshCube:
		t, n, ok := r.IntersectAABB(picking.UnitBox)
		if !ok {
			return localHit{}, false
		}
		p := r.At(t)
		return localHit{t: t, point: p, normal: n, uv: cubeUV(p, n)}, true

	case MeshSphere:
		t, ok := r.IntersectSphere(math.Vec3{}, 0.5)
		if !ok {
			return localHit{}, false
		}
		p := r.At(t)
		n := p.Normalize()
		return localHit{t: t, point: p, normal: n, uv: sphereUV(n)}, true

	case MeshQuad:
		t, ok := r.IntersectPlaneY(0)
		if !ok {
			return localHit{}, false
		}
		p := r.At(t)
		if math.Abs(p.X) > 0.5 || math.Abs(p.Z) > 0.5 {
			return localHit{}, false
		}
		n := math.Vec3{Y: 1}
		if r.Direction.Y > 0 {
			n.Y = -1 // seen from below
		}
		return localHit{t: t, point: p, normal: n, uv: math.Vec2{X: p.X + 0.5, Y: p.Z + 0.5}}, true
	}
	return localHit{}, false
}

// cubeUV projects the hit point onto the face it lies on.
func cubeUV(p, n math.Vec3) math.Vec2 {
	switch {
	case n.X != 0:
		return math.Vec2{X: p.Z + 0.5, Y: p.Y + 0.5}
	case n.Y != 0:
		return math.Vec2{X: p.X + 0.5, Y: p.Z + 0.5}
	}
	return math.Vec2{X: p.X + 0.5, Y: p.Y + 0.5}
}

func sphereUV(n math.Vec3) math.Vec2 {
	u := 0.5 + math.Atan2(n.Z, n.X)/(2*math.Pi)
	v := 0.5 + math.Asin(n.Y)/math.Pi
	return math.Vec2{X: u, Y: v}
}
