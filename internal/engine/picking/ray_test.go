package picking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tianguis/pkg/math"
)

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{X: 1, Y: -1}.Normalize()}
	tt, ok := r.IntersectPlaneY(0)
	if !ok {
		t.Fatal("expected hit")
	}
	p := r.At(tt)
	if math.Abs(p.Y) > 1e-5 || math.Abs(p.X-2) > 1e-5 {
		t.Errorf("hit point = %v, want (2,0,0)", p)
	}

	up := Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{Y: 1}}
	if _, ok := up.IntersectPlaneY(0); ok {
		t.Error("ray pointing away hit the plane")
	}
	flat := Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{X: 1}}
	if _, ok := flat.IntersectPlaneY(0); ok {
		t.Error("parallel ray hit the plane")
	}
}

func TestIntersectAABBFaceNormals(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		t      float32
		normal math.Vec3
	}{
		{"from +z", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}, 4.5, math.Vec3{Z: 1}},
		{"from -x", Ray{Origin: math.Vec3{X: -3}, Direction: math.Vec3{X: 1}}, 2.5, math.Vec3{X: -1}},
		{"from above", Ray{Origin: math.Vec3{Y: 2}, Direction: math.Vec3{Y: -1}}, 1.5, math.Vec3{Y: 1}},
		{"from inside", Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}, 0.5, math.Vec3{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, ok := tt.ray.IntersectAABB(UnitBox)
			if !ok {
				t.Fatal("expected hit")
			}
			if math.Abs(got-tt.t) > 1e-5 {
				t.Errorf("t = %v, want %v", got, tt.t)
			}
			if n != tt.normal {
				t.Errorf("normal = %v, want %v", n, tt.normal)
			}
		})
	}
}

func TestIntersectAABBMiss(t *testing.T) {
	r := Ray{Origin: math.Vec3{X: 2, Z: 5}, Direction: math.Vec3{Z: -1}}
	if _, _, ok := r.IntersectAABB(UnitBox); ok {
		t.Error("expected miss")
	}
	behind := Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: 1}}
	if _, _, ok := behind.IntersectAABB(UnitBox); ok {
		t.Error("box behind the ray was hit")
	}
}

func TestNewAABBSwaps(t *testing.T) {
	b := NewAABB(math.Vec3{X: 1, Y: -1, Z: 3}, math.Vec3{X: -1, Y: 1, Z: 2})
	if b.Min != (math.Vec3{X: -1, Y: -1, Z: 2}) || b.Max != (math.Vec3{X: 1, Y: 1, Z: 3}) {
		t.Errorf("NewAABB = %+v", b)
	}
}

func TestIntersectSphere(t *testing.T) {
	r := Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}
	got, ok := r.IntersectSphere(math.Vec3{}, 1)
	if !ok || math.Abs(got-4) > 1e-5 {
		t.Errorf("IntersectSphere = %v, %v; want 4, true", got, ok)
	}
	inside := Ray{Origin: math.Vec3{}, Direction: math.Vec3{Y: 1}}
	if got, ok := inside.IntersectSphere(math.Vec3{}, 0.5); !ok || math.Abs(got-0.5) > 1e-5 {
		t.Errorf("inside IntersectSphere = %v, %v; want 0.5, true", got, ok)
	}
	if _, ok := r.IntersectSphere(math.Vec3{X: 3}, 1); ok {
		t.Error("expected miss")
	}
}

func TestTransformPreservesParameter(t *testing.T) {
	world := mgl32.Translate3D(4, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	r := Ray{Origin: math.Vec3{X: 4, Z: 10}, Direction: math.Vec3{Z: -1}}
	local := r.Transform(world.Inv())

	tl, _, ok := local.IntersectAABB(UnitBox)
	if !ok {
		t.Fatal("expected hit in object space")
	}
	// The scaled box spans z in [-1,1], so the world hit is at t=9.
	if math.Abs(tl-9) > 1e-4 {
		t.Errorf("t = %v, want 9", tl)
	}
}
