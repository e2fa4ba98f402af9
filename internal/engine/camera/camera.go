// Package camera provides the free-flying viewer camera.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tianguis/pkg/math"
)

// Pitch limit keeps the view away from the poles where yaw degenerates.
const maxPitch = 1.55

var worldUp = mgl32.Vec3{0, 1, 0}

// FlyCamera moves freely through the scene. Yaw 0 looks down -Z.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32 // radians, positive turns right
	Pitch    float32 // radians, positive looks up
	FOV      float32 // vertical field of view, degrees

	Near, Far float32

	Speed       float32 // world units per second
	Sensitivity float32 // radians per pixel of mouse drag
}

// NewFlyCamera creates a camera standing at the edge of the campsite.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Position:    mgl32.Vec3{0, 1.6, 6},
		Pitch:       -0.15,
		FOV:         60,
		Near:        0.05,
		Far:         500,
		Speed:       3,
		Sensitivity: 0.004,
	}
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		cp * float32(gomath.Sin(float64(c.Yaw))),
		float32(gomath.Sin(float64(c.Pitch))),
		-cp * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// Right returns the unit right vector, always horizontal.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return c.Forward().Cross(worldUp).Normalize()
}

// Up returns the camera-relative up vector.
func (c *FlyCamera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Forward())
}

// HandleDrag turns the camera by a mouse delta in pixels.
func (c *FlyCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.Sensitivity
	c.Pitch -= deltaY * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)

	// Keep yaw bounded so long sessions don't lose precision.
	if c.Yaw > gomath.Pi {
		c.Yaw -= 2 * gomath.Pi
	} else if c.Yaw < -gomath.Pi {
		c.Yaw += 2 * gomath.Pi
	}
}

// HandleMovement moves the camera. forward and right follow the horizontal
// heading so looking down does not slow walking; up is world up.
func (c *FlyCamera) HandleMovement(forward, right, up, dt float32) {
	f := c.Forward()
	heading := mgl32.Vec3{f.X(), 0, f.Z()}
	if heading.Len() > 1e-6 {
		heading = heading.Normalize()
	}
	step := c.Speed * dt
	move := heading.Mul(forward).Add(c.Right().Mul(right)).Add(worldUp.Mul(up))
	c.Position = c.Position.Add(move.Mul(step))
}

// ViewMatrix returns the world-to-view matrix.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), worldUp)
}

// ProjectionMatrix returns the perspective projection for aspect (w/h).
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Rays generates primary ray directions for a frame.
type Rays struct {
	Origin math.Vec3

	forward, right, up math.Vec3
	tanX, tanY         float32
}

// Rays returns the ray generator for a frame with the given aspect ratio.
func (c *FlyCamera) Rays(aspect float32) Rays {
	tanY := float32(gomath.Tan(float64(mgl32.DegToRad(c.FOV)) / 2))
	return Rays{
		Origin:  fromMGL(c.Position),
		forward: fromMGL(c.Forward()),
		right:   fromMGL(c.Right()),
		up:      fromMGL(c.Up()),
		tanX:    tanY * aspect,
		tanY:    tanY,
	}
}

// Dir returns the unit ray direction through normalized device coordinates
// (x right, y up, both in [-1,1]).
func (r Rays) Dir(ndcX, ndcY float32) math.Vec3 {
	d := r.forward.
		Add(r.right.Scale(ndcX * r.tanX)).
		Add(r.up.Scale(ndcY * r.tanY))
	return d.Normalize()
}

func fromMGL(v mgl32.Vec3) math.Vec3 {
	return math.Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
