package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tianguis/internal/engine/material"
	"github.com/Faultbox/tianguis/pkg/math"
)

// place builds translate * rotateY * scale.
func place(pos, size mgl32.Vec3, yaw float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.HomogRotate3DY(yaw)).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))
}

// DefaultLayout submits the fixed campsite around the fire at the origin:
// two market tables with chairs, the fire ring and flame, a pot, a flower bed
// and a wall of mosaic masks.
func DefaultLayout(s *State) {
	wood := material.DefaultWood()
	cloth := material.DefaultFabric()
	darkWood := material.Wood{
		Light: wood.Dark,
		Dark:  wood.Dark.Scale(0.6),
		Rings: 14,
	}

	for _, t := range []struct {
		pos mgl32.Vec3
		yaw float32
	}{
		{mgl32.Vec3{-3.2, 0, -1.5}, 0.35},
		{mgl32.Vec3{3.0, 0, -2.0}, -0.25},
	} {
		table(s, t.pos, t.yaw, wood, cloth)
		chairOffset := mgl32.HomogRotate3DY(t.yaw).Mul4x1(mgl32.Vec4{0, 0, 1.1, 0}).Vec3()
		chair(s, t.pos.Add(chairOffset), t.yaw, darkWood)
	}

	campfire(s, s.Fire.State().Position, wood)

	pot := material.DefaultCeramic()
	s.SubmitDraw(pot, place(mgl32.Vec3{-3.0, 1.02, -1.4}, mgl32.Vec3{0.35, 0.3, 0.35}, 0), MeshSphere)
	s.SubmitDraw(pot, place(mgl32.Vec3{3.2, 1.0, -2.1}, mgl32.Vec3{0.25, 0.25, 0.25}, 0), MeshSphere)

	flowerBed(s, mgl32.Vec3{-1.5, 0, 2.5})
	maskWall(s, mgl32.Vec3{0, 0, -5})
}

func table(s *State, pos mgl32.Vec3, yaw float32, wood material.Wood, cloth material.Fabric) {
	const height = 0.85
	top := pos.Add(mgl32.Vec3{0, height, 0})
	s.SubmitDraw(wood, place(top, mgl32.Vec3{1.6, 0.06, 0.9}, yaw), MeshCube)
	s.SubmitDraw(cloth, place(top.Add(mgl32.Vec3{0, 0.031, 0}), mgl32.Vec3{1.2, 1, 0.7}, yaw), MeshQuad)

	rot := mgl32.HomogRotate3DY(yaw)
	for _, c := range [][2]float32{{-0.7, -0.38}, {0.7, -0.38}, {-0.7, 0.38}, {0.7, 0.38}} {
		off := rot.Mul4x1(mgl32.Vec4{c[0], 0, c[1], 0}).Vec3()
		leg := pos.Add(off).Add(mgl32.Vec3{0, height / 2, 0})
		s.SubmitDraw(wood, place(leg, mgl32.Vec3{0.07, height, 0.07}, yaw), MeshCube)
	}
}

func chair(s *State, pos mgl32.Vec3, yaw float32, wood material.Wood) {
	const seat = 0.45
	rot := mgl32.HomogRotate3DY(yaw)
	s.SubmitDraw(wood, place(pos.Add(mgl32.Vec3{0, seat, 0}), mgl32.Vec3{0.45, 0.05, 0.45}, yaw), MeshCube)
	back := rot.Mul4x1(mgl32.Vec4{0, 0, 0.2, 0}).Vec3()
	s.SubmitDraw(wood, place(pos.Add(back).Add(mgl32.Vec3{0, seat + 0.3, 0}), mgl32.Vec3{0.45, 0.55, 0.05}, yaw), MeshCube)
	for _, c := range [][2]float32{{-0.19, -0.19}, {0.19, -0.19}, {-0.19, 0.19}, {0.19, 0.19}} {
		off := rot.Mul4x1(mgl32.Vec4{c[0], 0, c[1], 0}).Vec3()
		s.SubmitDraw(wood, place(pos.Add(off).Add(mgl32.Vec3{0, seat / 2, 0}), mgl32.Vec3{0.05, seat, 0.05}, yaw), MeshCube)
	}
}

func campfire(s *State, firePos math.Vec3, wood material.Wood) {
	base := mgl32.Vec3{firePos.X, 0, firePos.Z}
	for i := 0; i < 5; i++ {
		yaw := float32(i) * 2 * math.Pi / 5
		off := mgl32.HomogRotate3DY(yaw).Mul4x1(mgl32.Vec4{0, 0, 0.22, 0}).Vec3()
		s.SubmitDraw(wood, place(base.Add(off).Add(mgl32.Vec3{0, 0.07, 0}), mgl32.Vec3{0.12, 0.12, 0.6}, yaw), MeshCube)
	}
	stone := material.Flat{Albedo: material.DefaultCeramic().Speckle.Scale(1.6)}
	for i := 0; i < 9; i++ {
		yaw := float32(i) * 2 * math.Pi / 9
		off := mgl32.HomogRotate3DY(yaw).Mul4x1(mgl32.Vec4{0, 0, 0.6, 0}).Vec3()
		s.SubmitDraw(stone, place(base.Add(off), mgl32.Vec3{0.2, 0.16, 0.2}, yaw), MeshSphere)
	}
	s.SubmitDraw(material.Fire{}, place(mgl32.Vec3{firePos.X, 0.35, firePos.Z}, mgl32.Vec3{0.35, 0.6, 0.35}, 0), MeshSphere)
}

func flowerBed(s *State, center mgl32.Vec3) {
	s.SubmitDraw(material.Foliage{}, place(center.Add(mgl32.Vec3{0, 0.01, 0}), mgl32.Vec3{2.2, 1, 1.2}, 0.1), MeshQuad)

	petals := []material.FlowerPetal{
		material.DefaultFlowerPetal(),
		{Base: math.Vec3{X: 1, Y: 0.8, Z: 0.9}, Tint: math.Vec3{X: 0.85, Y: 0.15, Z: 0.45}},
	}
	for i := 0; i < 7; i++ {
		petal := petals[i%len(petals)]
		x := -0.9 + float32(i)*0.3
		z := float32(i%3)*0.3 - 0.3
		h := 0.35 + float32(i%2)*0.15
		p := center.Add(mgl32.Vec3{x, 0, z})
		s.SubmitDraw(material.FlowerStem{}, place(p.Add(mgl32.Vec3{0, h / 2, 0}), mgl32.Vec3{0.03, h, 0.03}, 0), MeshCube)
		s.SubmitDraw(petal, place(p.Add(mgl32.Vec3{0, h, 0}), mgl32.Vec3{0.22, 0.05, 0.22}, float32(i)), MeshSphere)
		s.SubmitDraw(material.FlowerCenter{}, place(p.Add(mgl32.Vec3{0, h + 0.02, 0}), mgl32.Vec3{0.08, 0.04, 0.08}, 0), MeshSphere)
	}
}

func maskWall(s *State, center mgl32.Vec3) {
	wood := material.DefaultWood()
	s.SubmitDraw(wood, place(center.Add(mgl32.Vec3{0, 1.2, -0.08}), mgl32.Vec3{3.4, 2.4, 0.1}, 0), MeshCube)
	// Quads stand upright: rotate the XZ square into XY facing +Z.
	upright := mgl32.HomogRotate3DX(math.Pi / 2)
	for i := 0; i < 3; i++ {
		p := center.Add(mgl32.Vec3{-1.1 + float32(i)*1.1, 1.4, 0})
		m := mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(upright).Mul4(mgl32.Scale3D(0.8, 1, 1.0))
		s.SubmitDraw(material.MaskTile{Variant: i}, m, MeshQuad)
	}
}
