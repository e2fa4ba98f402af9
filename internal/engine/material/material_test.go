package material

import (
	"testing"

	"github.com/Faultbox/tianguis/internal/engine/lighting"
	"github.com/Faultbox/tianguis/internal/engine/sky"
	"github.com/Faultbox/tianguis/internal/engine/terrain"
	"github.com/Faultbox/tianguis/internal/engine/texture"
	"github.com/Faultbox/tianguis/pkg/math"
)

func near(a, b math.Vec3, eps float32) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func noonEnv() *Env {
	return &Env{
		Sun:    lighting.SunAt(15, 60),
		Sky:    sky.DefaultParams(),
		Ground: terrain.New(nil, 0),
	}
}

func surfaceAt(pos math.Vec3) Surface {
	return Surface{
		Position: pos,
		Normal:   math.Vec3{Y: 1},
		ViewDir:  math.Vec3{X: 0, Y: -0.6, Z: 0.8},
		UV:       math.Vec2{X: 0.3, Y: 0.7},
	}
}

func TestFlatEqualsSunLambertian(t *testing.T) {
	env := noonEnv()
	albedo := math.Vec3{X: 0.4, Y: 0.5, Z: 0.6}
	s := surfaceAt(math.Vec3{X: 2, Z: 3})

	want := albedo.Scale(env.Sun.Ambient() + env.Sun.Lambert(s.Normal)*env.Sun.SunMix())
	if got := (Flat{Albedo: albedo}).Shade(s, env); !near(got, want, 1e-6) {
		t.Errorf("Flat.Shade = %v, want %v", got, want)
	}
}

func TestFireAddsLight(t *testing.T) {
	env := noonEnv()
	m := Flat{Albedo: math.Splat(0.5)}
	s := surfaceAt(math.Vec3{X: 0.4, Z: 0.4})
	base := m.Shade(s, env)

	fire := lighting.NewFire(lighting.DefaultFireConfig())
	fire.SetEnabled(true)
	env.Fire = fire.Update(2)

	lit := m.Shade(s, env)
	if lit.X <= base.X || lit.Y <= base.Y || lit.Z <= base.Z {
		t.Errorf("fire did not brighten: %v -> %v", base, lit)
	}
}

func TestForModeCoversAllModes(t *testing.T) {
	env := noonEnv()
	s := surfaceAt(math.Vec3{X: 1, Y: 0.5, Z: -1})
	s.Local = math.Vec3{X: 0.1, Y: 0.2, Z: -0.3}
	for m := ModeFlat; m <= ModeMaskTile; m++ {
		mat, err := ForMode(m, 1)
		if err != nil {
			t.Fatalf("ForMode(%v): %v", m, err)
		}
		if mat.Mode() != m {
			t.Errorf("ForMode(%v).Mode() = %v", m, mat.Mode())
		}
		col := mat.Shade(s, env)
		if col.X < 0 || col.Y < 0 || col.Z < 0 {
			t.Errorf("%v shaded negative color %v", m, col)
		}
	}
	if _, err := ForMode(Mode(99), 0); err == nil {
		t.Error("ForMode(99) succeeded, want error")
	}
}

func TestModeString(t *testing.T) {
	if got := ModeGroundProcedural.String(); got != "ground-procedural" {
		t.Errorf("String() = %q", got)
	}
	if got := Mode(42).String(); got != "mode(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestGroundTexturedFallsBack(t *testing.T) {
	env := noonEnv()
	s := surfaceAt(math.Vec3{X: 5, Z: -7})
	if a, b := (GroundTextured{}).Shade(s, env), (GroundProcedural{}).Shade(s, env); a != b {
		t.Errorf("untextured ground = %v, want procedural %v", a, b)
	}

	env.Ground = terrain.New(texture.Solid{X: 0.5, Y: 0.5, Z: 0.5}, 0)
	want := env.Ground.ShadeLit(s.Position.XZ(), env.Sun, env.Fire)
	if got := (GroundTextured{}).Shade(s, env); got != want {
		t.Errorf("textured ground = %v, want %v", got, want)
	}
}

func TestFireUnlitAndEmbersWhenOff(t *testing.T) {
	env := noonEnv()
	s := surfaceAt(math.Vec3{Y: 0.3})
	s.Local = math.Vec3{Y: -0.3}
	off := (Fire{}).Shade(s, env)
	if off.MaxComponent() > 0.2 {
		t.Errorf("fire off = %v, want dim embers", off)
	}

	f := lighting.NewFire(lighting.DefaultFireConfig())
	f.SetEnabled(true)
	env.Fire = f.Update(0.5)
	if on := (Fire{}).Shade(s, env); on.MaxComponent() <= off.MaxComponent() {
		t.Errorf("fire on %v not brighter than off %v", on, off)
	}
}

func TestMaskTileVariantsDiffer(t *testing.T) {
	a := MaskTile{Variant: 0}.Palette()
	b := MaskTile{Variant: 1}.Palette()
	if a[0] == b[0] {
		t.Error("variants share a palette")
	}
	neg := MaskTile{Variant: -1}.Palette()
	last := MaskTile{Variant: 2}.Palette()
	if neg[0] != last[0] {
		t.Error("negative variant does not wrap")
	}
}

func TestSkyMaterialMatchesSky(t *testing.T) {
	env := noonEnv()
	s := surfaceAt(math.Vec3{})
	s.ViewDir = math.Vec3{X: 0.3, Y: 0.6, Z: 0.74}.Normalize()
	want := env.Sky.Shade(s.ViewDir, env.Sun, env.Elapsed)
	if got := (Sky{}).Shade(s, env); got != want {
		t.Errorf("Sky.Shade = %v, want %v", got, want)
	}
}
