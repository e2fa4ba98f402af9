package terrain

import (
	"testing"

	"github.com/Faultbox/tianguis/internal/engine/lighting"
	"github.com/Faultbox/tianguis/internal/engine/texture"
	"github.com/Faultbox/tianguis/pkg/math"
)

func near(a, b math.Vec3, eps float32) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestShadeGroundLambertian(t *testing.T) {
	tex := texture.Solid{X: 0.5, Y: 0.4, Z: 0.3}
	// Noon-ish: a quarter of the way through the cycle puts the sun highest.
	sun := lighting.SunAt(15, 60)

	xz := math.Vec2{X: 3.7, Y: -12.1}
	g := New(tex, DefaultTexScale)
	albedo := g.Albedo(xz)
	want := albedo.Scale(sun.Ambient() + sun.Lambert(Up)*sun.SunMix())

	if got := ShadeGround(xz, sun, tex, DefaultTexScale); !near(got, want, 1e-5) {
		t.Errorf("ShadeGround = %v, want %v", got, want)
	}

	off := lighting.FireState{Enabled: false, Color: math.Vec3{X: 5, Y: 5, Z: 5}}
	if got := g.ShadeLit(xz, sun, off); !near(got, want, 1e-5) {
		t.Errorf("ShadeLit with fire off = %v, want %v", got, want)
	}
}

func TestSolidTextureSurvivesAntiTiling(t *testing.T) {
	tex := texture.Solid{X: 0.5, Y: 0.5, Z: 0.5}
	for _, xz := range []math.Vec2{{}, {X: 100, Y: -40}, {X: -3.3, Y: 7.9}} {
		got := AntiTiledAlbedo(xz, tex, DefaultTexScale)
		// Only micro-contrast in [0.96, 1.06] may modulate a flat texture.
		if got.X < 0.5*0.96-1e-4 || got.X > 0.5*1.06+1e-4 {
			t.Errorf("AntiTiledAlbedo(%v) = %v, want within micro-contrast range", xz, got)
		}
	}
}

func TestFireBrightensGround(t *testing.T) {
	g := New(nil, 0)
	sun := lighting.SunAt(45, 60)
	xz := math.Vec2{X: 0.5, Y: 0.5}

	fire := lighting.NewFire(lighting.DefaultFireConfig())
	fire.SetEnabled(true)
	state := fire.Update(1.0)

	base := g.Shade(xz, sun)
	lit := g.ShadeLit(xz, sun, state)
	delta := lit.Sub(base)
	if delta.X <= 0 || delta.Y <= 0 || delta.Z <= 0 {
		t.Fatalf("fire delta = %v, want positive", delta)
	}
	if delta.MaxComponent() > 10 {
		t.Errorf("fire delta = %v, want bounded", delta)
	}
}

func TestNilTextureFallsBack(t *testing.T) {
	var tex *texture.Texture2D
	g := New(tex, 0)
	if g.Textured() {
		t.Fatal("typed nil texture reported as textured")
	}
	if g.TexScale != DefaultTexScale {
		t.Errorf("TexScale = %v, want %v", g.TexScale, DefaultTexScale)
	}
	xz := math.Vec2{X: 2, Y: 9}
	if got, want := g.Albedo(xz), ProceduralAlbedo(xz); got != want {
		t.Errorf("Albedo = %v, want procedural %v", got, want)
	}
}

func TestAlbedoDeterministic(t *testing.T) {
	tex := texture.Solid{X: 0.2, Y: 0.6, Z: 0.9}
	xz := math.Vec2{X: -512.25, Y: 733.5}
	a := AntiTiledAlbedo(xz, tex, DefaultTexScale)
	b := AntiTiledAlbedo(xz, tex, DefaultTexScale)
	if a != b {
		t.Errorf("AntiTiledAlbedo not deterministic: %v vs %v", a, b)
	}
}
