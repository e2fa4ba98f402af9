package setup

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tianguis/internal/config"
	"github.com/Faultbox/tianguis/internal/engine/camera"
	"github.com/Faultbox/tianguis/pkg/math"
)

func TestFireConfig(t *testing.T) {
	c := config.Default().Fire
	c.Enabled = true
	got := FireConfig(c)
	if !got.Enabled || got.Intensity != 2.5 {
		t.Errorf("FireConfig = %+v", got)
	}
	if got.Position != (math.Vec3{Y: 0.3}) {
		t.Errorf("Position = %v, want (0,0.3,0)", got.Position)
	}
	if got.Falloff.Linear != 0.05 || got.Falloff.Quadratic != 0.015 {
		t.Errorf("Falloff = %+v", got.Falloff)
	}
}

func TestSkyParams(t *testing.T) {
	p := SkyParams(config.Default().Sky)
	if p.Mountains.Textured || p.Mountains.Peak != 0.18 {
		t.Errorf("default mountains = %+v", p.Mountains)
	}

	p = SkyParams(config.SkyConfig{MountainTextured: true, CloudSpeed: 0.1})
	if !p.Mountains.Textured || p.Mountains.Peak != tallPeak {
		t.Errorf("textured mountains = %+v, want tall range", p.Mountains)
	}
	if p.CloudSpeed != 0.1 {
		t.Errorf("CloudSpeed = %v, want 0.1", p.CloudSpeed)
	}
}

func TestLoadGroundFallsBack(t *testing.T) {
	if tex := LoadGround(""); tex != nil {
		t.Error("empty path returned a texture")
	}
	if tex := LoadGround(filepath.Join(t.TempDir(), "missing.png")); tex != nil {
		t.Error("missing file returned a texture")
	}
}

func TestLoadGround(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirt.png")
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, color.RGBA{128, 96, 64, 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if tex := LoadGround(path); tex == nil {
		t.Fatal("LoadGround returned nil for a valid PNG")
	}
}

func TestApplyCamera(t *testing.T) {
	cam := camera.NewFlyCamera()
	c := config.Default().Camera
	c.Yaw = 90
	ApplyCamera(cam, c)

	if !cam.Position.ApproxEqual(mgl32.Vec3{0, 1.6, 6}) {
		t.Errorf("Position = %v", cam.Position)
	}
	// Yaw 90 degrees looks down +X.
	if f := cam.Forward(); f.X() < 0.98 {
		t.Errorf("Forward = %v, want about +X", f)
	}
}

func TestNewScene(t *testing.T) {
	cfg := config.Default()
	cfg.Fire.Enabled = true
	s := NewScene(cfg)
	if len(s.Draws()) == 0 {
		t.Error("scene has no draws")
	}
	if !s.Fire.Enabled() {
		t.Error("fire not enabled from config")
	}
	if s.Ground.Textured() {
		t.Error("ground textured without a texture path")
	}
}
