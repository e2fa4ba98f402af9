package lighting

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/tianguis/pkg/math"
)

func TestFireOffIsZero(t *testing.T) {
	f := NewFire(DefaultFireConfig())
	state := f.Update(12.3)
	if state.Enabled {
		t.Fatal("default fire should start OFF")
	}
	if state.Color != (math.Vec3{}) {
		t.Errorf("OFF color = %v, want zero", state.Color)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		pos := math.Vec3{X: rng.Float32()*20 - 10, Y: rng.Float32() * 3, Z: rng.Float32()*20 - 10}
		n := math.Vec3{X: rng.Float32() - 0.5, Y: rng.Float32(), Z: rng.Float32() - 0.5}.Normalize()
		albedo := math.Vec3{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32()}
		if got := FireLight(pos, n, albedo, state); got != (math.Vec3{}) {
			t.Fatalf("FireLight with fire OFF = %v, want (0,0,0)", got)
		}
	}
}

func TestFireOffIgnoresStaleColor(t *testing.T) {
	state := FireState{Enabled: false, Position: math.Vec3{Y: 1}, Color: math.Vec3{X: 1, Y: 1, Z: 1}, Falloff: DefaultFalloff()}
	got := FireLight(math.Vec3{}, math.Vec3{Y: 1}, math.Vec3{X: 1, Y: 1, Z: 1}, state)
	if got != (math.Vec3{}) {
		t.Errorf("FireLight(disabled) = %v, want zero", got)
	}
}

func TestFireToggle(t *testing.T) {
	f := NewFire(DefaultFireConfig())
	if on := f.Toggle(); !on {
		t.Fatal("Toggle() from OFF should turn ON")
	}
	state := f.Update(1.0)
	if !state.Enabled || state.Color.MaxComponent() <= 0 {
		t.Errorf("ON state = %+v, want enabled with non-zero color", state)
	}
	if on := f.Toggle(); on {
		t.Fatal("Toggle() from ON should turn OFF")
	}
	if c := f.State().Color; c != (math.Vec3{}) {
		t.Errorf("color immediately after toggling OFF = %v, want zero", c)
	}
	if c := f.Update(2.0).Color; c != (math.Vec3{}) {
		t.Errorf("OFF color after Update = %v, want zero", c)
	}
}

func TestFlickerChangesColor(t *testing.T) {
	cfg := DefaultFireConfig()
	cfg.Enabled = true
	f := NewFire(cfg)
	a := f.Update(0.10).Color
	b := f.Update(0.37).Color
	if a == b {
		t.Errorf("fire color did not flicker: %v at both times", a)
	}
	for i := 0; i < 1000; i++ {
		fl := Flicker(float64(i) * 0.01)
		if fl < 0.69 || fl > 1.01 {
			t.Fatalf("Flicker = %v, want within base +/- amplitudes", fl)
		}
	}
}

func TestAttenuationStrictlyDecreasing(t *testing.T) {
	fo := DefaultFalloff()
	if got := fo.Attenuation(0); got != 1 {
		t.Errorf("Attenuation(0) = %v, want 1", got)
	}
	prev := fo.Attenuation(0)
	for d := float32(0.05); d < 200; d += 0.05 {
		a := fo.Attenuation(d)
		if a >= prev {
			t.Fatalf("Attenuation(%v) = %v, not below Attenuation(%v) = %v", d, a, d-0.05, prev)
		}
		if a <= 0 || a > 1 {
			t.Fatalf("Attenuation(%v) = %v, want (0,1]", d, a)
		}
		prev = a
	}
}

func TestFireLightAboveSurface(t *testing.T) {
	cfg := DefaultFireConfig()
	cfg.Enabled = true
	cfg.Position = math.Vec3{X: 2, Y: 1, Z: -3}
	f := NewFire(cfg)
	state := f.Update(4.2)

	surface := math.Vec3{X: 2, Y: 0, Z: -3}
	albedo := math.Vec3{X: 0.8, Y: 0.7, Z: 0.6}
	got := FireLight(surface, math.Vec3{Y: 1}, albedo, state)

	if got.X <= 0 || got.Y <= 0 || got.Z <= 0 {
		t.Errorf("FireLight = %v, want strictly positive", got)
	}
	if got.X > state.Color.X || got.Y > state.Color.Y || got.Z > state.Color.Z {
		t.Errorf("FireLight = %v, want bounded by fire color %v", got, state.Color)
	}
	want := albedo.Mul(state.Color).Scale(DefaultFalloff().Attenuation(1))
	if !approxVec(got, want, 1e-5) {
		t.Errorf("FireLight = %v, want %v", got, want)
	}
}

func TestFireLightBackFacing(t *testing.T) {
	state := FireState{Enabled: true, Position: math.Vec3{Y: 1}, Color: math.Vec3{X: 1, Y: 1, Z: 1}, Falloff: DefaultFalloff()}
	got := FireLight(math.Vec3{}, math.Vec3{Y: -1}, math.Vec3{X: 1, Y: 1, Z: 1}, state)
	if got != (math.Vec3{}) {
		t.Errorf("FireLight(back facing) = %v, want zero", got)
	}
}
