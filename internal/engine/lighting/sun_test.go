package lighting

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/tianguis/pkg/math"
)

func approx(a, b, eps float32) bool {
	return math.Abs(a-b) <= eps
}

func approxVec(a, b math.Vec3, eps float32) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}

func TestSunAtStart(t *testing.T) {
	s := SunAt(0, 60)
	if s.TimeOfDay != 0 {
		t.Errorf("TimeOfDay = %v, want 0", s.TimeOfDay)
	}
	if s.Azimuth != 0 || s.Elevation != 0 {
		t.Errorf("Azimuth/Elevation = %v/%v, want 0/0", s.Azimuth, s.Elevation)
	}
	if !approxVec(s.Direction, math.Vec3{X: 1}, 1e-6) {
		t.Errorf("Direction = %v, want (1,0,0)", s.Direction)
	}
	if s.Visibility != 0.5 {
		t.Errorf("Visibility = %v, want 0.5", s.Visibility)
	}
}

func TestSunAtQuarterCycle(t *testing.T) {
	s := SunAt(15, 60)
	if !approx(s.TimeOfDay, 0.25, 1e-6) {
		t.Errorf("TimeOfDay = %v, want 0.25", s.TimeOfDay)
	}
	if !approx(s.Azimuth, math.Pi/2, 1e-6) {
		t.Errorf("Azimuth = %v, want pi/2", s.Azimuth)
	}
	if !approx(s.Elevation, 0.8, 1e-6) {
		t.Errorf("Elevation = %v, want 0.8", s.Elevation)
	}
	want := float32(0.5 + 0.5*gomath.Sin(0.8))
	if !approx(s.Visibility, want, 1e-6) || !approx(s.Visibility, 0.8585, 1e-4) {
		t.Errorf("Visibility = %v, want %v", s.Visibility, want)
	}
	if !approx(s.Direction.Length(), 1, 1e-6) {
		t.Errorf("|Direction| = %v, want 1", s.Direction.Length())
	}
	if s.Direction.Y <= 0 {
		t.Errorf("Direction.Y = %v, want sun above horizon", s.Direction.Y)
	}
}

func TestSunAtWrapsAround(t *testing.T) {
	for _, elapsed := range []float64{0, 3.3, 15, 29.99, 44.5, 59.999} {
		a := SunAt(elapsed, 60)
		b := SunAt(elapsed+60, 60)
		if !approx(a.Azimuth, b.Azimuth, 1e-4) ||
			!approx(a.Elevation, b.Elevation, 1e-4) ||
			!approx(a.Visibility, b.Visibility, 1e-4) ||
			!approxVec(a.Direction, b.Direction, 1e-4) {
			t.Errorf("SunAt(%v) = %+v, SunAt(%v) = %+v, want equal", elapsed, a, elapsed+60, b)
		}
	}
}

func TestTimeOfDayRange(t *testing.T) {
	tests := []struct {
		elapsed, cycle, want float64
	}{
		{0, 60, 0},
		{30, 60, 0.5},
		{60, 60, 0},
		{90, 60, 0.5},
		{10, 0, 10.0 / DefaultCycleLength},  // fallback length
		{10, -5, 10.0 / DefaultCycleLength}, // fallback length
	}
	for _, tt := range tests {
		got := TimeOfDay(tt.elapsed, tt.cycle)
		if gomath.Abs(got-tt.want) > 1e-12 {
			t.Errorf("TimeOfDay(%v, %v) = %v, want %v", tt.elapsed, tt.cycle, got, tt.want)
		}
	}
}

func TestVisibilityBounded(t *testing.T) {
	for i := 0; i < 10000; i++ {
		elapsed := float64(i) * 0.137
		s := SunAt(elapsed, 60)
		if s.Visibility < 0 || s.Visibility > 1 {
			t.Fatalf("SunAt(%v).Visibility = %v, want [0,1]", elapsed, s.Visibility)
		}
		if s.TimeOfDay < 0 || s.TimeOfDay >= 1 {
			t.Fatalf("SunAt(%v).TimeOfDay = %v, want [0,1)", elapsed, s.TimeOfDay)
		}
	}
}

func TestIrradianceFullDay(t *testing.T) {
	s := SunState{Direction: math.Vec3{Y: 1}, Visibility: 1}
	up := math.Vec3{Y: 1}
	if got := s.Irradiance(up); !approx(got, 0.62+1.0, 1e-6) {
		t.Errorf("Irradiance(full day, overhead) = %v, want 1.62", got)
	}
	down := math.Vec3{Y: -1}
	if got := s.Irradiance(down); !approx(got, 0.62, 1e-6) {
		t.Errorf("Irradiance(facing away) = %v, want ambient 0.62", got)
	}
}

func TestIrradianceClampsVisibility(t *testing.T) {
	s := SunState{Direction: math.Vec3{Y: 1}, Visibility: 1.7}
	if got := s.Ambient(); !approx(got, 0.62, 1e-6) {
		t.Errorf("Ambient() with out-of-range visibility = %v, want 0.62", got)
	}
	s.Visibility = -3
	if got := s.SunMix(); !approx(got, 0.55, 1e-6) {
		t.Errorf("SunMix() with negative visibility = %v, want 0.55", got)
	}
}

func TestSunAtNonFiniteInput(t *testing.T) {
	want := SunAt(0, 60)
	for _, tt := range []struct {
		name           string
		elapsed, cycle float64
	}{
		{"+inf elapsed", gomath.Inf(1), 60},
		{"-inf elapsed", gomath.Inf(-1), 60},
		{"nan elapsed", gomath.NaN(), 60},
		{"inf cycle", 0, gomath.Inf(1)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := SunAt(tt.elapsed, tt.cycle)
			if got != want {
				t.Errorf("SunAt(%v, %v) = %+v, want %+v", tt.elapsed, tt.cycle, got, want)
			}
			if got.Visibility < 0 || got.Visibility > 1 {
				t.Errorf("Visibility = %v, want within [0,1]", got.Visibility)
			}
		})
	}
}
