package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -0.01, 0.01},   // full volume is unity gain
		{0.5, -1.01, -0.99},  // half volume halves the amplitude
		{0.25, -2.01, -1.99}, // quarter volume
		{0.0, -200, -90},     // zero volume is very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestAmbienceBeforeInit(t *testing.T) {
	a := NewAmbience(2)
	if a.Volume() != 1 {
		t.Errorf("volume = %f, want 1 (clamped)", a.Volume())
	}
	a.SetFire(true)
	if a.FireAudible() {
		t.Error("fire audible before Init")
	}
	if a.IsInitialized() {
		t.Error("initialized before Init")
	}
	a.SetVolume(-1)
	if a.Volume() != 0 {
		t.Errorf("volume = %f, want 0 (clamped)", a.Volume())
	}
	a.Close()
}

func TestCrackleBoundedAndDeterministic(t *testing.T) {
	a := newCrackle(DefaultSampleRate, 7)
	b := newCrackle(DefaultSampleRate, 7)
	bufA := make([][2]float64, 4096)
	bufB := make([][2]float64, 4096)

	n, ok := a.Stream(bufA)
	if n != len(bufA) || !ok {
		t.Fatalf("Stream = %d, %v; want %d, true", n, ok, len(bufA))
	}
	b.Stream(bufB)

	var energy float64
	for i, s := range bufA {
		if s != bufB[i] {
			t.Fatalf("sample %d differs between equal seeds", i)
		}
		if math.Abs(s[0]) > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v, want mono within [-1,1]", i, s)
		}
		energy += s[0] * s[0]
	}
	if energy == 0 {
		t.Error("crackle is silent")
	}
}

func TestCrackleSeedsDiffer(t *testing.T) {
	a := newCrackle(DefaultSampleRate, 1)
	b := newCrackle(DefaultSampleRate, 2)
	bufA := make([][2]float64, 512)
	bufB := make([][2]float64, 512)
	a.Stream(bufA)
	b.Stream(bufB)

	for i := range bufA {
		if bufA[i] != bufB[i] {
			return
		}
	}
	t.Error("different seeds produced identical crackle")
}

func TestLoopStreamerRewinds(t *testing.T) {
	src := generators.Silence(10)
	buf := beep.NewBuffer(beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)

	l := &loopStreamer{source: buf.Streamer(0, buf.Len())}
	samples := make([][2]float64, 35)
	n, ok := l.Stream(samples)
	if n != 35 || !ok {
		t.Errorf("Stream = %d, %v; want 35, true", n, ok)
	}
}

// failingSource streams a few samples, then fails while still reporting a
// non-zero length.
type failingSource struct {
	left int
	err  error
	pos  int
}

func (f *failingSource) Stream(samples [][2]float64) (int, bool) {
	if f.left == 0 {
		f.err = errors.New("decode failed")
		return 0, false
	}
	n := min(len(samples), f.left)
	f.left -= n
	f.pos += n
	return n, true
}

func (f *failingSource) Err() error    { return f.err }
func (f *failingSource) Len() int      { return 100 }
func (f *failingSource) Position() int { return f.pos }

func (f *failingSource) Seek(p int) error {
	f.pos = p
	return nil
}

func TestLoopStreamerStopsOnSourceError(t *testing.T) {
	src := &failingSource{left: 4}
	l := &loopStreamer{source: src}

	samples := make([][2]float64, 16)
	n, ok := l.Stream(samples)
	if ok || n != 4 {
		t.Errorf("Stream = %d, %v; want 4, false", n, ok)
	}
	if l.Err() == nil {
		t.Error("Err() = nil, want the source error")
	}
}
