// Package audio plays the campfire ambience.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playback is requested before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Ambience loops a crackle sound while the campfire burns.
type Ambience struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate

	source beep.StreamSeekCloser // nil when the crackle is synthesized
	ctrl   *beep.Ctrl
	volume *effects.Volume

	level float64 // 0-1
	fire  bool
}

// NewAmbience creates a silent ambience at the given volume (0-1).
func NewAmbience(volume float64) *Ambience {
	return &Ambience{level: clamp(volume, 0, 1)}
}

// Init opens the speaker and prepares the loop. wavData is a WAV file; when
// empty a synthesized crackle is used instead.
func (a *Ambience) Init(wavData []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}

	a.sampleRate = DefaultSampleRate
	var stream beep.Streamer
	if len(wavData) > 0 {
		src, format, err := wav.Decode(io.NopCloser(bytes.NewReader(wavData)))
		if err != nil {
			return fmt.Errorf("decode wav: %w", err)
		}
		a.source = src
		stream = &loopStreamer{source: src}
		if format.SampleRate != a.sampleRate {
			stream = beep.Resample(4, format.SampleRate, a.sampleRate, stream)
		}
	} else {
		stream = newCrackle(a.sampleRate, 1)
	}

	if err := speaker.Init(a.sampleRate, a.sampleRate.N(time.Second/30)); err != nil {
		a.closeSource()
		return fmt.Errorf("init speaker: %w", err)
	}

	a.ctrl = &beep.Ctrl{Streamer: stream, Paused: !a.fire}
	a.volume = &effects.Volume{Streamer: a.ctrl, Base: 2}
	a.applyVolume()
	speaker.Play(a.volume)

	a.initialized = true
	return nil
}

// Close stops playback and releases the source.
func (a *Ambience) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		speaker.Clear()
	}
	a.closeSource()
	a.ctrl = nil
	a.volume = nil
	a.initialized = false
}

func (a *Ambience) closeSource() {
	if a.source != nil {
		_ = a.source.Close()
		a.source = nil
	}
}

// IsInitialized returns whether the speaker is open.
func (a *Ambience) IsInitialized() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initialized
}

// SetFire starts or pauses the crackle. It may be called before Init; the
// state is applied once playback starts.
func (a *Ambience) SetFire(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.fire = on
	if a.ctrl == nil {
		return
	}
	speaker.Lock()
	a.ctrl.Paused = !on
	speaker.Unlock()
}

// FireAudible reports whether the crackle is currently playing.
func (a *Ambience) FireAudible() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initialized && a.fire && a.level > 0
}

// SetVolume sets the volume (0.0 to 1.0).
func (a *Ambience) SetVolume(vol float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.level = clamp(vol, 0, 1)
	if a.volume != nil {
		speaker.Lock()
		a.applyVolume()
		speaker.Unlock()
	}
}

// Volume returns the volume.
func (a *Ambience) Volume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.level
}

func (a *Ambience) applyVolume() {
	if a.volume == nil {
		return
	}
	a.volume.Silent = a.level <= 0
	a.volume.Volume = volumeToDb(a.level)
}

// volumeToDb converts a 0-1 volume to the exponent used by effects.Volume
// with base 2: vol=1 -> 0, vol=0.5 -> -1.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // effectively silent
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// loopStreamer rewinds its source whenever it drains. It stops for good once
// the source reports an error.
type loopStreamer struct {
	source beep.StreamSeeker
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.source.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			if l.source.Err() != nil {
				return filled, false
			}
			if l.source.Len() == 0 {
				return filled, filled > 0
			}
			if err := l.source.Seek(0); err != nil {
				return filled, false
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
