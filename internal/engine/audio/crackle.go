package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep/v2"
)

// crackle synthesizes a wood fire: a low filtered rumble with sparse
// decaying pops. It never ends.
type crackle struct {
	rng     *rand.Rand
	rumble  float64 // one-pole low-passed noise
	pop     float64 // current pop amplitude
	popTone float64 // pop oscillator phase
	popRate float64 // pops per sample
	decay   float64 // per-sample pop decay
}

// newCrackle creates a crackle; equal seeds produce equal samples.
func newCrackle(sr beep.SampleRate, seed uint64) *crackle {
	return &crackle{
		rng:     rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15)),
		popRate: 9 / float64(sr),
		decay:   math.Exp(-1 / (0.004 * float64(sr))),
	}
}

// next returns a uniform value in [0,1).
func (c *crackle) next() float64 {
	return c.rng.Float64()
}

func (c *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		white := c.next()*2 - 1
		c.rumble += 0.02 * (white - c.rumble)

		if c.next() < c.popRate {
			c.pop = 0.4 + 0.6*c.next()
		}
		c.pop *= c.decay
		c.popTone += 0.9
		s := 0.5*c.rumble + c.pop*math.Sin(c.popTone)*(0.5+0.5*white)
		s = max(-1, min(1, s))
		samples[i] = [2]float64{s, s}
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }
