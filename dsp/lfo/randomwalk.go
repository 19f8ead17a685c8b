package lfo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lossius/cookdsp/dsp/core"
	"github.com/lossius/cookdsp/dsp/interp"
)

const minRandomWalkFreq = 0.001

// RandomWalk is a bounded random-walk generator. New targets inside
// [min, max] are drawn at the update rate and the output glides between
// them with cubic interpolation, so the value never jumps and never
// leaves its bounds. The sequence is deterministic for a given seed.
type RandomWalk struct {
	min, max float64
	rng      *rand.Rand

	targets  [4]float64
	step     float64
	t        float64
	count, n int
}

// NewRandomWalk creates a bounded random walk updating toward a new
// target freq times per second. min and max are swapped when reversed.
func NewRandomWalk(sampleRate, min, max, freq float64, seed int64) (*RandomWalk, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("random walk sample rate must be > 0 and finite: %f", sampleRate)
	}

	if min > max {
		min, max = max, min
	}

	freq = core.Clamp(freq, minRandomWalkFreq, 0.5*sampleRate)

	n := int(sampleRate / freq)
	if n < 1 {
		n = 1
	}

	r := &RandomWalk{
		min:  min,
		max:  max,
		rng:  rand.New(rand.NewSource(seed)),
		step: freq / sampleRate,
		n:    n,
	}

	mid := 0.5 * (min + max)
	for i := range r.targets {
		r.targets[i] = mid
	}

	return r, nil
}

// Min returns the lower bound.
func (r *RandomWalk) Min() float64 { return r.min }

// Max returns the upper bound.
func (r *RandomWalk) Max() float64 { return r.max }

// Tick advances one sample and returns the current value in [min, max].
func (r *RandomWalk) Tick() float64 {
	if r.count <= 0 {
		r.count = r.n
		r.t = 0
		r.targets[0] = r.targets[1]
		r.targets[1] = r.targets[2]
		r.targets[2] = r.targets[3]
		r.targets[3] = r.min + r.rng.Float64()*(r.max-r.min)
	}

	r.count--
	out := interp.Hermite4(r.t, r.targets[0], r.targets[1], r.targets[2], r.targets[3])
	r.t += r.step

	// Cubic interpolation can overshoot between extreme targets.
	return core.Clamp(out, r.min, r.max)
}
