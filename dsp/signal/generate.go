// Package signal generates deterministic test and demo signals.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// Sine generates a sine wave at freqHz.
func Sine(sampleRate, freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", sampleRate)
	}

	out := make([]float64, samples)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// WhiteNoise generates seeded white noise in [-amplitude, amplitude].
func WhiteNoise(amplitude float64, samples int, seed int64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out, nil
}

// Impulse generates a unit impulse at sample offset.
func Impulse(samples, offset int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if offset < 0 || offset >= samples {
		return nil, fmt.Errorf("impulse offset out of range: %d", offset)
	}

	out := make([]float64, samples)
	out[offset] = 1

	return out, nil
}

// RMS returns the root-mean-square level of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(x)))
}

// Peak returns the largest absolute sample value in x.
func Peak(x []float64) float64 {
	peak := 0.0

	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

// Normalize scales x in place so its peak equals target. A silent
// buffer is left untouched.
func Normalize(x []float64, target float64) {
	peak := Peak(x)
	if peak == 0 {
		return
	}

	vecmath.ScaleBlock(x, x, target/peak)
}
