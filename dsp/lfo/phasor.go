package lfo

import (
	"fmt"
	"math"
)

// Phasor is a free-running ramp generator producing a sawtooth phase in
// [0,1). Negative frequencies run the ramp backwards; a frequency change
// only alters the slope from the next sample on, the phase itself is
// never reset.
type Phasor struct {
	sampleRate float64
	freq       float64
	phase      float64
}

// NewPhasor creates a phasor at the given frequency in Hz, starting at
// initialPhase (wrapped into [0,1)).
func NewPhasor(sampleRate, freq, initialPhase float64) (*Phasor, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("phasor sample rate must be > 0 and finite: %f", sampleRate)
	}

	p := &Phasor{
		sampleRate: sampleRate,
		phase:      wrapPhase(initialPhase),
	}
	p.SetFreq(freq)

	return p, nil
}

// SetFreq sets the ramp frequency in cycles per second. Non-finite
// values are ignored.
func (p *Phasor) SetFreq(freq float64) {
	if math.IsNaN(freq) || math.IsInf(freq, 0) {
		return
	}

	p.freq = freq
}

// Freq returns the current frequency in Hz.
func (p *Phasor) Freq() float64 { return p.freq }

// Phase returns the current phase without advancing.
func (p *Phasor) Phase() float64 { return p.phase }

// Tick returns the current phase and advances by one sample.
func (p *Phasor) Tick() float64 {
	out := p.phase
	p.phase = wrapPhase(p.phase + p.freq/p.sampleRate)

	return out
}

// Reset rewinds the phase to zero.
func (p *Phasor) Reset() {
	p.phase = 0
}

func wrapPhase(phase float64) float64 {
	phase -= math.Floor(phase)
	if phase >= 1 {
		// Guard against floating point edge where phase-floor(phase) == 1.
		phase = 0
	}

	return phase
}
