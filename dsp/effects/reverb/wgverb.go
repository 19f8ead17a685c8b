// Package reverb implements an 8-line feedback-delay-network reverb with
// a scalar scattering junction, modeled on a set of waveguides of equal
// characteristic impedance meeting at a lossless node.
package reverb

import (
	"fmt"
	"math"

	"github.com/lossius/cookdsp/dsp/core"
	"github.com/lossius/cookdsp/dsp/delay"
	"github.com/lossius/cookdsp/dsp/lfo"
)

const (
	numLines = 8

	// 2/N reflection coefficient for 8 equal-impedance waveguides
	// meeting at a lossless junction.
	junctionCoeff = 2.0 / numLines

	refSampleRate = 44100.0

	minReverbFeed   = 0.0
	maxReverbFeed   = 1.0
	minReverbCutoff = 20.0
	minReverbBal    = 0.0
	maxReverbBal    = 1.0
)

// Per-line tuning: mutually prime base lengths (samples at 44.1 kHz) so
// no two lines share a comb period, plus an independent read-position
// jitter (amplitude in seconds, update rate in Hz) that decorrelates the
// echo patterns and suppresses metallic ringing.
var lineParams = [numLines]struct {
	length     float64
	jitterAmp  float64
	jitterFreq float64
}{
	{1537, 0.00031, 1.10},
	{1753, 0.00044, 0.57},
	{1999, 0.00026, 1.75},
	{2251, 0.00037, 0.91},
	{2473, 0.00029, 1.32},
	{2689, 0.00042, 0.66},
	{2851, 0.00034, 1.51},
	{3067, 0.00025, 0.78},
}

// Option configures optional WGVerb behavior at construction time.
type Option func(*WGVerb)

// WithLegacyLineCoupling reproduces a quirk of the original network
// update, where the second line discards its own damped tap and reuses
// the first line's feedback value for its state update and write-back.
// By default every line runs its own feed and damping stage.
func WithLegacyLineCoupling() Option {
	return func(r *WGVerb) {
		r.legacyCoupling = true
	}
}

// WGVerb is a mono 8-line scattering-junction reverb. Each line is read
// at a jittered fractional position, scaled by feed and damped by a
// one-pole lowpass; the junction redistributes the previous sample's
// summed line outputs back into every line, minus each line's own
// contribution.
type WGVerb struct {
	sampleRate float64

	feed   float64
	cutoff float64
	bal    float64

	dampCoeff float64 // derived from cutoff

	lines      [numLines]*delay.Line
	jitters    [numLines]*lfo.RandomWalk
	baseDelays [numLines]float64 // samples
	damp       [numLines]float64

	// Sum of the previous sample's line outputs. Feeding the junction
	// with the prior sum keeps the network update order-independent at
	// the cost of a one-sample control-loop delay.
	lastSum float64

	legacyCoupling bool
}

// NewWGVerb creates the reverb. feed is clamped to [0,1], cutoff to
// [20, 0.5*sampleRate] Hz and bal to [0,1]. Line buffers are sized from
// the sample rate at creation and never reallocated.
func NewWGVerb(sampleRate, feed, cutoff, bal float64, opts ...Option) (*WGVerb, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("wgverb sample rate must be > 0 and finite: %f", sampleRate)
	}

	r := &WGVerb{sampleRate: sampleRate}

	scale := sampleRate / refSampleRate
	for i := range numLines {
		p := lineParams[i]
		r.baseDelays[i] = p.length * scale

		maxJitter := p.jitterAmp * sampleRate
		size := int(math.Ceil(r.baseDelays[i]+maxJitter)) + 4

		line, err := delay.New(size)
		if err != nil {
			return nil, fmt.Errorf("wgverb line %d: %w", i, err)
		}

		jitter, err := lfo.NewRandomWalk(sampleRate, -p.jitterAmp, p.jitterAmp, p.jitterFreq, int64(i)+1)
		if err != nil {
			return nil, fmt.Errorf("wgverb jitter %d: %w", i, err)
		}

		r.lines[i] = line
		r.jitters[i] = jitter
	}

	r.feed = core.Clamp(feed, minReverbFeed, maxReverbFeed)
	r.cutoff = core.Clamp(cutoff, minReverbCutoff, 0.5*sampleRate)
	r.dampCoeff = math.Exp(-2 * math.Pi * r.cutoff / sampleRate)
	r.bal = core.Clamp(bal, minReverbBal, maxReverbBal)

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r, nil
}

// SetFeed sets the feedback amount, clamped to [0,1].
func (r *WGVerb) SetFeed(feed float64) {
	r.feed = core.Clamp(feed, minReverbFeed, maxReverbFeed)
}

// SetCutoff sets the damping lowpass cutoff in Hz, clamped to
// [20, 0.5*sampleRate].
func (r *WGVerb) SetCutoff(cutoff float64) {
	cutoff = core.Clamp(cutoff, minReverbCutoff, 0.5*r.sampleRate)
	if cutoff == r.cutoff {
		return
	}

	r.cutoff = cutoff
	r.dampCoeff = math.Exp(-2 * math.Pi * cutoff / r.sampleRate)
}

// SetBal sets the dry/wet balance, clamped to [0,1]. 0 is fully dry.
func (r *WGVerb) SetBal(bal float64) {
	r.bal = core.Clamp(bal, minReverbBal, maxReverbBal)
}

// Feed returns the feedback amount.
func (r *WGVerb) Feed() float64 { return r.feed }

// Cutoff returns the damping cutoff in Hz.
func (r *WGVerb) Cutoff() float64 { return r.cutoff }

// Bal returns the dry/wet balance.
func (r *WGVerb) Bal() float64 { return r.bal }

// SampleRate returns the sample rate in Hz.
func (r *WGVerb) SampleRate() float64 { return r.sampleRate }

// LegacyLineCoupling reports whether the legacy second-line behavior is
// active.
func (r *WGVerb) LegacyLineCoupling() bool { return r.legacyCoupling }

// Reset clears all delay, damping and junction state. Jitter walks keep
// running.
func (r *WGVerb) Reset() {
	for i := range numLines {
		r.lines[i].Reset()
		r.damp[i] = 0
	}

	r.lastSum = 0
}

// ProcessSample advances the network by one sample and returns the
// dry/wet mix.
func (r *WGVerb) ProcessSample(input float64) float64 {
	junction := r.lastSum * junctionCoeff

	sum := 0.0
	prev := 0.0

	for i := range numLines {
		delaySamples := r.baseDelays[i] + r.jitters[i].Tick()*r.sampleRate
		tap := r.lines[i].ReadFractional(delaySamples)

		x := tap * r.feed
		y := core.FlushDenormals(x + (r.damp[i]-x)*r.dampCoeff)

		if r.legacyCoupling && i == 1 {
			// The tap above is still read (and the line still written)
			// but the first line's value drives this line's stage.
			y = prev
		}

		r.damp[i] = y
		r.lines[i].Write(input + junction - y)

		sum += y
		prev = y
	}

	r.lastSum = sum

	return input + (sum*junctionCoeff-input)*r.bal
}

// ProcessInPlace applies the reverb to buf in place.
func (r *WGVerb) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = r.ProcessSample(buf[i])
	}
}
