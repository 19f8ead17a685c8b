package effects

import (
	"fmt"
	"math"

	"github.com/lossius/cookdsp/dsp/core"
	"github.com/lossius/cookdsp/dsp/filter/biquad"
)

const (
	minVocoderBaseFreq = 10.0
	maxVocoderBaseFreq = 1000.0
	minVocoderSpread   = 0.25
	maxVocoderSpread   = 4.0
	minVocoderQ        = 0.1
	maxVocoderQ        = 200.0
	minVocoderSlope    = 0.0
	maxVocoderSlope    = 1.0
	minVocoderStages   = 4
	maxVocoderStages   = 64

	// Band center frequencies are kept inside [10, 0.49*sampleRate] Hz
	// regardless of how base frequency and spread combine.
	minBandFreq = 10.0
)

// vocoderBand is one analysis/synthesis channel. Both sections run the
// same resonant-bandpass coefficients; the analysis side filters the
// modulator and feeds the envelope follower, the synthesis side filters
// the carrier.
type vocoderBand struct {
	analysis  biquad.Section
	synthesis biquad.Section
	envelope  float64
}

// Vocoder applies the spectral envelope of a modulator signal to a
// carrier signal through a bank of resonant bandpass channels. Band
// center frequencies follow baseFreq*(i+1)^spread, so spread 1 gives a
// harmonic series and larger values stretch the bands apart. The band
// count is fixed for the lifetime of the instance.
type Vocoder struct {
	sampleRate float64

	baseFreq float64
	spread   float64
	q        float64
	slope    float64

	bands       []vocoderBand
	followCoeff float64 // derived from slope
}

// NewVocoder creates a vocoder with stages bands. stages is clamped to
// [4,64] before the per-band state is allocated and cannot change
// afterwards. baseFreq is clamped to [10,1000] Hz, spread to [0.25,4],
// q to [0.1,200] and slope to [0,1].
func NewVocoder(sampleRate, baseFreq, spread, q, slope float64, stages int) (*Vocoder, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("vocoder sample rate must be > 0 and finite: %f", sampleRate)
	}

	if stages < minVocoderStages {
		stages = minVocoderStages
	}

	if stages > maxVocoderStages {
		stages = maxVocoderStages
	}

	v := &Vocoder{
		sampleRate: sampleRate,
		bands:      make([]vocoderBand, stages),
	}
	v.baseFreq = core.Clamp(baseFreq, minVocoderBaseFreq, maxVocoderBaseFreq)
	v.spread = core.Clamp(spread, minVocoderSpread, maxVocoderSpread)
	v.q = core.Clamp(q, minVocoderQ, maxVocoderQ)
	v.slope = core.Clamp(slope, minVocoderSlope, maxVocoderSlope)
	v.computeBandCoefficients()
	v.computeFollowCoeff()

	return v, nil
}

// SetBaseFreq sets the first band's nominal center frequency in Hz,
// clamped to [10,1000]. All band coefficients are recomputed only when
// the clamped value actually changes; filter state is preserved.
func (v *Vocoder) SetBaseFreq(freq float64) {
	freq = core.Clamp(freq, minVocoderBaseFreq, maxVocoderBaseFreq)
	if freq == v.baseFreq {
		return
	}

	v.baseFreq = freq
	v.computeBandCoefficients()
}

// SetSpread sets the band spacing exponent, clamped to [0.25,4].
func (v *Vocoder) SetSpread(spread float64) {
	spread = core.Clamp(spread, minVocoderSpread, maxVocoderSpread)
	if spread == v.spread {
		return
	}

	v.spread = spread
	v.computeBandCoefficients()
}

// SetQ sets the per-band quality factor, clamped to [0.1,200].
func (v *Vocoder) SetQ(q float64) {
	q = core.Clamp(q, minVocoderQ, maxVocoderQ)
	if q == v.q {
		return
	}

	v.q = q
	v.computeBandCoefficients()
}

// SetSlope sets the envelope-follower response in [0,1]. Cheap: only
// the follower time constant is recomputed, never the filter bank.
func (v *Vocoder) SetSlope(slope float64) {
	slope = core.Clamp(slope, minVocoderSlope, maxVocoderSlope)
	if slope == v.slope {
		return
	}

	v.slope = slope
	v.computeFollowCoeff()
}

// BaseFreq returns the first band's nominal center frequency in Hz.
func (v *Vocoder) BaseFreq() float64 { return v.baseFreq }

// Spread returns the band spacing exponent.
func (v *Vocoder) Spread() float64 { return v.spread }

// Q returns the per-band quality factor.
func (v *Vocoder) Q() float64 { return v.q }

// Slope returns the envelope-follower response in [0,1].
func (v *Vocoder) Slope() float64 { return v.slope }

// Stages returns the fixed band count.
func (v *Vocoder) Stages() int { return len(v.bands) }

// SampleRate returns the sample rate in Hz.
func (v *Vocoder) SampleRate() float64 { return v.sampleRate }

// BandFreq returns band i's effective center frequency in Hz after
// clamping, or 0 for an out-of-range index.
func (v *Vocoder) BandFreq(i int) float64 {
	if i < 0 || i >= len(v.bands) {
		return 0
	}

	return v.bandCenter(i)
}

func (v *Vocoder) bandCenter(i int) float64 {
	f := v.baseFreq * math.Pow(float64(i+1), v.spread)
	return core.Clamp(f, minBandFreq, maxCutoffRatio*v.sampleRate)
}

// computeBandCoefficients rebuilds the resonator coefficients for every
// band from baseFreq, spread and q. Filter histories are untouched.
func (v *Vocoder) computeBandCoefficients() {
	sr := v.sampleRate

	for i := range v.bands {
		f := v.bandCenter(i)
		bw := f / v.q

		b2 := math.Exp(-2 * math.Pi * bw / sr)
		b1 := (-4 * b2 / (1 + b2)) * math.Cos(2*math.Pi*f/sr)
		a1 := 1 - math.Sqrt(b2)

		c := biquad.Coefficients{B0: a1, B2: -a1, A1: b1, A2: b2}
		v.bands[i].analysis.SetCoefficients(c)
		v.bands[i].synthesis.SetCoefficients(c)
	}
}

func (v *Vocoder) computeFollowCoeff() {
	// Cubic mapping: slope 0 -> 0.5 Hz (slow, smooth envelopes),
	// slope 1 -> 100 Hz (fast, articulate envelopes).
	followFreq := v.slope*v.slope*v.slope*99.5 + 0.5
	v.followCoeff = math.Exp(-2 * math.Pi * followFreq / v.sampleRate)
}

// Reset clears all band filter and envelope state.
func (v *Vocoder) Reset() {
	for i := range v.bands {
		v.bands[i].analysis.Reset()
		v.bands[i].synthesis.Reset()
		v.bands[i].envelope = 0
	}
}

// ProcessSample processes one modulator/carrier pair and returns the
// vocoded output: the per-band sum of the carrier channel scaled by the
// modulator channel's smoothed envelope, with q as loudness makeup.
func (v *Vocoder) ProcessSample(modulator, carrier float64) float64 {
	out := 0.0
	c := v.followCoeff

	for i := range v.bands {
		b := &v.bands[i]

		env := math.Abs(b.analysis.ProcessSample(modulator))
		b.envelope = core.FlushDenormals(env + (b.envelope-env)*c)

		out += b.synthesis.ProcessSample(carrier) * b.envelope
	}

	return out * v.q
}

// ProcessBlock processes modulator and carrier buffers, writing the
// result to output. All three slices must have the same length. Output
// may alias modulator or carrier.
func (v *Vocoder) ProcessBlock(modulator, carrier, output []float64) error {
	if len(modulator) != len(carrier) || len(modulator) != len(output) {
		return fmt.Errorf("vocoder buffer length mismatch: modulator=%d carrier=%d output=%d",
			len(modulator), len(carrier), len(output))
	}

	for i := range modulator {
		output[i] = v.ProcessSample(modulator[i], carrier[i])
	}

	return nil
}
