package effects

import (
	"fmt"
	"math"

	"github.com/lossius/cookdsp/dsp/core"
	"github.com/lossius/cookdsp/dsp/delay"
	"github.com/lossius/cookdsp/dsp/lfo"
	"github.com/lossius/cookdsp/dsp/window"
)

const (
	minHarmonizerTranspose = -48.0
	maxHarmonizerTranspose = 48.0
	minHarmonizerFeedback  = -1.0
	maxHarmonizerFeedback  = 1.0
	minHarmonizerWindow    = 0.001
	maxHarmonizerWindow    = 1.0

	// The two taps are weighted from a Hann table normalized to ~-3 dB,
	// so the half-period-offset pair sums close to unity power.
	harmonizerTablePeak = 0.707
	harmonizerTableSize = 8192
)

// Harmonizer is a delay-line pitch shifter. A phasor sweeps two read
// taps half a period apart across a one-second delay line; each tap is
// weighted by a Hann window so the taps crossfade as they wrap,
// masking the delay-read discontinuity. The ramp rate is derived from
// the transposition ratio, which makes the moving taps resample the
// line at the pitch-shifted rate.
type Harmonizer struct {
	sampleRate float64

	transpose  float64 // semitones
	feedback   float64
	winSeconds float64

	line  *delay.Line
	ramp  *lfo.Phasor
	table *window.Table
}

// NewHarmonizer creates a pitch-shifting harmonizer. transpose is
// clamped to [-48,48] semitones, feedback to [-1,1] and winSeconds to
// [0.001,1] s. The delay line holds one second of audio and is never
// reallocated.
func NewHarmonizer(sampleRate, transpose, feedback, winSeconds float64) (*Harmonizer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("harmonizer sample rate must be > 0 and finite: %f", sampleRate)
	}

	line, err := delay.New(int(math.Ceil(sampleRate)) + 4)
	if err != nil {
		return nil, fmt.Errorf("harmonizer delay line: %w", err)
	}

	ramp, err := lfo.NewPhasor(sampleRate, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("harmonizer ramp: %w", err)
	}

	table, err := window.NewTable(harmonizerTableSize)
	if err != nil {
		return nil, fmt.Errorf("harmonizer window table: %w", err)
	}

	table.Fill(window.TypeHann)
	table.Normalize(harmonizerTablePeak)

	h := &Harmonizer{
		sampleRate: sampleRate,
		line:       line,
		ramp:       ramp,
		table:      table,
	}
	h.transpose = core.Clamp(transpose, minHarmonizerTranspose, maxHarmonizerTranspose)
	h.feedback = core.Clamp(feedback, minHarmonizerFeedback, maxHarmonizerFeedback)
	h.winSeconds = core.Clamp(winSeconds, minHarmonizerWindow, maxHarmonizerWindow)
	h.updateRate()

	return h, nil
}

// SetTranspose sets the pitch shift in semitones, clamped to [-48,48].
func (h *Harmonizer) SetTranspose(semitones float64) {
	semitones = core.Clamp(semitones, minHarmonizerTranspose, maxHarmonizerTranspose)
	if semitones == h.transpose {
		return
	}

	h.transpose = semitones
	h.updateRate()
}

// SetFeedback sets the regeneration amount, clamped to [-1,1].
func (h *Harmonizer) SetFeedback(feedback float64) {
	h.feedback = core.Clamp(feedback, minHarmonizerFeedback, maxHarmonizerFeedback)
}

// SetWindow sets the grain window length in seconds, clamped to
// [0.001,1]. The running phase is kept, so a change can glide briefly.
func (h *Harmonizer) SetWindow(seconds float64) {
	seconds = core.Clamp(seconds, minHarmonizerWindow, maxHarmonizerWindow)
	if seconds == h.winSeconds {
		return
	}

	h.winSeconds = seconds
	h.updateRate()
}

// Transpose returns the pitch shift in semitones.
func (h *Harmonizer) Transpose() float64 { return h.transpose }

// Feedback returns the regeneration amount.
func (h *Harmonizer) Feedback() float64 { return h.feedback }

// Window returns the grain window length in seconds.
func (h *Harmonizer) Window() float64 { return h.winSeconds }

// SampleRate returns the sample rate in Hz.
func (h *Harmonizer) SampleRate() float64 { return h.sampleRate }

// Reset clears the delay history and rewinds the tap phase.
func (h *Harmonizer) Reset() {
	h.line.Reset()
	h.ramp.Reset()
}

func (h *Harmonizer) updateRate() {
	ratio := math.Exp2(h.transpose / 12)
	h.ramp.SetFreq(-(ratio - 1) / h.winSeconds)
}

// ProcessSample shifts one sample. The returned sample is the sum of
// the two window-weighted taps; the delay line receives the input plus
// the pitch-shifted output scaled by feedback.
func (h *Harmonizer) ProcessSample(input float64) float64 {
	phase1 := h.ramp.Tick()

	phase2 := phase1 + 0.5
	if phase2 >= 1 {
		phase2--
	}

	winSamples := h.winSeconds * h.sampleRate
	tap1 := h.line.ReadFractional(phase1*winSamples) * h.table.ReadPhase(phase1)
	tap2 := h.line.ReadFractional(phase2*winSamples) * h.table.ReadPhase(phase2)

	out := tap1 + tap2
	h.line.Write(input + out*h.feedback)

	return out
}

// ProcessInPlace applies pitch shifting to buf in place.
func (h *Harmonizer) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = h.ProcessSample(buf[i])
	}
}
