package effects

import (
	"fmt"
	"math"

	"github.com/lossius/cookdsp/dsp/core"
)

const (
	minDistortionDrive  = 0.0
	maxDistortionDrive  = 1.0
	minDistortionCutoff = 20.0

	// Knee scale for the arctangent shaper: drive 0 maps to the widest
	// knee (0.3999), drive 1 collapses it toward a hard edge.
	distortionKneeScale = 0.3999

	// Lowpass cutoffs are capped just below Nyquist to keep the one-pole
	// coefficient strictly inside the unit circle.
	maxCutoffRatio = 0.49
)

// Distortion is an arctangent soft-clip waveshaper followed by two
// cascaded one-pole lowpass stages (12 dB/oct smoothing).
type Distortion struct {
	sampleRate float64

	drive  float64
	cutoff float64

	knee        float64 // derived from drive
	filterCoeff float64 // derived from cutoff

	y1, y2 float64
}

// NewDistortion creates a distortion kernel. drive is clamped to [0,1],
// cutoff to [20, 0.49*sampleRate] Hz.
func NewDistortion(sampleRate, drive, cutoff float64) (*Distortion, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("distortion sample rate must be > 0 and finite: %f", sampleRate)
	}

	d := &Distortion{sampleRate: sampleRate}
	d.drive = core.Clamp(drive, minDistortionDrive, maxDistortionDrive)
	d.knee = (1 - d.drive) * distortionKneeScale
	d.cutoff = core.Clamp(cutoff, minDistortionCutoff, maxCutoffRatio*sampleRate)
	d.filterCoeff = math.Exp(-2 * math.Pi * d.cutoff / sampleRate)

	return d, nil
}

// SetDrive sets the shaper drive, clamped to [0,1]. Setting the current
// value leaves derived state untouched.
func (d *Distortion) SetDrive(drive float64) {
	drive = core.Clamp(drive, minDistortionDrive, maxDistortionDrive)
	if drive == d.drive {
		return
	}

	d.drive = drive
	d.knee = (1 - drive) * distortionKneeScale
}

// SetCutoff sets the smoothing lowpass cutoff in Hz, clamped to
// [20, 0.49*sampleRate].
func (d *Distortion) SetCutoff(cutoff float64) {
	cutoff = core.Clamp(cutoff, minDistortionCutoff, maxCutoffRatio*d.sampleRate)
	if cutoff == d.cutoff {
		return
	}

	d.cutoff = cutoff
	d.filterCoeff = math.Exp(-2 * math.Pi * cutoff / d.sampleRate)
}

// Drive returns the shaper drive in [0,1].
func (d *Distortion) Drive() float64 { return d.drive }

// Cutoff returns the smoothing lowpass cutoff in Hz.
func (d *Distortion) Cutoff() float64 { return d.cutoff }

// SampleRate returns the sample rate in Hz.
func (d *Distortion) SampleRate() float64 { return d.sampleRate }

// Reset clears the filter memories.
func (d *Distortion) Reset() {
	d.y1 = 0
	d.y2 = 0
}

// ProcessSample shapes one sample and returns the smoothed result.
func (d *Distortion) ProcessSample(input float64) float64 {
	raw := math.Atan2(input, d.knee)

	c := d.filterCoeff
	d.y1 = core.FlushDenormals(raw + (d.y1-raw)*c)
	d.y2 = core.FlushDenormals(d.y1 + (d.y2-d.y1)*c)

	return d.y2
}

// ProcessInPlace applies distortion to buf in place.
func (d *Distortion) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}
