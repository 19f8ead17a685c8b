// Package effects provides real-time, single-sample audio effect kernels.
//
// Subpackages:
//   - github.com/lossius/cookdsp/dsp/effects/reverb
//
// Effects in this package:
//   - Distortion: Arctangent soft clipper with a 2-pole smoothing lowpass.
//   - Harmonizer: Delay-line pitch shifter with two crossfaded window taps.
//   - Vocoder: Multiband resonant analysis/synthesis vocoder with
//     per-band envelope followers.
//
// Every kernel ingests one sample per call and owns all of its state; a
// given instance must only ever be advanced from a single goroutine.
// Parameter setters clamp silently instead of rejecting, and never reset
// running filter or delay history, so parameters can be swept without
// clicks.
package effects
