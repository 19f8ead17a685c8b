// Package window provides periodic window functions and a phase-addressed
// lookup table for amplitude-weighting overlapping delay taps.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/lossius/cookdsp/dsp/interp"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeTriangle
)

// Generate returns periodic window coefficients of the given length.
// The periodic form (x = i/N) makes the table seamless under wrapped
// phase reads.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		x := float64(i) / float64(length)
		out[i] = eval(t, x)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf))
	vecmath.MulBlockInPlace(buf, coeffs)
}

func eval(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	case TypeTriangle:
		return 1 - math.Abs(2*x-1)
	case TypeRectangular:
		return 1
	default:
		return 1
	}
}

// Table is a window lookup table read by normalized phase in [0,1).
// Reads interpolate linearly between adjacent entries and wrap at the
// table edges.
type Table struct {
	coeffs []float64
}

// NewTable returns a table of the given size filled with a rectangular
// window.
func NewTable(size int) (*Table, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window table size must be > 0: %d", size)
	}

	t := &Table{coeffs: make([]float64, size)}
	t.Fill(TypeRectangular)

	return t, nil
}

// Len returns the table size.
func (t *Table) Len() int { return len(t.coeffs) }

// Fill replaces the table contents with the selected window function.
func (t *Table) Fill(w Type) {
	coeffs := Generate(w, len(t.coeffs))
	copy(t.coeffs, coeffs)
}

// Normalize scales the table so its peak magnitude equals peak.
// A table of all zeros is left untouched.
func (t *Table) Normalize(peak float64) {
	maxAbs := 0.0
	for _, c := range t.coeffs {
		av := math.Abs(c)
		if av > maxAbs {
			maxAbs = av
		}
	}

	if maxAbs == 0 {
		return
	}

	vecmath.ScaleBlock(t.coeffs, t.coeffs, peak/maxAbs)
}

// ReadPhase reads the table at normalized phase in [0,1) with linear
// interpolation. Phases outside the range wrap.
func (t *Table) ReadPhase(phase float64) float64 {
	size := len(t.coeffs)
	if size == 0 {
		return 0
	}

	phase -= math.Floor(phase)
	pos := phase * float64(size)
	i := int(pos)
	frac := pos - float64(i)

	if i >= size {
		i = 0
	}

	next := i + 1
	if next >= size {
		next = 0
	}

	return interp.Linear(frac, t.coeffs[i], t.coeffs[next])
}
