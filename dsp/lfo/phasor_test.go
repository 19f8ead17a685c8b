package lfo

import (
	"math"
	"testing"
)

func TestNewPhasorValidation(t *testing.T) {
	tests := []struct {
		name string
		sr   float64
	}{
		{"zero sample rate", 0},
		{"negative sample rate", -44100},
		{"NaN sample rate", math.NaN()},
		{"Inf sample rate", math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPhasor(tc.sr, 1, 0); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestPhasorRampsAndWraps(t *testing.T) {
	// 4 Hz at 16 samples/s advances 0.25 per tick.
	p, err := NewPhasor(16, 4, 0)
	if err != nil {
		t.Fatalf("NewPhasor() error = %v", err)
	}

	want := []float64{0, 0.25, 0.5, 0.75, 0, 0.25}
	for i, w := range want {
		got := p.Tick()
		if math.Abs(got-w) > 1e-12 {
			t.Errorf("Tick %d = %g, want %g", i, got, w)
		}
	}
}

func TestPhasorNegativeFrequency(t *testing.T) {
	p, err := NewPhasor(16, -4, 0)
	if err != nil {
		t.Fatalf("NewPhasor() error = %v", err)
	}

	want := []float64{0, 0.75, 0.5, 0.25, 0}
	for i, w := range want {
		got := p.Tick()
		if math.Abs(got-w) > 1e-12 {
			t.Errorf("Tick %d = %g, want %g", i, got, w)
		}
	}
}

func TestPhasorZeroFrequencyIsStationary(t *testing.T) {
	p, err := NewPhasor(48000, 0, 0.3)
	if err != nil {
		t.Fatalf("NewPhasor() error = %v", err)
	}

	for range 100 {
		if got := p.Tick(); got != 0.3 {
			t.Fatalf("Tick() = %g, want stationary 0.3", got)
		}
	}
}

func TestPhasorInitialPhaseWrapped(t *testing.T) {
	p, err := NewPhasor(48000, 1, 1.75)
	if err != nil {
		t.Fatalf("NewPhasor() error = %v", err)
	}

	if got := p.Phase(); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Phase() = %g, want 0.75", got)
	}
}

func TestPhasorFreqChangeKeepsPhase(t *testing.T) {
	p, err := NewPhasor(8, 1, 0)
	if err != nil {
		t.Fatalf("NewPhasor() error = %v", err)
	}

	p.Tick()
	p.Tick()
	before := p.Phase()
	p.SetFreq(3)

	if p.Phase() != before {
		t.Errorf("SetFreq changed phase: %g -> %g", before, p.Phase())
	}

	p.SetFreq(math.NaN())

	if p.Freq() != 3 {
		t.Errorf("non-finite frequency accepted: %g", p.Freq())
	}
}

func TestPhasorStaysInRange(t *testing.T) {
	p, err := NewPhasor(44100, 1234.567, 0.1)
	if err != nil {
		t.Fatalf("NewPhasor() error = %v", err)
	}

	for i := range 100000 {
		got := p.Tick()
		if got < 0 || got >= 1 {
			t.Fatalf("phase out of range at sample %d: %g", i, got)
		}
	}
}
