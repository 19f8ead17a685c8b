package lfo

import (
	"math"
	"testing"
)

func TestNewRandomWalkValidation(t *testing.T) {
	if _, err := NewRandomWalk(0, -1, 1, 1, 42); err == nil {
		t.Error("expected error for zero sample rate")
	}

	if _, err := NewRandomWalk(math.NaN(), -1, 1, 1, 42); err == nil {
		t.Error("expected error for NaN sample rate")
	}
}

func TestRandomWalkSwapsReversedBounds(t *testing.T) {
	r, err := NewRandomWalk(48000, 1, -1, 2, 42)
	if err != nil {
		t.Fatalf("NewRandomWalk() error = %v", err)
	}

	if r.Min() != -1 || r.Max() != 1 {
		t.Errorf("bounds = [%g, %g], want [-1, 1]", r.Min(), r.Max())
	}
}

func TestRandomWalkStaysBounded(t *testing.T) {
	r, err := NewRandomWalk(48000, -0.00045, 0.00045, 1.5, 7)
	if err != nil {
		t.Fatalf("NewRandomWalk() error = %v", err)
	}

	for i := range 200000 {
		v := r.Tick()
		if v < r.Min() || v > r.Max() {
			t.Fatalf("value out of bounds at sample %d: %g", i, v)
		}
	}
}

func TestRandomWalkDeterministicForSeed(t *testing.T) {
	a, err := NewRandomWalk(48000, -1, 1, 3, 1234)
	if err != nil {
		t.Fatalf("NewRandomWalk() error = %v", err)
	}

	b, err := NewRandomWalk(48000, -1, 1, 3, 1234)
	if err != nil {
		t.Fatalf("NewRandomWalk() error = %v", err)
	}

	for i := range 100000 {
		va, vb := a.Tick(), b.Tick()
		if va != vb {
			t.Fatalf("sequences diverge at sample %d: %g vs %g", i, va, vb)
		}
	}
}

func TestRandomWalkSeedsDiffer(t *testing.T) {
	a, err := NewRandomWalk(48000, -1, 1, 100, 1)
	if err != nil {
		t.Fatalf("NewRandomWalk() error = %v", err)
	}

	b, err := NewRandomWalk(48000, -1, 1, 100, 2)
	if err != nil {
		t.Fatalf("NewRandomWalk() error = %v", err)
	}

	same := true
	for range 48000 {
		if a.Tick() != b.Tick() {
			same = false
			break
		}
	}

	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestRandomWalkMoves(t *testing.T) {
	r, err := NewRandomWalk(1000, -1, 1, 50, 99)
	if err != nil {
		t.Fatalf("NewRandomWalk() error = %v", err)
	}

	minSeen, maxSeen := math.Inf(1), math.Inf(-1)
	for range 10000 {
		v := r.Tick()
		minSeen = math.Min(minSeen, v)
		maxSeen = math.Max(maxSeen, v)
	}

	if maxSeen-minSeen < 0.1 {
		t.Errorf("walk barely moved: range [%g, %g]", minSeen, maxSeen)
	}
}
