package effects_test

import (
	"fmt"

	"github.com/lossius/cookdsp/dsp/effects"
)

func ExampleHarmonizer_ProcessInPlace() {
	// A fifth up (7 semitones) with a 50 ms grain window.
	h, err := effects.NewHarmonizer(44100, 7, 0.25, 0.05)
	if err != nil {
		panic(err)
	}

	buf := make([]float64, 256)
	buf[0] = 1
	h.ProcessInPlace(buf)
	fmt.Println(len(buf))
	// Output: 256
}

func ExampleNewHarmonizer_clamping() {
	h, err := effects.NewHarmonizer(44100, 60, 2, 0.05)
	if err != nil {
		panic(err)
	}

	fmt.Printf("transpose=%.0f feedback=%.0f window=%.2f\n", h.Transpose(), h.Feedback(), h.Window())
	// Output: transpose=48 feedback=1 window=0.05
}
