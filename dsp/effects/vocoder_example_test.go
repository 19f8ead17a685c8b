package effects_test

import (
	"fmt"

	"github.com/lossius/cookdsp/dsp/effects"
)

func ExampleVocoder_ProcessSample() {
	v, err := effects.NewVocoder(48000, 100, 1, 50, 0.5, 8)
	if err != nil {
		panic(err)
	}

	// A silent modulator fully gates the carrier.
	fmt.Println(v.ProcessSample(0, 0.5))
	// Output: 0
}

func ExampleVocoder_BandFreq() {
	// Spread 1 places the bands on a harmonic series.
	v, err := effects.NewVocoder(48000, 110, 1, 20, 0.5, 4)
	if err != nil {
		panic(err)
	}

	for i := range v.Stages() {
		fmt.Printf("%.0f ", v.BandFreq(i))
	}
	fmt.Println()
	// Output: 110 220 330 440
}
