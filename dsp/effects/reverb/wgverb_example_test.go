package reverb_test

import (
	"fmt"

	"github.com/lossius/cookdsp/dsp/effects/reverb"
)

func ExampleWGVerb_ProcessInPlace() {
	r, err := reverb.NewWGVerb(44100, 0.75, 5000, 0.3)
	if err != nil {
		panic(err)
	}

	buf := make([]float64, 512)
	buf[0] = 1
	r.ProcessInPlace(buf)
	fmt.Println(len(buf))
	// Output: 512
}

func ExampleNewWGVerb_clamping() {
	r, err := reverb.NewWGVerb(44100, 2, 1, 0.25)
	if err != nil {
		panic(err)
	}

	fmt.Printf("feed=%.0f cutoff=%.0f bal=%.2f\n", r.Feed(), r.Cutoff(), r.Bal())
	// Output: feed=1 cutoff=20 bal=0.25
}
