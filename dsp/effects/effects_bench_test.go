package effects

import "testing"

func BenchmarkDistortionProcessSample(b *testing.B) {
	d, _ := NewDistortion(48000, 0.7, 5000)

	x := 0.1

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		x = d.ProcessSample(x)
	}

	_ = x
}

func BenchmarkHarmonizerProcessSample(b *testing.B) {
	h, _ := NewHarmonizer(44100, 7, 0.3, 0.05)

	x := 0.1

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		x = h.ProcessSample(x)
	}

	_ = x
}

func BenchmarkVocoder8Bands(b *testing.B) {
	v, _ := NewVocoder(48000, 100, 1, 50, 0.5, 8)

	x := 0.1

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		x = v.ProcessSample(x, 0.5)
	}

	_ = x
}

func BenchmarkVocoder32Bands(b *testing.B) {
	v, _ := NewVocoder(48000, 100, 1, 50, 0.5, 32)

	x := 0.1

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		x = v.ProcessSample(x, 0.5)
	}

	_ = x
}
