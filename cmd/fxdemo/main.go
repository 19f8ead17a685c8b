// Command fxdemo renders short demonstrations of the effect kernels to
// 16-bit mono WAV files.
//
// Usage:
//
//	fxdemo [flags] [effect-name ...]
//
// Without arguments it renders all effects.
//
// Examples:
//
//	fxdemo distortion
//	fxdemo -rate 48000 -dur 4 harmonizer reverb
//	fxdemo -out /tmp/demos -list
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/lossius/cookdsp/dsp/effects"
	"github.com/lossius/cookdsp/dsp/effects/reverb"
	"github.com/lossius/cookdsp/dsp/signal"
)

type demoEntry struct {
	name   string
	render func(sampleRate float64, samples int) ([]float64, error)
}

var registry = []demoEntry{
	{"distortion", renderDistortion},
	{"harmonizer", renderHarmonizer},
	{"vocoder", renderVocoder},
	{"reverb", renderReverb},
}

func main() {
	out := flag.String("out", ".", "output directory for rendered WAV files")
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	dur := flag.Float64("dur", 3, "render duration in seconds")
	list := flag.Bool("list", false, "list available effect names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxdemo [flags] [effect-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Renders effect kernel demonstrations to 16-bit mono WAV files.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, renders all effects.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fxdemo distortion\n")
		fmt.Fprintf(os.Stderr, "  fxdemo -rate 48000 -dur 4 harmonizer reverb\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *rate <= 0 || *dur <= 0 {
		fmt.Fprintf(os.Stderr, "error: rate and dur must be > 0\n")
		os.Exit(1)
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching effects\n")
		os.Exit(1)
	}

	samples := int(*rate * *dur)

	for _, e := range entries {
		buf, err := e.render(*rate, samples)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: render %s: %v\n", e.name, err)
			os.Exit(1)
		}

		signal.Normalize(buf, 0.9)

		path := filepath.Join(*out, e.name+".wav")
		if err := writeWAV(path, buf, int(*rate)); err != nil {
			fmt.Fprintf(os.Stderr, "error: write %s: %v\n", path, err)
			os.Exit(1)
		}

		fmt.Printf("%s\t%d samples\n", path, samples)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []demoEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]demoEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []demoEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown effect %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func renderDistortion(sampleRate float64, samples int) ([]float64, error) {
	d, err := effects.NewDistortion(sampleRate, 0.75, 5000)
	if err != nil {
		return nil, err
	}

	buf, err := signal.Sine(sampleRate, 110, 0.8, samples)
	if err != nil {
		return nil, err
	}

	d.ProcessInPlace(buf)
	return buf, nil
}

func renderHarmonizer(sampleRate float64, samples int) ([]float64, error) {
	h, err := effects.NewHarmonizer(sampleRate, 7, 0.3, 0.05)
	if err != nil {
		return nil, err
	}

	dry, err := signal.Sine(sampleRate, 220, 0.8, samples)
	if err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i, x := range dry {
		out[i] = 0.5*x + 0.5*h.ProcessSample(x)
	}
	return out, nil
}

func renderVocoder(sampleRate float64, samples int) ([]float64, error) {
	v, err := effects.NewVocoder(sampleRate, 80, 1.2, 40, 0.6, 24)
	if err != nil {
		return nil, err
	}

	// A slowly beating pair of sines stands in for speech; broadband
	// noise carries the result.
	modA, err := signal.Sine(sampleRate, 220, 0.5, samples)
	if err != nil {
		return nil, err
	}

	modB, err := signal.Sine(sampleRate, 331, 0.5, samples)
	if err != nil {
		return nil, err
	}

	carrier, err := signal.WhiteNoise(0.8, samples, 1)
	if err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = v.ProcessSample(modA[i]+modB[i], carrier[i])
	}
	return out, nil
}

func renderReverb(sampleRate float64, samples int) ([]float64, error) {
	r, err := reverb.NewWGVerb(sampleRate, 0.8, 5000, 0.35)
	if err != nil {
		return nil, err
	}

	// A short noise burst excites the network, the rest is tail.
	burst := int(0.05 * sampleRate)
	if burst > samples {
		burst = samples
	}

	noise, err := signal.WhiteNoise(0.8, burst, 2)
	if err != nil {
		return nil, err
	}

	buf := make([]float64, samples)
	copy(buf, noise)
	r.ProcessInPlace(buf)
	return buf, nil
}

func writeWAV(path string, buf []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	data := make([]int, len(buf))
	for i, v := range buf {
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		data[i] = int(v * 32767)
	}

	ib := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(ib); err != nil {
		return err
	}

	return enc.Close()
}
