package main

import (
	"fmt"
	"io"
	"os"

	"github.com/neurlang/wsprsim/synth"
	"github.com/neurlang/wsprsim/wspr"
	"github.com/spf13/pflag"
)

func main() {
	output := pflag.StringP("output", "o", "test_wspr.wav", "Output WAV file")
	pflag.Parse()

	if err := run(os.Stdout, *output, synth.TestToneConfig(), synth.TestToneSymbols); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run lists the tone of every symbol and writes the test WAV to path.
func run(out io.Writer, path string, cfg synth.Config, symbols []wspr.Symbol) error {
	for i, sym := range symbols {
		freq, err := cfg.ToneFrequency(sym)
		if err != nil {
			return fmt.Errorf("symbol %d: %w", i, err)
		}
		fmt.Fprintf(out, "Symbol %d: value=%d, freq=%.1f Hz\n", i, sym, freq)
	}

	samples, err := synth.Synthesize(cfg, symbols)
	if err != nil {
		return fmt.Errorf("generating test tone: %w", err)
	}
	if err := synth.WriteWav(path, samples, cfg.SampleRate); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(out, "Created %s with %d symbols\n", path, len(symbols))
	fmt.Fprintf(out, "Duration: %.1f seconds\n", float64(len(samples))/float64(cfg.SampleRate))
	return nil
}
