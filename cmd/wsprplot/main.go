package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/neurlang/wsprsim/spectrum"
	"github.com/spf13/pflag"
)

const defaultOutput = "wspr_normal_spectrum.png"

func defaultInput() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("Desktop", "wspr_normal.wav")
	}
	return filepath.Join(home, "Desktop", "wspr_normal.wav")
}

func main() {
	inputFile := pflag.StringP("input", "i", defaultInput(), "WAV recording to analyse")
	outputFile := pflag.StringP("output", "o", defaultOutput, "PNG plot to write")
	pflag.Parse()

	s, err := spectrum.PlotWav(*inputFile, *outputFile, spectrum.DefaultBand)
	if err != nil {
		fmt.Printf("Error plotting spectrum: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved spectrum plot to %s\n", *outputFile)
	if f, db, ok := s.Peak(); ok {
		fmt.Printf("Peak %.1f dB at %.1f Hz (%d samples, %.2f Hz bins)\n", db, f, s.Length, s.Resolution())
	}
}
