package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/neurlang/wsprsim/spectrum"
	"github.com/spf13/pflag"
)

func main() {
	frameLen := pflag.Int("frame", 32768, "STFT frame length in samples")
	frameShift := pflag.Int("shift", 8192, "STFT frame shift in samples")
	pflag.Parse()

	// Check if the filename argument is provided
	if pflag.NArg() < 1 {
		fmt.Println("Usage: wsprwaterfall [--frame N] [--shift N] <wav_base_filename>")
		os.Exit(1)
	}

	var filename = pflag.Arg(0)

	var w = spectrum.NewWaterfall()
	w.FrameLen = *frameLen
	w.FrameShift = *frameShift

	inputFile := filename
	if !strings.HasSuffix(filename, ".wav") {
		inputFile = filename + ".wav"
	}
	outputFile := filename + ".png"

	if err := w.ToWaterfallWav(inputFile, outputFile); err != nil {
		fmt.Printf("Error generating waterfall: %v\n", err)
		os.Exit(1)
	}
}
