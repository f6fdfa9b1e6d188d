package spectrum

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/cmplx"
	"os"

	"github.com/r9y9/gossp/stft"
	"gonum.org/v1/gonum/floats"
)

var ErrFrame = errors.New("frame length and shift must be positive")

// Waterfall represents the configuration for generating STFT waterfall images.
type Waterfall struct {
	FrameShift int
	FrameLen   int
	Band       Band
	// low frequencies at the bottom of the image when set
	YReverse bool
}

// NewWaterfall creates a Waterfall fine enough to separate the 1.46 Hz WSPR tones.
func NewWaterfall() *Waterfall {
	return &Waterfall{
		FrameShift: 8192,
		FrameLen:   32768,
		Band:       DefaultBand,
		YReverse:   true,
	}
}

// Grid is a time-frequency magnitude map in dB, indexed [frame][bin].
type Grid struct {
	Freqs []float64
	DB    [][]float64
}

// Compute runs the STFT over samples and keeps the bins inside the band.
func (w *Waterfall) Compute(samples []float64, sampleRate int) (Grid, error) {
	if sampleRate <= 0 {
		return Grid{}, ErrSampleRate
	}
	if w.FrameLen <= 0 || w.FrameShift <= 0 {
		return Grid{}, ErrFrame
	}
	if len(samples) == 0 {
		return Grid{}, ErrNoSamples
	}
	if len(samples) < w.FrameLen {
		samples = append(append([]float64(nil), samples...), make([]float64, w.FrameLen-len(samples))...)
	}

	s := stft.New(w.FrameShift, w.FrameLen)
	spectrum := s.STFT(samples)

	var g Grid
	var bins []int
	for k := 0; k <= w.FrameLen/2; k++ {
		f := BinFrequency(k, w.FrameLen, sampleRate)
		if w.Band.Contains(f) {
			g.Freqs = append(g.Freqs, f)
			bins = append(bins, k)
		}
	}
	if len(bins) == 0 {
		return Grid{}, ErrEmptyBand
	}

	g.DB = make([][]float64, len(spectrum))
	for i := range spectrum {
		row := make([]float64, len(bins))
		for j, k := range bins {
			mag := cmplx.Abs(spectrum[i][k])
			row[j] = 10 * math.Log10(mag*mag+1e-10)
		}
		g.DB[i] = row
	}
	return g, nil
}

// Image renders samples as a waterfall, one column per frame.
func (w *Waterfall) Image(samples []float64, sampleRate int) (image.Image, error) {
	g, err := w.Compute(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	frames := len(g.DB)
	height := len(g.Freqs)
	img := image.NewRGBA(image.Rect(0, 0, frames, height))

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range g.DB {
		lo = math.Min(lo, floats.Min(row))
		hi = math.Max(hi, floats.Max(row))
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	for x := 0; x < frames; x++ {
		for y := 0; y < height; y++ {
			c := waterfallColor((g.DB[x][y] - lo) / span)
			if w.YReverse {
				img.SetRGBA(x, height-y-1, c)
			} else {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img, nil
}

// ToWaterfallWav generates a waterfall from an input WAV file and saves it as a PNG image.
func (w *Waterfall) ToWaterfallWav(inputFile, outputFile string) error {
	buf, sr, err := LoadWav(inputFile)
	if err != nil {
		return err
	}

	img, err := w.Image(buf, sr)
	if err != nil {
		return err
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// waterfallColor maps 0..1 onto dark blue, blue, cyan, green, yellow, red, white.
func waterfallColor(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))

	var r, g, b float64
	switch {
	case v < 0.2:
		t := v / 0.2
		b = 0.1 + 0.4*t
	case v < 0.4:
		t := (v - 0.2) / 0.2
		g = 0.5 * t
		b = 0.5 + 0.5*t
	case v < 0.6:
		t := (v - 0.4) / 0.2
		g = 0.5 + 0.5*t
		b = 1.0 - 0.5*t
	case v < 0.8:
		t := (v - 0.6) / 0.2
		r = t
		g = 1.0
		b = 0.5 - 0.5*t
	case v < 0.9:
		t := (v - 0.8) / 0.1
		r = 1.0
		g = 1.0 - 0.5*t
	default:
		t := (v - 0.9) / 0.1
		r = 1.0
		g = 0.5 + 0.5*t
		b = t
	}

	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(x float64) uint8 {
	return uint8(math.Round(x * 255))
}
