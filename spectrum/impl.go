package spectrum

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/faiface/beep/wav"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrFileNotLoaded = errors.New("wavNotLoaded")
var ErrEmptyBand = errors.New("no spectrum bins inside the band")

// Plot size of the saved image.
var (
	PlotWidth  = 8 * vg.Inch
	PlotHeight = 5 * vg.Inch
)

// LoadWav reads a WAV file and returns its first channel together with the
// sample rate. Samples are scaled back to the file's integer PCM range.
func LoadWav(name string) ([]float64, int, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", name, err)
	}
	defer stream.Close()

	var out []float64
	samples := make([][2]float64, 4096)
	for {
		n, ok := stream.Stream(samples)
		for i := 0; i < n; i++ {
			out = append(out, toPCM(samples[i][0], format.Precision))
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", name, err)
	}
	if len(out) == 0 || format.SampleRate == 0 {
		return nil, 0, ErrFileNotLoaded
	}

	return out, int(format.SampleRate), nil
}

// toPCM undoes the decoder's normalisation. 16 and 24 bit samples were
// divided by 2^bits-1, 8 bit ones were mapped from 0..255 onto -1..1 and
// come back centred on 128.
func toPCM(v float64, precision int) float64 {
	if precision == 1 {
		return (v+1)*255/2 - 128
	}
	return v * float64(int(1)<<(8*precision)-1)
}

// Render draws frequency against magnitude as a line plot and writes it to w as PNG.
// Non-finite dB values are left out and break the line, so a silent band
// still produces an empty plot.
func Render(w io.Writer, s Spectrum, title string) error {
	if len(s.Freqs) == 0 {
		return ErrEmptyBand
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Magnitude (dB)"
	p.X.Min = s.Freqs[0]
	p.X.Max = s.Freqs[len(s.Freqs)-1]
	p.Add(plotter.NewGrid())

	for _, pts := range finiteRuns(s) {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		p.Add(line)
	}

	wt, err := p.WriterTo(PlotWidth, PlotHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// finiteRuns splits the spectrum into contiguous runs of finite points.
func finiteRuns(s Spectrum) []plotter.XYs {
	var runs []plotter.XYs
	var cur plotter.XYs
	for i := range s.Freqs {
		v := s.DB[i]
		if math.IsInf(v, 0) || math.IsNaN(v) {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: s.Freqs[i], Y: v})
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// SavePlot renders s into a PNG file.
func SavePlot(name string, s Spectrum, title string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := Render(f, s, title); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// PlotWav loads inputFile, computes the band spectrum of its first second and
// saves the plot to outputFile.
func PlotWav(inputFile, outputFile string, band Band) (Spectrum, error) {
	buf, sr, err := LoadWav(inputFile)
	if err != nil {
		return Spectrum{}, err
	}

	s, err := Compute(buf, sr, band)
	if err != nil {
		return Spectrum{}, err
	}

	title := fmt.Sprintf("WSPR tones in %s", band)
	if err := SavePlot(outputFile, s, title); err != nil {
		return s, err
	}

	return s, nil
}
