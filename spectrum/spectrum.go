package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
)

// Band is a closed frequency interval in Hz.
type Band struct {
	Low  float64
	High float64
}

// DefaultBand brackets the WSPR tones around 1420 Hz.
var DefaultBand = Band{Low: 1400, High: 1500}

// Contains reports whether Low <= f <= High.
func (b Band) Contains(f float64) bool {
	return f >= b.Low && f <= b.High
}

func (b Band) String() string {
	return fmt.Sprintf("%g–%g Hz", b.Low, b.High)
}

var ErrNoSamples = errors.New("no samples to analyse")
var ErrSampleRate = errors.New("sample rate must be positive")

// Spectrum is the magnitude of one analysis window restricted to a band.
type Spectrum struct {
	Freqs []float64
	// DB is 20*log10(|X|). A bin with zero magnitude yields -Inf.
	DB []float64

	SampleRate int
	// Length is the number of samples that went into the FFT.
	Length int
}

// Compute windows the first second of samples (or all of them when the
// recording is shorter) with a Hann window, takes the real FFT and keeps
// the bins whose centre frequency lies inside band.
func Compute(samples []float64, sampleRate int, band Band) (Spectrum, error) {
	if sampleRate <= 0 {
		return Spectrum{}, ErrSampleRate
	}
	n := sampleRate
	if len(samples) < n {
		n = len(samples)
	}
	if n == 0 {
		return Spectrum{}, ErrNoSamples
	}

	segment := make([]float64, n)
	copy(segment, samples[:n])
	window.Apply(segment, window.Hann)

	coeffs := fft.FFTReal(segment)

	s := Spectrum{SampleRate: sampleRate, Length: n}
	for k := 0; k <= n/2; k++ {
		f := BinFrequency(k, n, sampleRate)
		if !band.Contains(f) {
			continue
		}
		s.Freqs = append(s.Freqs, f)
		s.DB = append(s.DB, 20*math.Log10(cmplx.Abs(coeffs[k])))
	}
	return s, nil
}

// BinFrequency is the centre of real-FFT bin k for an n-point transform.
func BinFrequency(k, n, sampleRate int) float64 {
	return float64(k) * float64(sampleRate) / float64(n)
}

// Resolution is the bin spacing in Hz.
func (s Spectrum) Resolution() float64 {
	if s.Length == 0 {
		return 0
	}
	return float64(s.SampleRate) / float64(s.Length)
}

// Peak returns the strongest bin. ok is false for an empty spectrum.
func (s Spectrum) Peak() (freq, db float64, ok bool) {
	if len(s.DB) == 0 {
		return 0, 0, false
	}
	i := floats.MaxIdx(s.DB)
	return s.Freqs[i], s.DB[i], true
}

// Finite reports whether every dB value is a finite number.
func (s Spectrum) Finite() bool {
	for _, v := range s.DB {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
