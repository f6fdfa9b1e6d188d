package synth

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/neurlang/wsprsim/wspr"
	"gopkg.in/yaml.v3"
)

// Config holds the synthesis constants. It is a value type and is never
// modified once built.
type Config struct {
	SampleRate int
	SymbolRate float64
	// SymbolSamples overrides the symbol period derived from SymbolRate when non-zero.
	SymbolSamples int
	CenterFreq    float64
	Offsets       [4]float64
	Amplitude     float64
}

// DefaultConfig returns the WSPR audio parameters: 48 kHz, 162 symbols in
// 110.612 s, tones around 1420 Hz spaced by 12000/8192 Hz.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		SymbolRate: 162.0 / 110.612,
		CenterFreq: 1420.0,
		Offsets:    [4]float64{-2.197265625, -0.732421875, 0.732421875, 2.197265625},
		Amplitude:  32767,
	}
}

var ErrConfig = errors.New("invalid synth config")

// Validate checks that the config can produce audio.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrConfig, c.SampleRate)
	case c.SymbolSamples < 0:
		return fmt.Errorf("%w: symbol samples %d", ErrConfig, c.SymbolSamples)
	case c.SymbolSamples == 0 && !(c.SymbolRate > 0):
		return fmt.Errorf("%w: symbol rate %v", ErrConfig, c.SymbolRate)
	case !(c.Amplitude > 0 && c.Amplitude <= math.MaxInt16):
		return fmt.Errorf("%w: amplitude %v", ErrConfig, c.Amplitude)
	}
	return nil
}

// SamplesPerSymbol is the number of samples in one symbol period.
func (c Config) SamplesPerSymbol() int {
	if c.SymbolSamples > 0 {
		return c.SymbolSamples
	}
	return int(math.Round(float64(c.SampleRate) / c.SymbolRate))
}

// ToneFrequency returns the frequency in Hz used for sym.
func (c Config) ToneFrequency(sym wspr.Symbol) (float64, error) {
	if !sym.Valid() {
		return 0, &wspr.SymbolError{Index: -1, Value: int(sym)}
	}
	return c.CenterFreq + c.Offsets[sym], nil
}

// Synthesize renders one tone burst per symbol. The result has exactly
// len(symbols) * SamplesPerSymbol() samples.
func Synthesize(cfg Config, symbols []wspr.Symbol) ([]int16, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	spb := cfg.SamplesPerSymbol()
	rate := float64(cfg.SampleRate)
	out := make([]int16, len(symbols)*spb)

	for i, sym := range symbols {
		if !sym.Valid() {
			return nil, &wspr.SymbolError{Index: i, Value: int(sym)}
		}
		freq := cfg.CenterFreq + cfg.Offsets[sym]
		for j := 0; j < spb; j++ {
			n := i*spb + j
			out[n] = int16(math.Sin(2*math.Pi*freq*(float64(n)/rate)) * cfg.Amplitude)
		}
	}
	return out, nil
}

// SynthesizeSequence renders a full 162-symbol transmission.
func SynthesizeSequence(cfg Config, s wspr.Sequence) ([]int16, error) {
	return Synthesize(cfg, s[:])
}

type fileConfig struct {
	SampleRate    *int      `yaml:"sample_rate"`
	SymbolRate    *float64  `yaml:"symbol_rate"`
	SymbolSamples *int      `yaml:"symbol_samples"`
	CenterFreq    *float64  `yaml:"center_freq"`
	Offsets       []float64 `yaml:"offsets"`
	Amplitude     *float64  `yaml:"amplitude"`
}

// LoadConfig reads YAML overrides from path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig applies YAML overrides in data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig()
	if fc.SampleRate != nil {
		cfg.SampleRate = *fc.SampleRate
	}
	if fc.SymbolRate != nil {
		cfg.SymbolRate = *fc.SymbolRate
	}
	if fc.SymbolSamples != nil {
		cfg.SymbolSamples = *fc.SymbolSamples
	}
	if fc.CenterFreq != nil {
		cfg.CenterFreq = *fc.CenterFreq
	}
	if fc.Offsets != nil {
		if len(fc.Offsets) != len(cfg.Offsets) {
			return Config{}, fmt.Errorf("%w: need 4 offsets, got %d", ErrConfig, len(fc.Offsets))
		}
		copy(cfg.Offsets[:], fc.Offsets)
	}
	if fc.Amplitude != nil {
		cfg.Amplitude = *fc.Amplitude
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
