package synth

import "github.com/neurlang/wsprsim/wspr"

// TestToneSymbols walks all four tones twice.
var TestToneSymbols = []wspr.Symbol{0, 1, 2, 3, 0, 1, 2, 3}

// TestToneConfig spaces the four tones 50 Hz apart (1400, 1450, 1500,
// 1550 Hz) with 32768-sample symbols at half scale, so each tone is easy to
// pick out on a waterfall.
func TestToneConfig() Config {
	return Config{
		SampleRate:    48000,
		SymbolSamples: 32768,
		CenterFreq:    1475.0,
		Offsets:       [4]float64{-75, -25, 25, 75},
		Amplitude:     0.5 * 32767,
	}
}
