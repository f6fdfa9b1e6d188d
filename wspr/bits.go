package wspr

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteBits saves the raw symbols, one byte each.
func WriteBits(path string, s Sequence) error {
	return os.WriteFile(path, s.Bytes(), 0644)
}

// ReadBits loads a sequence saved by WriteBits.
func ReadBits(path string) (Sequence, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Sequence{}, err
	}
	s, err := SequenceFromBytes(buf)
	if err != nil {
		return Sequence{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ReadBitsPrefix returns up to n raw bytes from the start of a .bits file
// without validating them.
func ReadBitsPrefix(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	got, err := io.ReadFull(f, buf)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	return buf[:got], err
}

// RFConfig describes how symbols map to transmit frequencies in an .rf listing.
type RFConfig struct {
	DialFreq   float64
	CenterFreq float64
	Spacing    float64
}

// DefaultRFConfig returns the 20 m listing parameters with 48000/32768 Hz tone spacing.
func DefaultRFConfig() RFConfig {
	return RFConfig{
		DialFreq:   14095600,
		CenterFreq: 1500.0,
		Spacing:    48000.0 / 32768,
	}
}

// Frequency returns the tone for sym, centred between symbols 1 and 2.
func (c RFConfig) Frequency(sym Symbol) float64 {
	return c.CenterFreq + (float64(sym)-1.5)*c.Spacing
}

// WriteRF writes a commented header and one frequency per symbol.
func WriteRF(w io.Writer, s Sequence, cfg RFConfig) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# WSPR RF Frequency File\n")
	fmt.Fprintf(bw, "# Frequency: %.0f\n", cfg.DialFreq)
	fmt.Fprintf(bw, "# Each line contains frequency in Hz for one symbol\n")
	for _, sym := range s {
		fmt.Fprintf(bw, "%.6f\n", cfg.Frequency(sym))
	}
	return bw.Flush()
}

// WriteRFFile writes an .rf listing to path.
func WriteRFFile(path string, s Sequence, cfg RFConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRF(f, s, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
