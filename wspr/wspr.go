package wspr

import (
	"errors"
	"fmt"
	"strconv"
)

// SymbolCount is the number of channel symbols in one WSPR transmission.
const SymbolCount = 162

// Power limits in dBm accepted by the encoder.
const (
	MinPower = 0
	MaxPower = 60
)

// Symbol is one 4-FSK channel symbol. Bit 0 carries the sync vector, bit 1 the data.
type Symbol uint8

// Valid reports whether the symbol is one of the four tones.
func (s Symbol) Valid() bool {
	return s <= 3
}

// Sequence is a complete WSPR channel sequence.
type Sequence [SymbolCount]Symbol

var ErrPowerRange = errors.New("power must be 0-60 dBm")
var ErrSequenceLength = errors.New("sequence must have 162 symbols")

// SymbolError reports a symbol value outside 0..3.
type SymbolError struct {
	Index int
	Value int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid symbol value %d at index %d", e.Value, e.Index)
}

// Encoder turns a callsign, a Maidenhead locator and a power level into a channel sequence.
type Encoder interface {
	Encode(callsign, grid string, power int) (Sequence, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(callsign, grid string, power int) (Sequence, error)

func (f EncoderFunc) Encode(callsign, grid string, power int) (Sequence, error) {
	return f(callsign, grid, power)
}

// ValidatePower checks that power lies within [MinPower, MaxPower].
func ValidatePower(power int) error {
	if power < MinPower || power > MaxPower {
		return fmt.Errorf("%w: got %d", ErrPowerRange, power)
	}
	return nil
}

// ParsePower parses a decimal power level and validates its range.
func ParsePower(s string) (int, error) {
	power, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrPowerRange, s)
	}
	if err := ValidatePower(power); err != nil {
		return 0, err
	}
	return power, nil
}

// Validate returns a *SymbolError for the first symbol outside 0..3.
func (s Sequence) Validate() error {
	for i, sym := range s {
		if !sym.Valid() {
			return &SymbolError{Index: i, Value: int(sym)}
		}
	}
	return nil
}

// Bytes returns one byte per symbol.
func (s Sequence) Bytes() []byte {
	out := make([]byte, SymbolCount)
	for i, sym := range s {
		out[i] = byte(sym)
	}
	return out
}

// Symbols returns the sequence as a slice.
func (s Sequence) Symbols() []Symbol {
	out := make([]Symbol, SymbolCount)
	copy(out, s[:])
	return out
}

// SequenceFromBytes is the inverse of Bytes.
func SequenceFromBytes(buf []byte) (s Sequence, err error) {
	if len(buf) != SymbolCount {
		return s, fmt.Errorf("%w: got %d", ErrSequenceLength, len(buf))
	}
	for i, b := range buf {
		s[i] = Symbol(b)
	}
	if err := s.Validate(); err != nil {
		return Sequence{}, err
	}
	return s, nil
}

// Corrupt inverts the sync bit of every symbol and leaves the data bit alone.
// A compliant decoder must fail to synchronise on the result.
func Corrupt(s Sequence) (altered Sequence) {
	for i, sym := range s {
		altered[i] = sym ^ 0b01
	}
	return
}

// Report counts the bits that differ between two sequences.
type Report struct {
	Bit0  int
	Bit1  int
	Total int
	Max   int
}

// Diff compares a and b bit by bit. Both bit positions are counted independently.
func Diff(a, b Sequence) Report {
	var r Report
	for i := range a {
		delta := a[i] ^ b[i]
		if delta&1 != 0 {
			r.Bit0++
		}
		if (delta>>1)&1 != 0 {
			r.Bit1++
		}
	}
	r.Total = r.Bit0 + r.Bit1
	r.Max = 2 * SymbolCount
	return r
}

// Percent is Total as a percentage of Max.
func (r Report) Percent() float64 {
	if r.Max == 0 {
		return 0
	}
	return 100 * float64(r.Total) / float64(r.Max)
}

func (r Report) String() string {
	return fmt.Sprintf("Bit differences: %d / %d (%.1f%%)", r.Total, r.Max, r.Percent())
}
