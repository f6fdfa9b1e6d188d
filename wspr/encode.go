package wspr

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var ErrCallsign = errors.New("invalid callsign")
var ErrLocator = errors.New("invalid locator")

// SyncVector is the pseudo-random pattern carried in bit 0 of every symbol.
var SyncVector = [SymbolCount]uint8{
	1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 0, 0,
	1, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0,
	0, 0, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 1,
	0, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0,
	1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1,
	0, 0, 1, 0, 0, 1, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 0, 1,
	1, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0,
}

// PowerLevels are the dBm values a type-1 message can carry.
var PowerLevels = []int{0, 3, 7, 10, 13, 17, 20, 23, 27, 30, 33, 37, 40, 43, 47, 50, 53, 57, 60}

const (
	poly1 = uint32(0xf2d05351)
	poly2 = uint32(0xe4613c47)

	// 50 message bits followed by the 31 zero bits that flush the K=32 coder
	sourceBits = 81
)

// JTEncoder is the native type-1 WSPR message encoder.
type JTEncoder struct{}

// NewEncoder returns the native encoder.
func NewEncoder() *JTEncoder {
	return &JTEncoder{}
}

// Encode packs callsign, locator and power and returns the 162 channel symbols.
// Power is rounded down to the nearest level in PowerLevels.
func (e *JTEncoder) Encode(callsign, grid string, power int) (Sequence, error) {
	if err := ValidatePower(power); err != nil {
		return Sequence{}, err
	}
	n, err := packCallsign(callsign)
	if err != nil {
		return Sequence{}, err
	}
	loc, err := packLocator(grid)
	if err != nil {
		return Sequence{}, err
	}
	m := loc<<7 + uint32(NormalizePower(power)) + 64

	data := interleave(convolve(packMessage(n, m)))

	var s Sequence
	for i := range s {
		s[i] = Symbol(SyncVector[i] + 2*data[i])
	}
	return s, nil
}

// NormalizePower rounds power down to the nearest level in PowerLevels.
func NormalizePower(power int) int {
	if power <= PowerLevels[0] {
		return PowerLevels[0]
	}
	level := PowerLevels[0]
	for _, p := range PowerLevels {
		if p > power {
			break
		}
		level = p
	}
	return level
}

// alignCallsign puts the call area digit at index 2, pads to six characters
// and truncates anything longer.
func alignCallsign(callsign string) ([]byte, error) {
	call := strings.ToUpper(strings.TrimSpace(callsign))
	if len(call) < 2 {
		return nil, fmt.Errorf("%w: %q is too short", ErrCallsign, callsign)
	}
	if isDigit(call[1]) && (len(call) < 3 || !isDigit(call[2])) {
		call = " " + call
	}
	if len(call) > 6 {
		call = call[:6]
	}
	for len(call) < 6 {
		call += " "
	}

	aligned := []byte(call)
	switch {
	case !(isDigit(aligned[0]) || isLetter(aligned[0]) || aligned[0] == ' '):
		return nil, fmt.Errorf("%w: %q has a bad first character", ErrCallsign, callsign)
	case !(isDigit(aligned[1]) || isLetter(aligned[1])):
		return nil, fmt.Errorf("%w: %q has a bad prefix", ErrCallsign, callsign)
	case !isDigit(aligned[2]):
		return nil, fmt.Errorf("%w: %q needs a digit at the 2nd or 3rd place", ErrCallsign, callsign)
	}
	for _, c := range aligned[3:] {
		if !(isLetter(c) || c == ' ') {
			return nil, fmt.Errorf("%w: %q suffix must be letters", ErrCallsign, callsign)
		}
	}
	return aligned, nil
}

func packCallsign(callsign string) (uint32, error) {
	c, err := alignCallsign(callsign)
	if err != nil {
		return 0, err
	}
	n := charValue(c[0])
	n = n*36 + charValue(c[1])
	n = n*10 + charValue(c[2])
	n = n*27 + charValue(c[3]) - 10
	n = n*27 + charValue(c[4]) - 10
	n = n*27 + charValue(c[5]) - 10
	return n & 0x0FFFFFFF, nil
}

func packLocator(grid string) (uint32, error) {
	if len(grid) < 4 {
		return 0, fmt.Errorf("%w: %q needs four characters", ErrLocator, grid)
	}
	l := strings.ToUpper(grid[:4])
	if !isField(l[0]) || !isField(l[1]) {
		return 0, fmt.Errorf("%w: %q field must be A-R", ErrLocator, grid)
	}
	if !isDigit(l[2]) || !isDigit(l[3]) {
		return 0, fmt.Errorf("%w: %q square must be 0-9", ErrLocator, grid)
	}
	lon := uint32(l[0] - 'A')
	lat := uint32(l[1] - 'A')
	packed := (179-10*lon-uint32(l[2]-'0'))*180 + 10*lat + uint32(l[3]-'0')
	return packed & 0x7FFF, nil
}

// packMessage lays out the 28-bit callsign and the 22-bit locator/power
// field MSB first; the remaining bits stay zero.
func packMessage(n, m uint32) (c [11]byte) {
	c[0] = byte(n >> 20)
	c[1] = byte(n >> 12)
	c[2] = byte(n >> 4)
	c[3] = byte(n&0x0F)<<4 | byte(m>>18)&0x0F
	c[4] = byte(m >> 10)
	c[5] = byte(m >> 2)
	c[6] = byte(m&0x03) << 6
	return
}

func convolve(c [11]byte) (parity [SymbolCount]uint8) {
	var reg uint32
	for i := 0; i < sourceBits; i++ {
		bit := (c[i/8] >> (7 - uint(i%8))) & 1
		reg = reg<<1 | uint32(bit)
		parity[2*i] = uint8(bits.OnesCount32(reg&poly1) & 1)
		parity[2*i+1] = uint8(bits.OnesCount32(reg&poly2) & 1)
	}
	return
}

// interleave scatters the coded bits to bit-reversed 8-bit addresses below 162.
func interleave(parity [SymbolCount]uint8) (out [SymbolCount]uint8) {
	p := 0
	for k := 0; k < 256 && p < SymbolCount; k++ {
		j := bits.Reverse8(uint8(k))
		if int(j) < SymbolCount {
			out[j] = parity[p]
			p++
		}
	}
	return
}

func charValue(b byte) uint32 {
	switch {
	case isDigit(b):
		return uint32(b - '0')
	case b == ' ':
		return 36
	default:
		return uint32(b-'A') + 10
	}
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return b >= 'A' && b <= 'Z' }
func isField(b byte) bool  { return b >= 'A' && b <= 'R' }
