// Package synth renders WSPR symbol sequences as 4-FSK audio.
//
// Each symbol becomes one symbol period of a pure sine tone at the centre
// frequency plus the symbol's offset. Phase is taken from the absolute sample
// index, so tones join without a phase reset. Output is 16-bit mono PCM WAV.
package synth
