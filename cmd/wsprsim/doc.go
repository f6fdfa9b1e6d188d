// Command wsprsim builds a pair of WSPR decode test fixtures.
//
// It encodes a callsign, a Maidenhead locator and a power level into the
// 162-symbol WSPR channel sequence, then inverts the sync bit of every
// symbol to get a sequence a compliant decoder must reject. Both sequences
// are written as raw symbol dumps and as 48 kHz 16-bit mono WAV audio.
//
// Usage:
//
//	wsprsim [flags] CALLSIGN GRID POWER_dBm
//
// Output files in the current directory:
//
//	wspr_normal.bits   wspr_normal.wav    (should decode)
//	wspr_altered.bits  wspr_altered.wav   (should NOT decode)
//
// With --rf the symbol frequencies are also listed in wspr_normal.rf and
// wspr_altered.rf. POWER_dBm must be an integer from 0 to 60.
package main
