// Command wsprtestwav writes a four-tone test WAV with 50 Hz tone spacing.
//
// The tones (1400, 1450, 1500, 1550 Hz) are far wider apart than real WSPR
// tones so a waterfall or a decoder front end can be checked by eye.
//
// Usage:
//
//	wsprtestwav [-o FILE]
//
// The output defaults to test_wspr.wav.
package main
