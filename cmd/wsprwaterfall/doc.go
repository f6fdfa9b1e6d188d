// Command wsprwaterfall converts WAV recordings to STFT waterfall images (PNG).
//
// This tool renders the 1400-1500 Hz band of a recording over time, one image
// column per STFT frame, so the four WSPR tones show up as horizontal traces.
//
// Usage:
//
//	wsprwaterfall <wav_file>
//
// The output PNG file will be named <wav_file>.png
package main
