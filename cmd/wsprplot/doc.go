// Command wsprplot plots the WSPR tone band of a recording.
//
// It takes the first second of a mono WAV file, applies a Hann window and a
// real FFT, and plots the 1400-1500 Hz bins in dB as a PNG line plot.
//
// Usage:
//
//	wsprplot [--input FILE] [--output FILE]
//
// The input defaults to ~/Desktop/wspr_normal.wav and the plot is written to
// wspr_normal_spectrum.png in the current directory.
package main
