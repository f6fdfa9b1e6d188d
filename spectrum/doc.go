// Package spectrum provides band-limited magnitude spectra and waterfall
// images of recorded WSPR audio.
//
// It supports:
//   - Loading mono WAV recordings with their sample rate
//   - A Hann-windowed real FFT over the first second, restricted to a band
//   - Rendering the band as a labelled line plot (PNG)
//   - STFT waterfall images for checking tone placement over time
package spectrum
