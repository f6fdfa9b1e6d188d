package spectrum

import (
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func smallWaterfall() *Waterfall {
	return &Waterfall{FrameShift: 2048, FrameLen: 4096, Band: DefaultBand, YReverse: true}
}

func TestWaterfallPeakBin(t *testing.T) {
	w := smallWaterfall()
	g, err := w.Compute(tone(1450, 48000, 48000), 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Freqs) != 9 {
		t.Fatalf("got %d bins, want 9", len(g.Freqs))
	}
	if len(g.DB) == 0 {
		t.Fatal("no frames")
	}
	for i, row := range g.DB {
		f := g.Freqs[floats.MaxIdx(row)]
		if math.Abs(f-1450) > 48000.0/4096 {
			t.Fatalf("frame %d peaks at %v Hz", i, f)
		}
	}
}

func TestWaterfallShortInput(t *testing.T) {
	w := smallWaterfall()
	g, err := w.Compute(tone(1450, 48000, 1000), 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.DB) < 1 {
		t.Errorf("got %d frames, want at least 1", len(g.DB))
	}
	if _, err := w.Compute(nil, 48000); err != ErrNoSamples {
		t.Errorf("empty input: %v", err)
	}
}

func TestWaterfallImage(t *testing.T) {
	w := smallWaterfall()
	samples := tone(1450, 48000, 48000)
	g, _ := w.Compute(samples, 48000)

	img, err := w.Image(samples, 48000)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != len(g.DB) || b.Dy() != len(g.Freqs) {
		t.Errorf("image %dx%d, want %dx%d", b.Dx(), b.Dy(), len(g.DB), len(g.Freqs))
	}
}

func TestToWaterfallWav(t *testing.T) {
	dir := t.TempDir()
	in, _ := writeTestTone(t, dir)
	out := filepath.Join(dir, "wspr_normal.wav.png")
	if err := smallWaterfall().ToWaterfallWav(in, out); err != nil {
		t.Fatal(err)
	}
	if err := smallWaterfall().ToWaterfallWav(filepath.Join(dir, "none.wav"), out); err == nil {
		t.Error("expected an error for a missing input")
	}
}

func TestWaterfallColor(t *testing.T) {
	if got := waterfallColor(0); got != (color.RGBA{0, 0, 26, 255}) {
		t.Errorf("waterfallColor(0) = %v", got)
	}
	if got := waterfallColor(0.9); got != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("waterfallColor(0.9) = %v", got)
	}
	if got := waterfallColor(1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("waterfallColor(1) = %v", got)
	}
	if waterfallColor(-3) != waterfallColor(0) || waterfallColor(7) != waterfallColor(1) {
		t.Error("values outside 0..1 should clamp")
	}
}
