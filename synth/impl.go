package synth

import (
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// EncodeWav writes samples as mono 16-bit PCM.
func EncodeWav(w io.WriteSeeker, samples []int16, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, 1)

	ints := make([]int, len(samples))
	for i, v := range samples {
		ints[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           ints,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// WriteWav saves samples to a mono 16-bit PCM file.
func WriteWav(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodeWav(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
