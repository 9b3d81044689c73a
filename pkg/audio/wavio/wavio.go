// Package wavio decodes WAV files into mono float64 waveforms and
// encodes mono float64 waveforms as 16-bit PCM WAV.
package wavio

import (
	"fmt"
	"io"
	"math"
	"os"

	riff "github.com/youpy/go-riff"
	wav "github.com/youpy/go-wav"
)

// readChunk is how many samples are pulled per ReadSamples call.
const readChunk = 4096

// ErrUnsupportedLayout is returned for channel layouts that cannot be
// reduced to mono (anything beyond stereo).
var ErrUnsupportedLayout = fmt.Errorf("wavio: unsupported channel layout")

// ReadMono decodes a WAV file into a mono float64 waveform in [-1, 1]
// and returns it with the file's sample rate. Stereo input is averaged
// to mono.
func ReadMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return DecodeMono(f)
}

// DecodeMono decodes WAV data from r. See ReadMono.
func DecodeMono(r riff.RIFFReader) ([]float64, int, error) {
	reader := wav.NewReader(r)
	format, err := reader.Format()
	if err != nil {
		return nil, 0, fmt.Errorf("read wav format: %w", err)
	}
	channels := int(format.NumChannels)
	if channels != 1 && channels != 2 {
		return nil, 0, fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, channels)
	}

	var samples []float64
	for {
		chunk, err := reader.ReadSamples(readChunk)
		for _, s := range chunk {
			v := reader.FloatValue(s, 0)
			if channels == 2 {
				v = (v + reader.FloatValue(s, 1)) / 2
			}
			samples = append(samples, v)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read wav samples: %w", err)
		}
	}
	return samples, int(format.SampleRate), nil
}

// WriteMono encodes a mono float64 waveform as a 16-bit PCM WAV file.
// Samples are expected in [-1, 1]; values outside are clamped to the
// PCM range.
func WriteMono(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := EncodeMono(f, samples, sampleRate); err != nil {
		return err
	}
	return f.Close()
}

// EncodeMono encodes a mono float64 waveform as 16-bit PCM WAV to w.
func EncodeMono(w io.Writer, samples []float64, sampleRate int) error {
	writer := wav.NewWriter(w, uint32(len(samples)), 1, uint32(sampleRate), 16)
	out := make([]wav.Sample, len(samples))
	for i, v := range samples {
		out[i].Values[0] = pcm16(v)
	}
	if err := writer.WriteSamples(out); err != nil {
		return fmt.Errorf("write wav samples: %w", err)
	}
	return nil
}

// pcm16 converts a [-1, 1] float to a clamped 16-bit PCM value.
func pcm16(v float64) int {
	s := int(math.Round(v * math.MaxInt16))
	if s > math.MaxInt16 {
		return math.MaxInt16
	}
	if s < math.MinInt16 {
		return math.MinInt16
	}
	return s
}
