// Package resample converts buffered mono waveforms between sample
// rates using a pure Go resampler (no CGO/FFI dependencies).
package resample

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Convert resamples a mono float64 waveform from srcRate to dstRate Hz.
// Equal rates return the input slice unchanged.
func Convert(samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("resample: invalid rates %d -> %d", srcRate, dstRate)
	}
	if srcRate == dstRate {
		return samples, nil
	}

	config := &resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	}
	r, err := resampling.New(config)
	if err != nil {
		return nil, fmt.Errorf("create resampler: %w", err)
	}

	out, err := r.Process(samples)
	if err != nil {
		return nil, fmt.Errorf("resample %d -> %d: %w", srcRate, dstRate, err)
	}
	return out, nil
}
