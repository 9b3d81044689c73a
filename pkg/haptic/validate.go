package haptic

import (
	"errors"
	"fmt"
	"math"
)

// Input validation errors. These are rejected before pipeline entry;
// the pipeline itself never fails on well-formed finite input.
var (
	// ErrEmptyWaveform is returned for a zero-length input.
	ErrEmptyWaveform = errors.New("haptic: empty waveform")

	// ErrNotFinite is returned when the input contains NaN or Inf.
	ErrNotFinite = errors.New("haptic: waveform contains non-finite samples")
)

// ValidateWaveform checks that a waveform is acceptable pipeline input:
// non-empty and entirely finite.
func ValidateWaveform(samples []float64) error {
	if len(samples) == 0 {
		return ErrEmptyWaveform
	}
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w (first at sample %d)", ErrNotFinite, i)
		}
	}
	return nil
}
