// Package norm provides the amplitude-normalization strategies applied
// around the translation pipeline: peak normalization on input and
// RMS normalization plus clipping on output.
package norm

import (
	"fmt"
	"math"
	"strings"
)

// silenceFloor is the level below which a buffer is treated as silent
// and normalization becomes a no-op instead of a huge gain.
const silenceFloor = 1e-6

// Strategy names an input-normalization strategy.
type Strategy string

const (
	// StrategyPeak scales so the maximum absolute sample is 1.0, with
	// zero headroom and no clamping.
	StrategyPeak Strategy = "peak"
	// StrategyRMS scales to a target RMS level.
	StrategyRMS Strategy = "rms"
)

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyPeak:
		return StrategyPeak, nil
	case StrategyRMS:
		return StrategyRMS, nil
	}
	return "", fmt.Errorf("unknown normalization strategy %q", s)
}

// Peak scales samples in place so the maximum absolute value is 1.0.
// Near-silent buffers are left untouched.
func Peak(samples []float64) {
	peak := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak < silenceFloor {
		return
	}
	gain := 1.0 / peak
	for i := range samples {
		samples[i] *= gain
	}
}

// RMS returns the root-mean-square level of samples, 0 for an empty
// slice.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// ToRMS scales samples in place to the target RMS level. Buffers below
// floor are left untouched; pass a non-positive floor to use the
// package default.
func ToRMS(samples []float64, target, floor float64) {
	if floor <= 0 {
		floor = silenceFloor
	}
	rms := RMS(samples)
	if rms < floor {
		return
	}
	gain := target / rms
	for i := range samples {
		samples[i] *= gain
	}
}

// Clip hard-limits samples in place to [lo, hi].
func Clip(samples []float64, lo, hi float64) {
	for i, v := range samples {
		if v < lo {
			samples[i] = lo
		} else if v > hi {
			samples[i] = hi
		}
	}
}
