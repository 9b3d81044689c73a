// Package tone synthesizes the fixed two-tone vibrotactile waveform
// segments that carry the translated sensation.
package tone

import "math"

// The two carrier frequencies. Their superposition produces a beat that
// the skin perceives as roughness; the amplitude split between them
// controls how rough the mix feels.
const (
	Freq1 = 175.0 // Hz
	Freq2 = 210.0 // Hz
)

// Synthesize produces n samples of a1·sin(2π·Freq1·t) + a2·sin(2π·Freq2·t)
// at the given sample rate. The phase restarts at zero for every call;
// segments are independently phased on purpose, matching block-wise
// non-overlapping synthesis.
func Synthesize(a1, a2 float64, n int, sampleRate float64) []float64 {
	seg := make([]float64, n)
	if a1 == 0 && a2 == 0 {
		return seg
	}
	w1 := 2 * math.Pi * Freq1 / sampleRate
	w2 := 2 * math.Pi * Freq2 / sampleRate
	for i := range seg {
		t := float64(i)
		seg[i] = a1*math.Sin(w1*t) + a2*math.Sin(w2*t)
	}
	return seg
}
