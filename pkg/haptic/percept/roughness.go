package percept

import "math"

// Roughness model constants.
const (
	// DefaultPeakRangeDB is how far below the frame's loudest spectral
	// bin a local maximum may sit and still count as a peak.
	DefaultPeakRangeDB = 40.0

	// BandHighRoughnessHz is the upper band edge for peak detection.
	// Roughness always uses the full band, regardless of content type.
	BandHighRoughnessHz = 6400.0

	// Beat-sensitivity term: s = SensScale / (SensSlope·fmin + SensOffset).
	SensScale  = 0.24
	SensSlope  = 0.0207
	SensOffset = 18.96

	// Amplitude weighting exponents for a peak pair: the geometric-mean
	// term is raised to AmpGeoExp, the min/max balance term to AmpBalExp.
	AmpGeoExp = 0.1
	AmpBalExp = 3.11

	// Double-exponential envelope decay rates in the frequency
	// difference between two peaks.
	BeatDecaySlow = 3.5
	BeatDecayFast = 5.75
)

// spectralPeak is a detected local maximum of the frame spectrum.
type spectralPeak struct {
	freq float64 // Hz
	mag  float64 // linear magnitude
}

// Roughness estimates the auditory roughness of one analysis frame as
// the summed pairwise dissonance of its spectral peaks.
//
// Peaks are strict local maxima of the dB spectrum within
// [25, 6400] Hz whose level is within peakRangeDB of the band maximum.
// Every unordered pair of peaks contributes a beat-frequency term; a
// frame with fewer than two peaks has roughness 0. Peak counts are
// small in practice, so the pairwise loop stays quadratic on purpose —
// approximations would change the set of contributing pairs.
func (a *Analyzer) Roughness(frame []float64, peakRangeDB float64) (float64, error) {
	mags, err := a.magnitude(frame)
	if err != nil {
		return 0, err
	}

	// Band-restricted dB spectrum.
	var (
		freqs []float64
		band  []float64
		db    []float64
		maxDB = math.Inf(-1)
	)
	for i, mag := range mags {
		f := a.binFreq(i)
		if f < BandLowHz || f > BandHighRoughnessHz {
			continue
		}
		d := 20 * math.Log10(mag+Epsilon)
		freqs = append(freqs, f)
		band = append(band, mag)
		db = append(db, d)
		if d > maxDB {
			maxDB = d
		}
	}

	thresh := maxDB - peakRangeDB
	var peaks []spectralPeak
	for i := 1; i < len(db)-1; i++ {
		if db[i] > db[i-1] && db[i] > db[i+1] && db[i] >= thresh {
			peaks = append(peaks, spectralPeak{freq: freqs[i], mag: band[i]})
		}
	}
	if len(peaks) < 2 {
		return 0, nil
	}

	r := 0.0
	for i := 0; i < len(peaks); i++ {
		for j := i + 1; j < len(peaks); j++ {
			r += pairDissonance(peaks[i], peaks[j])
		}
	}
	return r, nil
}

// pairDissonance computes the beat-frequency dissonance contribution of
// a single peak pair.
func pairDissonance(p, q spectralPeak) float64 {
	fmin := math.Min(p.freq, q.freq)
	fd := math.Abs(p.freq - q.freq)
	xm := math.Min(p.mag, q.mag)
	xM := math.Max(p.mag, q.mag)

	s := SensScale / (SensSlope*fmin + SensOffset)
	amp := math.Pow(xm*xM, AmpGeoExp) / 2 * math.Pow(2*xm/(xm+xM+Epsilon), AmpBalExp)
	return amp * (math.Exp(-BeatDecaySlow*s*fd) - math.Exp(-BeatDecayFast*s*fd))
}
