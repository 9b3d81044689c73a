package percept

// ISO-226:2003 60-phon equal-loudness contour, 25 control points from
// 25 Hz to 6300 Hz. The SPL values are the sound-pressure levels that
// produce the same perceived loudness as a 60 dB tone at 1 kHz.
var (
	contourFreq = []float64{
		25, 31.5, 40, 50, 63, 80, 100, 125, 160, 200, 250, 315, 400,
		500, 630, 800, 1000, 1250, 1600, 2000, 2500, 3150, 4000, 5000, 6300,
	}
	contourSPL = []float64{
		104.23, 99.08, 94.18, 89.96, 85.94, 82.05, 78.65, 75.56, 72.47,
		69.86, 67.53, 65.39, 63.45, 62.05, 60.81, 59.89, 60.01, 62.15,
		63.19, 59.96, 57.26, 56.42, 57.57, 60.89, 66.36,
	}
)

// EqualLoudness60 returns the 60-phon equal-loudness SPL in dB at the
// given frequency, by piecewise-linear interpolation over the contour
// table. Frequencies outside [25, 6300] Hz clamp to the nearest edge
// value; the contour is flat beyond the table on purpose.
func EqualLoudness60(freqHz float64) float64 {
	n := len(contourFreq)
	if freqHz <= contourFreq[0] {
		return contourSPL[0]
	}
	if freqHz >= contourFreq[n-1] {
		return contourSPL[n-1]
	}
	// Find the segment containing freqHz. The table is tiny, so a
	// linear scan beats anything clever.
	i := 1
	for contourFreq[i] < freqHz {
		i++
	}
	f0, f1 := contourFreq[i-1], contourFreq[i]
	s0, s1 := contourSPL[i-1], contourSPL[i]
	t := (freqHz - f0) / (f1 - f0)
	return s0 + t*(s1-s0)
}
