package percept

import "math"

// Loudness model constants.
const (
	// MagnitudeScale scales spectrum magnitudes before dB conversion.
	MagnitudeScale = 1.37

	// ScaleFullBand and BandHighFullBandHz configure the full-band
	// loudness estimate used for game and movie content.
	ScaleFullBand      = 0.065
	BandHighFullBandHz = 6400.0

	// ScaleBass and BandHighBassHz configure the bass-only loudness
	// estimate used for music content.
	ScaleBass      = 1.91
	BandHighBassHz = 200.0
)

// Loudness estimates the auditory loudness of one analysis frame.
//
// Each magnitude bin in the content band is converted to dB as
// 20·log10(MagnitudeScale·mag + Epsilon), divided by the 60-phon
// equal-loudness level at the bin frequency, and summed. The sum is
// scaled by the content constant and clamped to be non-negative.
//
// Game and movie content integrates [25, 6400] Hz; music content is
// driven by bass energy only, [25, 200] Hz.
func (a *Analyzer) Loudness(frame []float64, content Content) (float64, error) {
	scale := ScaleFullBand
	bandHigh := BandHighFullBandHz
	if content == ContentMusic {
		scale = ScaleBass
		bandHigh = BandHighBassHz
	}

	mags, err := a.magnitude(frame)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i, mag := range mags {
		f := a.binFreq(i)
		if f < BandLowHz || f > bandHigh {
			continue
		}
		db := 20 * math.Log10(MagnitudeScale*mag+Epsilon)
		sum += db / EqualLoudness60(f)
	}
	return math.Max(0, scale*sum), nil
}
