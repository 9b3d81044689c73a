package percept

import "math"

// Forward-mapping constants: auditory (L, R) → vibrotactile (Iv, Rv).
const (
	// Game/movie intensity mapping: Iv = GainGame·sqrt(L)·R² − OffsetGame.
	GainGame   = 0.035
	OffsetGame = 0.40

	// Music intensity mapping: Iv = GainMusic·L − OffsetMusic.
	GainMusic   = 0.1
	OffsetMusic = 3.8

	// Vibrotactile roughness scale: Rv = RoughnessGain·R.
	RoughnessGain = 1.0
)

// Inverse-mapping constants. The achievable vibrotactile roughness for a
// given intensity is bounded by a quadratic in the tone-mix ratio S;
// inverting it uses the coefficients below.
const (
	// Discriminant: D = DiscOffset − DiscSlope·(Rv − RvIntensitySlope·Iv − RvOffset).
	DiscOffset       = 801.0
	DiscSlope        = 113.0
	RvIntensitySlope = 0.529
	RvOffset         = 0.479

	// Roots: S = (RootShift ± sqrt(D)) / RootScale.
	RootShift = 28.3
	RootScale = 56.3

	// Total amplitude: A = ((AmpQuad·S² − AmpLin·S + Rv − AmpConst) / AmpDiv)².
	AmpQuad  = 25.8
	AmpLin   = 25.5
	AmpConst = 0.203
	AmpDiv   = 3.98
)

// FallbackMixRatio is the tone-mix ratio used when neither quadratic
// root lies in [0, 1]: the vertex of the quadratic, the nearest
// achievable point when no exact solution exists.
const FallbackMixRatio = RootShift / RootScale

// Targets maps per-frame auditory loudness and roughness to the target
// vibrotactile intensity and roughness. The intensity is clamped to be
// non-negative. Music content uses a linear loudness mapping; game and
// movie content weight loudness by squared roughness.
func Targets(loudness, roughness float64, content Content) (iv, rv float64) {
	if content == ContentMusic {
		iv = GainMusic*loudness - OffsetMusic
	} else {
		iv = GainGame*math.Sqrt(loudness)*roughness*roughness - OffsetGame
	}
	rv = RoughnessGain * roughness
	return math.Max(0, iv), rv
}

// Amplitudes inverts the vibrotactile targets into the amplitudes of
// the two fixed tones.
//
// A non-positive intensity yields a silent frame (0, 0). Otherwise the
// requested roughness is clamped to the maximum achievable for the
// intensity, the quadratic in the tone-mix ratio S is solved with a
// floor at zero on the discriminant, and the smaller in-range root is
// taken. When neither root lies in [0, 1] the mix falls back to
// FallbackMixRatio. The total amplitude A is then split as a2 = A·S,
// a1 = A − a2.
func Amplitudes(iv, rv float64) (a1, a2 float64) {
	if iv <= 0 {
		return 0, 0
	}

	rvMax := DiscOffset/DiscSlope + RvIntensitySlope*iv + RvOffset
	rvAdj := math.Min(rv, rvMax)

	disc := math.Max(0, DiscOffset-DiscSlope*(rvAdj-RvIntensitySlope*iv-RvOffset))
	sq := math.Sqrt(disc)
	r1 := (RootShift + sq) / RootScale
	r2 := (RootShift - sq) / RootScale

	s := FallbackMixRatio
	switch {
	case r2 >= 0 && r2 <= 1:
		s = r2
	case r1 >= 0 && r1 <= 1:
		s = r1
	}

	amp := (AmpQuad*s*s - AmpLin*s + rvAdj - AmpConst) / AmpDiv
	amp *= amp

	a2 = amp * s
	a1 = amp - a2
	return a1, a2
}
