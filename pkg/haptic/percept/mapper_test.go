package percept

import (
	"math"
	"testing"
)

func TestTargetsGameBranch(t *testing.T) {
	l, r := 16.0, 4.0
	iv, rv := Targets(l, r, ContentGame)
	want := GainGame*math.Sqrt(l)*r*r - OffsetGame
	if math.Abs(iv-want) > 1e-12 {
		t.Errorf("game iv = %g, want %g", iv, want)
	}
	if rv != RoughnessGain*r {
		t.Errorf("game rv = %g, want %g", rv, RoughnessGain*r)
	}
}

func TestTargetsMusicBranch(t *testing.T) {
	l, r := 50.0, 4.0
	iv, rv := Targets(l, r, ContentMusic)
	want := GainMusic*l - OffsetMusic
	if math.Abs(iv-want) > 1e-12 {
		t.Errorf("music iv = %g, want %g", iv, want)
	}
	// Music shares the roughness scale with game/movie content.
	if rv != RoughnessGain*r {
		t.Errorf("music rv = %g, want %g", rv, RoughnessGain*r)
	}
}

func TestTargetsIntensityNeverNegative(t *testing.T) {
	cases := []struct {
		l, r float64
	}{
		{0, 0}, {0, 10}, {1, 0}, {0.01, 0.01},
		{5, 0.1},  // game: 0.035·sqrt(5)·0.01 << 0.4
		{37, 100}, // music: 3.7 - 3.8 < 0
	}
	for _, c := range cases {
		for _, content := range []Content{ContentGame, ContentMusic} {
			iv, _ := Targets(c.l, c.r, content)
			if iv < 0 {
				t.Errorf("Targets(%g, %g, %v) iv = %g, want >= 0", c.l, c.r, content, iv)
			}
		}
	}
}

func TestAmplitudesSilentIntensity(t *testing.T) {
	for _, iv := range []float64{0, -1, -100} {
		a1, a2 := Amplitudes(iv, 3)
		if a1 != 0 || a2 != 0 {
			t.Errorf("Amplitudes(%g, 3) = (%g, %g), want (0, 0)", iv, a1, a2)
		}
	}
}

// rvForMixRatio constructs the target roughness that makes s the
// smaller quadratic root for the given intensity. Valid for
// s <= RootShift/RootScale.
func rvForMixRatio(s, iv float64) float64 {
	sq := RootShift - RootScale*s
	return RvIntensitySlope*iv + RvOffset + (DiscOffset-sq*sq)/DiscSlope
}

func TestAmplitudesRoundTrip(t *testing.T) {
	for _, s := range []float64{0.05, 0.1, 0.25, 0.4, 0.5} {
		for _, iv := range []float64{0.5, 2, 10} {
			rv := rvForMixRatio(s, iv)
			a1, a2 := Amplitudes(iv, rv)
			total := a1 + a2
			if total <= 0 {
				// Zero total amplitude carries no mix ratio.
				continue
			}
			got := a2 / total
			if math.Abs(got-s) > 1e-9 {
				t.Errorf("Amplitudes(%g, %g): mix ratio = %g, want %g", iv, rv, got, s)
			}
		}
	}
}

func TestAmplitudesFallbackRoot(t *testing.T) {
	// A large intensity with zero roughness puts both roots out of
	// [0, 1]; the mix must fall back to the fixed vertex constant.
	iv, rv := 10.0, 0.0
	a1, a2 := Amplitudes(iv, rv)
	total := a1 + a2
	if total <= 0 {
		t.Fatalf("Amplitudes(%g, %g) = (%g, %g), want tone energy", iv, rv, a1, a2)
	}
	got := a2 / total
	if math.Abs(got-FallbackMixRatio) > 1e-9 {
		t.Errorf("fallback mix ratio = %g, want %g", got, FallbackMixRatio)
	}
}

func TestAmplitudesRoughnessClamp(t *testing.T) {
	iv := 2.0
	rvMax := DiscOffset/DiscSlope + RvIntensitySlope*iv + RvOffset
	a1Max, a2Max := Amplitudes(iv, rvMax)
	a1, a2 := Amplitudes(iv, rvMax+50)
	if a1 != a1Max || a2 != a2Max {
		t.Errorf("over-max roughness not clamped: (%g, %g) != (%g, %g)", a1, a2, a1Max, a2Max)
	}
}

func TestAmplitudesFinite(t *testing.T) {
	for _, iv := range []float64{1e-9, 0.1, 1, 100, 1e6} {
		for _, rv := range []float64{0, 1e-9, 1, 100, 1e6} {
			a1, a2 := Amplitudes(iv, rv)
			if math.IsNaN(a1) || math.IsInf(a1, 0) || math.IsNaN(a2) || math.IsInf(a2, 0) {
				t.Errorf("Amplitudes(%g, %g) = (%g, %g), want finite", iv, rv, a1, a2)
			}
			if a1 < 0 || a2 < 0 {
				t.Errorf("Amplitudes(%g, %g) = (%g, %g), want non-negative", iv, rv, a1, a2)
			}
		}
	}
}
