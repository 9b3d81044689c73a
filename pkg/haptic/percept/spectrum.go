package percept

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Epsilon guards log-of-zero and division-by-zero in the estimators
// without perturbing non-degenerate values.
const Epsilon = 1e-12

// BandLowHz is the lower edge of the analysis band for both estimators.
const BandLowHz = 25.0

// Analyzer computes auditory loudness and roughness estimates from
// fixed-size analysis frames at a fixed input sample rate.
//
// The FFT plan and coefficient buffer are reused across frames, so an
// Analyzer is not safe for concurrent use; create one per goroutine.
type Analyzer struct {
	rate   float64
	size   int
	fft    *fourier.FFT
	coeffs []complex128
}

// NewAnalyzer creates an Analyzer for frames of frameSize samples at
// sampleRate Hz.
func NewAnalyzer(frameSize int, sampleRate float64) *Analyzer {
	return &Analyzer{
		rate:   sampleRate,
		size:   frameSize,
		fft:    fourier.NewFFT(frameSize),
		coeffs: make([]complex128, frameSize/2+1),
	}
}

// FrameSize returns the frame length the Analyzer was created for.
func (a *Analyzer) FrameSize() int { return a.size }

// magnitude computes the real-FFT magnitude spectrum of frame. The
// returned slice is owned by the Analyzer and valid until the next call.
// Bin i is centered at i·rate/frameSize Hz.
func (a *Analyzer) magnitude(frame []float64) ([]float64, error) {
	if len(frame) != a.size {
		return nil, fmt.Errorf("frame length %d, analyzer expects %d", len(frame), a.size)
	}
	a.fft.Coefficients(a.coeffs, frame)
	mags := make([]float64, len(a.coeffs))
	for i, c := range a.coeffs {
		mags[i] = cmplx.Abs(c)
	}
	return mags, nil
}

// binFreq returns the center frequency in Hz of FFT bin i.
func (a *Analyzer) binFreq(i int) float64 {
	return float64(i) * a.rate / float64(a.size)
}
