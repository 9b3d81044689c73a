// Package haptic turns a buffered mono audio waveform into a
// low-frequency vibrotactile waveform by block-wise perceptual
// translation: each analysis frame's loudness and roughness are mapped
// onto a two-tone mix whose superposition reproduces the felt qualities
// of the sound.
package haptic

import (
	"fmt"
	"math"

	"github.com/MAINAKSAHA07/Audio-Vibration-Rating-Explorer/pkg/audio/norm"
	"github.com/MAINAKSAHA07/Audio-Vibration-Rating-Explorer/pkg/haptic/percept"
	"github.com/MAINAKSAHA07/Audio-Vibration-Rating-Explorer/pkg/haptic/tone"
)

// Translator runs the block pipeline: frame extraction at the input
// rate, perceptual analysis and inversion per frame, tone synthesis and
// placement at the output rate, and a final normalization pass.
//
// A Translator reuses analysis buffers across frames and is not safe
// for concurrent use; independent inputs should each get their own.
type Translator struct {
	params   Params
	content  percept.Content
	analyzer *percept.Analyzer
}

// New creates a Translator for the given content type. Params are
// validated once here; Translate never fails on well-formed input.
func New(content percept.Content, params Params) (*Translator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Translator{
		params:   params,
		content:  content,
		analyzer: percept.NewAnalyzer(params.FrameSize, float64(params.InputRate)),
	}, nil
}

// OutputLength returns the output buffer length for an input of n
// samples: ceil(n · outputRate / inputRate).
func (t *Translator) OutputLength(n int) int {
	return int(math.Ceil(float64(n) * float64(t.params.OutputRate) / float64(t.params.InputRate)))
}

// Translate converts a mono, peak-normalized waveform at the input rate
// into the vibrotactile waveform at the output rate.
//
// The input is split into FrameSize blocks advancing by HopSize, the
// final block zero-padded. Each block is analyzed, mapped, inverted and
// synthesized; the synthesized segment is added into its rate-converted
// placement range, truncated at the buffer end. Placement is additive
// so smaller hops (overlapping blocks) need no special casing. The
// whole buffer then gets one RMS normalization (skipped for near-silent
// output) and a hard clip to [-1, 1].
func (t *Translator) Translate(samples []float64) ([]float64, error) {
	if err := ValidateWaveform(samples); err != nil {
		return nil, err
	}
	p := t.params

	total := t.OutputLength(len(samples))
	out := make([]float64, total)

	rateRatio := float64(p.OutputRate) / float64(p.InputRate)
	segLen := int(math.Round(float64(p.FrameSize) * rateRatio))

	frame := make([]float64, p.FrameSize)
	for start := 0; start < len(samples); start += p.HopSize {
		end := start + p.FrameSize
		if end > len(samples) {
			end = len(samples)
		}
		n := copy(frame, samples[start:end])
		for i := n; i < p.FrameSize; i++ {
			frame[i] = 0
		}

		a1, a2, err := t.frameAmplitudes(frame)
		if err != nil {
			return nil, err
		}

		seg := tone.Synthesize(a1, a2, segLen, float64(p.OutputRate))
		outStart := int(math.Round(float64(start) * rateRatio))
		for i, v := range seg {
			j := outStart + i
			if j >= total {
				break
			}
			out[j] += v
		}
	}

	norm.ToRMS(out, p.TargetRMS, SilenceRMS)
	norm.Clip(out, -1, 1)
	return out, nil
}

// frameAmplitudes runs the per-frame analyze → map → invert chain.
func (t *Translator) frameAmplitudes(frame []float64) (a1, a2 float64, err error) {
	loudness, err := t.analyzer.Loudness(frame, t.content)
	if err != nil {
		return 0, 0, fmt.Errorf("loudness: %w", err)
	}
	roughness, err := t.analyzer.Roughness(frame, t.params.PeakRangeDB)
	if err != nil {
		return 0, 0, fmt.Errorf("roughness: %w", err)
	}
	iv, rv := percept.Targets(loudness, roughness, t.content)
	a1, a2 = percept.Amplitudes(iv, rv)
	return a1, a2, nil
}
