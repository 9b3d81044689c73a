package haptic

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/MAINAKSAHA07/Audio-Vibration-Rating-Explorer/pkg/haptic/percept"
)

// Default pipeline parameters.
const (
	// DefaultInputRate is the native sample rate the analysis model was
	// tuned for. Inputs at other rates are resampled before entry.
	DefaultInputRate = 44100
	// DefaultOutputRate is the vibrotactile output sample rate.
	DefaultOutputRate = 8000
	// DefaultFrameSize is the analysis frame length in input samples
	// (~93 ms at 44.1 kHz).
	DefaultFrameSize = 4096
	// DefaultTargetRMS is the RMS the output waveform is normalized to.
	// Conservative, to keep clipping rare while staying perceivable.
	DefaultTargetRMS = 0.15
	// SilenceRMS is the level below which normalization is skipped to
	// avoid amplifying silence into noise (or dividing by zero).
	SilenceRMS = 1e-6
)

// Params holds the tunable pipeline parameters. The perceptual model
// constants themselves are fixed (see pkg/haptic/percept); Params only
// covers the framing, rates, and normalization around the model.
type Params struct {
	// InputRate is the analysis sample rate in Hz.
	InputRate int `yaml:"input_rate"`

	// OutputRate is the vibrotactile sample rate in Hz.
	OutputRate int `yaml:"output_rate"`

	// FrameSize is the analysis frame length in input samples.
	FrameSize int `yaml:"frame_size"`

	// HopSize is the frame advance in input samples. Zero means
	// FrameSize (non-overlapping blocks); smaller values overlap.
	HopSize int `yaml:"hop_size"`

	// PeakRangeDB is the roughness peak-detection range below the
	// frame's spectral maximum.
	PeakRangeDB float64 `yaml:"peak_range_db"`

	// TargetRMS is the output normalization target.
	TargetRMS float64 `yaml:"target_rms"`
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		InputRate:   DefaultInputRate,
		OutputRate:  DefaultOutputRate,
		FrameSize:   DefaultFrameSize,
		HopSize:     DefaultFrameSize,
		PeakRangeDB: percept.DefaultPeakRangeDB,
		TargetRMS:   DefaultTargetRMS,
	}
}

// Validate checks the parameter set for values the pipeline cannot run
// with. A zero HopSize is normalized to FrameSize.
func (p *Params) Validate() error {
	if p.InputRate <= 0 {
		return fmt.Errorf("input_rate must be positive, got %d", p.InputRate)
	}
	if p.OutputRate <= 0 {
		return fmt.Errorf("output_rate must be positive, got %d", p.OutputRate)
	}
	if p.FrameSize <= 0 {
		return fmt.Errorf("frame_size must be positive, got %d", p.FrameSize)
	}
	if p.HopSize == 0 {
		p.HopSize = p.FrameSize
	}
	if p.HopSize < 0 {
		return fmt.Errorf("hop_size must be positive, got %d", p.HopSize)
	}
	if p.HopSize > p.FrameSize {
		return fmt.Errorf("hop_size %d exceeds frame_size %d", p.HopSize, p.FrameSize)
	}
	if p.PeakRangeDB <= 0 {
		return fmt.Errorf("peak_range_db must be positive, got %g", p.PeakRangeDB)
	}
	if p.TargetRMS <= 0 || p.TargetRMS > 1 {
		return fmt.Errorf("target_rms must be in (0, 1], got %g", p.TargetRMS)
	}
	return nil
}

// LoadParams reads a YAML parameter file over the defaults. Fields not
// present in the file keep their default values.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read params: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid params: %w", err)
	}
	return p, nil
}
