package haptic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("DefaultParams invalid: %v", err)
	}
	if p.HopSize != p.FrameSize {
		t.Errorf("default hop = %d, want frame size %d (non-overlapping)", p.HopSize, p.FrameSize)
	}
}

func TestValidateNormalizesZeroHop(t *testing.T) {
	p := DefaultParams()
	p.HopSize = 0
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.HopSize != p.FrameSize {
		t.Errorf("hop = %d, want %d", p.HopSize, p.FrameSize)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero input rate", func(p *Params) { p.InputRate = 0 }},
		{"negative output rate", func(p *Params) { p.OutputRate = -8000 }},
		{"zero frame size", func(p *Params) { p.FrameSize = 0 }},
		{"negative hop", func(p *Params) { p.HopSize = -1 }},
		{"hop beyond frame", func(p *Params) { p.HopSize = 8192 }},
		{"zero peak range", func(p *Params) { p.PeakRangeDB = 0 }},
		{"zero target rms", func(p *Params) { p.TargetRMS = 0 }},
		{"target rms above one", func(p *Params) { p.TargetRMS = 1.5 }},
	}
	for _, c := range cases {
		p := DefaultParams()
		c.mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: Validate succeeded, want error", c.name)
		}
	}
}

func TestLoadParamsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	data := "frame_size: 2048\nhop_size: 1024\ntarget_rms: 0.2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if p.FrameSize != 2048 || p.HopSize != 1024 || p.TargetRMS != 0.2 {
		t.Errorf("loaded params = %+v, want overrides applied", p)
	}
	// Untouched fields keep their defaults.
	if p.InputRate != DefaultInputRate || p.OutputRate != DefaultOutputRate {
		t.Errorf("rates = %d/%d, want defaults %d/%d",
			p.InputRate, p.OutputRate, DefaultInputRate, DefaultOutputRate)
	}
}

func TestLoadParamsRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte("hop_size: 9999\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParams(path); err == nil || !strings.Contains(err.Error(), "hop_size") {
		t.Errorf("LoadParams err = %v, want hop_size validation error", err)
	}
}

func TestLoadParamsMissingFile(t *testing.T) {
	if _, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadParams on missing file succeeded, want error")
	}
}
