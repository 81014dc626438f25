package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Audio.SampleRate != 22050 {
		t.Errorf("sample rate = %d, want 22050", c.Audio.SampleRate)
	}
	if c.Audio.NumCoeffs != 40 {
		t.Errorf("num coeffs = %d, want 40", c.Audio.NumCoeffs)
	}
	if c.Audio.MaxFrames != 173 {
		t.Errorf("max frames = %d, want 173", c.Audio.MaxFrames)
	}
	if c.Paths.RawDir == "" || c.Paths.OutDir == "" {
		t.Error("default paths must be set")
	}
	if err := c.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of a missing file failed: %v", err)
	}
	if c.Audio.SampleRate != Default().Audio.SampleRate {
		t.Error("missing file did not fall back to defaults")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
pipeline:
  log_level: debug
audio:
  sample_rate: 16000
  max_frames: 99
paths:
  raw_dir: /corpus/raw
  out_dir: /corpus/processed
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Audio.SampleRate != 16000 || c.Audio.MaxFrames != 99 {
		t.Errorf("audio overrides not applied: %+v", c.Audio)
	}
	if c.Audio.NumCoeffs != 40 {
		t.Errorf("untouched field lost its default: %+v", c.Audio)
	}
	if c.Paths.RawDir != "/corpus/raw" || c.Paths.OutDir != "/corpus/processed" {
		t.Errorf("path overrides not applied: %+v", c.Paths)
	}
	if c.Pipeline.LogLvl != "debug" {
		t.Errorf("log level = %q, want debug", c.Pipeline.LogLvl)
	}
}

func TestLoadRejectsBadGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
audio:
  fft_size: 256
  hop_size: 512
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("hop larger than fft accepted, want error")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("audio: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml accepted, want error")
	}
}
