package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Audio struct {
	SampleRate int `yaml:"sample_rate"`
	NumCoeffs  int `yaml:"num_coeffs"`
	NumMels    int `yaml:"num_mels"`
	FFTSize    int `yaml:"fft_size"`
	HopSize    int `yaml:"hop_size"`
	MaxFrames  int `yaml:"max_frames"`
}

type Paths struct {
	RawDir string `yaml:"raw_dir"`
	OutDir string `yaml:"out_dir"`
}

type Root struct {
	Pipeline struct {
		Name   string `yaml:"name"`
		LogLvl string `yaml:"log_level"`
	} `yaml:"pipeline"`
	Audio Audio `yaml:"audio"`
	Paths Paths `yaml:"paths"`
}

// Default returns the built-in run parameters. They match the RAVDESS
// speech corpus layout and the feature geometry the downstream models
// were trained against.
func Default() *Root {
	var c Root
	c.Pipeline.Name = "emoprep"
	c.Pipeline.LogLvl = "info"
	c.Audio = Audio{
		SampleRate: 22050,
		NumCoeffs:  40,
		NumMels:    128,
		FFTSize:    2048,
		HopSize:    512,
		MaxFrames:  173,
	}
	c.Paths = Paths{
		RawDir: filepath.Join("data", "Audio_Speech_Actors_01-24"),
		OutDir: filepath.Join("data", "processed"),
	}
	return &c
}

// Load reads a YAML config from path, applied on top of Default. An
// empty path or a missing file yields the defaults unchanged.
func Load(path string) (*Root, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *Root) validate() error {
	a := c.Audio
	switch {
	case a.SampleRate <= 0:
		return fmt.Errorf("config: sample_rate must be positive, got %d", a.SampleRate)
	case a.NumCoeffs <= 0 || a.NumCoeffs > a.NumMels:
		return fmt.Errorf("config: num_coeffs must be in 1..num_mels, got %d", a.NumCoeffs)
	case a.FFTSize <= 0 || a.HopSize <= 0 || a.HopSize > a.FFTSize:
		return fmt.Errorf("config: bad frame geometry fft=%d hop=%d", a.FFTSize, a.HopSize)
	case a.MaxFrames <= 0:
		return fmt.Errorf("config: max_frames must be positive, got %d", a.MaxFrames)
	}
	return nil
}
