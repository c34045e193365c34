package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultXMin     = -2.0
	DefaultXMax     = 2.0
	DefaultDx       = 0.05
	DefaultDt       = 0.001
	DefaultTMax     = 1.0
	DefaultDrift    = 0.0
	DefaultDiff     = 0.5
	DefaultSigma    = 0.3
	DefaultDuration = 5.0
	DefaultTrials   = 1000
)

type Config struct {
	Forward ForwardConfig `yaml:"forward"`
	Walk    WalkConfig    `yaml:"walk"`
	Seed    int64         `yaml:"seed"`
}

// ForwardConfig parameterizes a forward-equation solve with constant
// drift/diffusion and a Gaussian bump initial condition.
type ForwardConfig struct {
	XMin          float64 `yaml:"x_min"`
	XMax          float64 `yaml:"x_max"`
	Dx            float64 `yaml:"dx"`
	Dt            float64 `yaml:"dt"`
	TMax          float64 `yaml:"t_max"`
	Drift         float64 `yaml:"drift"`
	Diffusion     float64 `yaml:"diffusion"`
	InitialMu     float64 `yaml:"initial_mu"`
	InitialSigma  float64 `yaml:"initial_sigma"`
	AllowUnstable bool    `yaml:"allow_unstable"`
}

type WalkConfig struct {
	Process  string  `yaml:"process"`
	X0       float64 `yaml:"x0"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Mu       float64 `yaml:"mu"`
	Sigma    float64 `yaml:"sigma"`
	Theta    float64 `yaml:"theta"`
	Level    float64 `yaml:"level"`
	Trials   int     `yaml:"trials"`
	Sampler  string  `yaml:"sampler"`
}

func DefaultConfig() *Config {
	return &Config{
		Forward: ForwardConfig{
			XMin:         DefaultXMin,
			XMax:         DefaultXMax,
			Dx:           DefaultDx,
			Dt:           DefaultDt,
			TMax:         DefaultTMax,
			Drift:        DefaultDrift,
			Diffusion:    DefaultDiff,
			InitialSigma: DefaultSigma,
		},
		Walk: WalkConfig{
			Process:  "brownian",
			Dt:       0.01,
			Duration: DefaultDuration,
			Sigma:    1.0,
			Theta:    1.0,
			Level:    1.0,
			Trials:   DefaultTrials,
			Sampler:  "box_muller",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
