package config

var Presets = map[string]*Config{
	"diffusion": {
		Forward: ForwardConfig{
			XMin: -2, XMax: 2, Dx: 0.05, Dt: 0.001, TMax: 1.0,
			Diffusion: 0.5, InitialSigma: 0.2,
		},
	},
	"advection": {
		Forward: ForwardConfig{
			XMin: -2, XMax: 4, Dx: 0.05, Dt: 0.0005, TMax: 2.0,
			Drift: 1.0, Diffusion: 0.1, InitialSigma: 0.2,
		},
	},
	"sharp_peak": {
		Forward: ForwardConfig{
			XMin: -1, XMax: 1, Dx: 0.02, Dt: 0.0002, TMax: 0.5,
			Diffusion: 0.3, InitialSigma: 0.05,
		},
	},
	"brownian": {
		Walk: WalkConfig{
			Process: "brownian", Dt: 0.01, Duration: 10.0,
			Sigma: 1.0, Trials: 1000, Sampler: "box_muller",
		},
	},
	"ou_reversion": {
		Walk: WalkConfig{
			Process: "ou", X0: 3.0, Dt: 0.01, Duration: 10.0,
			Theta: 2.0, Sigma: 0.3, Trials: 1000, Sampler: "polar",
		},
	},
	"hitting": {
		Walk: WalkConfig{
			Process: "brownian", Dt: 0.001, Duration: 5.0,
			Mu: 0.5, Sigma: 0.2, Level: 1.0, Trials: 2000, Sampler: "box_muller",
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
