package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Forward.Dx <= 0 {
		t.Error("dx should be positive")
	}
	if cfg.Forward.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Forward.XMax <= cfg.Forward.XMin {
		t.Error("x_max should exceed x_min")
	}
	if cfg.Walk.Process != "brownian" {
		t.Errorf("expected default process brownian, got %s", cfg.Walk.Process)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Forward.Diffusion = 0.75
	cfg.Walk.Trials = 42
	cfg.Seed = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Forward.Diffusion != 0.75 {
		t.Errorf("diffusion = %g; want 0.75", loaded.Forward.Diffusion)
	}
	if loaded.Walk.Trials != 42 {
		t.Errorf("trials = %d; want 42", loaded.Walk.Trials)
	}
	if loaded.Seed != 7 {
		t.Errorf("seed = %d; want 7", loaded.Seed)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	data := []byte("forward:\n  diffusion: 0.9\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Forward.Diffusion != 0.9 {
		t.Errorf("diffusion = %g; want 0.9", cfg.Forward.Diffusion)
	}
	if cfg.Walk.Process != "brownian" {
		t.Error("unset fields should keep defaults")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("diffusion")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Forward.Diffusion != 0.5 {
		t.Errorf("expected diffusion 0.5, got %f", cfg.Forward.Diffusion)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}
