package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Gas.Preset != "air" {
		t.Errorf("expected preset air, got %s", cfg.Gas.Preset)
	}
	if cfg.Gas.Temperature != 298.15 {
		t.Errorf("expected temperature 298.15, got %f", cfg.Gas.Temperature)
	}
	if cfg.Sweep.Points < 2 {
		t.Error("sweep points should be at least 2")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	m := GetPreset("air")
	if m == nil {
		t.Fatal("expected preset, got nil")
	}
	if m["N2"] != 0.78084 {
		t.Errorf("expected N2 0.78084, got %f", m["N2"])
	}

	// returned map is a copy
	m["N2"] = 0
	if Presets["air"]["N2"] != 0.78084 {
		t.Error("GetPreset leaked the internal map")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if m := GetPreset("nonexistent"); m != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	found := false
	for _, n := range names {
		if n == "air" {
			found = true
		}
	}
	if !found {
		t.Error("expected air in preset list")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Gas.Preset = ""
	cfg.Gas.MoleFractions = map[string]float64{"N2": 0.5, "O2": 0.5}
	cfg.Gas.Temperature = 450
	cfg.Processes = []ProcessConfig{
		{Kind: "compress", PressureRatio: 12, Efficiency: 0.9},
		{Kind: "expand", PressureRatio: 0.1, Efficiency: 0.92},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Gas.Temperature != 450 {
		t.Errorf("expected temperature 450, got %f", loaded.Gas.Temperature)
	}
	if loaded.Gas.MoleFractions["O2"] != 0.5 {
		t.Errorf("expected O2 0.5, got %f", loaded.Gas.MoleFractions["O2"])
	}
	if len(loaded.Processes) != 2 {
		t.Fatalf("expected 2 processes, got %d", len(loaded.Processes))
	}
	if loaded.Processes[0].Kind != "compress" || loaded.Processes[0].PressureRatio != 12 {
		t.Errorf("process 0 mangled: %+v", loaded.Processes[0])
	}
}

func TestComposition(t *testing.T) {
	g := GasConfig{Preset: "air"}
	m, mole, err := g.Composition()
	if err != nil {
		t.Fatalf("preset composition: %v", err)
	}
	if !mole || m["N2"] == 0 {
		t.Error("preset should resolve to mole fractions")
	}

	g = GasConfig{MassFractions: map[string]float64{"N2": 1}}
	_, mole, err = g.Composition()
	if err != nil {
		t.Fatalf("mass composition: %v", err)
	}
	if mole {
		t.Error("mass fractions should not report mole basis")
	}

	g = GasConfig{Preset: "nope"}
	if _, _, err := g.Composition(); err == nil {
		t.Error("expected error for unknown preset")
	}

	g = GasConfig{}
	if _, _, err := g.Composition(); err == nil {
		t.Error("expected error for empty gas definition")
	}
}

func TestValidateProcesses(t *testing.T) {
	tests := []struct {
		name string
		proc ProcessConfig
		ok   bool
	}{
		{"compress", ProcessConfig{Kind: "compress", PressureRatio: 10}, true},
		{"compress zero PR", ProcessConfig{Kind: "compress"}, false},
		{"mix without stream", ProcessConfig{Kind: "mix", Ratio: 1}, false},
		{"mix", ProcessConfig{Kind: "mix", Ratio: 1, With: &GasConfig{Preset: "air"}}, true},
		{"unknown", ProcessConfig{Kind: "detonate"}, false},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Processes = []ProcessConfig{tt.proc}
		err := cfg.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
