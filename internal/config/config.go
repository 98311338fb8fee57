package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTemperature = 298.15
	DefaultPressure    = 101325.0
	DefaultSweepFrom   = 300.0
	DefaultSweepTo     = 2000.0
	DefaultSweepPoints = 100
	DefaultEfficiency  = 1.0
)

// Config describes one CLI run: the working gas, an optional species data
// file, the sweep window for plots, and an optional process chain.
type Config struct {
	Gas         GasConfig       `yaml:"gas"`
	SpeciesFile string          `yaml:"species_file,omitempty"`
	Sweep       SweepConfig     `yaml:"sweep"`
	Processes   []ProcessConfig `yaml:"processes,omitempty"`
}

// GasConfig defines a gas state. Composition comes from a named preset or
// an explicit fraction mapping; exactly one of the three should be set.
type GasConfig struct {
	Preset        string             `yaml:"preset,omitempty"`
	MoleFractions map[string]float64 `yaml:"mole_fractions,omitempty"`
	MassFractions map[string]float64 `yaml:"mass_fractions,omitempty"`
	Temperature   float64            `yaml:"temperature"`
	Pressure      float64            `yaml:"pressure"`
}

// SweepConfig is the temperature window for property sweeps.
type SweepConfig struct {
	From   float64 `yaml:"from"`
	To     float64 `yaml:"to"`
	Points int     `yaml:"points"`
}

// ProcessConfig is one step of a process chain.
type ProcessConfig struct {
	Kind          string     `yaml:"kind"` // compress, expand, mix
	PressureRatio float64    `yaml:"pressure_ratio,omitempty"`
	Efficiency    float64    `yaml:"efficiency,omitempty"`
	Ratio         float64    `yaml:"ratio,omitempty"`
	With          *GasConfig `yaml:"with,omitempty"` // second stream for mix
}

func DefaultConfig() *Config {
	return &Config{
		Gas: GasConfig{
			Preset:      "air",
			Temperature: DefaultTemperature,
			Pressure:    DefaultPressure,
		},
		Sweep: SweepConfig{
			From:   DefaultSweepFrom,
			To:     DefaultSweepTo,
			Points: DefaultSweepPoints,
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

// Composition resolves the gas definition to a fraction mapping and
// whether it is mole-based.
func (g *GasConfig) Composition() (map[string]float64, bool, error) {
	switch {
	case len(g.MoleFractions) > 0:
		return g.MoleFractions, true, nil
	case len(g.MassFractions) > 0:
		return g.MassFractions, false, nil
	case g.Preset != "":
		m := GetPreset(g.Preset)
		if m == nil {
			return nil, false, fmt.Errorf("config: unknown gas preset %q", g.Preset)
		}
		return m, true, nil
	default:
		return nil, false, fmt.Errorf("config: gas needs a preset or a fraction mapping")
	}
}

// Validate checks the sweep window and the process chain.
func (c *Config) Validate() error {
	for i, p := range c.Processes {
		switch p.Kind {
		case "compress", "expand":
			if p.PressureRatio <= 0 {
				return fmt.Errorf("config: process %d: %s needs a positive pressure_ratio", i, p.Kind)
			}
		case "mix":
			if p.With == nil {
				return fmt.Errorf("config: process %d: mix needs a second stream under 'with'", i)
			}
			if p.Ratio < 0 {
				return fmt.Errorf("config: process %d: mix ratio must be >= 0", i)
			}
		default:
			return fmt.Errorf("config: process %d: unknown kind %q", i, p.Kind)
		}
	}
	if c.Sweep.Points < 2 {
		return fmt.Errorf("config: sweep needs at least 2 points")
	}
	if c.Sweep.To <= c.Sweep.From {
		return fmt.Errorf("config: sweep window [%g, %g] is empty", c.Sweep.From, c.Sweep.To)
	}
	return nil
}
