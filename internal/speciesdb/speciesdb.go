// Package speciesdb loads NASA Glenn polynomial species data into a
// thermo.Registry. A default set covering air, combustion products, and
// light fuels is embedded; alternative data files in the same YAML layout
// can be loaded from disk.
package speciesdb

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gasthermo/internal/thermo"
)

//go:embed species.yaml
var defaultData []byte

type record struct {
	Name string    `yaml:"name"`
	MW   float64   `yaml:"mw"`
	Hf   float64   `yaml:"hf"`
	Tmin float64   `yaml:"tmin"`
	Tmax float64   `yaml:"tmax"`
	Low  []float64 `yaml:"low"`
	High []float64 `yaml:"high"`
}

type dataFile struct {
	Species []record `yaml:"species"`
}

// Default returns the registry built from the embedded species set. The
// embedded data is validated at build time by the package tests, so a
// failure here is a programming error.
func Default() *thermo.Registry {
	reg, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("speciesdb: embedded data invalid: %v", err))
	}
	return reg
}

// Load reads a species data file from disk.
func Load(path string) (*thermo.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a registry from YAML species data, preserving file order.
func Parse(data []byte) (*thermo.Registry, error) {
	var f dataFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("speciesdb: %w", err)
	}
	if len(f.Species) == 0 {
		return nil, fmt.Errorf("speciesdb: no species records")
	}
	species := make([]thermo.Species, len(f.Species))
	for i, rec := range f.Species {
		sp, err := toSpecies(rec)
		if err != nil {
			return nil, err
		}
		species[i] = sp
	}
	return thermo.NewRegistry(species)
}

func toSpecies(rec record) (thermo.Species, error) {
	sp := thermo.Species{
		Name: rec.Name,
		MW:   rec.MW,
		Hf:   rec.Hf,
		Tmin: rec.Tmin,
		Tmax: rec.Tmax,
	}
	if len(rec.Low) != 9 || len(rec.High) != 9 {
		return sp, fmt.Errorf("speciesdb: species %q: want 9 coefficients per range, got %d/%d",
			rec.Name, len(rec.Low), len(rec.High))
	}
	copy(sp.Low[:], rec.Low)
	copy(sp.High[:], rec.High)
	return sp, nil
}
