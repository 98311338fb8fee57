package config

import "sort"

// Presets are named gas compositions by mole fraction.
var Presets = map[string]map[string]float64{
	"air": {
		"N2":  0.78084,
		"O2":  0.209476,
		"Ar":  0.009365,
		"CO2": 0.000319,
	},
	"humid-air": {
		"N2":  0.765,
		"O2":  0.205,
		"Ar":  0.009,
		"H2O": 0.021,
	},
	// stoichiometric methane/air combustion products
	"flue-gas": {
		"CO2": 0.0951,
		"H2O": 0.1901,
		"N2":  0.7148,
	},
	"syngas": {
		"H2": 0.5,
		"CO": 0.5,
	},
	"methane": {
		"CH4": 1.0,
	},
	"nitrogen": {
		"N2": 1.0,
	},
	"co2": {
		"CO2": 1.0,
	},
}

// GetPreset returns the mole fractions of a named preset, or nil.
func GetPreset(name string) map[string]float64 {
	m, ok := Presets[name]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
