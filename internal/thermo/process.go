package thermo

import (
	"fmt"
	"math"
)

// Compress drives the gas through a polytropic compression with pressure
// ratio pr >= 1 and polytropic efficiency etaPoly in (0, 1]. etaPoly = 1
// is the isentropic limit. The gas is mutated in place and returned.
func Compress(g *Gas, pr, etaPoly float64) (*Gas, error) {
	if pr < 1 {
		return nil, fmt.Errorf("%w: compression needs PR >= 1, got %g (did you mean Expand?)", ErrInvalidProcess, pr)
	}
	if err := checkEta(etaPoly); err != nil {
		return nil, err
	}
	target := g.phi + g.R()*math.Log(pr)/etaPoly
	g.SetP(g.P * pr)
	if err := g.setPhi(target); err != nil {
		return g, err
	}
	return g, nil
}

// Expand drives the gas through a polytropic expansion with pressure
// ratio pr <= 1. The efficiency multiplies the entropy-function drop, so
// an irreversible expansion ends warmer than the isentropic one.
func Expand(g *Gas, pr, etaPoly float64) (*Gas, error) {
	if pr > 1 {
		return nil, fmt.Errorf("%w: expansion needs PR <= 1, got %g (did you mean Compress?)", ErrInvalidProcess, pr)
	}
	if pr <= 0 {
		return nil, fmt.Errorf("%w: pressure ratio must be positive, got %g", ErrInvalidProcess, pr)
	}
	if err := checkEta(etaPoly); err != nil {
		return nil, err
	}
	target := g.phi + g.R()*etaPoly*math.Log(pr)
	g.SetP(g.P * pr)
	if err := g.setPhi(target); err != nil {
		return g, err
	}
	return g, nil
}

// Mix adiabatically blends two streams over compatible registries (same
// species names in the same order). ratio is the
// mass-flow ratio of b to a: composition and specific enthalpy mix as
// (a + ratio*b)/(1 + ratio). The outlet temperature comes from enthalpy
// conservation via SetH; the outlet pressure is the lower of the inlets.
// Both inputs are left untouched.
func Mix(a, b *Gas, ratio float64) (*Gas, error) {
	if !a.reg.Compatible(b.reg) {
		return nil, fmt.Errorf("%w: streams use incompatible registries", ErrInvalidComposition)
	}
	if ratio < 0 {
		return nil, fmt.Errorf("%w: mix ratio must be >= 0, got %g", ErrInvalidProcess, ratio)
	}
	w := 1 / (1 + ratio)
	Y := make([]float64, len(a.Y))
	for i := range Y {
		Y[i] = w * (a.Y[i] + ratio*b.Y[i])
	}
	out, err := NewGasY(a.reg, Y)
	if err != nil {
		return nil, err
	}
	// warm start near the flow-weighted temperature
	out.SetT(w * (a.T + ratio*b.T))
	out.SetP(math.Min(a.P, b.P))
	if err := out.SetH(w * (a.h + ratio*b.h)); err != nil {
		return out, err
	}
	return out, nil
}

func checkEta(eta float64) error {
	if eta <= 0 || eta > 1 {
		return fmt.Errorf("%w: polytropic efficiency must be in (0, 1], got %g", ErrInvalidProcess, eta)
	}
	return nil
}
