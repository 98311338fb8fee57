package thermo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Composition conversions between mass fractions (Y) and mole fractions
// (X), both dense vectors in registry order. Every entry point normalizes
// its result to sum 1; the normalization policy is uniform across vector
// and map inputs.

// MassToMole converts mass fractions to mole fractions.
func MassToMole(reg *Registry, Y []float64) ([]float64, error) {
	if err := checkVector(reg, Y); err != nil {
		return nil, err
	}
	X := make([]float64, len(Y))
	for i := range Y {
		X[i] = Y[i] / reg.At(i).MW
	}
	if err := Normalize(X); err != nil {
		return nil, err
	}
	return X, nil
}

// MoleToMass converts mole fractions to mass fractions.
func MoleToMass(reg *Registry, X []float64) ([]float64, error) {
	if err := checkVector(reg, X); err != nil {
		return nil, err
	}
	Y := make([]float64, len(X))
	for i := range X {
		Y[i] = X[i] * reg.At(i).MW
	}
	if err := Normalize(Y); err != nil {
		return nil, err
	}
	return Y, nil
}

// FromMap expands a sparse name->fraction mapping to a dense normalized
// vector in registry order. Names absent from the registry are an error;
// species absent from the map get zero.
func FromMap(reg *Registry, m map[string]float64) ([]float64, error) {
	v := make([]float64, reg.Len())
	for name, f := range m {
		i, err := reg.Lookup(name)
		if err != nil {
			return nil, err
		}
		if f < 0 {
			return nil, fmt.Errorf("%w: %q has negative fraction %g", ErrInvalidComposition, name, f)
		}
		v[i] = f
	}
	if err := Normalize(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Normalize scales v in place so it sums to 1.
func Normalize(v []float64) error {
	sum := floats.Sum(v)
	if sum <= 0 {
		return fmt.Errorf("%w: fractions sum to %g", ErrInvalidComposition, sum)
	}
	floats.Scale(1/sum, v)
	return nil
}

// MixtureMW returns the mixture molecular weight in g/mol for mass
// fractions Y: 1 / sum(Y_i / MW_i).
func MixtureMW(reg *Registry, Y []float64) float64 {
	inv := 0.0
	for i := range Y {
		inv += Y[i] / reg.At(i).MW
	}
	return 1 / inv
}

func checkVector(reg *Registry, v []float64) error {
	if len(v) != reg.Len() {
		return fmt.Errorf("%w: got %d fractions for %d species", ErrInvalidComposition, len(v), reg.Len())
	}
	for i, f := range v {
		if f < 0 {
			return fmt.Errorf("%w: %q has negative fraction %g", ErrInvalidComposition, reg.At(i).Name, f)
		}
	}
	return nil
}
