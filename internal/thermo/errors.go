package thermo

import (
	"errors"
	"fmt"
)

// Domain errors for gas-state operations.
var (
	// ErrNotConverged indicates a Newton iteration exhausted its budget.
	ErrNotConverged = errors.New("thermo: solver did not converge")

	// ErrInvalidProcess indicates a process parameter out of range: a
	// pressure ratio on the wrong side of 1 for the requested direction,
	// a non-positive efficiency, or a negative mix ratio.
	ErrInvalidProcess = errors.New("thermo: invalid process parameter")

	// ErrUnknownSpecies indicates a composition referenced a species name
	// absent from the registry.
	ErrUnknownSpecies = errors.New("thermo: unknown species")

	// ErrInvalidComposition indicates a composition vector with the wrong
	// length, a negative entry, or a zero sum.
	ErrInvalidComposition = errors.New("thermo: invalid composition")

	// ErrReadOnlyProperty indicates an attempt to assign a derived quantity
	// that can only be computed, never set.
	ErrReadOnlyProperty = errors.New("thermo: property is read-only")

	// ErrCoefficientRange indicates species coefficient sets that do not
	// bracket the 1000 K switch temperature.
	ErrCoefficientRange = errors.New("thermo: coefficient sets do not cover the range switch")
)

// ConvergenceError reports a failed Newton solve with the last iterate.
// The gas state is left at that iterate and must be treated as unusable.
type ConvergenceError struct {
	Op       string  // "enthalpy" or "entropy function"
	Iters    int
	T        float64 // temperature at the last iterate
	Residual float64 // |h - target| or |phi - target| at the last iterate
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("thermo: %s inversion did not converge after %d iterations (T=%.6g K, residual=%.3g)",
		e.Op, e.Iters, e.T, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNotConverged
}
