package thermo

import "math"

// Newton iteration budgets and the absolute temperature tolerance.
const (
	iterMaxEnthalpy = 20
	iterMaxPhi      = 25
	tolT            = 1e-12
)

// SetH finds the temperature whose specific enthalpy equals target, J/kg,
// by damped Newton-Raphson warm-started from the current temperature.
// dh/dT = cp by construction of the polynomial model, so the derivative is
// free. Steps in the second half of the iteration budget are scaled by
// i/itermax; an undamped iteration can 2-cycle across the 1000 K
// coefficient switch. On failure the gas is left at the last iterate.
func (g *Gas) SetH(target float64) error {
	for i := 1; i <= iterMaxEnthalpy; i++ {
		dT := (target - g.h) / g.cp
		if i > iterMaxEnthalpy/2 {
			dT *= float64(i) / iterMaxEnthalpy
		}
		// an overshooting step must not leave the positive-T domain
		if g.T+dT <= 0 {
			dT = -g.T / 2
		}
		g.SetT(g.T + dT)
		if math.Abs(dT) <= tolT {
			return nil
		}
	}
	return &ConvergenceError{
		Op:       "enthalpy",
		Iters:    iterMaxEnthalpy,
		T:        g.T,
		Residual: math.Abs(g.h - target),
	}
}

// setPhi finds the temperature whose entropy function equals target,
// J/(kg K). Same damped Newton structure as SetH with dphi/dT = cp/T.
func (g *Gas) setPhi(target float64) error {
	for i := 1; i <= iterMaxPhi; i++ {
		dT := (target - g.phi) * g.T / g.cp
		if i > iterMaxPhi/2 {
			dT *= float64(i) / iterMaxPhi
		}
		if g.T+dT <= 0 {
			dT = -g.T / 2
		}
		g.SetT(g.T + dT)
		if math.Abs(dT) <= tolT {
			return nil
		}
	}
	return &ConvergenceError{
		Op:       "entropy function",
		Iters:    iterMaxPhi,
		T:        g.T,
		Residual: math.Abs(g.phi - target),
	}
}
