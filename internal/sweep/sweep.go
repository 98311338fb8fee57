// Package sweep evaluates gas properties over a temperature window,
// producing the tabular results the CLI plots and the storage layer
// persists.
package sweep

import (
	"fmt"

	"github.com/san-kum/gasthermo/internal/thermo"
)

// Point is one sampled state.
type Point struct {
	T     float64 // K
	Cp    float64 // J/(kg K)
	CpT   float64 // J/(kg K^2)
	H     float64 // J/kg
	S     float64 // J/(kg K)
	Gamma float64
	Rho   float64 // kg/m^3
}

// Result is a completed sweep.
type Result struct {
	Pressure float64 // Pa, held constant
	Species  []string
	Y        []float64
	Points   []Point
}

// Columns returns the property column names in Point order after T.
func Columns() []string {
	return []string{"cp", "cp_T", "h", "s", "gamma", "rho"}
}

// Values returns the property values of p in Columns order.
func (p Point) Values() []float64 {
	return []float64{p.Cp, p.CpT, p.H, p.S, p.Gamma, p.Rho}
}

// Run samples n evenly spaced temperatures in [from, to] on a copy of g;
// the input gas is left untouched.
func Run(g *thermo.Gas, from, to float64, n int) (*Result, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep: need at least 2 points, got %d", n)
	}
	if to <= from || from <= 0 {
		return nil, fmt.Errorf("sweep: bad window [%g, %g]", from, to)
	}

	work := g.Clone()
	res := &Result{
		Pressure: work.Pressure(),
		Species:  work.Registry().Names(),
		Y:        work.MassFractions(),
		Points:   make([]Point, n),
	}

	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		work.SetT(from + float64(i)*step)
		res.Points[i] = Point{
			T:     work.Temperature(),
			Cp:    work.Cp(),
			CpT:   work.CpDeriv(),
			H:     work.H(),
			S:     work.S(),
			Gamma: work.Gamma(),
			Rho:   work.Rho(),
		}
	}
	return res, nil
}

// Column extracts one named property as a series, for plotting.
func (r *Result) Column(name string) ([]float64, error) {
	idx := -1
	for i, c := range Columns() {
		if c == name {
			idx = i
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("sweep: unknown property %q", name)
	}
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Values()[idx]
	}
	return out, nil
}

// Temps returns the sampled temperatures.
func (r *Result) Temps() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.T
	}
	return out
}
