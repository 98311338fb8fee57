package thermo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// AirMoleFractions is the default dry-air composition by mole fraction.
var AirMoleFractions = map[string]float64{
	"N2":  0.78084,
	"O2":  0.209476,
	"Ar":  0.009365,
	"CO2": 0.000319,
}

// Gas is a mutable ideal-gas mixture state. The independent variables are
// temperature, pressure, and mass-fraction composition; everything else is
// either a cached scalar kept consistent by the setters or a pure getter.
//
// Cached scalars are mass-specific SI: cp and phi in J/(kg K), h in J/kg,
// cpT in J/(kg K^2). Molar variants are available as *Mole getters.
type Gas struct {
	reg *Registry

	T float64 // K
	P float64 // Pa
	Y []float64

	tt TempBasis

	// functions of (T, Y), recomputed together on every T or Y change
	cp  float64
	cpT float64
	h   float64
	phi float64

	// functions of Y only, recomputed on composition change
	mw   float64 // mixture molecular weight, g/mol
	smix float64 // molar mixing entropy -Runiv*sum(Xi ln Xi), J/(mol K)
}

// NewGas returns a gas of dry air at 298.15 K and 101325 Pa. The registry
// must contain the AirMoleFractions species.
func NewGas(reg *Registry) (*Gas, error) {
	return NewGasXMap(reg, AirMoleFractions)
}

// NewGasY returns a gas at 298.15 K and 101325 Pa with the given mass
// fractions.
func NewGasY(reg *Registry, Y []float64) (*Gas, error) {
	g := &Gas{reg: reg, P: PRef, Y: make([]float64, reg.Len())}
	g.tt.Update(TRef)
	g.T = TRef
	if err := g.SetY(Y); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGasXMap returns a gas at 298.15 K and 101325 Pa with composition
// given as a sparse mole-fraction mapping.
func NewGasXMap(reg *Registry, m map[string]float64) (*Gas, error) {
	X, err := FromMap(reg, m)
	if err != nil {
		return nil, err
	}
	Y, err := MoleToMass(reg, X)
	if err != nil {
		return nil, err
	}
	return NewGasY(reg, Y)
}

// Registry returns the species table this gas was built against.
func (g *Gas) Registry() *Registry { return g.reg }

// Clone returns an independent copy sharing the registry.
func (g *Gas) Clone() *Gas {
	c := *g
	c.Y = make([]float64, len(g.Y))
	copy(c.Y, g.Y)
	return &c
}

// recompute re-evaluates every (T, Y)-dependent cached scalar from the
// current basis and composition. Species with zero mass fraction are
// skipped; zero contributes nothing.
func (g *Gas) recompute() {
	var cp, cpT, h, phi float64
	for i, y := range g.Y {
		if y == 0 {
			continue
		}
		sp := g.reg.At(i)
		a := sp.Coeffs(g.T)
		w := y / sp.MW // mol per g of mixture
		cp += w * Cp(&g.tt, a)
		cpT += w * CpDeriv(&g.tt, a)
		h += w * Enthalpy(&g.tt, a)
		phi += w * Phi(&g.tt, a)
	}
	// molar/gram to per-kilogram basis
	g.cp = 1000 * cp
	g.cpT = 1000 * cpT
	g.h = 1000 * h
	g.phi = 1000 * phi
}

// recomputeComposition refreshes the Y-only caches and then the
// (T, Y)-dependent scalars at the current temperature.
func (g *Gas) recomputeComposition() {
	g.mw = MixtureMW(g.reg, g.Y)
	smix := 0.0
	for i, y := range g.Y {
		if y == 0 {
			continue
		}
		x := y / g.reg.At(i).MW * g.mw
		smix -= x * math.Log(x)
	}
	g.smix = Runiv * smix
	g.recompute()
}

// SetT sets the temperature and recomputes the temperature-dependent
// cached scalars. T must be positive: the basis vector takes ln T and
// a non-positive value would poison every cache with NaN.
func (g *Gas) SetT(T float64) {
	if T <= 0 {
		panic(fmt.Sprintf("thermo: non-positive temperature %g", T))
	}
	g.T = T
	g.tt.Update(T)
	g.recompute()
}

// SetP sets the pressure. No cached scalar depends on pressure; entropy
// picks up the new value at read time.
func (g *Gas) SetP(P float64) {
	g.P = P
}

// SetTP sets temperature then pressure.
func (g *Gas) SetTP(T, P float64) {
	g.SetT(T)
	g.SetP(P)
}

// SetY sets the composition from a dense mass-fraction vector in registry
// order. The vector is normalized to sum 1; a copy is taken.
func (g *Gas) SetY(Y []float64) error {
	if err := checkVector(g.reg, Y); err != nil {
		return err
	}
	sum := floats.Sum(Y)
	if sum <= 0 {
		return fmt.Errorf("%w: fractions sum to %g", ErrInvalidComposition, sum)
	}
	g.Y = append(g.Y[:0], Y...)
	floats.Scale(1/sum, g.Y)
	g.recomputeComposition()
	return nil
}

// SetYMap sets the composition from a sparse name->mass-fraction mapping.
func (g *Gas) SetYMap(m map[string]float64) error {
	Y, err := FromMap(g.reg, m)
	if err != nil {
		return err
	}
	return g.SetY(Y)
}

// SetX sets the composition from a dense mole-fraction vector.
func (g *Gas) SetX(X []float64) error {
	Y, err := MoleToMass(g.reg, X)
	if err != nil {
		return err
	}
	return g.SetY(Y)
}

// SetXMap sets the composition from a sparse name->mole-fraction mapping.
func (g *Gas) SetXMap(m map[string]float64) error {
	X, err := FromMap(g.reg, m)
	if err != nil {
		return err
	}
	return g.SetX(X)
}

// AddH shifts the specific enthalpy by dh, J/kg, solving for the matching
// temperature.
func (g *Gas) AddH(dh float64) error {
	return g.SetH(g.h + dh)
}

// SetHP sets specific enthalpy then pressure, so entropy reads reflect
// the final pressure.
func (g *Gas) SetHP(h, P float64) error {
	if err := g.SetH(h); err != nil {
		return err
	}
	g.SetP(P)
	return nil
}

// Temperature returns T in K.
func (g *Gas) Temperature() float64 { return g.T }

// Pressure returns P in Pa.
func (g *Gas) Pressure() float64 { return g.P }

// Cp returns specific heat at constant pressure, J/(kg K).
func (g *Gas) Cp() float64 { return g.cp }

// CpDeriv returns dcp/dT, J/(kg K^2).
func (g *Gas) CpDeriv() float64 { return g.cpT }

// H returns specific enthalpy, J/kg.
func (g *Gas) H() float64 { return g.h }

// Phi returns the specific entropy function, J/(kg K).
func (g *Gas) Phi() float64 { return g.phi }

// MW returns the mixture molecular weight, g/mol.
func (g *Gas) MW() float64 { return g.mw }

// R returns the specific gas constant, J/(kg K).
func (g *Gas) R() float64 { return 1000 * Runiv / g.mw }

// Gamma returns the ratio of specific heats cp/(cp-R).
func (g *Gas) Gamma() float64 { return g.cp / (g.cp - g.R()) }

// Rho returns density, kg/m^3.
func (g *Gas) Rho() float64 { return g.P / (g.R() * g.T) }

// Nu returns specific volume, m^3/kg.
func (g *Gas) Nu() float64 { return 1 / g.Rho() }

// S returns specific entropy, J/(kg K): the cached entropy function plus
// the mixing-entropy term, minus the pressure correction at the current
// pressure. Entropy is never cached so it always reflects the latest P.
func (g *Gas) S() float64 {
	return g.phi + 1000*g.smix/g.mw - g.R()*math.Log(g.P/PRef)
}

// Hf returns the mixture formation enthalpy, J/kg.
func (g *Gas) Hf() float64 {
	hf := 0.0
	for i, y := range g.Y {
		if y == 0 {
			continue
		}
		sp := g.reg.At(i)
		hf += y * sp.Hf / sp.MW
	}
	return 1000 * hf
}

// X returns the mole-fraction vector.
func (g *Gas) X() []float64 {
	X, _ := MassToMole(g.reg, g.Y)
	return X
}

// MassFractions returns a copy of the mass-fraction vector.
func (g *Gas) MassFractions() []float64 {
	Y := make([]float64, len(g.Y))
	copy(Y, g.Y)
	return Y
}

// Molar variants of the specific getters, J/(mol K) and J/mol.

func (g *Gas) CpMole() float64  { return g.cp * g.mw / 1000 }
func (g *Gas) HMole() float64   { return g.h * g.mw / 1000 }
func (g *Gas) PhiMole() float64 { return g.phi * g.mw / 1000 }
func (g *Gas) SMole() float64   { return g.S() * g.mw / 1000 }
func (g *Gas) HfMole() float64  { return g.Hf() * g.mw / 1000 }

// GetParams reports the readable scalar properties by name.
func (g *Gas) GetParams() map[string]float64 {
	return map[string]float64{
		"T": g.T, "P": g.P, "cp": g.cp, "cp_T": g.cpT, "h": g.h,
		"phi": g.phi, "s": g.S(), "MW": g.mw, "gamma": g.Gamma(),
		"R": g.R(), "rho": g.Rho(), "nu": g.Nu(), "hf": g.Hf(),
	}
}

// SetParam assigns an independent property by name. Only T, P, and h are
// assignable; every other property is derived and rejected.
func (g *Gas) SetParam(name string, value float64) error {
	switch name {
	case "T":
		g.SetT(value)
		return nil
	case "P":
		g.SetP(value)
		return nil
	case "h":
		return g.SetH(value)
	case "cp", "cp_T", "phi", "s", "MW", "gamma", "R", "rho", "nu", "hf":
		return fmt.Errorf("%w: %q", ErrReadOnlyProperty, name)
	default:
		return fmt.Errorf("thermo: unknown property %q", name)
	}
}
