package thermo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gasthermo/internal/thermo"
)

func TestSetHIdempotent(t *testing.T) {
	gas := newAir(t)
	gas.SetT(650)

	T := gas.Temperature()
	if err := gas.SetH(gas.H()); err != nil {
		t.Fatalf("SetH: %v", err)
	}
	if math.Abs(gas.Temperature()-T) > 1e-12 {
		t.Errorf("T drifted: %.15f -> %.15f", T, gas.Temperature())
	}
}

func TestSetHRecoversTemperature(t *testing.T) {
	gas := newAir(t)

	gas.SetT(820)
	target := gas.H()

	gas.SetT(300)
	if err := gas.SetH(target); err != nil {
		t.Fatalf("SetH: %v", err)
	}

	if math.Abs(gas.Temperature()-820) > 1e-6 {
		t.Errorf("recovered T = %.9f, want 820", gas.Temperature())
	}
	if math.Abs(gas.H()-target) > 1e-6*math.Abs(target) {
		t.Errorf("h = %.6f, want %.6f", gas.H(), target)
	}
}

func TestSetHAcrossRangeSwitch(t *testing.T) {
	gas := newAir(t)

	// target on the far side of the 1000 K coefficient switch
	gas.SetT(1400)
	target := gas.H()

	gas.SetT(400)
	if err := gas.SetH(target); err != nil {
		t.Fatalf("SetH across switch: %v", err)
	}
	if math.Abs(gas.Temperature()-1400) > 1e-6 {
		t.Errorf("recovered T = %.9f, want 1400", gas.Temperature())
	}
}

func TestSetHUnreachableTarget(t *testing.T) {
	gas := newAir(t)

	// a target far below any physical enthalpy: the solver must keep the
	// iterates in the positive-T domain and report non-convergence
	err := gas.SetH(gas.H() - 1e9)
	var convErr *thermo.ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected ConvergenceError, got %v", err)
	}
	if gas.Temperature() <= 0 || math.IsNaN(gas.Temperature()) {
		t.Errorf("solver left T = %g", gas.Temperature())
	}
	if math.IsNaN(gas.Cp()) {
		t.Error("solver poisoned the caches")
	}
}

func TestAddH(t *testing.T) {
	gas := newAir(t)

	h0 := gas.H()
	if err := gas.AddH(50000); err != nil {
		t.Fatalf("AddH: %v", err)
	}
	if math.Abs(gas.H()-h0-50000) > 1e-5 {
		t.Errorf("h shift = %.6f, want 50000", gas.H()-h0)
	}
	if gas.Temperature() <= 298.15 {
		t.Errorf("T should rise with enthalpy, got %.4f", gas.Temperature())
	}
}

func TestSetHP(t *testing.T) {
	gas := newAir(t)

	gas.SetT(500)
	target := gas.H()
	gas.SetT(298.15)

	if err := gas.SetHP(target, 3e5); err != nil {
		t.Fatalf("SetHP: %v", err)
	}
	if math.Abs(gas.Temperature()-500) > 1e-6 {
		t.Errorf("T = %.9f, want 500", gas.Temperature())
	}
	if gas.Pressure() != 3e5 {
		t.Errorf("P = %g, want 3e5", gas.Pressure())
	}
}
