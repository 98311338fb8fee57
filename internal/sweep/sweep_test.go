package sweep

import (
	"testing"

	"github.com/san-kum/gasthermo/internal/speciesdb"
	"github.com/san-kum/gasthermo/internal/thermo"
)

func newAir(t *testing.T) *thermo.Gas {
	t.Helper()
	gas, err := thermo.NewGas(speciesdb.Default())
	if err != nil {
		t.Fatalf("NewGas: %v", err)
	}
	return gas
}

func TestRun(t *testing.T) {
	gas := newAir(t)

	res, err := Run(gas, 300, 1500, 25)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Points) != 25 {
		t.Fatalf("expected 25 points, got %d", len(res.Points))
	}
	if res.Points[0].T != 300 || res.Points[24].T != 1500 {
		t.Errorf("endpoints %f..%f, want 300..1500", res.Points[0].T, res.Points[24].T)
	}

	// enthalpy must be strictly increasing in T
	for i := 1; i < len(res.Points); i++ {
		if res.Points[i].H <= res.Points[i-1].H {
			t.Fatalf("h not increasing at point %d", i)
		}
	}

	// input gas untouched
	if gas.Temperature() != 298.15 {
		t.Errorf("sweep mutated input gas: T = %f", gas.Temperature())
	}
}

func TestRunValidation(t *testing.T) {
	gas := newAir(t)

	if _, err := Run(gas, 300, 600, 1); err == nil {
		t.Error("expected error for 1 point")
	}
	if _, err := Run(gas, 600, 300, 10); err == nil {
		t.Error("expected error for inverted window")
	}
	if _, err := Run(gas, -10, 300, 10); err == nil {
		t.Error("expected error for non-positive start")
	}
}

func TestColumn(t *testing.T) {
	gas := newAir(t)
	res, err := Run(gas, 300, 600, 5)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	cp, err := res.Column("cp")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if len(cp) != 5 {
		t.Fatalf("expected 5 values, got %d", len(cp))
	}
	if cp[0] != res.Points[0].Cp {
		t.Errorf("column value mismatch")
	}

	if _, err := res.Column("nonsense"); err == nil {
		t.Error("expected error for unknown column")
	}
}
