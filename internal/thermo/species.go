package thermo

import "fmt"

// TSwitch is the temperature at which evaluation switches from the
// low-range to the high-range coefficient set.
const TSwitch = 1000.0

// Runiv is the universal gas constant in J/(mol K).
const Runiv = 8.314462618

// Reference state for the entropy function.
const (
	TRef = 298.15  // K
	PRef = 101325. // Pa
)

// Species is one gas species with its NASA Glenn 9-coefficient polynomial
// sets. Low is valid below TSwitch, High above; this is validated once at
// registry construction, never per evaluation.
type Species struct {
	Name string
	MW   float64    // molecular weight, g/mol
	Low  [9]float64 // valid Tmin..TSwitch
	High [9]float64 // valid TSwitch..Tmax
	Hf   float64    // formation enthalpy at TRef, J/mol
	Tmin float64    // K
	Tmax float64    // K
}

// Coeffs selects the coefficient set for temperature T.
func (s *Species) Coeffs(T float64) *[9]float64 {
	if T < TSwitch {
		return &s.Low
	}
	return &s.High
}

// Registry is an ordered, immutable species table. Composition vectors are
// indexed in registry order.
type Registry struct {
	species []Species
	index   map[string]int
}

// NewRegistry builds a registry from an ordered species list. Each species
// must have a unique name, a positive molecular weight, and coefficient
// ranges that bracket TSwitch.
func NewRegistry(species []Species) (*Registry, error) {
	r := &Registry{
		species: make([]Species, len(species)),
		index:   make(map[string]int, len(species)),
	}
	for i, sp := range species {
		if sp.MW <= 0 {
			return nil, fmt.Errorf("species %q: molecular weight %g: %w", sp.Name, sp.MW, ErrInvalidComposition)
		}
		if sp.Tmin >= TSwitch || sp.Tmax <= TSwitch {
			return nil, fmt.Errorf("species %q: range [%g, %g]: %w", sp.Name, sp.Tmin, sp.Tmax, ErrCoefficientRange)
		}
		if _, dup := r.index[sp.Name]; dup {
			return nil, fmt.Errorf("species %q: duplicate name", sp.Name)
		}
		r.species[i] = sp
		r.index[sp.Name] = i
	}
	return r, nil
}

// Len returns the number of species.
func (r *Registry) Len() int { return len(r.species) }

// Compatible reports whether two registries index the same species names
// in the same order, so composition vectors are interchangeable between
// them. Registries parsed independently from the same data are compatible.
func (r *Registry) Compatible(other *Registry) bool {
	if r == other {
		return true
	}
	if len(r.species) != len(other.species) {
		return false
	}
	for i := range r.species {
		if r.species[i].Name != other.species[i].Name {
			return false
		}
	}
	return true
}

// At returns the species at registry index i.
func (r *Registry) At(i int) *Species { return &r.species[i] }

// Lookup returns the registry index of name.
func (r *Registry) Lookup(name string) (int, error) {
	i, ok := r.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}
	return i, nil
}

// Names returns the species names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.species))
	for i := range r.species {
		names[i] = r.species[i].Name
	}
	return names
}
