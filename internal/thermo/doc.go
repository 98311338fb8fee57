// Package thermo computes ideal-gas thermodynamic properties from NASA
// Glenn 9-coefficient polynomials and keeps a mutable gas state consistent
// with its independent variables.
//
// The package defines the core types of the property engine:
//
//   - [Species]: one gas species with its polynomial coefficient sets
//   - [Registry]: ordered, immutable table of species
//   - [TempBasis]: precomputed powers and logarithm of temperature
//   - [Gas]: mutable state (T, P, composition) with cached derived scalars
//
// Mutating temperature, pressure, or composition through the Gas setters
// recomputes every cached scalar that depends on the changed variable, so
// reads are always consistent with the last mutation. Enthalpy targets are
// inverted to temperature with a damped Newton-Raphson solver; Compress,
// Expand and Mix build on that solver.
//
// # Example
//
//	reg := speciesdb.Default()
//	gas, _ := thermo.NewGas(reg)
//	gas.SetTP(900, 5e5)
//	fmt.Println(gas.Cp(), gas.S())
//
// # Thread Safety
//
// A Registry is read-only after construction and safe to share. Gas
// instances are NOT thread-safe; give each goroutine its own instance or
// synchronize externally.
package thermo
