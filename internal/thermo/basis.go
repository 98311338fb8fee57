package thermo

import "math"

// Basis vector indices.
const (
	bTm2 = iota // T^-2
	bTm1        // T^-1
	bOne        // 1
	bT          // T
	bT2         // T^2
	bT3         // T^3
	bT4         // T^4
	bLnT        // ln T
)

// TempBasis holds the precomputed temperature powers used by every
// polynomial evaluation: [T^-2, T^-1, 1, T, T^2, T^3, T^4, ln T]. A Gas
// owns one and updates it in place on every temperature change, so the
// hot path never allocates.
type TempBasis [8]float64

// NewTempBasis returns the basis vector for temperature T.
func NewTempBasis(T float64) TempBasis {
	var tt TempBasis
	tt.Update(T)
	return tt
}

// Update recomputes the basis in place for temperature T.
func (tt *TempBasis) Update(T float64) {
	inv := 1 / T
	tt[bTm2] = inv * inv
	tt[bTm1] = inv
	tt[bOne] = 1
	tt[bT] = T
	tt[bT2] = T * T
	tt[bT3] = tt[bT2] * T
	tt[bT4] = tt[bT3] * T
	tt[bLnT] = math.Log(T)
}

// T returns the temperature the basis was built from.
func (tt *TempBasis) T() float64 { return tt[bT] }
