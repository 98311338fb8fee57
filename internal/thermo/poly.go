package thermo

// Molar polynomial evaluators. Each is a branch-free dot product of the
// temperature basis with one 9-coefficient set; they sit on the hot path
// of every state mutation and must not allocate.

// Cp returns molar specific heat at constant pressure, J/(mol K).
func Cp(tt *TempBasis, a *[9]float64) float64 {
	return Runiv * (a[0]*tt[bTm2] + a[1]*tt[bTm1] + a[2] +
		a[3]*tt[bT] + a[4]*tt[bT2] + a[5]*tt[bT3] + a[6]*tt[bT4])
}

// CpDeriv returns dCp/dT, J/(mol K^2).
func CpDeriv(tt *TempBasis, a *[9]float64) float64 {
	return Runiv * (-2*a[0]*tt[bTm2]*tt[bTm1] - a[1]*tt[bTm2] + a[3] +
		2*a[4]*tt[bT] + 3*a[5]*tt[bT2] + 4*a[6]*tt[bT3])
}

// Enthalpy returns molar enthalpy relative to the reference state, J/mol.
func Enthalpy(tt *TempBasis, a *[9]float64) float64 {
	return Runiv * tt[bT] * (-a[0]*tt[bTm2] + a[1]*tt[bTm1]*tt[bLnT] + a[2] +
		a[3]*tt[bT]/2 + a[4]*tt[bT2]/3 + a[5]*tt[bT3]/4 + a[6]*tt[bT4]/5 +
		a[7]*tt[bTm1])
}

// Phi returns the entropy function (standard-state entropy complement),
// J/(mol K). Absolute entropy at pressure P follows from phi at read time.
func Phi(tt *TempBasis, a *[9]float64) float64 {
	return Runiv * (-a[0]*tt[bTm2]/2 - a[1]*tt[bTm1] + a[2]*tt[bLnT] +
		a[3]*tt[bT] + a[4]*tt[bT2]/2 + a[5]*tt[bT3]/3 + a[6]*tt[bT4]/4 +
		a[8])
}
