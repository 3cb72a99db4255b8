// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

// Physical constants in cgs units, used only to translate a configured
// temperature floor into the internal-energy-density floor state.Physics
// actually enforces.
const (
	boltzmannConstantCGS = 1.380658e-16 // erg / K
	protonMassCGS        = 1.672622e-24 // g
)

// EintFloorFromTemperature converts a temperature floor T_floor (K) to
// the internal-energy-density floor e_floor state.Physics.EintFloor
// expects, §4.6: e_floor = ρ·k_B·T_floor / (μ·m_u·(γ-1)). Since
// state.Physics carries a single scalar floor rather than a per-cell
// one, refRho is the reference density (typically the run's floor or
// characteristic density) the conversion is evaluated at.
func EintFloorFromTemperature(tempFloor, gamma, meanMolWeight, refRho float64) float64 {
	return refRho * boltzmannConstantCGS * tempFloor / (meanMolWeight * protonMassCGS * (gamma - 1))
}

// Temperature returns the temperature (K) corresponding to an internal
// energy density eInt and density rho, the inverse of
// EintFloorFromTemperature's relation.
func Temperature(eInt, rho, gamma, meanMolWeight float64) float64 {
	return eInt * meanMolWeight * protonMassCGS * (gamma - 1) / (rho * boltzmannConstantCGS)
}
