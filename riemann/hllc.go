// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riemann

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// HLLC implements the three-wave (left shock, contact, right shock)
// approximate Riemann solver for hydrodynamics, §4.3. Wave speeds follow
// the Davis/Einfeldt estimate built from Roe averages; the middle speed
// S* uses the standard pressure-consistent formula.
type HLLC struct{}

func hllcFluxNormal(rho, vn, vt1, vt2, p, gamma float64) (fRho, fMn, fMt1, fMt2, fE float64) {
	e := p/(gamma-1) + 0.5*rho*(vn*vn+vt1*vt1+vt2*vt2)
	fRho = rho * vn
	fMn = rho*vn*vn + p
	fMt1 = rho * vn * vt1
	fMt2 = rho * vn * vt2
	fE = vn * (e + p)
	return
}

// ComputeFlux implements riemann.Solver.
func (o *HLLC) ComputeFlux(wl, wr state.Primitive, ph *state.Physics, axis mesh.Axis) state.Conserved {
	gamma := ph.Gamma

	vnL, vt1L, vt2L := mesh.ToNormal(axis, wl.VelX, wl.VelY, wl.VelZ)
	vnR, vt1R, vt2R := mesh.ToNormal(axis, wr.VelX, wr.VelY, wr.VelZ)
	rhoL, pL := wl.Rho, wl.Press
	rhoR, pR := wr.Rho, wr.Press

	pL = utl.Max(pL, ph.PressFloor)
	pR = utl.Max(pR, ph.PressFloor)

	cL := math.Sqrt(gamma * pL / rhoL)
	cR := math.Sqrt(gamma * pR / rhoR)

	// Roe averages for the wave-speed estimate
	sqrtRhoL, sqrtRhoR := math.Sqrt(rhoL), math.Sqrt(rhoR)
	sumSqrt := sqrtRhoL + sqrtRhoR
	uTilde := (sqrtRhoL*vnL + sqrtRhoR*vnR) / sumSqrt
	hL := (0.5*rhoL*(vnL*vnL+vt1L*vt1L+vt2L*vt2L) + gamma/(gamma-1)*pL) / rhoL
	hR := (0.5*rhoR*(vnR*vnR+vt1R*vt1R+vt2R*vt2R) + gamma/(gamma-1)*pR) / rhoR
	hTilde := (sqrtRhoL*hL + sqrtRhoR*hR) / sumSqrt
	vAvgSq := uTilde * uTilde
	cTildeSq := (gamma - 1) * (hTilde - 0.5*vAvgSq)
	if cTildeSq < 0 {
		cTildeSq = 0
	}
	cTilde := math.Sqrt(cTildeSq)

	sL := utl.Min(vnL-cL, uTilde-cTilde)
	sR := utl.Max(vnR+cR, uTilde+cTilde)

	eL := pL/(gamma-1) + 0.5*rhoL*(vnL*vnL+vt1L*vt1L+vt2L*vt2L)
	eR := pR/(gamma-1) + 0.5*rhoR*(vnR*vnR+vt1R*vt1R+vt2R*vt2R)

	sM := (pR - pL + rhoL*vnL*(sL-vnL) - rhoR*vnR*(sR-vnR)) / (rhoL*(sL-vnL) - rhoR*(sR-vnR))

	var fRhoN, fMn, fMt1, fMt2, fE float64

	switch {
	case sL >= 0:
		fRhoN, fMn, fMt1, fMt2, fE = hllcFluxNormal(rhoL, vnL, vt1L, vt2L, pL, gamma)
	case sR <= 0:
		fRhoN, fMn, fMt1, fMt2, fE = hllcFluxNormal(rhoR, vnR, vt1R, vt2R, pR, gamma)
	case sM >= 0:
		// left star region
		fL0, fL1, fL2, fL3, fL4 := hllcFluxNormal(rhoL, vnL, vt1L, vt2L, pL, gamma)
		factor := rhoL * (sL - vnL) / (sL - sM)
		uStarRho := factor
		uStarMn := factor * sM
		uStarMt1 := factor * vt1L
		uStarMt2 := factor * vt2L
		uStarE := factor * (eL/rhoL + (sM-vnL)*(sM+pL/(rhoL*(sL-vnL))))
		fRhoN = fL0 + sL*(uStarRho-rhoL)
		fMn = fL1 + sL*(uStarMn-rhoL*vnL)
		fMt1 = fL2 + sL*(uStarMt1-rhoL*vt1L)
		fMt2 = fL3 + sL*(uStarMt2-rhoL*vt2L)
		fE = fL4 + sL*(uStarE-eL)
	default:
		// right star region
		fR0, fR1, fR2, fR3, fR4 := hllcFluxNormal(rhoR, vnR, vt1R, vt2R, pR, gamma)
		factor := rhoR * (sR - vnR) / (sR - sM)
		uStarRho := factor
		uStarMn := factor * sM
		uStarMt1 := factor * vt1R
		uStarMt2 := factor * vt2R
		uStarE := factor * (eR/rhoR + (sM-vnR)*(sM+pR/(rhoR*(sR-vnR))))
		fRhoN = fR0 + sR*(uStarRho-rhoR)
		fMn = fR1 + sR*(uStarMn-rhoR*vnR)
		fMt1 = fR2 + sR*(uStarMt1-rhoR*vt1R)
		fMt2 = fR3 + sR*(uStarMt2-rhoR*vt2R)
		fE = fR4 + sR*(uStarE-eR)
	}

	fmx, fmy, fmz := mesh.FromNormal(axis, fMn, fMt1, fMt2)
	flux := state.Conserved{Rho: fRhoN, MomX: fmx, MomY: fmy, MomZ: fmz, Energy: fE}
	flux.Scalars = upwindScalars(fRhoN, sM, wl.Scalars, wr.Scalars)
	if ph.DualEnergy {
		if sM >= 0 {
			flux.Eint = fRhoN * (pL / (gamma - 1) / rhoL)
		} else {
			flux.Eint = fRhoN * (pR / (gamma - 1) / rhoR)
		}
	}
	return flux
}
