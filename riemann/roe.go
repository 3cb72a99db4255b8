// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riemann

import (
	"math"

	"github.com/cpmech/gosl/num"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// Roe implements the standard Roe-average linearization with a Harten
// entropy fix applied to the two genuinely nonlinear (acoustic) fields,
// §4.3.
type Roe struct{}

// entropyFix returns |lambda|, corrected near a transonic rarefaction so
// that the acoustic characteristic speed never vanishes inside the fan.
func entropyFix(lambdaTilde, lambdaL, lambdaR float64) float64 {
	delta := math.Max(0, math.Max(lambdaTilde-lambdaL, lambdaR-lambdaTilde))
	if math.Abs(lambdaTilde) < delta {
		return (lambdaTilde*lambdaTilde + delta*delta) / (2 * delta)
	}
	return math.Abs(lambdaTilde)
}

// ComputeFlux implements riemann.Solver.
func (o *Roe) ComputeFlux(wl, wr state.Primitive, ph *state.Physics, axis mesh.Axis) state.Conserved {
	gamma := ph.Gamma

	vnL, vt1L, vt2L := mesh.ToNormal(axis, wl.VelX, wl.VelY, wl.VelZ)
	vnR, vt1R, vt2R := mesh.ToNormal(axis, wr.VelX, wr.VelY, wr.VelZ)
	rhoL, pL := wl.Rho, math.Max(wl.Press, ph.PressFloor)
	rhoR, pR := wr.Rho, math.Max(wr.Press, ph.PressFloor)

	cL := math.Sqrt(gamma * pL / rhoL)
	cR := math.Sqrt(gamma * pR / rhoR)
	hL := (0.5*rhoL*(vnL*vnL+vt1L*vt1L+vt2L*vt2L) + gamma/(gamma-1)*pL) / rhoL
	hR := (0.5*rhoR*(vnR*vnR+vt1R*vt1R+vt2R*vt2R) + gamma/(gamma-1)*pR) / rhoR

	rt, rt2 := math.Sqrt(rhoL), math.Sqrt(rhoR)
	sum := rt + rt2
	rhoTilde := rt * rt2
	uTilde := (rt*vnL + rt2*vnR) / sum
	vTilde := (rt*vt1L + rt2*vt1R) / sum
	wTilde := (rt*vt2L + rt2*vt2R) / sum
	hTilde := (rt*hL + rt2*hR) / sum
	cTildeSq := (gamma - 1) * (hTilde - 0.5*(uTilde*uTilde+vTilde*vTilde+wTilde*wTilde))
	if cTildeSq < 0 {
		cTildeSq = 0
	}
	cTilde := math.Sqrt(cTildeSq)

	drho := rhoR - rhoL
	du := vnR - vnL
	dv := vt1R - vt1L
	dw := vt2R - vt2L
	dp := pR - pL

	var a1, a2, a3, a4, a5 float64
	if cTilde > num.EPS {
		a2 = drho - dp/cTildeSq
		a1 = (dp - rhoTilde*cTilde*du) / (2 * cTildeSq)
		a5 = (dp + rhoTilde*cTilde*du) / (2 * cTildeSq)
	}
	a3 = rhoTilde * dv
	a4 = rhoTilde * dw

	lam1 := uTilde - cTilde
	lam2 := uTilde
	lam5 := uTilde + cTilde

	lam1L, lam1R := vnL-cL, vnR-cR
	lam5L, lam5R := vnL+cL, vnR+cR

	abs1 := entropyFix(lam1, lam1L, lam1R)
	abs5 := entropyFix(lam5, lam5L, lam5R)
	abs2 := math.Abs(lam2)

	// eigenvectors r1..r5 dotted with |lambda_k| * alpha_k, accumulated
	// directly into the dissipation term (component order: rho, mN, mT1, mT2, E)
	var diss [5]float64
	addWave := func(absLam, alpha float64, r [5]float64) {
		for i := 0; i < 5; i++ {
			diss[i] += absLam * alpha * r[i]
		}
	}
	addWave(abs1, a1, [5]float64{1, lam1, vTilde, wTilde, hTilde - uTilde*cTilde})
	addWave(abs2, a2, [5]float64{1, uTilde, vTilde, wTilde, 0.5 * (uTilde*uTilde + vTilde*vTilde + wTilde*wTilde)})
	addWave(abs2, a3, [5]float64{0, 0, 1, 0, vTilde})
	addWave(abs2, a4, [5]float64{0, 0, 0, 1, wTilde})
	addWave(abs5, a5, [5]float64{1, lam5, vTilde, wTilde, hTilde + uTilde*cTilde})

	fL0, fL1, fL2, fL3, fL4 := hllcFluxNormal(rhoL, vnL, vt1L, vt2L, pL, gamma)
	fR0, fR1, fR2, fR3, fR4 := hllcFluxNormal(rhoR, vnR, vt1R, vt2R, pR, gamma)

	fRhoN := 0.5*(fL0+fR0) - 0.5*diss[0]
	fMn := 0.5*(fL1+fR1) - 0.5*diss[1]
	fMt1 := 0.5*(fL2+fR2) - 0.5*diss[2]
	fMt2 := 0.5*(fL3+fR3) - 0.5*diss[3]
	fE := 0.5*(fL4+fR4) - 0.5*diss[4]

	fmx, fmy, fmz := mesh.FromNormal(axis, fMn, fMt1, fMt2)
	flux := state.Conserved{Rho: fRhoN, MomX: fmx, MomY: fmy, MomZ: fmz, Energy: fE}
	flux.Scalars = upwindScalars(fRhoN, uTilde, wl.Scalars, wr.Scalars)
	if ph.DualEnergy {
		if uTilde >= 0 {
			flux.Eint = fRhoN * (pL / (gamma - 1) / rhoL)
		} else {
			flux.Eint = fRhoN * (pR / (gamma - 1) / rhoR)
		}
	}
	return flux
}
