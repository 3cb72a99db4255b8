// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riemann

import (
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// Exact implements Toro's iterative exact Riemann solver for the Euler
// equations, §4.3: Newton iteration on the pressure function, at most 20
// iterations, converging when 2|p-p_old|/(p+p_old) <= 1e-6. The initial
// guess is PVRS, falling back to a two-shock or two-rarefaction estimate
// depending on the sign of the pressure jump. On non-convergence the last
// iterate is kept (never aborts).
type Exact struct{}

const (
	exactMaxIter = 20
	exactTol     = 1e-6
)

// pressureFunc evaluates f_K(p) and its derivative for one side (Toro §4.3.1).
func pressureFunc(p, rhoK, pK, cK, gamma float64) (f, fprime float64) {
	if p > pK {
		// shock
		aK := 2.0 / ((gamma + 1) * rhoK)
		bK := (gamma - 1) / (gamma + 1) * pK
		f = (p - pK) * math.Sqrt(aK/(p+bK))
		fprime = math.Sqrt(aK/(p+bK)) * (1 - (p-pK)/(2*(p+bK)))
		return
	}
	// rarefaction
	f = 2 * cK / (gamma - 1) * (math.Pow(p/pK, (gamma-1)/(2*gamma)) - 1)
	fprime = 1.0 / (rhoK * cK) * math.Pow(p/pK, -(gamma+1)/(2*gamma))
	return
}

func guessPressure(rhoL, vnL, pL, cL, rhoR, vnR, pR, cR, gamma float64) float64 {
	pPV := 0.5*(pL+pR) - 0.125*(vnR-vnL)*(rhoL+rhoR)*(cL+cR)
	if pPV < 0 {
		pPV = 0
	}
	pMin := utl.Min(pL, pR)
	pMax := utl.Max(pL, pR)
	qMax := pMax / pMin

	if qMax <= 2 && pMin <= pPV && pPV <= pMax {
		return pPV
	}
	if pPV < pMin {
		// two-rarefaction
		z := (gamma - 1) / (2 * gamma)
		p := math.Pow((cL+cR-0.5*(gamma-1)*(vnR-vnL))/(cL/math.Pow(pL, z)+cR/math.Pow(pR, z)), 1/z)
		if p < 0 {
			p = exactTol
		}
		return p
	}
	// two-shock, linearised around pPV
	aL, bL := 2.0/((gamma+1)*rhoL), (gamma-1)/(gamma+1)*pL
	aR, bR := 2.0/((gamma+1)*rhoR), (gamma-1)/(gamma+1)*pR
	gL := math.Sqrt(aL / (pPV + bL))
	gR := math.Sqrt(aR / (pPV + bR))
	p := (gL*pL + gR*pR - (vnR - vnL)) / (gL + gR)
	if p < 0 {
		p = exactTol
	}
	return p
}

// solveStar runs the Newton iteration for the star-region pressure and
// returns (pStar, uStar).
func solveStar(rhoL, vnL, pL, cL, rhoR, vnR, pR, cR, gamma float64) (pStar, uStar float64) {
	p := guessPressure(rhoL, vnL, pL, cL, rhoR, vnR, pR, cR, gamma)
	for iter := 0; iter < exactMaxIter; iter++ {
		fL, fLp := pressureFunc(p, rhoL, pL, cL, gamma)
		fR, fRp := pressureFunc(p, rhoR, pR, cR, gamma)
		f := fL + fR + (vnR - vnL)
		fp := fLp + fRp
		if math.Abs(fp) < num.EPS {
			break
		}
		pNew := p - f/fp
		if pNew < exactTol {
			pNew = exactTol
		}
		if 2*math.Abs(pNew-p)/(pNew+p) <= exactTol {
			p = pNew
			break
		}
		p = pNew
	}
	fL, _ := pressureFunc(p, rhoL, pL, cL, gamma)
	fR, _ := pressureFunc(p, rhoR, pR, cR, gamma)
	pStar = p
	uStar = 0.5*(vnL+vnR) + 0.5*(fR-fL)
	return
}

// sample evaluates the self-similar solution (rho, vn, p) at xi = S/t = 0,
// i.e. along the t-axis through the initial discontinuity.
func sample(rhoL, vnL, pL, cL, rhoR, vnR, pR, cR, gamma, pStar, uStar float64) (rho, vn, p float64) {
	const s = 0.0
	if s <= uStar {
		// left side of the contact
		vn = uStar
		p = pStar
		if pStar > pL {
			// left shock
			rhoStar := rhoL * ((pStar/pL)+(gamma-1)/(gamma+1)) / ((gamma-1)/(gamma+1)*(pStar/pL) + 1)
			shockSpeed := vnL - cL*math.Sqrt((gamma+1)/(2*gamma)*(pStar/pL)+(gamma-1)/(2*gamma))
			if s <= shockSpeed {
				return rhoL, vnL, pL
			}
			return rhoStar, uStar, pStar
		}
		// left rarefaction
		cStarL := cL * math.Pow(pStar/pL, (gamma-1)/(2*gamma))
		headSpeed := vnL - cL
		tailSpeed := uStar - cStarL
		if s <= headSpeed {
			return rhoL, vnL, pL
		}
		if s >= tailSpeed {
			rhoStar := rhoL * math.Pow(pStar/pL, 1/gamma)
			return rhoStar, uStar, pStar
		}
		// inside the fan
		c := 2.0/(gamma+1) + (gamma-1)/((gamma+1)*cL)*(vnL-s)
		rho = rhoL * math.Pow(c, 2/(gamma-1))
		vn = 2.0 / (gamma + 1) * (cL + 0.5*(gamma-1)*vnL + s)
		p = pL * math.Pow(c, 2*gamma/(gamma-1))
		return
	}
	// right side of the contact
	vn = uStar
	p = pStar
	if pStar > pR {
		// right shock
		rhoStar := rhoR * ((pStar/pR)+(gamma-1)/(gamma+1)) / ((gamma-1)/(gamma+1)*(pStar/pR) + 1)
		shockSpeed := vnR + cR*math.Sqrt((gamma+1)/(2*gamma)*(pStar/pR)+(gamma-1)/(2*gamma))
		if s >= shockSpeed {
			return rhoR, vnR, pR
		}
		return rhoStar, uStar, pStar
	}
	// right rarefaction
	cStarR := cR * math.Pow(pStar/pR, (gamma-1)/(2*gamma))
	headSpeed := vnR + cR
	tailSpeed := uStar + cStarR
	if s >= headSpeed {
		return rhoR, vnR, pR
	}
	if s <= tailSpeed {
		rhoStar := rhoR * math.Pow(pStar/pR, 1/gamma)
		return rhoStar, uStar, pStar
	}
	c := 2.0/(gamma+1) - (gamma-1)/((gamma+1)*cR)*(vnR-s)
	rho = rhoR * math.Pow(c, 2/(gamma-1))
	vn = 2.0 / (gamma + 1) * (-cR + 0.5*(gamma-1)*vnR + s)
	p = pR * math.Pow(c, 2*gamma/(gamma-1))
	return
}

// ComputeFlux implements riemann.Solver.
func (o *Exact) ComputeFlux(wl, wr state.Primitive, ph *state.Physics, axis mesh.Axis) state.Conserved {
	gamma := ph.Gamma
	vnL, vt1L, vt2L := mesh.ToNormal(axis, wl.VelX, wl.VelY, wl.VelZ)
	vnR, vt1R, vt2R := mesh.ToNormal(axis, wr.VelX, wr.VelY, wr.VelZ)
	rhoL, pL := wl.Rho, utl.Max(wl.Press, ph.PressFloor)
	rhoR, pR := wr.Rho, utl.Max(wr.Press, ph.PressFloor)
	cL := math.Sqrt(gamma * pL / rhoL)
	cR := math.Sqrt(gamma * pR / rhoR)

	pStar, uStar := solveStar(rhoL, vnL, pL, cL, rhoR, vnR, pR, cR, gamma)
	rho, vn, p := sample(rhoL, vnL, pL, cL, rhoR, vnR, pR, cR, gamma, pStar, uStar)
	p = utl.Max(p, ph.PressFloor)

	var vt1, vt2 float64
	var sl, sr []float64
	if uStar >= 0 {
		vt1, vt2 = vt1L, vt2L
		sl = wl.Scalars
	} else {
		vt1, vt2 = vt1R, vt2R
		sr = wr.Scalars
	}

	fRhoN, fMn, fMt1, fMt2, fE := hllcFluxNormal(rho, vn, vt1, vt2, p, gamma)
	fmx, fmy, fmz := mesh.FromNormal(axis, fMn, fMt1, fMt2)
	flux := state.Conserved{Rho: fRhoN, MomX: fmx, MomY: fmy, MomZ: fmz, Energy: fE}
	flux.Scalars = upwindScalars(fRhoN, uStar, sl, sr)
	if ph.DualEnergy {
		if uStar >= 0 {
			flux.Eint = fRhoN * (pL / (gamma - 1) / rhoL)
		} else {
			flux.Eint = fRhoN * (pR / (gamma - 1) / rhoR)
		}
	}
	return flux
}
