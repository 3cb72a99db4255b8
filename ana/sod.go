// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form reference solutions used to check
// the core pipeline's accuracy (§8): Toro's exact Euler Riemann solver,
// sampled along an arbitrary ray instead of just the interface itself,
// and the standard Brio-Wu MHD shock-tube fiducial values. It keeps
// colpresfluid.go's Init-then-Calc shape (build the star-state once,
// then sample it as many times as the caller needs) but solves a
// different physical problem.
package ana

import (
	"math"

	"github.com/cpmech/gosl/num"
)

const (
	sodMaxIter = 20
	sodTol     = 1e-6
)

// Sod holds one 1-D Euler Riemann problem's left/right states and, once
// Init has run, its star-region solution, following riemann.Exact's
// Newton iteration on the pressure function (Toro §4.3.1) — duplicated
// here rather than imported so the reference solution stays independent
// of the solver it's used to check.
type Sod struct {
	RhoL, VnL, PL float64
	RhoR, VnR, PR float64
	Gamma         float64

	cL, cR       float64
	pStar, uStar float64
}

// Init solves for the star-region pressure and velocity.
func (o *Sod) Init() {
	o.cL = math.Sqrt(o.Gamma * o.PL / o.RhoL)
	o.cR = math.Sqrt(o.Gamma * o.PR / o.RhoR)
	o.pStar, o.uStar = o.solveStar()
}

func (o *Sod) pressureFunc(p, rhoK, pK, cK float64) (f, fprime float64) {
	gamma := o.Gamma
	if p > pK {
		aK := 2.0 / ((gamma + 1) * rhoK)
		bK := (gamma - 1) / (gamma + 1) * pK
		f = (p - pK) * math.Sqrt(aK/(p+bK))
		fprime = math.Sqrt(aK/(p+bK)) * (1 - (p-pK)/(2*(p+bK)))
		return
	}
	f = 2 * cK / (gamma - 1) * (math.Pow(p/pK, (gamma-1)/(2*gamma)) - 1)
	fprime = 1.0 / (rhoK * cK) * math.Pow(p/pK, -(gamma+1)/(2*gamma))
	return
}

func (o *Sod) solveStar() (pStar, uStar float64) {
	p := 0.5 * (o.PL + o.PR)
	if p < sodTol {
		p = sodTol
	}
	for iter := 0; iter < sodMaxIter; iter++ {
		fL, fLp := o.pressureFunc(p, o.RhoL, o.PL, o.cL)
		fR, fRp := o.pressureFunc(p, o.RhoR, o.PR, o.cR)
		f := fL + fR + (o.VnR - o.VnL)
		fp := fLp + fRp
		if math.Abs(fp) < num.EPS {
			break
		}
		pNew := p - f/fp
		if pNew < sodTol {
			pNew = sodTol
		}
		if 2*math.Abs(pNew-p)/(pNew+p) <= sodTol {
			p = pNew
			break
		}
		p = pNew
	}
	fL, _ := o.pressureFunc(p, o.RhoL, o.PL, o.cL)
	fR, _ := o.pressureFunc(p, o.RhoR, o.PR, o.cR)
	pStar = p
	uStar = 0.5*(o.VnL+o.VnR) + 0.5*(fR-fL)
	return
}

// Calc samples the self-similar solution at xi = x/t, returning
// (density, velocity, pressure).
func (o *Sod) Calc(xi float64) (rho, vn, p float64) {
	gamma := o.Gamma
	if xi <= o.uStar {
		vn, p = o.uStar, o.pStar
		if o.pStar > o.PL {
			rhoStar := o.RhoL * ((o.pStar/o.PL)+(gamma-1)/(gamma+1)) / ((gamma-1)/(gamma+1)*(o.pStar/o.PL) + 1)
			shockSpeed := o.VnL - o.cL*math.Sqrt((gamma+1)/(2*gamma)*(o.pStar/o.PL)+(gamma-1)/(2*gamma))
			if xi <= shockSpeed {
				return o.RhoL, o.VnL, o.PL
			}
			return rhoStar, o.uStar, o.pStar
		}
		cStarL := o.cL * math.Pow(o.pStar/o.PL, (gamma-1)/(2*gamma))
		headSpeed := o.VnL - o.cL
		tailSpeed := o.uStar - cStarL
		if xi <= headSpeed {
			return o.RhoL, o.VnL, o.PL
		}
		if xi >= tailSpeed {
			rhoStar := o.RhoL * math.Pow(o.pStar/o.PL, 1/gamma)
			return rhoStar, o.uStar, o.pStar
		}
		c := 2.0/(gamma+1) + (gamma-1)/((gamma+1)*o.cL)*(o.VnL-xi)
		rho = o.RhoL * math.Pow(c, 2/(gamma-1))
		vn = 2.0 / (gamma + 1) * (o.cL + 0.5*(gamma-1)*o.VnL + xi)
		p = o.PL * math.Pow(c, 2*gamma/(gamma-1))
		return
	}
	vn, p = o.uStar, o.pStar
	if o.pStar > o.PR {
		rhoStar := o.RhoR * ((o.pStar/o.PR)+(gamma-1)/(gamma+1)) / ((gamma-1)/(gamma+1)*(o.pStar/o.PR) + 1)
		shockSpeed := o.VnR + o.cR*math.Sqrt((gamma+1)/(2*gamma)*(o.pStar/o.PR)+(gamma-1)/(2*gamma))
		if xi >= shockSpeed {
			return o.RhoR, o.VnR, o.PR
		}
		return rhoStar, o.uStar, o.pStar
	}
	cStarR := o.cR * math.Pow(o.pStar/o.PR, (gamma-1)/(2*gamma))
	headSpeed := o.VnR + o.cR
	tailSpeed := o.uStar + cStarR
	if xi >= headSpeed {
		return o.RhoR, o.VnR, o.PR
	}
	if xi <= tailSpeed {
		rhoStar := o.RhoR * math.Pow(o.pStar/o.PR, 1/gamma)
		return rhoStar, o.uStar, o.pStar
	}
	c := 2.0/(gamma+1) - (gamma-1)/((gamma+1)*o.cR)*(o.VnR-xi)
	rho = o.RhoR * math.Pow(c, 2/(gamma-1))
	vn = 2.0 / (gamma + 1) * (-o.cR + 0.5*(gamma-1)*o.VnR + xi)
	p = o.PR * math.Pow(c, 2*gamma/(gamma-1))
	return
}
