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

// HLLD implements the five-wave MHD approximate Riemann solver of §4.3:
// two fast waves, two rotational (Alfven) discontinuities and one
// contact, following Miyoshi & Kusano (2005). When Bx == 0 the Alfven
// branch degenerates: the double-star region collapses directly to the
// star states and tangential magnetic-field components equal the
// upwind cell's.
type HLLD struct{}

const hlldBxTiny = 1e-12

func fastMagnetosonic(rho, p, bx, by, bz, gamma float64) float64 {
	a2 := gamma * p / rho
	b2 := (bx*bx + by*by + bz*bz) / rho
	bx2 := bx * bx / rho
	term := b2 + a2
	disc := term*term - 4*a2*bx2
	if disc < 0 {
		disc = 0
	}
	return math.Sqrt(0.5 * (term + math.Sqrt(disc)))
}

type mhdState struct {
	rho, vx, vy, vz, p, bx, by, bz float64
}

func mhdTotalPressure(s mhdState) float64 {
	return s.p + 0.5*(s.bx*s.bx+s.by*s.by+s.bz*s.bz)
}

func mhdEnergy(s mhdState, gamma float64) float64 {
	return s.p/(gamma-1) + 0.5*s.rho*(s.vx*s.vx+s.vy*s.vy+s.vz*s.vz) + 0.5*(s.bx*s.bx+s.by*s.by+s.bz*s.bz)
}

func mhdFlux(s mhdState, gamma float64) (fRho, fMx, fMy, fMz, fE, fBy, fBz float64) {
	pT := mhdTotalPressure(s)
	e := mhdEnergy(s, gamma)
	vDotB := s.vx*s.bx + s.vy*s.by + s.vz*s.bz
	fRho = s.rho * s.vx
	fMx = s.rho*s.vx*s.vx + pT - s.bx*s.bx
	fMy = s.rho*s.vx*s.vy - s.bx*s.by
	fMz = s.rho*s.vx*s.vz - s.bx*s.bz
	fE = s.vx*(e+pT) - s.bx*vDotB
	fBy = s.vy*s.bx - s.vx*s.by
	fBz = s.vz*s.bx - s.vx*s.bz
	return
}

// ComputeFlux implements riemann.Solver.
func (o *HLLD) ComputeFlux(wl, wr state.Primitive, ph *state.Physics, axis mesh.Axis) state.Conserved {
	gamma := ph.Gamma

	vxL, vyL, vzL := mesh.ToNormal(axis, wl.VelX, wl.VelY, wl.VelZ)
	vxR, vyR, vzR := mesh.ToNormal(axis, wr.VelX, wr.VelY, wr.VelZ)
	bxL, byL, bzL := mesh.ToNormal(axis, wl.Bx, wl.By, wl.Bz)
	bxR, byR, bzR := mesh.ToNormal(axis, wr.Bx, wr.By, wr.Bz)
	bx := 0.5 * (bxL + bxR)

	L := mhdState{rho: wl.Rho, vx: vxL, vy: vyL, vz: vzL, p: utl.Max(wl.Press, ph.PressFloor), bx: bx, by: byL, bz: bzL}
	R := mhdState{rho: wr.Rho, vx: vxR, vy: vyR, vz: vzR, p: utl.Max(wr.Press, ph.PressFloor), bx: bx, by: byR, bz: bzR}

	cfL := fastMagnetosonic(L.rho, L.p, L.bx, L.by, L.bz, gamma)
	cfR := fastMagnetosonic(R.rho, R.p, R.bx, R.by, R.bz, gamma)

	sL := utl.Min(L.vx-cfL, R.vx-cfR)
	sR := utl.Max(L.vx+cfL, R.vx+cfR)

	pTL := mhdTotalPressure(L)
	pTR := mhdTotalPressure(R)
	EL := mhdEnergy(L, gamma)
	ER := mhdEnergy(R, gamma)

	denomSM := (sR-R.vx)*R.rho - (sL-L.vx)*L.rho
	sM := ((sR-R.vx)*R.rho*R.vx - (sL-L.vx)*L.rho*L.vx - pTR + pTL) / denomSM
	pTStar := ((sR-R.vx)*R.rho*pTL - (sL-L.vx)*L.rho*pTR + L.rho*R.rho*(sR-R.vx)*(sL-L.vx)*(R.vx-L.vx)) / denomSM

	starSide := func(s mhdState, sK float64) (rhoS, vyS, vzS, byS, bzS, eS float64) {
		dK := sK - s.vx
		rhoS = s.rho * dK / (sK - sM)
		denom := s.rho*dK*(sK-sM) - bx*bx
		if math.Abs(bx) < hlldBxTiny || math.Abs(denom) < hlldBxTiny {
			vyS, vzS = s.vy, s.vz
			byS, bzS = s.by, s.bz
		} else {
			vyS = s.vy - bx*s.by*(sM-s.vx)/denom
			vzS = s.vz - bx*s.bz*(sM-s.vx)/denom
			byS = s.by * (s.rho*dK*dK - bx*bx) / denom
			bzS = s.bz * (s.rho*dK*dK - bx*bx) / denom
		}
		vDotBK := s.vx*s.bx + s.vy*s.by + s.vz*s.bz
		vDotBS := sM*bx + vyS*byS + vzS*bzS
		e := mhdEnergy(s, gamma)
		eS = (dK*e - mhdTotalPressure(s)*s.vx + pTStar*sM + bx*(vDotBK-vDotBS)) / (sK - sM)
		return
	}

	rhoLs, vyLs, vzLs, byLs, bzLs, eLs := starSide(L, sL)
	rhoRs, vyRs, vzRs, byRs, bzRs, eRs := starSide(R, sR)

	degenerate := math.Abs(bx) < hlldBxTiny
	var sLs, sRs float64
	if degenerate {
		sLs, sRs = sM, sM
	} else {
		sLs = sM - math.Abs(bx)/math.Sqrt(rhoLs)
		sRs = sM + math.Abs(bx)/math.Sqrt(rhoRs)
	}

	flux := func(fRho, fMx, fMy, fMz, fE, fBy, fBz float64) state.Conserved {
		mx, my, mz := mesh.FromNormal(axis, fMx, fMy, fMz)
		bfx, bfy, bfz := mesh.FromNormal(axis, 0, fBy, fBz)
		return state.Conserved{Rho: fRho, MomX: mx, MomY: my, MomZ: mz, Energy: fE, Bx: bfx, By: bfy, Bz: bfz}
	}

	setScalars := func(c *state.Conserved) {
		c.Scalars = upwindScalars(c.Rho, sM, wl.Scalars, wr.Scalars)
		if ph.DualEnergy {
			if sM >= 0 {
				c.Eint = c.Rho * (L.p / (gamma - 1) / L.rho)
			} else {
				c.Eint = c.Rho * (R.p / (gamma - 1) / R.rho)
			}
		}
	}

	var out state.Conserved
	switch {
	case sL >= 0:
		fRho, fMx, fMy, fMz, fE, fBy, fBz := mhdFlux(L, gamma)
		out = flux(fRho, fMx, fMy, fMz, fE, fBy, fBz)

	case sR <= 0:
		fRho, fMx, fMy, fMz, fE, fBy, fBz := mhdFlux(R, gamma)
		out = flux(fRho, fMx, fMy, fMz, fE, fBy, fBz)

	case sL <= 0 && 0 <= sLs:
		fRho0, fMx0, fMy0, fMz0, fE0, fBy0, fBz0 := mhdFlux(L, gamma)
		out = flux(
			fRho0+sL*(rhoLs-L.rho),
			fMx0+sL*(rhoLs*sM-L.rho*L.vx),
			fMy0+sL*(rhoLs*vyLs-L.rho*L.vy),
			fMz0+sL*(rhoLs*vzLs-L.rho*L.vz),
			fE0+sL*(eLs-EL),
			fBy0+sL*(byLs-L.by),
			fBz0+sL*(bzLs-L.bz),
		)

	case sRs <= 0 && 0 <= sR:
		fRho0, fMx0, fMy0, fMz0, fE0, fBy0, fBz0 := mhdFlux(R, gamma)
		out = flux(
			fRho0+sR*(rhoRs-R.rho),
			fMx0+sR*(rhoRs*sM-R.rho*R.vx),
			fMy0+sR*(rhoRs*vyRs-R.rho*R.vy),
			fMz0+sR*(rhoRs*vzRs-R.rho*R.vz),
			fE0+sR*(eRs-ER),
			fBy0+sR*(byRs-R.by),
			fBz0+sR*(bzRs-R.bz),
		)

	case sLs <= 0 && 0 <= sM:
		// left double-star region
		sqrtRhoLs := math.Sqrt(rhoLs)
		sqrtRhoRs := math.Sqrt(rhoRs)
		signBx := math.Copysign(1, bx)
		denom := sqrtRhoLs + sqrtRhoRs
		vyss := (sqrtRhoLs*vyLs + sqrtRhoRs*vyRs + (byRs-byLs)*signBx) / denom
		vzss := (sqrtRhoLs*vzLs + sqrtRhoRs*vzRs + (bzRs-bzLs)*signBx) / denom
		byss := (sqrtRhoLs*byRs + sqrtRhoRs*byLs + sqrtRhoLs*sqrtRhoRs*(vyRs-vyLs)*signBx) / denom
		bzss := (sqrtRhoLs*bzRs + sqrtRhoRs*bzLs + sqrtRhoLs*sqrtRhoRs*(vzRs-vzLs)*signBx) / denom
		vDotBLs := sM*bx + vyLs*byLs + vzLs*bzLs
		vDotBss := sM*bx + vyss*byss + vzss*bzss
		eLss := eLs - sqrtRhoLs*signBx*(vDotBLs-vDotBss)

		fRho0, fMx0, fMy0, fMz0, fE0, fBy0, fBz0 := mhdFlux(L, gamma)
		fLsRho := fRho0 + sL*(rhoLs-L.rho)
		fLsMx := fMx0 + sL*(rhoLs*sM-L.rho*L.vx)
		fLsMy := fMy0 + sL*(rhoLs*vyLs-L.rho*L.vy)
		fLsMz := fMz0 + sL*(rhoLs*vzLs-L.rho*L.vz)
		fLsE := fE0 + sL*(eLs-EL)
		fLsBy := fBy0 + sL*(byLs-L.by)
		fLsBz := fBz0 + sL*(bzLs-L.bz)

		out = flux(
			fLsRho+sLs*(rhoLs-rhoLs),
			fLsMx+sLs*(rhoLs*sM-rhoLs*sM),
			fLsMy+sLs*(rhoLs*vyss-rhoLs*vyLs),
			fLsMz+sLs*(rhoLs*vzss-rhoLs*vzLs),
			fLsE+sLs*(eLss-eLs),
			fLsBy+sLs*(byss-byLs),
			fLsBz+sLs*(bzss-bzLs),
		)

	default:
		// right double-star region (sM <= 0 <= sRs)
		sqrtRhoLs := math.Sqrt(rhoLs)
		sqrtRhoRs := math.Sqrt(rhoRs)
		signBx := math.Copysign(1, bx)
		denom := sqrtRhoLs + sqrtRhoRs
		vyss := (sqrtRhoLs*vyLs + sqrtRhoRs*vyRs + (byRs-byLs)*signBx) / denom
		vzss := (sqrtRhoLs*vzLs + sqrtRhoRs*vzRs + (bzRs-bzLs)*signBx) / denom
		byss := (sqrtRhoLs*byRs + sqrtRhoRs*byLs + sqrtRhoLs*sqrtRhoRs*(vyRs-vyLs)*signBx) / denom
		bzss := (sqrtRhoLs*bzRs + sqrtRhoRs*bzLs + sqrtRhoLs*sqrtRhoRs*(vzRs-vzLs)*signBx) / denom
		vDotBRs := sM*bx + vyRs*byRs + vzRs*bzRs
		vDotBss := sM*bx + vyss*byss + vzss*bzss
		eRss := eRs + sqrtRhoRs*signBx*(vDotBRs-vDotBss)

		fRho0, fMx0, fMy0, fMz0, fE0, fBy0, fBz0 := mhdFlux(R, gamma)
		fRsRho := fRho0 + sR*(rhoRs-R.rho)
		fRsMx := fMx0 + sR*(rhoRs*sM-R.rho*R.vx)
		fRsMy := fMy0 + sR*(rhoRs*vyRs-R.rho*R.vy)
		fRsMz := fMz0 + sR*(rhoRs*vzRs-R.rho*R.vz)
		fRsE := fE0 + sR*(eRs-ER)
		fRsBy := fBy0 + sR*(byRs-R.by)
		fRsBz := fBz0 + sR*(bzRs-R.bz)

		out = flux(
			fRsRho+sRs*(rhoRs-rhoRs),
			fRsMx+sRs*(rhoRs*sM-rhoRs*sM),
			fRsMy+sRs*(rhoRs*vyss-rhoRs*vyRs),
			fRsMz+sRs*(rhoRs*vzss-rhoRs*vzRs),
			fRsE+sRs*(eRss-eRs),
			fRsBy+sRs*(byss-byRs),
			fRsBz+sRs*(bzss-bzRs),
		)
	}

	setScalars(&out)
	return out
}
