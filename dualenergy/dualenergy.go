// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dualenergy implements the dual-energy pressure-selection rule
// of §4.5: after every update, choose between the total-energy-derived
// pressure and the advected-internal-energy-derived pressure, the way
// mreten's branch models (BrooksCorey.Sl) pick a closed-form branch from
// a threshold on the argument rather than iterating.
package dualenergy

import (
	"github.com/cpmech/gosl/utl"

	"github.com/hannahjleary/cholla/state"
)

// Eta1Default is the default total-energy-fraction threshold below which the
// total-energy-derived pressure is considered ill-conditioned, §9.
const Eta1Default = 1e-3

// Config holds the dual-energy selection thresholds, read once from
// configuration (see param.Map) and shared by every cell update.
type Config struct {
	Eta1 float64 // fraction of E below which p_tot is distrusted
}

// NewConfig returns a Config with the standard default threshold.
func NewConfig() Config {
	return Config{Eta1: Eta1Default}
}

// Select applies §4.5's rule to a single cell: it computes p_tot and
// p_int, decides which one is trustworthy, and returns the chosen
// pressure. When p_tot is used the cell's advected e_int is
// resynchronized to E-K-M so the two representations never drift apart;
// when p_int is used instead, E itself is resynchronized to K+M+e_int.
func Select(u *state.Conserved, ph *state.Physics, cfg Config) float64 {
	vx, vy, vz := u.MomX/u.Rho, u.MomY/u.Rho, u.MomZ/u.Rho
	kin := 0.5 * u.Rho * (vx*vx + vy*vy + vz*vz)
	var mag float64
	if ph.MHD {
		mag = 0.5 * (u.Bx*u.Bx + u.By*u.By + u.Bz*u.Bz)
	}
	eIntFromTotal := u.Energy - kin - mag
	pTot := (ph.Gamma - 1) * eIntFromTotal
	pInt := (ph.Gamma - 1) * u.Eint

	illConditioned := eIntFromTotal < cfg.Eta1*u.Energy
	if illConditioned || pTot < 0 {
		u.Eint = utl.Max(u.Eint, ph.EintFloor)
		pInt = (ph.Gamma - 1) * u.Eint
		u.Energy = kin + mag + u.Eint
		return pInt
	}

	u.Eint = eIntFromTotal
	return pTot
}
