// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/dualenergy"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/reconstruct"
	"github.com/hannahjleary/cholla/riemann"
	"github.com/hannahjleary/cholla/state"
)

// VanLeer is the default §4.4 predictor/corrector scheme: a half-step
// (dt/2) unsplit update gives time-centered interface states, which are
// then used to take the full (dt) step from the original state. This is
// the scheme fem.Solver's DynCoefs plays the analogous role for in the
// teacher — a cheap predicted state that makes the real step
// second-order accurate in time.
type VanLeer struct{}

func (o *VanLeer) Advance(grid *mesh.Grid, ph *state.Physics, recon reconstruct.Reconstructor, solver riemann.Solver, ghosts collab.GhostFiller, dt float64) error {
	ghosts.FillGhosts(grid, ph)

	// predictor: half-step update of a scratch copy, built from the
	// divergence of the current (already ghost-filled) state.
	half := grid.Clone()
	predictorDiv := zeroed(grid)
	computeDivergence(grid, ph, recon, solver, predictorDiv)
	applyUpdate(half, ph, predictorDiv, dt/2)

	ghosts.FillGhosts(half, ph)

	// corrector: full-step update of the original state, using fluxes
	// built from the time-centered half-step reconstruction.
	correctorDiv := zeroed(half)
	computeDivergence(half, ph, recon, solver, correctorDiv)
	applyUpdate(grid, ph, correctorDiv, dt)

	if ph.DualEnergy {
		cfg := dualenergy.NewConfig()
		forEachInterior(grid, func(i, j, k int) {
			dualenergy.Select(grid.At(i, j, k), ph, cfg)
		})
	}
	return nil
}
