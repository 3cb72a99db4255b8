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

// Simple is first-order forward Euler in time: a single unsplit
// flux-divergence evaluation applied over the full step, per §4.4's
// two-step (really one-step) scheme. It exists mainly as the cheap,
// robust fallback when VanLeer's extra reconstruction pass isn't worth
// the cost, or for regression-testing the flux machinery in isolation.
type Simple struct{}

func (o *Simple) Advance(grid *mesh.Grid, ph *state.Physics, recon reconstruct.Reconstructor, solver riemann.Solver, ghosts collab.GhostFiller, dt float64) error {
	ghosts.FillGhosts(grid, ph)

	div := zeroed(grid)
	computeDivergence(grid, ph, recon, solver, div)
	applyUpdate(grid, ph, div, dt)

	if ph.DualEnergy {
		cfg := dualenergy.NewConfig()
		forEachInterior(grid, func(i, j, k int) {
			dualenergy.Select(grid.At(i, j, k), ph, cfg)
		})
	}
	return nil
}
