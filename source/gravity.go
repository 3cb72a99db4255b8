// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source implements the §4.6 operator-split source terms
// applied after the integrator's final update: gravitational work on
// momentum and energy, and radiative cooling of the internal energy.
// Both follow mdl/solid/driver.go's style of keeping the production
// differencing as plain array arithmetic and reserving gosl/num's
// derivative helpers for ana-num consistency checks, not the hot path.
package source

import (
	"github.com/cpmech/gosl/chk"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// GravityMode selects how gravitational work is added to the energy
// equation, §4.6.
type GravityMode int

const (
	// CoupleWork adds Δt·ρv·g directly, using the pre-update velocity.
	CoupleWork GravityMode = iota
	// CoupleDeltaKE adds the actual change in kinetic energy the
	// momentum update produced, which stays consistent with the
	// momentum update even when g varies sharply across the step.
	CoupleDeltaKE
)

// GravityConfig holds the tunables read once from configuration.
type GravityConfig struct {
	Mode         GravityMode
	HighAccuracy bool // use the 5-point stencil instead of 3-point
}

// ApplyGravity adds gravitational work to every interior cell of grid
// given the potential phi (one value per ghost-inclusive cell, as
// produced by a collab.GravitySolver), over step dt. HighAccuracy
// requires a ghost width of at least 2.
func ApplyGravity(grid *mesh.Grid, ph *state.Physics, phi []float64, cfg GravityConfig, dt float64) error {
	if cfg.HighAccuracy && grid.Block.Ghost < 2 {
		return chk.Err("source: high-accuracy gravity stencil needs ghost width >= 2, got %d", grid.Block.Ghost)
	}
	if len(phi) != len(grid.Cells) {
		return chk.Err("source: phi has length %d, grid has %d cells", len(phi), len(grid.Cells))
	}

	xlo, xhi := grid.InteriorRange(mesh.X)
	ylo, yhi := grid.InteriorRange(mesh.Y)
	zlo, zhi := grid.InteriorRange(mesh.Z)
	for k := zlo; k < zhi; k++ {
		for j := ylo; j < yhi; j++ {
			for i := xlo; i < xhi; i++ {
				c := grid.At(i, j, k)
				gx := acceleration(grid, phi, i, j, k, mesh.X, cfg.HighAccuracy)
				gy := acceleration(grid, phi, i, j, k, mesh.Y, cfg.HighAccuracy)
				gz := acceleration(grid, phi, i, j, k, mesh.Z, cfg.HighAccuracy)

				vxOld, vyOld, vzOld := c.MomX/c.Rho, c.MomY/c.Rho, c.MomZ/c.Rho
				keOld := 0.5 * c.Rho * (vxOld*vxOld + vyOld*vyOld + vzOld*vzOld)

				c.MomX += dt * c.Rho * gx
				c.MomY += dt * c.Rho * gy
				c.MomZ += dt * c.Rho * gz

				switch cfg.Mode {
				case CoupleWork:
					c.Energy += dt * c.Rho * (vxOld*gx + vyOld*gy + vzOld*gz)
				case CoupleDeltaKE:
					vxNew, vyNew, vzNew := c.MomX/c.Rho, c.MomY/c.Rho, c.MomZ/c.Rho
					keNew := 0.5 * c.Rho * (vxNew*vxNew + vyNew*vyNew + vzNew*vzNew)
					c.Energy += keNew - keOld
				}
			}
		}
	}
	return nil
}

// acceleration returns -dPhi/d(axis) at cell (i,j,k) via a centered
// difference: 3-point by default, 5-point (4th-order) if highAccuracy.
// Axes with extent 1 have no meaningful gradient and return 0.
func acceleration(grid *mesh.Grid, phi []float64, i, j, k int, axis mesh.Axis, highAccuracy bool) float64 {
	if grid.Block.Extent(axis) <= 1 {
		return 0
	}
	dx := grid.Block.Spacing(axis)
	at := func(offset int) float64 {
		oi, oj, ok := i, j, k
		switch axis {
		case mesh.X:
			oi += offset
		case mesh.Y:
			oj += offset
		case mesh.Z:
			ok += offset
		}
		return phi[grid.Index(oi, oj, ok)]
	}
	if !highAccuracy {
		return -(at(1) - at(-1)) / (2 * dx)
	}
	return -(-at(2) + 8*at(1) - 8*at(-1) + at(-2)) / (12 * dx)
}
