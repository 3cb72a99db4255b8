// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/reconstruct"
	"github.com/hannahjleary/cholla/riemann"
	"github.com/hannahjleary/cholla/state"
)

// computeDivergence sweeps grid along every axis with extent > 1,
// reconstructing interface states and solving the Riemann problem at
// every face, and adds each axis's flux-difference contribution
// (F_{i+1/2} - F_{i-1/2}) / spacing into accum, which must be sized and
// indexed like grid.Cells. accum is not zeroed by this call, so an
// unsplit 3-D update is just three calls in a row into the same slice.
// Ghost cells must already be valid on entry; this is a read-only pass
// over grid.Cells.
func computeDivergence(grid *mesh.Grid, ph *state.Physics, recon reconstruct.Reconstructor, solver riemann.Solver, accum []state.Conserved) {
	for _, axis := range []mesh.Axis{mesh.X, mesh.Y, mesh.Z} {
		if grid.Block.Extent(axis) <= 1 {
			continue
		}
		accumulateAxis(grid, ph, recon, solver, axis, accum)
	}
}

func accumulateAxis(grid *mesh.Grid, ph *state.Physics, recon reconstruct.Reconstructor, solver riemann.Solver, axis mesh.Axis, accum []state.Conserved) {
	lo, hi := grid.InteriorRange(axis)
	spacing := grid.Block.Spacing(axis)
	grid.LinesIndexed(axis, func(idxs []int, cells []state.Conserved) []state.Conserved {
		n := len(cells)
		prims := make([]state.Primitive, n)
		for p := 0; p < n; p++ {
			prims[p] = state.ToPrimitive(cells[p], ph)
		}
		wl, wr := recon.Reconstruct(prims, axis, ph)
		fluxes := make([]state.Conserved, len(wl))
		for i := range wl {
			fluxes[i] = solver.ComputeFlux(wl[i], wr[i], ph, axis)
		}
		// fluxes[p] is the face between cells[p] and cells[p+1], so the
		// two faces bracketing interior cell p are fluxes[p-1], fluxes[p].
		for p := lo; p < hi; p++ {
			d := state.Sub(fluxes[p], fluxes[p-1])
			accum[idxs[p]] = state.AddScaled(accum[idxs[p]], d, 1.0/spacing)
		}
		return nil
	})
}

// zeroed returns a fresh divergence accumulator sized to grid.
func zeroed(grid *mesh.Grid) []state.Conserved {
	nx, ny, nz := grid.Extents()
	return make([]state.Conserved, nx*ny*nz)
}

// applyUpdate sets every interior cell of grid to U - dt*div[idx] and
// applies floors via state.EnforceFloors; the dualenergy.Select pass is
// left to the caller.
func applyUpdate(grid *mesh.Grid, ph *state.Physics, div []state.Conserved, dt float64) {
	forEachInterior(grid, func(i, j, k int) {
		idx := grid.Index(i, j, k)
		u := state.AddScaled(*grid.At(i, j, k), div[idx], -dt)
		state.EnforceFloors(&u, ph)
		*grid.At(i, j, k) = u
	})
}

// forEachInterior calls fn with the ghost-inclusive (i,j,k) coordinates
// of every interior cell of grid.
func forEachInterior(grid *mesh.Grid, fn func(i, j, k int)) {
	xlo, xhi := grid.InteriorRange(mesh.X)
	ylo, yhi := grid.InteriorRange(mesh.Y)
	zlo, zhi := grid.InteriorRange(mesh.Z)
	for k := zlo; k < zhi; k++ {
		for j := ylo; j < yhi; j++ {
			for i := xlo; i < xhi; i++ {
				fn(i, j, k)
			}
		}
	}
}
