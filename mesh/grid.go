// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/hannahjleary/cholla/state"
)

// Grid is a Block's storage: one state.Conserved per cell, including
// ghosts, flattened in x-fastest row-major order. It owns no physics —
// package state's conversions and floor policy operate on the
// individual cells it hands out.
type Grid struct {
	Block *Block
	Cells []state.Conserved

	nx, ny, nz int // total extent including ghosts, cached from Block
}

// NewGrid allocates a Grid sized to b, with every cell zeroed.
func NewGrid(b *Block) *Grid {
	nx := b.Nx + 2*b.Ghost
	ny := b.Ny + 2*b.Ghost
	nz := b.Nz + 2*b.Ghost
	return &Grid{
		Block: b,
		Cells: make([]state.Conserved, nx*ny*nz),
		nx:    nx, ny: ny, nz: nz,
	}
}

// index returns the flattened index of ghost-inclusive cell (i,j,k).
func (g *Grid) index(i, j, k int) int {
	if i < 0 || i >= g.nx || j < 0 || j >= g.ny || k < 0 || k >= g.nz {
		chk.Panic("mesh: grid index out of range (i=%d j=%d k=%d) extents (%d,%d,%d)", i, j, k, g.nx, g.ny, g.nz)
	}
	return (k*g.ny+j)*g.nx + i
}

// At returns a pointer to the ghost-inclusive cell (i,j,k), so callers
// can mutate it in place.
func (g *Grid) At(i, j, k int) *state.Conserved {
	return &g.Cells[g.index(i, j, k)]
}

// Index returns the flattened index of ghost-inclusive cell (i,j,k), for
// callers that maintain a parallel accumulator array shaped like g.Cells.
func (g *Grid) Index(i, j, k int) int {
	return g.index(i, j, k)
}

// Clone returns a deep copy of g, sharing the same Block (geometry is
// read-only) but with an independent Cells backing array. Integrators
// use this to hold a predictor half-step state without disturbing the
// cells the corrector step still needs to read.
func (g *Grid) Clone() *Grid {
	out := &Grid{Block: g.Block, nx: g.nx, ny: g.ny, nz: g.nz}
	out.Cells = make([]state.Conserved, len(g.Cells))
	copy(out.Cells, g.Cells)
	for i, c := range g.Cells {
		if len(c.Scalars) > 0 {
			s := make([]float64, len(c.Scalars))
			copy(s, c.Scalars)
			out.Cells[i].Scalars = s
		}
	}
	return out
}

// Extents returns the ghost-inclusive extents along x, y, z.
func (g *Grid) Extents() (nx, ny, nz int) {
	return g.nx, g.ny, g.nz
}

// Lines enumerates every 1-D line of ghost-inclusive cells running
// along axis, calling fn with a copy of the line's cells in sweep order
// (fn is not told which line it is; LinesIndexed also passes the cells'
// grid indices). fn's returned slice, if non-nil, is written back into
// the grid; this lets integrator sweeps both read the pre-update line
// and overwrite it with the post-update conserved states in one pass.
func (g *Grid) Lines(axis Axis, fn func(cells []state.Conserved) []state.Conserved) {
	switch axis {
	case X:
		for k := 0; k < g.nz; k++ {
			for j := 0; j < g.ny; j++ {
				g.sweepLine(axis, j, k, fn)
			}
		}
	case Y:
		for k := 0; k < g.nz; k++ {
			for i := 0; i < g.nx; i++ {
				g.sweepLine(axis, i, k, fn)
			}
		}
	case Z:
		for j := 0; j < g.ny; j++ {
			for i := 0; i < g.nx; i++ {
				g.sweepLine(axis, i, j, fn)
			}
		}
	}
}

// LinesIndexed is Lines, except fn also receives the flattened grid
// index of every cell on the line (in sweep order), so a caller
// accumulating a result into a separate array shaped like g.Cells can
// write back into the right slots.
func (g *Grid) LinesIndexed(axis Axis, fn func(idxs []int, cells []state.Conserved) []state.Conserved) {
	switch axis {
	case X:
		for k := 0; k < g.nz; k++ {
			for j := 0; j < g.ny; j++ {
				g.sweepLineIndexed(axis, j, k, fn)
			}
		}
	case Y:
		for k := 0; k < g.nz; k++ {
			for i := 0; i < g.nx; i++ {
				g.sweepLineIndexed(axis, i, k, fn)
			}
		}
	case Z:
		for j := 0; j < g.ny; j++ {
			for i := 0; i < g.nx; i++ {
				g.sweepLineIndexed(axis, i, j, fn)
			}
		}
	}
}

func (g *Grid) sweepLineIndexed(axis Axis, a, b int, fn func(idxs []int, cells []state.Conserved) []state.Conserved) {
	n := g.extentAlong(axis)
	idxs := make([]int, n)
	line := make([]state.Conserved, n)
	for i := 0; i < n; i++ {
		idxs[i] = g.lineIndex(axis, i, a, b)
		line[i] = g.Cells[idxs[i]]
	}
	out := fn(idxs, line)
	if out == nil {
		return
	}
	for i := 0; i < len(out); i++ {
		g.Cells[idxs[i]] = out[i]
	}
}

func (g *Grid) sweepLine(axis Axis, a, b int, fn func(cells []state.Conserved) []state.Conserved) {
	n := g.extentAlong(axis)
	line := make([]state.Conserved, n)
	idx := func(n int) int { return g.lineIndex(axis, n, a, b) }
	for m := 0; m < n; m++ {
		line[m] = g.Cells[idx(m)]
	}
	out := fn(line)
	if out == nil {
		return
	}
	for n := 0; n < len(out); n++ {
		g.Cells[idx(n)] = out[n]
	}
}

func (g *Grid) extentAlong(axis Axis) int {
	switch axis {
	case X:
		return g.nx
	case Y:
		return g.ny
	case Z:
		return g.nz
	}
	chk.Panic("mesh: invalid axis %v", axis)
	return 0
}

// lineIndex returns the flattened cell index at position n along axis,
// for the line identified by transverse indices (a,b).
func (g *Grid) lineIndex(axis Axis, n, a, b int) int {
	switch axis {
	case X:
		return g.index(n, a, b)
	case Y:
		return g.index(a, n, b)
	case Z:
		return g.index(a, b, n)
	}
	chk.Panic("mesh: invalid axis %v", axis)
	return 0
}

// InteriorRange returns the ghost-inclusive index bounds [lo, hi) of the
// interior (non-ghost) cells along axis.
func (g *Grid) InteriorRange(axis Axis) (lo, hi int) {
	return g.Block.Ghost, g.Block.Ghost + g.Block.Extent(axis)
}
