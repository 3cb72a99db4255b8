// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package collab defines the external-collaborator interfaces the core
// pipeline consumes but never implements itself, §4.8 and §6: filling
// ghost cells, solving for the gravitational potential, writing output
// snapshots, and reducing the per-rank CFL timestep to a single global
// value. The core only ever holds these as interfaces, the same
// read-only-collaborator shape inp.Simulation uses for LiqMdl/GasMdl —
// a field owned and populated elsewhere that the consuming code treats
// as given.
package collab

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// GhostFiller populates every ghost cell of grid before a reconstruction
// pass, per §4.8: a neighbor's interior copy (periodic/MPI), a
// reflected state, a transmissive copy, or a user-supplied state. The
// core invokes this once per stage and never fills ghosts itself.
type GhostFiller interface {
	FillGhosts(grid *mesh.Grid, ph *state.Physics)
}

// GravitySolver solves for the gravitational potential on the block's
// geometry given the current density field, §6's solve_potential. Phi
// is read-only from the core's point of view after the call returns.
type GravitySolver interface {
	SolvePotential(grid *mesh.Grid, phi []float64) error
}

// OutputWriter persists a snapshot of the conserved field (and
// optionally the potential) at the cadence the time controller decides,
// §6's write_snapshot.
type OutputWriter interface {
	WriteSnapshot(step int, t float64, grid *mesh.Grid, phi []float64) error
}

// Reducer collapses one per-rank scalar (the local CFL timestep
// candidate) to the global minimum across every cooperating rank, §6's
// Δt reduction barrier.
type Reducer interface {
	MinReduce(local float64) float64
}

// CoolingCurve supplies the radiative cooling rate Λ(ρ,T) the §4.6
// operator-split cooling source consumes. Cooling tables are explicitly
// out of the core's scope (§1's non-goals), so the curve itself is
// always a collaborator the core only ever calls through this
// interface, never implements.
type CoolingCurve interface {
	Lambda(rho, temp float64) float64
}

// LocalGhostFiller implements GhostFiller for a single sub-block with
// no neighboring ranks: periodic faces wrap onto the block's own
// interior, reflective faces flip the face-normal velocity and magnetic
// field, outflow faces copy the nearest interior cell, and custom faces
// are left untouched (the caller is expected to have set them directly).
type LocalGhostFiller struct{}

// FillGhosts implements GhostFiller.
func (o *LocalGhostFiller) FillGhosts(grid *mesh.Grid, ph *state.Physics) {
	for _, axis := range []mesh.Axis{mesh.X, mesh.Y, mesh.Z} {
		if grid.Block.Extent(axis) == 0 {
			continue
		}
		o.fillAxis(grid, ph, axis)
	}
}

func (o *LocalGhostFiller) fillAxis(grid *mesh.Grid, ph *state.Physics, axis mesh.Axis) {
	lo, hi := grid.InteriorRange(axis)
	ghost := grid.Block.Ghost
	loFace, hiFace := faceIndices(axis)
	grid.Lines(axis, func(cells []state.Conserved) []state.Conserved {
		fillLowGhosts(cells, axis, grid.Block.Boundary[loFace], lo, hi, ghost)
		fillHighGhosts(cells, axis, grid.Block.Boundary[hiFace], lo, hi, ghost)
		return cells
	})
}

// faceIndices maps an axis to its (-,+) entries in Block.Boundary,
// ordered -x,+x,-y,+y,-z,+z.
func faceIndices(axis mesh.Axis) (lo, hi int) {
	switch axis {
	case mesh.X:
		return 0, 1
	case mesh.Y:
		return 2, 3
	case mesh.Z:
		return 4, 5
	}
	chk.Panic("collab: invalid axis %v", axis)
	return 0, 0
}

func fillLowGhosts(cells []state.Conserved, axis mesh.Axis, kind mesh.BoundaryKind, lo, hi, ghost int) {
	for g := 1; g <= ghost; g++ {
		dst := lo - g
		if dst < 0 {
			continue
		}
		switch kind {
		case mesh.Periodic:
			cells[dst] = cells[hi-g]
		case mesh.Reflective:
			cells[dst] = reflect(cells[lo+g-1], axis)
		case mesh.Outflow:
			cells[dst] = cells[lo]
		case mesh.Custom:
			// left as-is; populated by the caller out of band
		}
	}
}

func fillHighGhosts(cells []state.Conserved, axis mesh.Axis, kind mesh.BoundaryKind, lo, hi, ghost int) {
	for g := 0; g < ghost; g++ {
		dst := hi + g
		if dst >= len(cells) {
			continue
		}
		switch kind {
		case mesh.Periodic:
			cells[dst] = cells[lo+g]
		case mesh.Reflective:
			cells[dst] = reflect(cells[hi-1-g], axis)
		case mesh.Outflow:
			cells[dst] = cells[hi-1]
		case mesh.Custom:
			// left as-is
		}
	}
}

// reflect flips only the axis-normal momentum and magnetic-field
// component of a cell, mirroring its state across a reflective
// boundary face normal to axis.
func reflect(c state.Conserved, axis mesh.Axis) state.Conserved {
	out := c
	n, t1, t2 := mesh.ToNormal(axis, c.MomX, c.MomY, c.MomZ)
	out.MomX, out.MomY, out.MomZ = mesh.FromNormal(axis, -n, t1, t2)
	bn, bt1, bt2 := mesh.ToNormal(axis, c.Bx, c.By, c.Bz)
	out.Bx, out.By, out.Bz = mesh.FromNormal(axis, -bn, bt1, bt2)
	return out
}

// LocalReducer implements Reducer for a single-rank run: the global
// minimum is the local value.
type LocalReducer struct{}

// MinReduce implements Reducer.
func (o *LocalReducer) MinReduce(local float64) float64 {
	return local
}

// MPIReducer implements Reducer across cooperating ranks using gosl/mpi,
// per §5's collective Δt reduction.
type MPIReducer struct {
	comm *mpi.Communicator
}

// NewMPIReducer builds an MPIReducer over the world communicator.
func NewMPIReducer() *MPIReducer {
	return &MPIReducer{comm: mpi.NewCommunicator(nil)}
}

// MinReduce implements Reducer.
func (o *MPIReducer) MinReduce(local float64) float64 {
	if !mpi.IsOn() {
		return local
	}
	orig := []float64{local}
	dest := []float64{local}
	o.comm.AllReduceMin(dest, orig)
	return dest[0]
}
