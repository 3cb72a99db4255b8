// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tools provides the standard initial-condition generators used
// to exercise the core pipeline (§8): Sod and Brio-Wu shock tubes, the
// Einfeldt strong-rarefaction case, a smooth traveling wave for
// convergence-order checks, and a deliberately under-resolved profile
// that forces floor activation. It keeps LocCmDriver.go's
// Input-struct-plus-PostProcess idiom (defaults filled in once, after
// the caller sets only what it cares about) for each scenario's
// parameters.
package tools

import (
	"math"

	"github.com/hannahjleary/cholla/ana"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// ShockTube fills grid with a two-state Riemann problem split at the
// domain midpoint along axis, in conserved variables, via state.ToConserved.
func ShockTube(grid *mesh.Grid, ph *state.Physics, axis mesh.Axis, left, right state.Primitive) {
	lo, hi := grid.InteriorRange(axis)
	mid := lo + (hi-lo)/2
	forEachLine(grid, axis, func(i, j, k int) {
		n := along(axis, i, j, k)
		w := right
		if n < mid {
			w = left
		}
		*grid.At(i, j, k) = state.ToConserved(w, ph)
	})
}

// SodInput holds the Sod shock-tube's one free choice: which axis to
// lay the tube along. The adiabatic index comes from the grid's own
// state.Physics, not from here, since every cell on the grid must
// already agree on gamma.
type SodInput struct {
	Axis mesh.Axis
}

// Sod fills grid with the standard Sod shock tube (Toro's γ=1.4 case,
// §8 scenario 1).
func Sod(grid *mesh.Grid, ph *state.Physics, in SodInput) {
	left := state.Primitive{Rho: 1.0, Press: 1.0}
	right := state.Primitive{Rho: 0.125, Press: 0.1}
	ShockTube(grid, ph, in.Axis, left, right)
}

// BrioWu fills grid with the standard Brio & Wu (1988) MHD shock tube
// along axis, using ana.BrioWuLeft/Right as the two states.
func BrioWu(grid *mesh.Grid, ph *state.Physics, axis mesh.Axis) {
	ShockTube(grid, ph, axis, ana.BrioWuLeft, ana.BrioWuRight)
}

// EinfeldtInput holds the Einfeldt (1991) strong-rarefaction parameters:
// two streams of equal density and pressure moving apart at speed Vn,
// the standard stress test for a solver's positivity-preservation.
// Zero values pick the canonical 1-2-3 problem (§8 scenario 3).
type EinfeldtInput struct {
	Axis  mesh.Axis
	Rho   float64
	Press float64
	Vn    float64
}

func (o *EinfeldtInput) PostProcess() {
	if o.Rho == 0 {
		o.Rho = 1.0
	}
	if o.Press == 0 {
		o.Press = 0.45
	}
	if o.Vn == 0 {
		o.Vn = 2.0
	}
}

// Einfeldt fills grid with the 1-2-3 problem: left stream moving at
// -Vn, right stream moving at +Vn, everywhere else identical.
func Einfeldt(grid *mesh.Grid, ph *state.Physics, in EinfeldtInput) {
	in.PostProcess()
	left := state.Primitive{Rho: in.Rho, Press: in.Press}
	right := state.Primitive{Rho: in.Rho, Press: in.Press}
	left.VelX, left.VelY, left.VelZ = mesh.FromNormal(in.Axis, -in.Vn, 0, 0)
	right.VelX, right.VelY, right.VelZ = mesh.FromNormal(in.Axis, in.Vn, 0, 0)
	ShockTube(grid, ph, in.Axis, left, right)
}

// SmoothWaveInput parametrizes a small-amplitude traveling sound wave,
// used to measure a reconstruction scheme's convergence order (the
// perturbation must stay smooth, so the exact nonlinear solution is
// well approximated by the linear acoustic mode over short times).
type SmoothWaveInput struct {
	Axis      mesh.Axis
	Rho0      float64
	Press0    float64
	Amplitude float64
	Gamma     float64
}

func (o *SmoothWaveInput) PostProcess() {
	if o.Rho0 == 0 {
		o.Rho0 = 1.0
	}
	if o.Press0 == 0 {
		o.Press0 = 1.0
	}
	if o.Amplitude == 0 {
		o.Amplitude = 1e-6
	}
	if o.Gamma == 0 {
		o.Gamma = 1.4
	}
}

// SmoothWave fills grid with a single sinusoidal density/velocity/
// pressure perturbation of the given amplitude, periodic over the
// domain's interior extent along axis.
func SmoothWave(grid *mesh.Grid, ph *state.Physics, in SmoothWaveInput) {
	in.PostProcess()
	lo, hi := grid.InteriorRange(in.Axis)
	n := hi - lo
	cs := math.Sqrt(in.Gamma * in.Press0 / in.Rho0)
	forEachLine(grid, in.Axis, func(i, j, k int) {
		pos := along(in.Axis, i, j, k) - lo
		theta := 2 * math.Pi * float64(pos) / float64(n)
		drho := in.Amplitude * math.Sin(theta)
		w := state.Primitive{
			Rho:   in.Rho0 + drho,
			Press: in.Press0 + cs*cs*drho,
		}
		vn := cs * drho / in.Rho0
		vx, vy, vz := mesh.FromNormal(in.Axis, vn, 0, 0)
		w.VelX, w.VelY, w.VelZ = vx, vy, vz
		*grid.At(i, j, k) = state.ToConserved(w, ph)
	})
}

// FloorActivation fills grid with a density/pressure profile that dips
// below the configured floors at its center, exercising
// state.EnforceFloors and, when dual energy is enabled, the
// dualenergy.Select fallback path.
func FloorActivation(grid *mesh.Grid, ph *state.Physics, axis mesh.Axis) {
	lo, hi := grid.InteriorRange(axis)
	mid := lo + (hi-lo)/2
	forEachLine(grid, axis, func(i, j, k int) {
		n := along(axis, i, j, k)
		w := state.Primitive{Rho: 1.0, Press: 1.0}
		if n == mid {
			w.Rho = ph.DensFloor / 10
			w.Press = ph.PressFloor / 10
		}
		u := state.ToConserved(w, ph)
		state.EnforceFloors(&u, ph)
		*grid.At(i, j, k) = u
	})
}

// forEachLine calls fn once per interior cell along axis, holding the
// transverse indices at their midpoint — every scenario here is
// effectively 1-D, laid out along whichever axis the caller picks.
func forEachLine(grid *mesh.Grid, axis mesh.Axis, fn func(i, j, k int)) {
	lo, hi := grid.InteriorRange(axis)
	_, ny, nz := grid.Extents()
	j, k := ny/2, nz/2
	for n := lo; n < hi; n++ {
		i, jj, kk := n, j, k
		switch axis {
		case mesh.X:
			i, jj, kk = n, j, k
		case mesh.Y:
			i, jj, kk = j, n, k
		case mesh.Z:
			i, jj, kk = j, k, n
		}
		fn(i, jj, kk)
	}
}

// along returns the coordinate of (i,j,k) along axis.
func along(axis mesh.Axis, i, j, k int) int {
	switch axis {
	case mesh.X:
		return i
	case mesh.Y:
		return j
	case mesh.Z:
		return k
	}
	return i
}
