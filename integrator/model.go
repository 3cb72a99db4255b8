// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrator implements the time-advance schemes of §4.4:
// Van-Leer predictor/corrector (default) and Simple (first-order
// forward Euler), chosen at startup from the same New(name)/allocators
// registry fem.Solver uses to pick a nonlinear solver, with per-stage
// coefficients grounded on fem.DynCoefs's Init/Calc split.
package integrator

import (
	"github.com/cpmech/gosl/chk"

	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/reconstruct"
	"github.com/hannahjleary/cholla/riemann"
	"github.com/hannahjleary/cholla/state"
)

// Integrator advances every interior cell of grid by dt in place. Ghost
// cells need not be valid on entry: Advance invokes ghosts.FillGhosts
// itself before each reconstruction pass it needs, per §4.8.
type Integrator interface {
	Advance(grid *mesh.Grid, ph *state.Physics, recon reconstruct.Reconstructor, solver riemann.Solver, ghosts collab.GhostFiller, dt float64) error
}

// New returns a new Integrator by registered name ("vanleer", "simple").
func New(name string) (Integrator, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("integrator: scheme %q is not available", name)
	}
	return allocator(), nil
}

// Register adds a new scheme allocator to the registry. Panics if the
// name is already registered.
func Register(name string, allocator func() Integrator) {
	if _, ok := allocators[name]; ok {
		chk.Panic("integrator: cannot register scheme %q: already registered", name)
	}
	allocators[name] = allocator
}

var allocators = make(map[string]func() Integrator)

func init() {
	Register("vanleer", func() Integrator { return new(VanLeer) })
	Register("simple", func() Integrator { return new(Simple) })
}
