// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/dualenergy"
	"github.com/hannahjleary/cholla/integrator"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/reconstruct"
	"github.com/hannahjleary/cholla/riemann"
	"github.com/hannahjleary/cholla/state"
	"github.com/hannahjleary/cholla/timestep"
	"github.com/hannahjleary/cholla/tools"
)

// Test_floorActivationRun01 runs a dual-energy simulation through an
// under-resolved density/pressure dip and checks every cell is within
// the configured floors at the end of the run, exercising both
// state.EnforceFloors and dualenergy.Select in the same pass.
func Test_floorActivationRun01(tst *testing.T) {
	chk.PrintTitle("floor01. floors hold under a dual-energy run")

	n := 64
	b := mesh.NewBlock(n, 1, 1, 2, 1.0/float64(n), 1, 1)
	g := mesh.NewGrid(b)
	ph := &state.Physics{
		Gamma:      1.4,
		DensFloor:  1e-4,
		PressFloor: 1e-4,
		DualEnergy: true,
		EintFloor:  1e-6,
	}
	tools.FloorActivation(g, ph, mesh.X)

	recon, err := reconstruct.New("plmc")
	if err != nil {
		tst.Fatalf("reconstruct.New failed: %v", err)
	}
	solver, err := riemann.New("hllc")
	if err != nil {
		tst.Fatalf("riemann.New failed: %v", err)
	}
	scheme, err := integrator.New("vanleer")
	if err != nil {
		tst.Fatalf("integrator.New failed: %v", err)
	}
	filler := &collab.LocalGhostFiller{}
	cfg := timestep.NewConfig()
	reducer := &collab.LocalReducer{}

	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		dualenergy.Select(g.At(i, g.Block.Ghost, g.Block.Ghost), ph, dualenergy.NewConfig())
	}

	t, tEnd := 0.0, 0.05
	for t < tEnd {
		dt, err := timestep.Compute(g, ph, cfg, reducer)
		if err != nil {
			tst.Fatalf("timestep.Compute failed: %v", err)
		}
		if t+dt > tEnd {
			dt = tEnd - t
		}
		if err := scheme.Advance(g, ph, recon, solver, filler, dt); err != nil {
			tst.Fatalf("Advance failed: %v", err)
		}
		t += dt
	}

	for i := lo; i < hi; i++ {
		c := *g.At(i, g.Block.Ghost, g.Block.Ghost)
		if !c.IsFinite() {
			tst.Fatalf("cell %d: non-finite state", i)
		}
		if c.Rho < ph.DensFloor {
			tst.Fatalf("cell %d: density below floor: %v", i, c.Rho)
		}
		w := state.ToPrimitive(c, ph)
		if w.Press < ph.PressFloor {
			tst.Fatalf("cell %d: pressure below floor: %v", i, w.Press)
		}
	}
}
