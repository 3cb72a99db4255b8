// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/hannahjleary/cholla/ana"
	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/integrator"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/reconstruct"
	"github.com/hannahjleary/cholla/riemann"
	"github.com/hannahjleary/cholla/state"
	"github.com/hannahjleary/cholla/timestep"
	"github.com/hannahjleary/cholla/tools"
)

func Test_brioWuPositivity01(tst *testing.T) {
	chk.PrintTitle("briowu01. positivity through the compound-wave structure")

	n := 200
	b := mesh.NewBlock(n, 1, 1, 2, 1.0/float64(n), 1, 1)
	b.Boundary[0], b.Boundary[1] = mesh.Outflow, mesh.Outflow
	g := mesh.NewGrid(b)
	ph := &state.Physics{Gamma: ana.BrioWuGamma, DensFloor: 1e-8, PressFloor: 1e-8, MHD: true}
	tools.BrioWu(g, ph, mesh.X)

	recon, err := reconstruct.New("plmc")
	if err != nil {
		tst.Fatalf("reconstruct.New failed: %v", err)
	}
	solver, err := riemann.New("hlld")
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

	t, tEnd := 0.0, 0.1
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

	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		c := *g.At(i, g.Block.Ghost, g.Block.Ghost)
		if !c.IsFinite() {
			tst.Fatalf("cell %d: non-finite state", i)
		}
		w := state.ToPrimitive(c, ph)
		if w.Rho < ph.DensFloor || w.Press < ph.PressFloor {
			tst.Fatalf("cell %d: floor violated: rho=%v p=%v", i, w.Rho, w.Press)
		}
	}
}
