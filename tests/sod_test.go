// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"math"
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

// runSod advances the standard Sod shock tube to time tEnd with n cells
// and returns the resulting grid alongside its physics.
func runSod(tst *testing.T, n int, tEnd float64) (*mesh.Grid, *state.Physics) {
	b := mesh.NewBlock(n, 1, 1, 2, 1.0/float64(n), 1, 1)
	b.Boundary[0], b.Boundary[1] = mesh.Outflow, mesh.Outflow
	g := mesh.NewGrid(b)
	ph := &state.Physics{Gamma: 1.4, DensFloor: 1e-8, PressFloor: 1e-8}
	tools.Sod(g, ph, tools.SodInput{Axis: mesh.X})

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

	t := 0.0
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
	return g, ph
}

func Test_sodL1convergence01(tst *testing.T) {
	chk.PrintTitle("sod01. L1 error against the exact Riemann solution")

	tEnd := 0.15
	oracle := &ana.Sod{RhoL: 1.0, VnL: 0, PL: 1.0, RhoR: 0.125, VnR: 0, PR: 0.1, Gamma: 1.4}
	oracle.Init()

	errs := make([]float64, 0, 2)
	sizes := []int{100, 200}
	for _, n := range sizes {
		g, ph := runSod(tst, n, tEnd)
		lo, hi := g.InteriorRange(mesh.X)
		dx := g.Block.Dx
		var l1 float64
		for i := lo; i < hi; i++ {
			x := (float64(i-lo) + 0.5) * dx
			xi := (x - 0.5) / tEnd
			rhoExact, _, _ := oracle.Calc(xi)
			w := state.ToPrimitive(*g.At(i, g.Block.Ghost, g.Block.Ghost), ph)
			l1 += math.Abs(w.Rho-rhoExact) * dx
		}
		errs = append(errs, l1)
	}
	if errs[1] >= errs[0] {
		tst.Fatalf("doubling resolution should reduce the L1 density error: coarse=%v fine=%v", errs[0], errs[1])
	}
}

func Test_sodPositivity01(tst *testing.T) {
	chk.PrintTitle("sod02. positivity at the end of the run")
	g, ph := runSod(tst, 100, 0.2)
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
