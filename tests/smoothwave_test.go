// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/integrator"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/reconstruct"
	"github.com/hannahjleary/cholla/riemann"
	"github.com/hannahjleary/cholla/state"
	"github.com/hannahjleary/cholla/timestep"
	"github.com/hannahjleary/cholla/tools"
)

// runSmoothWaveL1 advances one period of a small-amplitude acoustic wave
// on an n-cell periodic line and returns the L1 error in density
// against the (undisturbed-to-first-order) initial profile.
func runSmoothWaveL1(tst *testing.T, n int) float64 {
	in := tools.SmoothWaveInput{Axis: mesh.X, Rho0: 1.0, Press0: 1.0, Amplitude: 1e-6, Gamma: 1.4}
	b := mesh.NewBlock(n, 1, 1, 2, 1.0/float64(n), 1, 1)
	g := mesh.NewGrid(b)
	ph := &state.Physics{Gamma: in.Gamma, DensFloor: 1e-8, PressFloor: 1e-8}
	tools.SmoothWave(g, ph, in)

	initial := make([]float64, n)
	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		initial[i-lo] = g.At(i, g.Block.Ghost, g.Block.Ghost).Rho
	}

	recon, err := reconstruct.New("ppmc")
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

	cs := math.Sqrt(in.Gamma * in.Press0 / in.Rho0)
	tEnd := 1.0 / cs // one sound-crossing of the unit-length periodic domain
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

	dx := g.Block.Dx
	var l1 float64
	for i := lo; i < hi; i++ {
		l1 += math.Abs(g.At(i, g.Block.Ghost, g.Block.Ghost).Rho-initial[i-lo]) * dx
	}
	return l1
}

// Test_smoothWaveConvergence01 checks that refining the grid reduces
// the L1 error of a smooth (shock-free) traveling wave; it compares the
// 32- and 64-cell errors only and does not measure the convergence order.
func Test_smoothWaveConvergence01(tst *testing.T) {
	chk.PrintTitle("smoothwave01. error decreases under grid refinement")
	coarse := runSmoothWaveL1(tst, 32)
	fine := runSmoothWaveL1(tst, 64)
	if fine >= coarse {
		tst.Fatalf("refining the grid should reduce the L1 error: coarse=%v fine=%v", coarse, fine)
	}
}
