// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"
	"testing"

	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/reconstruct"
	"github.com/hannahjleary/cholla/riemann"
	"github.com/hannahjleary/cholla/state"
)

func buildRippledLine() (*mesh.Grid, *state.Physics) {
	ph := &state.Physics{Gamma: 1.4, DensFloor: 1e-8, PressFloor: 1e-8}
	b := mesh.NewBlock(8, 1, 1, 2, 1, 1, 1)
	b.Boundary = [6]mesh.BoundaryKind{mesh.Periodic, mesh.Periodic, mesh.Periodic, mesh.Periodic, mesh.Periodic, mesh.Periodic}
	g := mesh.NewGrid(b)
	rho := []float64{1.0, 1.1, 1.05, 0.95, 0.9, 1.0, 1.1, 0.95}
	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		w := state.Primitive{Rho: rho[i-lo], VelX: 0.1, VelY: 0, VelZ: 0, Press: 1.0}
		*g.At(i, b.Ghost, b.Ghost) = state.ToConserved(w, ph)
	}
	return g, ph
}

func totals(g *mesh.Grid) (rho, momx, energy float64) {
	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		c := g.At(i, g.Block.Ghost, g.Block.Ghost)
		rho += c.Rho
		momx += c.MomX
		energy += c.Energy
	}
	return
}

func Test_conservation01Simple(t *testing.T) {
	g, ph := buildRippledLine()
	recon, _ := reconstruct.New("pcm")
	solver, _ := riemann.New("hllc")
	var filler collab.LocalGhostFiller
	integ, _ := New("simple")

	r0, m0, e0 := totals(g)
	if err := integ.Advance(g, ph, recon, solver, &filler, 0.01); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	r1, m1, e1 := totals(g)

	tol := 1e-9
	if math.Abs(r1-r0) > tol {
		t.Errorf("mass not conserved: before=%v after=%v", r0, r1)
	}
	if math.Abs(m1-m0) > tol {
		t.Errorf("momentum not conserved: before=%v after=%v", m0, m1)
	}
	if math.Abs(e1-e0) > tol {
		t.Errorf("energy not conserved: before=%v after=%v", e0, e1)
	}
}

func Test_conservation02VanLeer(t *testing.T) {
	g, ph := buildRippledLine()
	recon, _ := reconstruct.New("pcm")
	solver, _ := riemann.New("hllc")
	var filler collab.LocalGhostFiller
	integ, _ := New("vanleer")

	r0, m0, e0 := totals(g)
	if err := integ.Advance(g, ph, recon, solver, &filler, 0.01); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	r1, m1, e1 := totals(g)

	tol := 1e-9
	if math.Abs(r1-r0) > tol {
		t.Errorf("mass not conserved: before=%v after=%v", r0, r1)
	}
	if math.Abs(m1-m0) > tol {
		t.Errorf("momentum not conserved: before=%v after=%v", m0, m1)
	}
	if math.Abs(e1-e0) > tol {
		t.Errorf("energy not conserved: before=%v after=%v", e0, e1)
	}
}

func Test_positivity01(t *testing.T) {
	g, ph := buildRippledLine()
	recon, _ := reconstruct.New("plmc")
	solver, _ := riemann.New("hllc")
	var filler collab.LocalGhostFiller
	integ, _ := New("vanleer")

	lo, hi := g.InteriorRange(mesh.X)
	for step := 0; step < 20; step++ {
		if err := integ.Advance(g, ph, recon, solver, &filler, 0.02); err != nil {
			t.Fatalf("advance failed at step %d: %v", step, err)
		}
		for i := lo; i < hi; i++ {
			c := g.At(i, g.Block.Ghost, g.Block.Ghost)
			if !c.IsFinite() {
				t.Fatalf("non-finite state at step %d cell %d: %+v", step, i, c)
			}
			if c.Rho <= 0 {
				t.Fatalf("non-positive density at step %d cell %d: %v", step, i, c.Rho)
			}
			p := state.ComputePressure(*c, ph)
			if p < ph.PressFloor-1e-12 {
				t.Fatalf("pressure below floor at step %d cell %d: %v", step, i, p)
			}
		}
	}
}

func Test_registry01(t *testing.T) {
	if _, err := New("nonexistent"); err == nil {
		t.Fatalf("expected error for unknown scheme")
	}
	for _, name := range []string{"vanleer", "simple"} {
		if _, err := New(name); err != nil {
			t.Fatalf("scheme %q should be registered: %v", name, err)
		}
	}
}
