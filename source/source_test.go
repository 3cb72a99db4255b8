// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

func buildLineGrid(ghost int) (*mesh.Grid, *state.Physics) {
	ph := &state.Physics{Gamma: 1.4, DensFloor: 1e-10, PressFloor: 1e-10}
	b := mesh.NewBlock(6, 1, 1, ghost, 1.0, 1, 1)
	g := mesh.NewGrid(b)
	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		*g.At(i, b.Ghost, b.Ghost) = state.ToConserved(state.Primitive{Rho: 1.0, Press: 1.0}, ph)
	}
	return g, ph
}

func linearPhi(g *mesh.Grid, gAccel float64) []float64 {
	nx, ny, nz := g.Extents()
	phi := make([]float64, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				phi[g.Index(i, j, k)] = -gAccel * float64(i)
			}
		}
	}
	return phi
}

func Test_gravityWork01(t *testing.T) {
	g, ph := buildLineGrid(2)
	phi := linearPhi(g, 2.0) // constant acceleration +2 in x
	cfg := GravityConfig{Mode: CoupleWork}
	dt := 0.1
	if err := ApplyGravity(g, ph, phi, cfg, dt); err != nil {
		t.Fatalf("ApplyGravity failed: %v", err)
	}
	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		c := g.At(i, g.Block.Ghost, g.Block.Ghost)
		wantMomX := 1.0 * dt * 2.0 // rho*dt*g, v0 = 0
		if math.Abs(c.MomX-wantMomX) > 1e-12 {
			t.Fatalf("cell %d: got MomX=%v want=%v", i, c.MomX, wantMomX)
		}
	}
}

// Test_gravityStencilConsistency01 checks the 3- and 5-point acceleration
// stencils in acceleration() against num.DerivCen applied to the same
// quadratic potential evaluated as a continuous function, the same
// ana-vs-num cross-check mdl/solid/driver.go runs for its tangent (there
// via chk.AnaNum against num.DerivCen/num.DerivFwd).
func Test_gravityStencilConsistency01(t *testing.T) {
	g, _ := buildLineGrid(2)
	dx := g.Block.Spacing(mesh.X)
	a, b := 0.7, -1.3
	phiFunc := func(x float64) float64 { return 0.5*a*x*x + b*x }
	phi := make([]float64, len(g.Cells))
	nx, ny, nz := g.Extents()
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				phi[g.Index(i, j, k)] = phiFunc(float64(i) * dx)
			}
		}
	}
	lo, hi := g.InteriorRange(mesh.X)
	i := (lo + hi) / 2
	x := float64(i) * dx
	dnum := num.DerivCen(func(xx float64, args ...interface{}) float64 {
		return phiFunc(xx)
	}, x)
	anaSlow := acceleration(g, phi, i, 1, 1, mesh.X, false)
	anaFast := acceleration(g, phi, i, 1, 1, mesh.X, true)
	chk.AnaNum(t, io.Sf("gravity 3-point stencil at cell %d", i), 1e-6, anaSlow, -dnum, false)
	chk.AnaNum(t, io.Sf("gravity 5-point stencil at cell %d", i), 1e-6, anaFast, -dnum, false)
}

func Test_gravityHighAccuracyNeedsGhost01(t *testing.T) {
	g, ph := buildLineGrid(1)
	phi := linearPhi(g, 1.0)
	cfg := GravityConfig{Mode: CoupleWork, HighAccuracy: true}
	if err := ApplyGravity(g, ph, phi, cfg, 0.1); err == nil {
		t.Fatalf("expected error: ghost width 1 is insufficient for the 5-point stencil")
	}
}

func Test_gravityDeltaKEMode01(t *testing.T) {
	g, ph := buildLineGrid(2)
	phi := linearPhi(g, 3.0)
	cfg := GravityConfig{Mode: CoupleDeltaKE}
	lo, hi := g.InteriorRange(mesh.X)
	eBefore := make([]float64, hi-lo)
	for i := lo; i < hi; i++ {
		eBefore[i-lo] = g.At(i, g.Block.Ghost, g.Block.Ghost).Energy
	}
	if err := ApplyGravity(g, ph, phi, cfg, 0.1); err != nil {
		t.Fatalf("ApplyGravity failed: %v", err)
	}
	for i := lo; i < hi; i++ {
		c := g.At(i, g.Block.Ghost, g.Block.Ghost)
		ke := 0.5 * (c.MomX*c.MomX + c.MomY*c.MomY + c.MomZ*c.MomZ) / c.Rho
		wantE := eBefore[i-lo] + ke // v0=0 so keOld=0
		if math.Abs(c.Energy-wantE) > 1e-9 {
			t.Fatalf("cell %d: got E=%v want=%v", i, c.Energy, wantE)
		}
	}
}

type constantCurve struct{ lambda float64 }

func (c constantCurve) Lambda(rho, temp float64) float64 { return c.lambda }

func Test_coolingConstantRate01(t *testing.T) {
	curve := constantCurve{lambda: 0.5}
	cool := NewCooling(curve, CoolingConfig{Gamma: 1.4, MeanMolWeight: 1.0})
	eInt0 := 10.0
	dt := 1.0
	eInt1, err := cool.Step(1.0, eInt0, dt)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	want := eInt0 - 0.5*dt // de/dt = -lambda, lambda constant in T so exact
	if math.Abs(eInt1-want) > 1e-6 {
		t.Fatalf("got eInt=%v want=%v", eInt1, want)
	}
}

func Test_coolingClampsNonNegative01(t *testing.T) {
	curve := constantCurve{lambda: 100.0}
	cool := NewCooling(curve, CoolingConfig{Gamma: 1.4, MeanMolWeight: 1.0})
	eInt1, err := cool.Step(1.0, 1.0, 1.0)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if eInt1 < 0 {
		t.Fatalf("cooling result should be clamped at 0, got %v", eInt1)
	}
}

func Test_eintFloorRoundTrip01(t *testing.T) {
	tempFloor := 100.0
	gamma, mu, rho := 1.4, 0.6, 1.0
	eFloor := EintFloorFromTemperature(tempFloor, gamma, mu, rho)
	gotT := Temperature(eFloor, rho, gamma, mu)
	if math.Abs(gotT-tempFloor) > 1e-8 {
		t.Fatalf("round trip failed: got %v want %v", gotT, tempFloor)
	}
}
