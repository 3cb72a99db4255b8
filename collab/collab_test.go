// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collab

import (
	"testing"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

func Test_localGhostFillerPeriodic(t *testing.T) {
	b := mesh.NewBlock(4, 1, 1, 1, 1, 1, 1)
	b.Boundary = [6]mesh.BoundaryKind{mesh.Periodic, mesh.Periodic, mesh.Periodic, mesh.Periodic, mesh.Periodic, mesh.Periodic}
	g := mesh.NewGrid(b)
	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		g.At(i, 1, 1).Rho = float64(i - lo + 1)
	}

	var filler LocalGhostFiller
	ph := &state.Physics{Gamma: 1.4}
	filler.FillGhosts(g, ph)

	if g.At(lo-1, 1, 1).Rho != g.At(hi-1, 1, 1).Rho {
		t.Fatalf("periodic low ghost mismatch: got %v want %v", g.At(lo-1, 1, 1).Rho, g.At(hi-1, 1, 1).Rho)
	}
	if g.At(hi, 1, 1).Rho != g.At(lo, 1, 1).Rho {
		t.Fatalf("periodic high ghost mismatch: got %v want %v", g.At(hi, 1, 1).Rho, g.At(lo, 1, 1).Rho)
	}
}

func Test_localGhostFillerReflective(t *testing.T) {
	b := mesh.NewBlock(4, 1, 1, 1, 1, 1, 1)
	b.Boundary = [6]mesh.BoundaryKind{mesh.Reflective, mesh.Reflective, mesh.Reflective, mesh.Reflective, mesh.Reflective, mesh.Reflective}
	g := mesh.NewGrid(b)
	lo, hi := g.InteriorRange(mesh.X)
	for i := lo; i < hi; i++ {
		g.At(i, 1, 1).MomX = 1.0
		g.At(i, 1, 1).MomY = 2.0
	}

	var filler LocalGhostFiller
	ph := &state.Physics{Gamma: 1.4}
	filler.FillGhosts(g, ph)

	if g.At(lo-1, 1, 1).MomX != -1.0 {
		t.Fatalf("reflective ghost should flip normal momentum: got %v", g.At(lo-1, 1, 1).MomX)
	}
	if g.At(lo-1, 1, 1).MomY != 2.0 {
		t.Fatalf("reflective ghost must not flip tangential momentum: got %v", g.At(lo-1, 1, 1).MomY)
	}
}

func Test_localGhostFillerOutflow(t *testing.T) {
	b := mesh.NewBlock(4, 1, 1, 1, 1, 1, 1)
	b.Boundary = [6]mesh.BoundaryKind{mesh.Outflow, mesh.Outflow, mesh.Outflow, mesh.Outflow, mesh.Outflow, mesh.Outflow}
	g := mesh.NewGrid(b)
	lo, hi := g.InteriorRange(mesh.X)
	g.At(lo, 1, 1).Rho = 7.0
	g.At(hi-1, 1, 1).Rho = 9.0

	var filler LocalGhostFiller
	ph := &state.Physics{Gamma: 1.4}
	filler.FillGhosts(g, ph)

	if g.At(lo-1, 1, 1).Rho != 7.0 {
		t.Fatalf("outflow low ghost should copy nearest interior cell: got %v", g.At(lo-1, 1, 1).Rho)
	}
	if g.At(hi, 1, 1).Rho != 9.0 {
		t.Fatalf("outflow high ghost should copy nearest interior cell: got %v", g.At(hi, 1, 1).Rho)
	}
}

func Test_localReducer01(t *testing.T) {
	var r LocalReducer
	if r.MinReduce(0.3) != 0.3 {
		t.Fatalf("single-rank reducer must return its input unchanged")
	}
}
