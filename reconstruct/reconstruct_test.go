// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reconstruct

import (
	"math"
	"testing"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

func monotoneDensityLine(n int) []state.Primitive {
	cells := make([]state.Primitive, n)
	for i := 0; i < n; i++ {
		cells[i] = state.Primitive{Rho: 1.0 + 0.1*float64(i), VelX: 0.2, Press: 1.0}
	}
	return cells
}

// Test_monotonicity01 checks that on a monotone density profile, every
// reconstructed face density stays within the bracketing cells' range,
// for every registered scheme, per §8's reconstruction-monotonicity
// property.
func Test_monotonicity01(t *testing.T) {
	ph := &state.Physics{Gamma: 1.4, PressFloor: 1e-10, DensFloor: 1e-10}
	cells := monotoneDensityLine(9)

	for _, name := range []string{"pcm", "plmp", "plmc", "ppmp", "ppmc"} {
		scheme, err := New(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		wl, wr := scheme.Reconstruct(cells, mesh.X, ph)
		for i := range wl {
			lo := math.Min(cells[i].Rho, cells[i+1].Rho)
			hi := math.Max(cells[i].Rho, cells[i+1].Rho)
			const tol = 1e-9
			if wl[i].Rho < lo-tol || wl[i].Rho > hi+tol {
				t.Fatalf("%s: face %d: wl.Rho=%v outside [%v,%v]", name, i, wl[i].Rho, lo, hi)
			}
			if wr[i].Rho < lo-tol || wr[i].Rho > hi+tol {
				t.Fatalf("%s: face %d: wr.Rho=%v outside [%v,%v]", name, i, wr[i].Rho, lo, hi)
			}
		}
	}
}

// Test_pcm01 checks the trivial PCM contract directly.
func Test_pcm01(t *testing.T) {
	ph := &state.Physics{Gamma: 1.4}
	cells := []state.Primitive{
		{Rho: 1, Press: 1}, {Rho: 2, Press: 2}, {Rho: 3, Press: 3},
	}
	var o PCM
	wl, wr := o.Reconstruct(cells, mesh.X, ph)
	if len(wl) != 2 || len(wr) != 2 {
		t.Fatalf("expected 2 interfaces, got wl=%d wr=%d", len(wl), len(wr))
	}
	if wl[0].Rho != 1 || wr[0].Rho != 2 || wl[1].Rho != 2 || wr[1].Rho != 3 {
		t.Fatalf("unexpected PCM states: %+v / %+v", wl, wr)
	}
}

// Test_positivityFallback01 forces a near-vacuum cell into the stencil
// and checks every higher-order scheme still returns rho>0 and p>0 at
// the adjoining faces (falling back to PCM when necessary), per §4.2.
func Test_positivityFallback01(t *testing.T) {
	ph := &state.Physics{Gamma: 1.4, PressFloor: 1e-8, DensFloor: 1e-8}
	cells := []state.Primitive{
		{Rho: 1.0, Press: 1.0},
		{Rho: 1.0, Press: 1.0},
		{Rho: 1e-6, Press: 1e-6},
		{Rho: 1.0, Press: 1.0},
		{Rho: 1.0, Press: 1.0},
	}
	for _, name := range []string{"plmp", "plmc", "ppmp", "ppmc"} {
		scheme, err := New(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		wl, wr := scheme.Reconstruct(cells, mesh.X, ph)
		for i := range wl {
			if wl[i].Rho <= 0 || wr[i].Rho <= 0 || wl[i].Press <= 0 || wr[i].Press <= 0 {
				t.Fatalf("%s: face %d: non-positive state wl=%+v wr=%+v", name, i, wl[i], wr[i])
			}
		}
	}
}

// Test_edgeFallback01 checks that cells at the edge of the stencil
// (without a full 3- or 5-cell neighborhood) still produce a usable
// state via the lower-order fallback, rather than a zero value.
func Test_edgeFallback01(t *testing.T) {
	ph := &state.Physics{Gamma: 1.4, PressFloor: 1e-10, DensFloor: 1e-10}
	cells := monotoneDensityLine(4)
	for _, name := range []string{"plmc", "ppmc"} {
		scheme, err := New(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		wl, wr := scheme.Reconstruct(cells, mesh.X, ph)
		for i := range wl {
			if wl[i].Rho <= 0 || wr[i].Rho <= 0 {
				t.Fatalf("%s: face %d: edge fallback produced non-positive state: %+v / %+v", name, i, wl[i], wr[i])
			}
		}
	}
}

func Test_registry01(t *testing.T) {
	if _, err := New("nonexistent"); err == nil {
		t.Fatal("expected error for unregistered scheme name")
	}
	for _, name := range []string{"pcm", "plmp", "plmc", "ppmp", "ppmc"} {
		if _, err := New(name); err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if StencilHalfWidth(name) < 1 {
			t.Fatalf("%s: unexpected stencil half-width", name)
		}
	}
}
