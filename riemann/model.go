// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package riemann implements the approximate and exact Riemann solver
// family of §4.3: Exact (Toro iterative), Roe, HLLC (hydro) and HLLD
// (MHD), interchangeable behind the Solver interface and selected at
// startup from configuration, following the New(name)/allocators
// registry idiom mdl/solid uses to select constitutive models.
package riemann

import (
	"github.com/cpmech/gosl/chk"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// Solver computes the conservative flux across one interface given the
// left/right interface primitive states, the adiabatic index, and the
// sweep direction. Implementations permute velocity/magnetic components
// internally via mesh.ToNormal/FromNormal so that "x" is always the
// interface normal.
type Solver interface {
	ComputeFlux(wl, wr state.Primitive, ph *state.Physics, axis mesh.Axis) state.Conserved
}

// New returns a new Solver by registered name ("exact", "roe", "hllc",
// "hlld").
func New(name string) (Solver, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("riemann: solver %q is not available", name)
	}
	return allocator(), nil
}

// Register adds a new solver allocator to the registry. Panics if the
// name is already registered.
func Register(name string, allocator func() Solver) {
	if _, ok := allocators[name]; ok {
		chk.Panic("riemann: cannot register solver %q: already registered", name)
	}
	allocators[name] = allocator
}

var allocators = make(map[string]func() Solver)

func init() {
	Register("exact", func() Solver { return new(Exact) })
	Register("roe", func() Solver { return new(Roe) })
	Register("hllc", func() Solver { return new(HLLC) })
	Register("hlld", func() Solver { return new(HLLD) })
}

// upwindScalars upwinds passive scalars by the sign of the contact-wave
// speed (each solver sets the dual-energy flux itself), per §4.3's
// closing paragraph:
// F_s = F_rho * s_L if sM >= 0, else F_rho * s_R.
func upwindScalars(fluxRho float64, sM float64, sl, sr []float64) []float64 {
	if len(sl) == 0 && len(sr) == 0 {
		return nil
	}
	n := len(sl)
	if len(sr) > n {
		n = len(sr)
	}
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		if sM >= 0 {
			if k < len(sl) {
				out[k] = fluxRho * sl[k]
			}
		} else {
			if k < len(sr) {
				out[k] = fluxRho * sr[k]
			}
		}
	}
	return out
}
