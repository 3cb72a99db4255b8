// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package reconstruct implements the interface-state reconstruction
// family of §4.2: PCM, PLMP, PLMC, PPMP, PPMC, chosen at startup by
// name from the same registry idiom ele/factory.go uses to select an
// element type.
package reconstruct

import (
	"github.com/cpmech/gosl/chk"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// Reconstructor turns a line of cell-centered primitives along axis into
// the left/right interface states bracketing every gap in the line:
// out[i] is the pair at the interface between cells[i] and cells[i+1],
// so len(wl) == len(wr) == len(cells)-1. Implementations permute
// velocity/B components via mesh.ToNormal/FromNormal so that "normal"
// always means "along axis".
type Reconstructor interface {
	Reconstruct(cells []state.Primitive, axis mesh.Axis, ph *state.Physics) (wl, wr []state.Primitive)
}

// New returns a new Reconstructor by registered name ("pcm", "plmp",
// "plmc", "ppmp", "ppmc").
func New(name string) (Reconstructor, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("reconstruct: scheme %q is not available", name)
	}
	return allocator(), nil
}

// Register adds a new scheme allocator to the registry. Panics if the
// name is already registered.
func Register(name string, allocator func() Reconstructor) {
	if _, ok := allocators[name]; ok {
		chk.Panic("reconstruct: cannot register scheme %q: already registered", name)
	}
	allocators[name] = allocator
}

var allocators = make(map[string]func() Reconstructor)

func init() {
	Register("pcm", func() Reconstructor { return new(PCM) })
	Register("plmp", func() Reconstructor { return &PLM{Characteristic: false} })
	Register("plmc", func() Reconstructor { return &PLM{Characteristic: true} })
	Register("ppmp", func() Reconstructor { return &PPM{Characteristic: false} })
	Register("ppmc", func() Reconstructor { return &PPM{Characteristic: true} })
}

// StencilHalfWidth returns the number of ghost cells a scheme of the
// given registered name requires on each side, per §4.8.
func StencilHalfWidth(name string) int {
	switch name {
	case "pcm":
		return 1
	case "plmp", "plmc":
		return 1
	case "ppmp", "ppmc":
		return 2
	}
	chk.Panic("reconstruct: scheme %q is not available", name)
	return 0
}

// fieldVec flattens a Primitive's axis-dependent components into
// normal/tangential order so every limiter can operate component-wise
// without re-deriving the permutation at each call site.
type fieldVec struct {
	Rho, Vn, Vt1, Vt2, P float64
	Bn, Bt1, Bt2         float64
	Scalars              []float64
}

func toFieldVec(w state.Primitive, axis mesh.Axis) fieldVec {
	vn, vt1, vt2 := mesh.ToNormal(axis, w.VelX, w.VelY, w.VelZ)
	bn, bt1, bt2 := mesh.ToNormal(axis, w.Bx, w.By, w.Bz)
	return fieldVec{Rho: w.Rho, Vn: vn, Vt1: vt1, Vt2: vt2, P: w.Press, Bn: bn, Bt1: bt1, Bt2: bt2, Scalars: w.Scalars}
}

func fromFieldVec(f fieldVec, axis mesh.Axis) state.Primitive {
	vx, vy, vz := mesh.FromNormal(axis, f.Vn, f.Vt1, f.Vt2)
	bx, by, bz := mesh.FromNormal(axis, f.Bn, f.Bt1, f.Bt2)
	return state.Primitive{Rho: f.Rho, VelX: vx, VelY: vy, VelZ: vz, Press: f.P, Bx: bx, By: by, Bz: bz, Scalars: f.Scalars}
}

// minmod returns the smaller-magnitude of a, b if they share a sign,
// else 0 (§4.2's "disagree in sign, the slope is zero" tie-break).
func minmod(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	if a < 0 {
		return -minAbs(a, b)
	}
	return minAbs(a, b)
}

func minAbs(a, b float64) float64 {
	if a < -a {
		a = -a
	}
	if b < -b {
		b = -b
	}
	if a < b {
		return a
	}
	return b
}

// vanLeer returns the harmonic-mean limiter of two one-sided
// differences: 0 if they disagree in sign, else 2ab/(a+b).
func vanLeer(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}

// limit dispatches to the named slope limiter ("minmod" or "vanleer",
// the default), §4.2.
func limit(kind string, a, b float64) float64 {
	if kind == "minmod" {
		return minmod(a, b)
	}
	return vanLeer(a, b)
}

// fallbackToPCM reports whether either candidate face state has
// non-positive density or pressure, per §4.2's face-level fallback rule.
func fallbackToPCM(wl, wr state.Primitive) bool {
	return wl.Rho <= 0 || wr.Rho <= 0 || wl.Press <= 0 || wr.Press <= 0
}
