// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "github.com/cpmech/gosl/la"

// toSlice9 packs the nine fixed conserved fields into the flat layout
// la's vector helpers expect.
func toSlice9(c Conserved) []float64 {
	return []float64{c.Rho, c.MomX, c.MomY, c.MomZ, c.Energy, c.Eint, c.Bx, c.By, c.Bz}
}

// fromSlice9 is the inverse of toSlice9.
func fromSlice9(s []float64) Conserved {
	return Conserved{Rho: s[0], MomX: s[1], MomY: s[2], MomZ: s[3], Energy: s[4], Eint: s[5], Bx: s[6], By: s[7], Bz: s[8]}
}

// AddScaled returns u + factor*v, extending the result's Scalars to
// match whichever of u, v carries them (both always carry the same
// count once a run's physics config is fixed, but a bare zero-value
// Conserved{} used as an accumulator starts with none). The nine fixed
// fields and the Scalars tail are each combined via la.VecAdd2, the
// same alpha*a+beta*b combination mdl/solid/driver.go uses to advance
// a strain path (la.VecAdd2(o.Eps[k], 1, o.Eps[k-1], 1, Δε)).
func AddScaled(u, v Conserved, factor float64) Conserved {
	out := make([]float64, 9)
	la.VecAdd2(out, 1, toSlice9(u), factor, toSlice9(v))
	result := fromSlice9(out)

	n := len(v.Scalars)
	if n == 0 {
		n = len(u.Scalars)
	}
	if n > 0 {
		us := make([]float64, n)
		vs := make([]float64, n)
		copy(us, u.Scalars)
		copy(vs, v.Scalars)
		outS := make([]float64, n)
		la.VecAdd2(outS, 1, us, factor, vs)
		result.Scalars = outS
	}
	return result
}

// Sub returns a - b (used to build flux differences fHi - fLo).
func Sub(a, b Conserved) Conserved {
	return AddScaled(a, b, -1)
}
