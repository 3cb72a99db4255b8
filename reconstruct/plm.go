// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reconstruct

import (
	"math"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// PLM is the slope-limited linear reconstruction of §4.2, using a
// three-cell stencil. With Characteristic set it limits slopes in the
// local hydrodynamic characteristic variables (PLMC); otherwise it
// limits each primitive component directly (PLMP). Tangential velocity,
// tangential field and passive-scalar slopes are always limited in
// primitive form — only the (rho, v_n, p) acoustic subsystem is
// characteristic-projected, per the design note that characteristic
// limiting here means the hydrodynamic decomposition, not the full MHD
// one.
type PLM struct {
	Characteristic bool
	Limiter        string // "minmod" or "vanleer" (default)
}

var pcmFallback PCM

// Reconstruct implements Reconstructor.
func (o *PLM) Reconstruct(cells []state.Primitive, axis mesh.Axis, ph *state.Physics) (wl, wr []state.Primitive) {
	n := len(cells)
	if n < 2 {
		return nil, nil
	}
	wl = make([]state.Primitive, n-1)
	wr = make([]state.Primitive, n-1)

	fcmWl, fcmWr := pcmFallback.Reconstruct(cells, axis, ph)

	for i := 0; i < n-1; i++ {
		// face i is between cells[i] (contributes wl[i]) and cells[i+1]
		// (contributes wr[i]); each side needs a full 3-cell stencil.
		var leftState, rightState state.Primitive
		if i-1 >= 0 && i+1 < n {
			slope := o.slope(toFieldVec(cells[i-1], axis), toFieldVec(cells[i], axis), toFieldVec(cells[i+1], axis), ph.Gamma)
			leftState = fromFieldVec(addHalf(toFieldVec(cells[i], axis), slope), axis)
		} else {
			leftState = fcmWl[i]
		}
		if i >= 0 && i+2 < n {
			slope := o.slope(toFieldVec(cells[i], axis), toFieldVec(cells[i+1], axis), toFieldVec(cells[i+2], axis), ph.Gamma)
			rightState = fromFieldVec(subHalf(toFieldVec(cells[i+1], axis), slope), axis)
		} else {
			rightState = fcmWr[i]
		}
		if fallbackToPCM(leftState, rightState) {
			leftState, rightState = fcmWl[i], fcmWr[i]
		}
		wl[i], wr[i] = leftState, rightState
	}
	return
}

// slope returns the limited cell-centered slope (per unit cell width) of
// the center cell's fields given its left/right neighbors.
func (o *PLM) slope(l, c, r fieldVec, gamma float64) fieldVec {
	dL := fieldVec{
		Rho: c.Rho - l.Rho, Vn: c.Vn - l.Vn, Vt1: c.Vt1 - l.Vt1, Vt2: c.Vt2 - l.Vt2, P: c.P - l.P,
		Bn: c.Bn - l.Bn, Bt1: c.Bt1 - l.Bt1, Bt2: c.Bt2 - l.Bt2,
	}
	dR := fieldVec{
		Rho: r.Rho - c.Rho, Vn: r.Vn - c.Vn, Vt1: r.Vt1 - c.Vt1, Vt2: r.Vt2 - c.Vt2, P: r.P - c.P,
		Bn: r.Bn - c.Bn, Bt1: r.Bt1 - c.Bt1, Bt2: r.Bt2 - c.Bt2,
	}

	var out fieldVec
	out.Vt1 = limit(o.Limiter, dL.Vt1, dR.Vt1)
	out.Vt2 = limit(o.Limiter, dL.Vt2, dR.Vt2)
	out.Bn = limit(o.Limiter, dL.Bn, dR.Bn)
	out.Bt1 = limit(o.Limiter, dL.Bt1, dR.Bt1)
	out.Bt2 = limit(o.Limiter, dL.Bt2, dR.Bt2)
	if n := len(c.Scalars); n > 0 {
		out.Scalars = make([]float64, n)
		for k := 0; k < n; k++ {
			out.Scalars[k] = limit(o.Limiter, c.Scalars[k]-l.Scalars[k], r.Scalars[k]-c.Scalars[k])
		}
	}

	if !o.Characteristic {
		out.Rho = limit(o.Limiter, dL.Rho, dR.Rho)
		out.Vn = limit(o.Limiter, dL.Vn, dR.Vn)
		out.P = limit(o.Limiter, dL.P, dR.P)
		return out
	}

	// characteristic projection of the (rho, vn, p) acoustic triad,
	// using the local sound speed at the center cell (Toro ch. 3).
	cSound := math.Sqrt(gamma * c.P / c.Rho)
	wL1, wL2, wL3 := projectAcoustic(dL.Rho, dL.Vn, dL.P, c.Rho, cSound)
	wR1, wR2, wR3 := projectAcoustic(dR.Rho, dR.Vn, dR.P, c.Rho, cSound)
	w1 := limit(o.Limiter, wL1, wR1)
	w2 := limit(o.Limiter, wL2, wR2)
	w3 := limit(o.Limiter, wL3, wR3)
	out.Rho, out.Vn, out.P = reconstructAcoustic(w1, w2, w3, c.Rho, cSound)
	return out
}

// projectAcoustic projects a (drho, dvn, dp) difference onto the
// left-going, entropy and right-going characteristic amplitudes of the
// 1-D Euler acoustic subsystem.
func projectAcoustic(drho, dvn, dp, rho, c float64) (w1, w2, w3 float64) {
	w1 = -rho/(2*c)*dvn + dp/(2*c*c)
	w2 = drho - dp/(c*c)
	w3 = rho/(2*c)*dvn + dp/(2*c*c)
	return
}

// reconstructAcoustic is the inverse of projectAcoustic.
func reconstructAcoustic(w1, w2, w3, rho, c float64) (drho, dvn, dp float64) {
	drho = w1 + w2 + w3
	dvn = c / rho * (w3 - w1)
	dp = c * c * (w1 + w3)
	return
}

func addHalf(c, slope fieldVec) fieldVec {
	out := c
	out.Rho += 0.5 * slope.Rho
	out.Vn += 0.5 * slope.Vn
	out.Vt1 += 0.5 * slope.Vt1
	out.Vt2 += 0.5 * slope.Vt2
	out.P += 0.5 * slope.P
	out.Bn += 0.5 * slope.Bn
	out.Bt1 += 0.5 * slope.Bt1
	out.Bt2 += 0.5 * slope.Bt2
	out.Scalars = addScalars(c.Scalars, slope.Scalars, 0.5)
	return out
}

func subHalf(c, slope fieldVec) fieldVec {
	out := c
	out.Rho -= 0.5 * slope.Rho
	out.Vn -= 0.5 * slope.Vn
	out.Vt1 -= 0.5 * slope.Vt1
	out.Vt2 -= 0.5 * slope.Vt2
	out.P -= 0.5 * slope.P
	out.Bn -= 0.5 * slope.Bn
	out.Bt1 -= 0.5 * slope.Bt1
	out.Bt2 -= 0.5 * slope.Bt2
	out.Scalars = addScalars(c.Scalars, slope.Scalars, -0.5)
	return out
}

func addScalars(base, delta []float64, factor float64) []float64 {
	if len(base) == 0 {
		return nil
	}
	out := make([]float64, len(base))
	for k := range base {
		out[k] = base[k] + factor*delta[k]
	}
	return out
}
