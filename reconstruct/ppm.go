// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reconstruct

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// PPM is the piecewise-parabolic scheme of §4.2 (Colella & Woodward
// 1984): a five-cell stencil, fourth-order face interpolation, the CW84
// monotonicity constraint, and a pressure-jump flattening test near
// shocks. With Characteristic set, the (rho, v_n, p) acoustic triad is
// parabola-fit in characteristic space (PPMC); tangential velocity,
// tangential field and scalars are always fit in primitive form, per
// the same hydrodynamic-only characteristic-decomposition rule PLM uses.
type PPM struct {
	Characteristic bool
}

const (
	ppmFlattenEpsilon = 0.33
	ppmFlattenOmega1  = 0.52
	ppmFlattenOmega2  = 10.0
)

// Reconstruct implements Reconstructor.
func (o *PPM) Reconstruct(cells []state.Primitive, axis mesh.Axis, ph *state.Physics) (wl, wr []state.Primitive) {
	n := len(cells)
	if n < 2 {
		return nil, nil
	}
	wl = make([]state.Primitive, n-1)
	wr = make([]state.Primitive, n-1)

	fcmWl, fcmWr := pcmFallback.Reconstruct(cells, axis, ph)
	var plm PLM
	plm.Characteristic = o.Characteristic
	plmWl, plmWr := plm.Reconstruct(cells, axis, ph)

	vecs := make([]fieldVec, n)
	for i := range cells {
		vecs[i] = toFieldVec(cells[i], axis)
	}

	// faceL[i], faceR[i] are the parabola's left/right face values bounding
	// cell i, valid only for 2 <= i <= n-3 (full five-cell stencil).
	faceL := make([]fieldVec, n)
	faceR := make([]fieldVec, n)
	have := make([]bool, n)
	for i := 2; i <= n-3; i++ {
		faceL[i], faceR[i] = o.parabola(vecs, i, ph.Gamma)
		have[i] = true
	}

	for i := 0; i < n-1; i++ {
		var leftState, rightState state.Primitive
		if have[i] {
			leftState = fromFieldVec(faceR[i], axis)
		} else if i-1 >= 0 && i+1 < n {
			leftState = plmWl[i]
		} else {
			leftState = fcmWl[i]
		}
		if have[i+1] {
			rightState = fromFieldVec(faceL[i+1], axis)
		} else if i >= 0 && i+2 < n {
			rightState = plmWr[i]
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

// parabola returns the CW84 monotonized, flattened face values (aL, aR)
// bounding cell i, for each field independently (characteristic
// projection applied only to the acoustic triad when enabled).
func (o *PPM) parabola(v []fieldVec, i int, gamma float64) (faceL, faceR fieldVec) {
	chi := o.flatten(v, i, gamma)

	interp := func(get func(fieldVec) float64) (aL, aR float64) {
		aIm2, aIm1, aI, aIp1, aIp2 := get(v[i-2]), get(v[i-1]), get(v[i]), get(v[i+1]), get(v[i+2])
		faceIm := 7.0/12*(aIm1+aI) - 1.0/12*(aIm2+aIp1)
		faceIp := 7.0/12*(aI+aIp1) - 1.0/12*(aIm1+aIp2)
		aL, aR = monotonize(aIm1, aI, aIp1, faceIm, faceIp)
		// flatten toward the cell average near strong shocks
		aL = aI + chi*(aL-aI)
		aR = aI + chi*(aR-aI)
		return
	}

	faceL.Rho, faceR.Rho = interp(func(f fieldVec) float64 { return f.Rho })
	faceL.Vt1, faceR.Vt1 = interp(func(f fieldVec) float64 { return f.Vt1 })
	faceL.Vt2, faceR.Vt2 = interp(func(f fieldVec) float64 { return f.Vt2 })
	faceL.Bn, faceR.Bn = interp(func(f fieldVec) float64 { return f.Bn })
	faceL.Bt1, faceR.Bt1 = interp(func(f fieldVec) float64 { return f.Bt1 })
	faceL.Bt2, faceR.Bt2 = interp(func(f fieldVec) float64 { return f.Bt2 })
	faceL.P, faceR.P = interp(func(f fieldVec) float64 { return f.P })

	if n := len(v[i].Scalars); n > 0 {
		faceL.Scalars = make([]float64, n)
		faceR.Scalars = make([]float64, n)
		for k := 0; k < n; k++ {
			kk := k
			faceL.Scalars[k], faceR.Scalars[k] = interp(func(f fieldVec) float64 { return f.Scalars[kk] })
		}
	}

	if !o.Characteristic {
		faceL.Vn, faceR.Vn = interp(func(f fieldVec) float64 { return f.Vn })
		return
	}

	// characteristic parabola for (rho, vn, p): interpolate the three
	// characteristic amplitudes relative to cell i directly, using the
	// local sound speed, then reconstruct.
	c := math.Sqrt(gamma * v[i].P / v[i].Rho)
	proj := func(f fieldVec) (w1, w2, w3 float64) {
		return projectAcoustic(f.Rho-v[i].Rho, f.Vn-v[i].Vn, f.P-v[i].P, v[i].Rho, c)
	}
	w1Im2, w2Im2, w3Im2 := proj(v[i-2])
	w1Im1, w2Im1, w3Im1 := proj(v[i-1])
	w1Ip1, w2Ip1, w3Ip1 := proj(v[i+1])
	w1Ip2, w2Ip2, w3Ip2 := proj(v[i+2])

	interpW := func(wIm2, wIm1, wI, wIp1, wIp2 float64) (aL, aR float64) {
		faceIm := 7.0/12*(wIm1+wI) - 1.0/12*(wIm2+wIp1)
		faceIp := 7.0/12*(wI+wIp1) - 1.0/12*(wIm1+wIp2)
		aL, aR = monotonize(wIm1, wI, wIp1, faceIm, faceIp)
		aL = wI + chi*(aL-wI)
		aR = wI + chi*(aR-wI)
		return
	}
	w1L, w1R := interpW(w1Im2, w1Im1, 0, w1Ip1, w1Ip2)
	w2L, w2R := interpW(w2Im2, w2Im1, 0, w2Ip1, w2Ip2)
	w3L, w3R := interpW(w3Im2, w3Im1, 0, w3Ip1, w3Ip2)

	dRhoL, dVnL, dPL := reconstructAcoustic(w1L, w2L, w3L, v[i].Rho, c)
	dRhoR, dVnR, dPR := reconstructAcoustic(w1R, w2R, w3R, v[i].Rho, c)
	faceL.Rho, faceR.Rho = v[i].Rho+dRhoL, v[i].Rho+dRhoR
	faceL.Vn, faceR.Vn = v[i].Vn+dVnL, v[i].Vn+dVnR
	faceL.P, faceR.P = v[i].P+dPL, v[i].P+dPR
	return
}

// monotonize applies the CW84 constraint (eq. 1.10) to a pair of raw
// interpolated face values aL, aR bounding cell average aI, given
// neighbors aIm1, aIp1.
func monotonize(aIm1, aI, aIp1, aL, aR float64) (float64, float64) {
	if (aR-aI)*(aI-aL) <= 0 {
		return aI, aI
	}
	if (aR-aL)*(aI-0.5*(aL+aR)) > (aR-aL)*(aR-aL)/6 {
		aL = 3*aI - 2*aR
	}
	if -(aR-aL)*(aR-aL)/6 > (aR-aL)*(aI-0.5*(aL+aR)) {
		aR = 3*aI - 2*aL
	}
	return aL, aR
}

// flatten returns the CW84 flattening coefficient chi in [0,1]; chi=1
// leaves the parabola untouched, chi=0 collapses it to PCM. Detects a
// compressive, strong-pressure-jump region using the standard
// two-cell-wide pressure and velocity tests.
func (o *PPM) flatten(v []fieldVec, i int, gamma float64) float64 {
	pIm1, pI, pIp1 := v[i-1].P, v[i].P, v[i+1].P
	pIm2, pIp2 := v[i-2].P, v[i+2].P
	dp1 := pIp1 - pIm1
	dp2 := pIp2 - pIm2
	vIm1, vIp1 := v[i-1].Vn, v[i+1].Vn

	shockLike := vIm1-vIp1 > 0 && math.Abs(dp1) > ppmFlattenEpsilon*utl.Min(pIm1, pIp1)
	if !shockLike || dp2 == 0 {
		return 1
	}
	f := ppmFlattenOmega1 * (dp1/dp2 - ppmFlattenOmega2)
	f = utl.Max(0, utl.Min(1, f))
	return 1 - f
}
