// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_state01(tst *testing.T) {

	chk.PrintTitle("state01")

	ph := &Physics{Gamma: 1.4, DensFloor: 1e-10, PressFloor: 1e-10}
	w := Primitive{Rho: 1.0, VelX: 0.5, VelY: -0.2, VelZ: 0.1, Press: 1.0}
	u := ToConserved(w, ph)
	w2 := ToPrimitive(u, ph)

	tol := 1e-12
	if math.Abs(w.Rho-w2.Rho) > tol || math.Abs(w.VelX-w2.VelX) > tol ||
		math.Abs(w.VelY-w2.VelY) > tol || math.Abs(w.VelZ-w2.VelZ) > tol ||
		math.Abs(w.Press-w2.Press) > tol {
		tst.Errorf("round-trip failed: w=%+v w2=%+v", w, w2)
	}
}

func Test_state02(tst *testing.T) {

	chk.PrintTitle("state02 -- floor activation")

	ph := &Physics{Gamma: 1.4, DensFloor: 1e-4, PressFloor: 1e-4, DualEnergy: true, EintFloor: 1e-6}
	// a cell with negative pre-floor pressure: E too small for its momentum
	u := Conserved{Rho: 1.0, MomX: 0, MomY: 0, MomZ: 0, Energy: -1.0, Eint: -1.0}
	EnforceFloors(&u, ph)

	if u.Rho < ph.DensFloor {
		tst.Errorf("density floor not respected: rho=%v", u.Rho)
	}
	p := ComputePressure(u, ph)
	if p < -1e-12 {
		tst.Errorf("pressure still negative after floor: p=%v", p)
	}
	if u.Eint < ph.EintFloor-1e-15 {
		tst.Errorf("eint below floor: %v", u.Eint)
	}
	if !u.IsFinite() {
		tst.Errorf("state not finite after floor enforcement")
	}
}

func Test_state03(tst *testing.T) {

	chk.PrintTitle("state03 -- density floor preserves velocity")

	ph := &Physics{Gamma: 1.4, DensFloor: 0.1, PressFloor: 1e-8}
	u := Conserved{Rho: 0.01, MomX: 0.02, MomY: 0, MomZ: 0, Energy: 1.0}
	vxBefore := u.MomX / u.Rho
	EnforceFloors(&u, ph)
	if u.Rho != ph.DensFloor {
		tst.Errorf("rho = %v, want %v", u.Rho, ph.DensFloor)
	}
	vxAfter := u.MomX / u.Rho
	if math.Abs(vxAfter-vxBefore) > 1e-10 {
		tst.Errorf("velocity not preserved by density floor: before=%v after=%v", vxBefore, vxAfter)
	}
}
