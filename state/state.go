// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the conserved <-> primitive variable
// conversions and the floor-enforcement policy of §4.1. It is the
// innermost layer of the pipeline: every other package (riemann,
// reconstruct, integrator) operates on the Conserved/Primitive types
// defined here.
package state

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Physics bundles the equation-of-state constants shared by every cell:
// the adiabatic index and the floors. It plays the role mdl/fluid.Model
// plays for an equation of state — a small, Init'd-once parameter holder
// consulted by every conversion routine.
type Physics struct {
	Gamma      float64 // adiabatic index
	DensFloor  float64 // ρ_floor
	PressFloor float64 // p_floor
	DualEnergy bool    // dual-energy formalism enabled
	MHD        bool    // magnetic fields present
	EintFloor  float64 // e_floor (internal energy per volume), only used if DualEnergy
}

// Conserved is a single cell's (or interface flux's) conserved vector:
// density, momentum, total energy, and the optional dual-energy/MHD/
// passive-scalar fields.
type Conserved struct {
	Rho            float64
	MomX, MomY, MomZ float64
	Energy         float64
	Eint           float64   // internal energy per volume; valid iff Physics.DualEnergy
	Bx, By, Bz     float64   // face-centered B; valid iff Physics.MHD
	Scalars        []float64 // passive scalars ρs_k
}

// Primitive is a single cell's (or interface state's) primitive vector.
type Primitive struct {
	Rho          float64
	VelX, VelY, VelZ float64
	Press        float64
	Bx, By, Bz   float64
	Scalars      []float64
}

// kinetic returns kinetic energy density 1/2 ρ|v|^2.
func kinetic(rho, vx, vy, vz float64) float64 {
	return 0.5 * rho * (vx*vx + vy*vy + vz*vz)
}

// magnetic returns magnetic energy density 1/2|B|^2.
func magnetic(bx, by, bz float64) float64 {
	return 0.5 * (bx*bx + by*by + bz*bz)
}

// ToPrimitive converts a conserved state to primitive variables (§4.1).
// Pressure is derived from total energy unless dual energy is enabled and
// the total-energy-derived value would be non-physical, in which case the
// caller is expected to have already run the dual-energy selection
// (package dualenergy) — ToPrimitive itself only applies the pressure
// floor, never the dual-energy fallback.
func ToPrimitive(u Conserved, ph *Physics) Primitive {
	if u.Rho <= 0 {
		chk.Panic("state: ToPrimitive: non-positive density %v", u.Rho)
	}
	vx := u.MomX / u.Rho
	vy := u.MomY / u.Rho
	vz := u.MomZ / u.Rho
	var mag float64
	if ph.MHD {
		mag = magnetic(u.Bx, u.By, u.Bz)
	}
	p := utl.Max((ph.Gamma-1)*(u.Energy-kinetic(u.Rho, vx, vy, vz)-mag), ph.PressFloor)
	w := Primitive{Rho: u.Rho, VelX: vx, VelY: vy, VelZ: vz, Press: p}
	if ph.MHD {
		w.Bx, w.By, w.Bz = u.Bx, u.By, u.Bz
	}
	if len(u.Scalars) > 0 {
		w.Scalars = make([]float64, len(u.Scalars))
		for k, rs := range u.Scalars {
			w.Scalars[k] = rs / u.Rho
		}
	}
	return w
}

// ToConserved converts primitive variables to a conserved state.
func ToConserved(w Primitive, ph *Physics) Conserved {
	momx := w.Rho * w.VelX
	momy := w.Rho * w.VelY
	momz := w.Rho * w.VelZ
	var mag float64
	if ph.MHD {
		mag = magnetic(w.Bx, w.By, w.Bz)
	}
	e := w.Press/(ph.Gamma-1) + kinetic(w.Rho, w.VelX, w.VelY, w.VelZ) + mag
	u := Conserved{Rho: w.Rho, MomX: momx, MomY: momy, MomZ: momz, Energy: e}
	if ph.MHD {
		u.Bx, u.By, u.Bz = w.Bx, w.By, w.Bz
	}
	if len(w.Scalars) > 0 {
		u.Scalars = make([]float64, len(w.Scalars))
		for k, s := range w.Scalars {
			u.Scalars[k] = w.Rho * s
		}
	}
	if ph.DualEnergy {
		u.Eint = w.Press / (ph.Gamma - 1)
	}
	return u
}

// ComputePressure returns p = (γ-1)(E - K - M) without applying any floor.
func ComputePressure(u Conserved, ph *Physics) float64 {
	vx, vy, vz := u.MomX/u.Rho, u.MomY/u.Rho, u.MomZ/u.Rho
	var mag float64
	if ph.MHD {
		mag = magnetic(u.Bx, u.By, u.Bz)
	}
	return (ph.Gamma - 1) * (u.Energy - kinetic(u.Rho, vx, vy, vz) - mag)
}

// EnforceFloors applies the density floor and then the pressure floor
// (with dual-energy fallback) to a single cell, per §4.1. The density
// floor must run first: momenta are rescaled to preserve velocity before
// density is clamped, and energy is adjusted to preserve both velocity
// and pressure.
func EnforceFloors(u *Conserved, ph *Physics) {

	// density floor: preserve velocity, then clamp rho and fix up E
	if u.Rho < ph.DensFloor {
		vx, vy, vz := u.MomX/u.Rho, u.MomY/u.Rho, u.MomZ/u.Rho
		p := utl.Max(ComputePressure(*u, ph), ph.PressFloor)
		u.Rho = ph.DensFloor
		u.MomX, u.MomY, u.MomZ = u.Rho*vx, u.Rho*vy, u.Rho*vz
		var mag float64
		if ph.MHD {
			mag = magnetic(u.Bx, u.By, u.Bz)
		}
		u.Energy = p/(ph.Gamma-1) + kinetic(u.Rho, vx, vy, vz) + mag
	}

	// pressure floor, with dual-energy fallback
	var mag float64
	if ph.MHD {
		mag = magnetic(u.Bx, u.By, u.Bz)
	}
	kin := kinetic(u.Rho, u.MomX/u.Rho, u.MomY/u.Rho, u.MomZ/u.Rho)
	p := (ph.Gamma - 1) * (u.Energy - kin - mag)

	if p >= ph.PressFloor {
		if ph.DualEnergy {
			u.Eint = u.Energy - kin - mag
		}
		return
	}

	if !ph.DualEnergy {
		u.Energy = ph.PressFloor/(ph.Gamma-1) + kin + mag
		return
	}

	// dual energy on: use advected e_int, clamp it, resync E
	u.Eint = utl.Max(u.Eint, ph.EintFloor)
	u.Energy = kin + mag + u.Eint
}

// IsFinite reports whether every field of u is finite; a non-finite
// result is a fatal numerical error per §7.
func (u Conserved) IsFinite() bool {
	vals := []float64{u.Rho, u.MomX, u.MomY, u.MomZ, u.Energy, u.Eint, u.Bx, u.By, u.Bz}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	for _, s := range u.Scalars {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return false
		}
	}
	return true
}
