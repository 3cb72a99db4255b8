// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"

	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// CoolingConfig holds the parameters needed to turn an internal-energy
// density into a temperature for the cooling curve, read once from
// configuration.
type CoolingConfig struct {
	Gamma         float64
	MeanMolWeight float64 // μ
}

// Cooling integrates de_int/dt = -Λ(ρ,T) across one step, the same
// implicit-ODE idiom mdl/retention.Update uses to advance a retention
// curve's saturation: a single-variable Radau5 solve per cell, with ρ
// held fixed as an extra argument rather than a state variable.
type Cooling struct {
	curve collab.CoolingCurve
	cfg   CoolingConfig
	sol   ode.Solver
}

// NewCooling builds a Cooling source term around curve, per §6's
// cooling-table collaborator.
func NewCooling(curve collab.CoolingCurve, cfg CoolingConfig) *Cooling {
	o := &Cooling{curve: curve, cfg: cfg}
	silent := true
	o.sol.Init("Radau5", 1, func(f []float64, dT, T float64, y []float64, args ...interface{}) error {
		rho := args[0].(float64)
		eInt := y[0]
		if eInt < 0 {
			eInt = 0
		}
		temp := Temperature(eInt, rho, o.cfg.Gamma, o.cfg.MeanMolWeight)
		f[0] = -o.curve.Lambda(rho, temp)
		return nil
	}, nil, nil, nil, silent)
	o.sol.Distr = false // this is a per-cell scalar ODE, not a distributed solve
	return o
}

// Step advances a single cell's internal energy density over dt at
// fixed density rho, clamping the result to be non-negative (the caller
// is expected to re-apply state.EnforceFloors afterward).
func (o *Cooling) Step(rho, eInt, dt float64) (float64, error) {
	y := []float64{eInt}
	err := o.sol.Solve(y, 0, dt, dt, false, rho)
	if err != nil {
		return 0, chk.Err("source: cooling ODE step failed: %v", err)
	}
	if y[0] < 0 {
		y[0] = 0
	}
	return y[0], nil
}

// Apply runs Step over every interior cell of grid, adding the
// resulting change in internal energy to the cell's total energy (and,
// if dual energy is enabled, to its advected e_int) before the caller
// re-applies floors.
func (o *Cooling) Apply(grid *mesh.Grid, ph *state.Physics, dt float64) error {
	xlo, xhi := grid.InteriorRange(mesh.X)
	ylo, yhi := grid.InteriorRange(mesh.Y)
	zlo, zhi := grid.InteriorRange(mesh.Z)
	for k := zlo; k < zhi; k++ {
		for j := ylo; j < yhi; j++ {
			for i := xlo; i < xhi; i++ {
				c := grid.At(i, j, k)
				eIntOld := currentEint(*c, ph)
				eIntNew, err := o.Step(c.Rho, eIntOld, dt)
				if err != nil {
					return err
				}
				c.Energy += eIntNew - eIntOld
				if ph.DualEnergy {
					c.Eint = eIntNew
				}
			}
		}
	}
	return nil
}

// currentEint returns a cell's internal energy density: the advected
// e_int field if dual energy is on, else E-K-M derived from the total.
func currentEint(c state.Conserved, ph *state.Physics) float64 {
	if ph.DualEnergy {
		return c.Eint
	}
	return state.ComputePressure(c, ph) / (ph.Gamma - 1)
}
