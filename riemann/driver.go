// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package riemann

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// Path is a scripted sequence of interface states to replay through a
// Solver, mirroring mdl/solid's strain-path Driver: a test or diagnostic
// supplies the L/R primitive pairs up front and the Driver records the
// resulting flux history.
type Path struct {
	WL, WR []state.Primitive
	Axis   mesh.Axis
}

// Size returns the number of interfaces in the path.
func (p *Path) Size() int {
	return len(p.WL)
}

// Driver runs a Solver over a Path and records the flux at every
// interface, checking finiteness as it goes.
type Driver struct {

	// input
	solver Solver

	// settings
	Silent bool // do not print error messages

	// results
	Res []state.Conserved // flux history, one entry per interface
}

// Init initialises the driver with a solver selected by registered name.
func (o *Driver) Init(name string) (err error) {
	o.solver, err = New(name)
	return
}

// InitWithSolver initialises the driver with an already-constructed solver.
func (o *Driver) InitWithSolver(s Solver) {
	o.solver = s
}

// Run replays pth through the driver's solver, recording the flux at
// each interface into o.Res. It aborts on the first non-finite flux,
// reporting the offending interface index.
func (o *Driver) Run(ph *state.Physics, pth *Path) (err error) {
	if len(pth.WL) != len(pth.WR) {
		return chk.Err(_driver_err01, len(pth.WL), len(pth.WR))
	}
	o.Res = make([]state.Conserved, pth.Size())
	for i := 0; i < pth.Size(); i++ {
		flux := o.solver.ComputeFlux(pth.WL[i], pth.WR[i], ph, pth.Axis)
		if !flux.IsFinite() {
			if !o.Silent {
				io.Pfred(_driver_err02, i)
			}
			return chk.Err(_driver_err02, i)
		}
		o.Res[i] = flux
	}
	return
}

var (
	_driver_err01 = "riemann: driver: mismatched path lengths: len(WL)=%d, len(WR)=%d\n"
	_driver_err02 = "riemann: driver: non-finite flux at interface %d\n"
)
