// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package timestep implements the CFL-limited stable timestep of §4.7:
// a per-step Dt computed bottom-up from cell wave speeds rather than
// read from a fixed schedule, then collapsed across sub-blocks through
// a collaborator reduction at the end of each step. The floor/cap
// comparisons use utl.Min/utl.Max, the same pair inp.Sim and
// fem/output.go use for running extent/tolerance bounds.
package timestep

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// CFLDefault is the default Courant number, §9.
const CFLDefault = 0.4

// Config holds the controller's tunables, read once from configuration.
type Config struct {
	CFL   float64 // Courant number, (0,1]
	DtMax float64 // hard cap on the returned step; 0 means uncapped
}

// NewConfig returns a Config with the standard default CFL number and no
// cap.
func NewConfig() Config {
	return Config{CFL: CFLDefault}
}

// Compute returns the CFL-stable Δt for grid's current state: the
// Courant number times the minimum, over every interior cell and every
// axis with extent > 1, of spacing / (|v_axis| + c_fast); reduced to a
// single global value via reducer (§6's Δt barrier), then capped at
// cfg.DtMax if set. c_fast is floored at sqrt(γ·p_floor/ρ) so a
// zero-velocity, zero-pressure cell can't force an infinite step.
func Compute(grid *mesh.Grid, ph *state.Physics, cfg Config, reducer collab.Reducer) (float64, error) {
	if cfg.CFL <= 0 || cfg.CFL > 1 {
		return 0, chk.Err("timestep: CFL number must be in (0,1], got %v", cfg.CFL)
	}

	local := math.Inf(1)
	xlo, xhi := grid.InteriorRange(mesh.X)
	ylo, yhi := grid.InteriorRange(mesh.Y)
	zlo, zhi := grid.InteriorRange(mesh.Z)
	for k := zlo; k < zhi; k++ {
		for j := ylo; j < yhi; j++ {
			for i := xlo; i < xhi; i++ {
				c := grid.At(i, j, k)
				w := state.ToPrimitive(*c, ph)
				for _, axis := range []mesh.Axis{mesh.X, mesh.Y, mesh.Z} {
					if grid.Block.Extent(axis) <= 1 {
						continue
					}
					vn, _, _ := mesh.ToNormal(axis, w.VelX, w.VelY, w.VelZ)
					speed := waveSpeed(w, ph, axis)
					candidate := grid.Block.Spacing(axis) / (math.Abs(vn) + speed)
					local = utl.Min(local, candidate)
				}
			}
		}
	}
	if math.IsInf(local, 1) {
		return 0, chk.Err("timestep: no axis with extent > 1; cannot compute a stable step")
	}

	dt := cfg.CFL * reducer.MinReduce(local)
	if cfg.DtMax > 0 {
		dt = utl.Min(dt, cfg.DtMax)
	}
	if !(dt > 0) || math.IsNaN(dt) {
		return 0, chk.Err("timestep: computed non-positive or NaN Δt=%v", dt)
	}
	return dt, nil
}

// waveSpeed returns the hydro sound speed or, when MHD is enabled, the
// fast magnetosonic speed for the wave traveling along axis (using that
// axis's normal B component in the discriminant, per the standard fast
// magnetosonic formula).
func waveSpeed(w state.Primitive, ph *state.Physics, axis mesh.Axis) float64 {
	p := w.Press
	if p < ph.PressFloor {
		p = ph.PressFloor
	}
	floor := math.Sqrt(ph.Gamma * ph.PressFloor / w.Rho)
	if !ph.MHD {
		cs := math.Sqrt(ph.Gamma * p / w.Rho)
		return utl.Max(cs, floor)
	}
	bn, bt1, bt2 := mesh.ToNormal(axis, w.Bx, w.By, w.Bz)
	cs2 := ph.Gamma * p / w.Rho
	b2 := bn*bn + bt1*bt1 + bt2*bt2
	term := cs2 + b2/w.Rho
	disc := utl.Max(term*term-4*cs2*(bn*bn)/w.Rho, 0)
	cf := math.Sqrt(0.5 * (term + math.Sqrt(disc)))
	return utl.Max(cf, floor)
}
