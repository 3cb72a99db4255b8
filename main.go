// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/hannahjleary/cholla/collab"
	"github.com/hannahjleary/cholla/integrator"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/param"
	"github.com/hannahjleary/cholla/reconstruct"
	"github.com/hannahjleary/cholla/riemann"
	"github.com/hannahjleary/cholla/source"
	"github.com/hannahjleary/cholla/state"
	"github.com/hannahjleary/cholla/timestep"
	"github.com/hannahjleary/cholla/tools"
)

func main() {

	// report panics from rank 0 only, then shut MPI down before the
	// process exits
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nCholla core -- finite-volume hydro/MHD pipeline\n\n")
	}

	// parameter-file path plus command-line overrides (§6 CLI contract)
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("usage: cholla <parameter-file> [key=value]...")
	}
	cfg := param.New()
	if err := cfg.ReadFile(flag.Arg(0)); err != nil {
		chk.Panic("%v", err)
	}
	for _, tok := range flag.Args()[1:] {
		if err := cfg.Override(tok); err != nil {
			chk.Panic("%v", err)
		}
	}
	cfg.Strict = cfg.Bool("strict", false)

	grid, ph := buildGrid(cfg)
	seedScenario(cfg, grid, ph)

	recon, err := reconstruct.New(cfg.String("scheme.reconstruct", "plmc"))
	if err != nil {
		chk.Panic("%v", err)
	}
	solver, err := riemann.New(cfg.String("scheme.riemann", "hllc"))
	if err != nil {
		chk.Panic("%v", err)
	}
	scheme, err := integrator.New(cfg.String("scheme.integrator", "vanleer"))
	if err != nil {
		chk.Panic("%v", err)
	}
	grid.Block.CheckGhostWidth(reconstruct.StencilHalfWidth(cfg.String("scheme.reconstruct", "plmc")))

	var filler collab.GhostFiller = &collab.LocalGhostFiller{}
	var reducer collab.Reducer = &collab.LocalReducer{}
	if mpi.IsOn() {
		reducer = collab.NewMPIReducer()
	}

	tctrl := timestep.NewConfig()
	tctrl.CFL = cfg.Float("time.cfl", timestep.CFLDefault)
	tctrl.DtMax = cfg.Float("time.dt_max", 0)
	tEnd := cfg.Float("time.t_end", 0.2)

	// cooling needs a collab.CoolingCurve collaborator, which the CLI
	// has no built-in source for (cooling tables are out of core scope);
	// a caller embedding this binary would wire one in before the loop.
	var gravCfg source.GravityConfig
	hasGravity := cfg.Bool("gravity.enabled", false)
	if hasGravity {
		gravCfg.HighAccuracy = cfg.Bool("gravity.high_accuracy", false)
		if cfg.String("gravity.mode", "work") == "delta_ke" {
			gravCfg.Mode = source.CoupleDeltaKE
		}
	}

	outDir := cfg.String("output.dir", "")
	outEvery := cfg.Int("output.every", 0)

	step := 0
	t := 0.0
	for t < tEnd {
		dt, err := timestep.Compute(grid, ph, tctrl, reducer)
		if err != nil {
			chk.Panic("%v", err)
		}
		if t+dt > tEnd {
			dt = tEnd - t
		}
		if err := scheme.Advance(grid, ph, recon, solver, filler, dt); err != nil {
			chk.Panic("%v", err)
		}
		if hasGravity {
			phi := make([]float64, len(grid.Cells))
			if err := source.ApplyGravity(grid, ph, phi, gravCfg, dt); err != nil {
				chk.Panic("%v", err)
			}
		}
		t += dt
		step++
		if outDir != "" && outEvery > 0 && step%int(outEvery) == 0 {
			if err := tools.WriteVTK(io.Sf("%s/step_%06d.vtk", outDir, step), grid, ph); err != nil {
				chk.Panic("%v", err)
			}
		}
		if mpi.Rank() == 0 {
			io.Pf("step %4d  t=%.6f  dt=%.3e\n", step, t, dt)
		}
	}

	cfg.WarnUnused()
	if mpi.Rank() == 0 {
		io.PfGreen("\ndone: %d steps, t=%.6f\n", step, t)
	}
}

// buildGrid constructs the local sub-block geometry and physics
// constants from the [grid]/[physics] tables.
func buildGrid(cfg *param.Map) (*mesh.Grid, *state.Physics) {
	nx := int(cfg.Int("grid.nx", 1))
	ny := int(cfg.Int("grid.ny", 1))
	nz := int(cfg.Int("grid.nz", 1))
	ghost := int(cfg.Int("grid.ghost", 2))
	dx := cfg.Float("grid.dx", 1)
	dy := cfg.Float("grid.dy", 1)
	dz := cfg.Float("grid.dz", 1)
	b := mesh.NewBlock(nx, ny, nz, ghost, dx, dy, dz)
	for axis, prefix := range [3]string{"x", "y", "z"} {
		lo, hi := 2*axis, 2*axis+1
		b.Boundary[lo] = parseBoundary(cfg.String("grid.boundary_lo_"+prefix, "periodic"))
		b.Boundary[hi] = parseBoundary(cfg.String("grid.boundary_hi_"+prefix, "periodic"))
	}
	grid := mesh.NewGrid(b)

	ph := &state.Physics{
		Gamma:      cfg.Float("physics.gamma", 1.4),
		DensFloor:  cfg.Float("physics.dens_floor", 1e-8),
		PressFloor: cfg.Float("physics.press_floor", 1e-8),
		DualEnergy: cfg.Bool("physics.dual_energy", false),
		MHD:        cfg.Bool("physics.mhd", false),
	}
	if ph.DualEnergy {
		tempFloor := cfg.Float("physics.temp_floor", 0)
		refRho := cfg.Float("physics.eint_floor_ref_density", 1.0)
		meanMolWeight := cfg.Float("physics.mean_molecular_weight", 0.6)
		ph.EintFloor = source.EintFloorFromTemperature(tempFloor, ph.Gamma, meanMolWeight, refRho)
	}
	return grid, ph
}

func parseBoundary(kind string) mesh.BoundaryKind {
	switch kind {
	case "periodic":
		return mesh.Periodic
	case "reflective":
		return mesh.Reflective
	case "outflow":
		return mesh.Outflow
	case "custom":
		return mesh.Custom
	}
	chk.Panic("grid: unknown boundary kind %q", kind)
	return mesh.Periodic
}

// seedScenario fills grid's interior cells from the named [scenario],
// the cmd-style initial-condition generators in package tools.
func seedScenario(cfg *param.Map, grid *mesh.Grid, ph *state.Physics) {
	axis := parseAxis(cfg.String("scenario.axis", "x"))
	switch name := cfg.String("scenario.name", "sod"); name {
	case "sod":
		tools.Sod(grid, ph, tools.SodInput{Axis: axis})
	case "briowu":
		tools.BrioWu(grid, ph, axis)
	case "einfeldt":
		tools.Einfeldt(grid, ph, tools.EinfeldtInput{
			Axis:  axis,
			Rho:   cfg.Float("scenario.rho", 0),
			Press: cfg.Float("scenario.press", 0),
			Vn:    cfg.Float("scenario.vn", 0),
		})
	case "smoothwave":
		tools.SmoothWave(grid, ph, tools.SmoothWaveInput{
			Axis:      axis,
			Rho0:      cfg.Float("scenario.rho0", 0),
			Press0:    cfg.Float("scenario.press0", 0),
			Amplitude: cfg.Float("scenario.amplitude", 0),
			Gamma:     ph.Gamma,
		})
	case "flooractivation":
		tools.FloorActivation(grid, ph, axis)
	default:
		chk.Panic("scenario: unknown scenario %q", name)
	}
}

func parseAxis(name string) mesh.Axis {
	switch name {
	case "x":
		return mesh.X
	case "y":
		return mesh.Y
	case "z":
		return mesh.Z
	}
	chk.Panic("scenario: unknown axis %q", name)
	return mesh.X
}
